package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/studyflow/studyflow/app"
	"github.com/studyflow/studyflow/config"
	"github.com/studyflow/studyflow/core/planner"
	"github.com/studyflow/studyflow/core/schedule"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build the study schedule and print it",
	RunE:  runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, schedules, err := buildPlan(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	printSchedules(cmd, schedules)
	return nil
}

// buildPlan loads config, wires the service and runs one planning pass.
// A fixed-block conflict is reported but does not fail the command.
func buildPlan(ctx context.Context) (*app.Service, []*schedule.DailySchedule, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	svc.StartMetricsServer(ctx)

	schedules, err := svc.Plan(ctx)
	var conflicts *planner.FixedConflictError
	if err != nil && !errors.As(err, &conflicts) {
		svc.Close()
		return nil, nil, err
	}
	if conflicts != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", conflicts)
	}
	return svc, schedules, nil
}

func printSchedules(cmd *cobra.Command, schedules []*schedule.DailySchedule) {
	for _, day := range schedules {
		cmd.Printf("%s (%d min study, %.0f%% efficient)\n",
			day.Date().Format("Mon 2006-01-02"), day.StudyMinutes(), day.Efficiency()*100)
		for _, block := range day.Blocks() {
			cmd.Printf("  %s\n", block)
		}
	}
	summary := planner.Summarize(schedules)
	cmd.Printf("total: %d min study over %d day(s), avg %.0f min/day, mean efficiency %.0f%%\n",
		summary.TotalStudyMinutes, summary.Days, summary.AverageStudyMinutes, summary.MeanEfficiency*100)
}
