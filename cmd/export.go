package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Build the study schedule and push it to Google Calendar",
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, schedules, err := buildPlan(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	printSchedules(cmd, schedules)

	created, err := svc.Export(ctx, schedules)
	if err != nil {
		return err
	}
	cmd.Printf("exported %d event(s)\n", created)
	return nil
}
