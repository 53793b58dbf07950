package cmd

import (
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "studyflow",
	Short: "Study schedule planner",
	Long:  "studyflow places study sessions for upcoming coursework into the free time around classes and work shifts.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(exportCmd)
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }
