package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fitdash",
	Short: "Local dashboard for Fitbit data exports",
	Long: `fitdash serves an interactive dashboard over a directory of Fitbit
CSV exports: daily activity, sleep, hourly steps, heart rate, and weight.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
