package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhubert/caesar/internal/logger"
)

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the debug log file",
		Long: `Removes the debug log file (see --log-file). caesar stores nothing else
on disk; the config file is never written.`,
		Args: cobra.NoArgs,
		RunE: runClean,
	}
}

func runClean(cmd *cobra.Command, args []string) error {
	path := logger.Path()
	if path == "" {
		path = logger.DefaultLogPath
	}

	removed, err := logger.ClearLogs()
	if err != nil {
		return fmt.Errorf("error clearing logs: %w", err)
	}

	out := cmd.OutOrStdout()
	if removed == 0 {
		fmt.Fprintln(out, "No log files to remove.")
		return nil
	}
	fmt.Fprintf(out, "Removed %s.\n", path)
	return nil
}
