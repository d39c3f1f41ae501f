package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/app"
)

func newRunCmd() *cobra.Command {
	var logFile string
	c := &cobra.Command{
		Use:   "run",
		Short: "Open the interactive planner",
		Long:  "Open the interactive planner. Changes made during the session stay in memory until you quit.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The terminal belongs to the UI, so logs go to a file or nowhere.
			var logOut io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				logOut = f
			}

			svc, logger, err := loadPlanner(cmd, logOut)
			if err != nil {
				return err
			}
			logger.Info("interactive session started")
			if err := app.Run(svc); err != nil {
				return fmt.Errorf("run planner UI: %w", err)
			}
			return nil
		},
	}
	c.Flags().StringVar(&logFile, "log-file", "", "Append logs to this file while the UI runs")
	return c
}
