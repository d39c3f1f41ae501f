package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/report"
)

func newSyllabusCmd() *cobra.Command {
	var toggle []string
	c := &cobra.Command{
		Use:   "syllabus",
		Short: "Print the syllabus outline with completion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, logger, err := loadPlanner(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			for _, id := range toggle {
				if !svc.ToggleTopic(id) {
					logger.Warn("topic not found", "topic", id)
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Syllabus(svc.Syllabus()))
			return nil
		},
	}
	c.Flags().StringSliceVar(&toggle, "toggle", nil, "Topic IDs to toggle before printing")
	return c
}
