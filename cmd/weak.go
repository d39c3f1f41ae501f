package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/report"
)

func newWeakCmd() *cobra.Command {
	var next int
	c := &cobra.Command{
		Use:   "weak",
		Short: "List weak topics, weakest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if next < 0 {
				return fmt.Errorf("--next must not be negative, got %d", next)
			}
			svc, _, err := loadPlanner(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if next == 0 {
				fmt.Fprint(out, report.Weaknesses(svc.Weaknesses()))
				return nil
			}
			for range next {
				e, ok := svc.NextWeakTopic()
				if !ok {
					fmt.Fprintln(out, "No weak topics left.")
					break
				}
				fmt.Fprint(out, report.NextTopic(e))
			}
			return nil
		},
	}
	c.Flags().IntVar(&next, "next", 0, "Extract and print the next N topics to study")
	return c
}
