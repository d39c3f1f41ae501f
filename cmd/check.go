package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/planner"
	"github.com/abhisek/studyplan/internal/report"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check SUBJECT PREREQ",
		Short: "Report whether PREREQ can become a prerequisite of SUBJECT",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadPlanner(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			for _, id := range args {
				if _, ok := svc.Subject(id); !ok {
					return fmt.Errorf("check %q -> %q: %w: %q", args[1], args[0], planner.ErrUnknownSubject, id)
				}
			}
			ok := svc.CanAddPrerequisite(args[0], args[1])
			fmt.Fprint(cmd.OutOrStdout(), report.Check(args[0], args[1], ok))
			return nil
		},
	}
}
