package cli

import (
	"fmt"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/cli/formatter"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newRosterCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Teacher and group listings",
	}
	cmd.AddCommand(
		newRosterTeacherCmd(app),
		newRosterGroupCmd(app),
	)
	return cmd
}

func newRosterTeacherCmd(app *App) *cobra.Command {
	var teacherID, year int

	cmd := &cobra.Command{
		Use:   "teacher",
		Short: "List the subjects a teacher teaches and the groups they direct",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Roster.LoadTeacherRoster(cmd.Context(), teacherID, year)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTeacherRoster(resp))
			return nil
		},
	}
	cmd.Flags().IntVar(&teacherID, "teacher", 0, "Teacher ID")
	cmd.Flags().IntVar(&year, "year", 0, "Academic year")
	return cmd
}

func newRosterGroupCmd(app *App) *cobra.Command {
	var scope scopeFlags

	cmd := &cobra.Command{
		Use:   "group <group-id>",
		Short: "List the students of a group, optionally within a period and subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := parseID(args[0])
			if err != nil {
				return err
			}
			var r *domain.GroupRoster
			if scope.period > 0 || scope.subject > 0 {
				r, err = app.Roster.LoadScopedGroupStudents(cmd.Context(), scope.period, scope.subject, groupID)
			} else {
				r, err = app.Roster.LoadGroupStudents(cmd.Context(), groupID)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGroupRoster(r))
			return nil
		},
	}
	fs := scope.flagSet()
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name != "group" {
			cmd.Flags().AddFlag(f)
		}
	})
	return cmd
}
