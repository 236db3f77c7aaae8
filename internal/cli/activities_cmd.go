package cli

import (
	"fmt"
	"strconv"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/bus"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/cli/formatter"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/contract"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/service"
	"github.com/spf13/cobra"
)

func newActivitiesCmd(app *App) *cobra.Command {
	var scope scopeFlags
	var actorID, viewAsID int
	var teacher, admin, viewAsTeacher bool

	cmd := &cobra.Command{
		Use:   "activities",
		Short: "List the activities of a scope with the actor's scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := scope.require(); err != nil {
				return err
			}
			if actorID <= 0 {
				return fmt.Errorf("--actor is required")
			}
			if teacher && admin {
				return fmt.Errorf("--teacher and --admin are exclusive")
			}
			role := domain.RoleStudent
			switch {
			case teacher:
				role = domain.RoleTeacher
			case admin:
				role = domain.RoleAdmin
			}

			// Selections go through the bus so the feed sees a consistent
			// generation for this load.
			feed := service.NewActivityFeed(app.Bus, app.Activities)
			defer feed.Close()
			bus.Publish(app.Bus, bus.SelectedPeriod, domain.Period{ID: scope.period})
			bus.Publish(app.Bus, bus.SelectedSubject, domain.Subject{ID: scope.subject})
			bus.Publish(app.Bus, bus.SelectedGroup, domain.Group{ID: scope.group})
			bus.Publish(app.Bus, bus.ActingUser, domain.Actor{ID: actorID, Role: role, ViewMode: domain.ViewDefault})
			if cmd.Flags().Changed("view-as") {
				viewed := domain.Actor{ID: viewAsID, Role: domain.RoleStudent}
				if viewAsTeacher {
					viewed.Role = domain.RoleTeacher
				}
				if _, err := bus.ViewAsUser(app.Bus, viewed); err != nil {
					return err
				}
			}

			records, err := feed.Refresh(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActivities(records))
			return nil
		},
	}

	cmd.Flags().AddFlagSet(scope.flagSet())
	cmd.Flags().IntVar(&actorID, "actor", 0, "Acting user ID (student or teacher)")
	cmd.Flags().BoolVar(&teacher, "teacher", false, "Shape scores for a teacher (whole roster per activity)")
	cmd.Flags().BoolVar(&admin, "admin", false, "Act as an administrator (whole roster unless --view-as is set)")
	cmd.Flags().IntVar(&viewAsID, "view-as", 0, "Administrators only: browse as this user")
	cmd.Flags().BoolVar(&viewAsTeacher, "view-as-teacher", false, "The --view-as user is a teacher")
	return cmd
}

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Inspect and manage single activities",
	}
	cmd.AddCommand(
		newActivityShowCmd(app),
		newActivityCreateCmd(app),
		newActivityUpdateCmd(app),
		newActivityDeleteCmd(app),
	)
	return cmd
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func newActivityShowCmd(app *App) *cobra.Command {
	var studentID int

	cmd := &cobra.Command{
		Use:   "show <activity-id>",
		Short: "Show one activity, for a student or for the whole group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			rec, err := app.Activities.GetActivityDetail(cmd.Context(), id, studentID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatActivityDetail(*rec))
			return nil
		},
	}
	cmd.Flags().IntVar(&studentID, "student", 0, "Student ID (omit for the group view)")
	return cmd
}

type draftFlags struct {
	name             string
	description      string
	start            string
	end              string
	status           string
	achievementGroup int
}

func (d *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&d.name, "name", "", "Activity name")
	cmd.Flags().StringVar(&d.description, "description", "", "Activity description")
	cmd.Flags().StringVar(&d.start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&d.end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&d.status, "status", "", "Status: pending, active or finished")
	cmd.Flags().IntVar(&d.achievementGroup, "achievement-group", 0, "Achievement group the activity grades")
}

func (d *draftFlags) draft() (contract.ActivityDraft, error) {
	start, err := parseDateFlag("start", d.start)
	if err != nil {
		return contract.ActivityDraft{}, err
	}
	end, err := parseDateFlag("end", d.end)
	if err != nil {
		return contract.ActivityDraft{}, err
	}
	return contract.ActivityDraft{
		Name:               d.name,
		Description:        d.description,
		StartDate:          start,
		EndDate:            end,
		Status:             domain.ActivityStatus(d.status),
		AchievementGroupID: d.achievementGroup,
	}, nil
}

func newActivityCreateCmd(app *App) *cobra.Command {
	var flags draftFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := flags.draft()
			if err != nil {
				return err
			}
			a, err := app.Activities.CreateActivity(cmd.Context(), draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created activity %s [#%d]\n", a.Name, a.ID)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newActivityUpdateCmd(app *App) *cobra.Command {
	var flags draftFlags

	cmd := &cobra.Command{
		Use:   "update <activity-id>",
		Short: "Replace an activity's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			draft, err := flags.draft()
			if err != nil {
				return err
			}
			a, err := app.Activities.UpdateActivity(cmd.Context(), id, draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated activity %s [#%d]\n", a.Name, a.ID)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newActivityDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <activity-id>",
		Short: "Delete an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Activities.DeleteActivity(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted activity #%d\n", id)
			return nil
		},
	}
}
