package cli

import (
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/bus"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and shared selection state used by CLI commands.
type App struct {
	Activities service.ActivityService
	Scores     service.ScoreService
	Scheme     service.SchemeService
	Roster     service.RosterService
	Bus        *bus.Bus
}

// NewRootCmd creates the top-level "erudia" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "erudia",
		Short:         "Activities, grades and evaluation schemes for a school",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newActivitiesCmd(app),
		newActivityCmd(app),
		newScoresCmd(app),
		newSchemeCmd(app),
		newRosterCmd(app),
	)

	return root
}
