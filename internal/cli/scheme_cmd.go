package cli

import (
	"fmt"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/cli/formatter"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/contract"
	"github.com/spf13/cobra"
)

func newSchemeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scheme",
		Short: "Inspect and edit the evaluation scheme of a scope",
	}
	cmd.AddCommand(
		newSchemeShowCmd(app),
		newSchemeUpdateCmd(app),
		newSchemeLinkCmd(app),
	)
	return cmd
}

func newSchemeShowCmd(app *App) *cobra.Command {
	var scope scopeFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show knowledge weights and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := scope.scope()
			scheme, err := app.Scheme.GetScheme(cmd.Context(), s.PeriodID, s.SubjectID, s.GroupID)
			if scheme != nil {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatScheme(scheme))
			}
			return err
		},
	}
	cmd.Flags().AddFlagSet(scope.flagSet())
	return cmd
}

func newSchemeUpdateCmd(app *App) *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "update <achievement-group-id>",
		Short: "Change the achievement text of one binding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			item, err := app.Scheme.UpdateAchievement(cmd.Context(), id, text)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSchemeItem(*item))
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "New achievement description")
	return cmd
}

func newSchemeLinkCmd(app *App) *cobra.Command {
	var knowledgeID int
	var text string

	cmd := &cobra.Command{
		Use:   "link <achievement-group-id>",
		Short: "Link a binding to another knowledge area",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			upd := contract.AchievementGroupUpdate{ID: id}
			if cmd.Flags().Changed("knowledge") {
				upd.KnowledgeID = &knowledgeID
			}
			if cmd.Flags().Changed("text") {
				upd.Achievement = &text
			}
			item, err := app.Scores.UpdateAchievementGroup(cmd.Context(), upd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSchemeItem(*item))
			return nil
		},
	}
	cmd.Flags().IntVar(&knowledgeID, "knowledge", 0, "Subject knowledge ID")
	cmd.Flags().StringVar(&text, "text", "", "New achievement description")
	return cmd
}
