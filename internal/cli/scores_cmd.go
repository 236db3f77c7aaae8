package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/cli/formatter"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/contract"
	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/domain"
	"github.com/spf13/cobra"
)

func newScoresCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Save and retry score edits for an activity",
	}
	cmd.AddCommand(
		newScoresSaveCmd(app),
		newScoresRetryCmd(app),
		newScoresPendingCmd(app),
	)
	return cmd
}

// readEdits decodes a JSON array of score edits from path, or stdin for "-".
func readEdits(cmd *cobra.Command, path string) ([]domain.ScoreEdit, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening edits file: %w", err)
		}
		defer f.Close()
		r = f
	}
	var edits []domain.ScoreEdit
	if err := json.NewDecoder(r).Decode(&edits); err != nil {
		return nil, fmt.Errorf("decoding edits: %w", err)
	}
	return edits, nil
}

// reportBatch prints the batch outcome and turns a partial failure into a
// command error so the exit code reflects it.
func reportBatch(cmd *cobra.Command, resp *contract.SaveScoresResponse, err error) error {
	if resp != nil {
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSaveScores(resp))
	}
	if err != nil {
		return err
	}
	return resp.Err()
}

func newScoresSaveCmd(app *App) *cobra.Command {
	var activityID int
	var file string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Submit a batch of score edits",
		RunE: func(cmd *cobra.Command, args []string) error {
			edits, err := readEdits(cmd, file)
			if err != nil {
				return err
			}
			resp, err := app.Scores.SaveScores(cmd.Context(), contract.SaveScoresRequest{
				ActivityID: activityID,
				Edits:      edits,
			})
			return reportBatch(cmd, resp, err)
		},
	}
	cmd.Flags().IntVar(&activityID, "activity", 0, "Activity ID")
	cmd.Flags().StringVar(&file, "file", "-", "JSON file with the edits (- for stdin)")
	return cmd
}

func newScoresRetryCmd(app *App) *cobra.Command {
	var activityID int

	cmd := &cobra.Command{
		Use:   "retry",
		Short: "Resubmit only the edits that failed before",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Scores.RetryFailed(cmd.Context(), activityID)
			return reportBatch(cmd, resp, err)
		},
	}
	cmd.Flags().IntVar(&activityID, "activity", 0, "Activity ID")
	return cmd
}

func newScoresPendingCmd(app *App) *cobra.Command {
	var activityID int

	cmd := &cobra.Command{
		Use:   "pending",
		Short: "List failed edits waiting for a retry",
		RunE: func(cmd *cobra.Command, args []string) error {
			pending, err := app.Scores.PendingEdits(cmd.Context(), activityID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPendingEdits(pending))
			return nil
		},
	}
	cmd.Flags().IntVar(&activityID, "activity", 0, "Activity ID")
	return cmd
}
