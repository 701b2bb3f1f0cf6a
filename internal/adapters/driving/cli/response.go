package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/annotate-cli/internal/core/domain"
)

var (
	submitDataset  string
	submitAnswers  []string
	draftDataset   string
	draftAnswers   []string
	discardDataset string
	deleteDataset  string
)

var submitCmd = &cobra.Command{
	Use:   "submit [record-id]",
	Short: "Submit a response for a record",
	Long: `Submits your answers for a record.

Answers are given as question=value pairs. Multi-label answers take a
comma-separated value list. Invalid answers are not sent: only questions
whose answer passes the question's own validation end up in the response.

Examples:
  annotate submit rec-1 --answer label=positive
  annotate submit rec-1 --answer topics=sports,politics --answer quality=4`,
	Args: cobra.ExactArgs(1),
	RunE: runSubmit,
}

var draftCmd = &cobra.Command{
	Use:   "draft [record-id]",
	Short: "Save a draft response for a record",
	Long: `Saves your current answers as a draft without submitting.

A record that already has a backend response is updated in place; otherwise
a new draft response is created.`,
	Args: cobra.ExactArgs(1),
	RunE: runDraft,
}

var discardCmd = &cobra.Command{
	Use:   "discard [record-id]",
	Short: "Discard a record",
	Long: `Marks the record's response as discarded, setting the record aside.

The record must carry an existing response; fetch records first so the
response is known locally.`,
	Args: cobra.ExactArgs(1),
	RunE: runDiscard,
}

var deleteCmd = &cobra.Command{
	Use:   "delete [record-id]",
	Short: "Delete a record's response",
	Long:  `Deletes the record's response, returning the record to the pending pool.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	submitCmd.Flags().StringVarP(&submitDataset, "dataset", "d", "", "dataset id (falls back to defaults.dataset)")
	submitCmd.Flags().StringArrayVarP(&submitAnswers, "answer", "a", nil, "answer as question=value (repeatable)")
	draftCmd.Flags().StringVarP(&draftDataset, "dataset", "d", "", "dataset id (falls back to defaults.dataset)")
	draftCmd.Flags().StringArrayVarP(&draftAnswers, "answer", "a", nil, "answer as question=value (repeatable)")
	discardCmd.Flags().StringVarP(&discardDataset, "dataset", "d", "", "dataset id (falls back to defaults.dataset)")
	deleteCmd.Flags().StringVarP(&deleteDataset, "dataset", "d", "", "dataset id (falls back to defaults.dataset)")

	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(discardCmd)
	rootCmd.AddCommand(deleteCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	if responseService == nil {
		return errors.New("response service not configured")
	}

	rec, err := loadRecord(defaultDataset(submitDataset), args[0])
	if err != nil {
		return err
	}
	if err := applyAnswers(rec, submitAnswers); err != nil {
		return err
	}

	if err := responseService.Submit(context.Background(), rec); err != nil {
		return fmt.Errorf("submitting response failed: %w", err)
	}
	cmd.Printf("Submitted response for record %s\n", rec.ID)
	return nil
}

func runDraft(cmd *cobra.Command, args []string) error {
	if responseService == nil {
		return errors.New("response service not configured")
	}

	rec, err := loadRecord(defaultDataset(draftDataset), args[0])
	if err != nil {
		return err
	}
	if err := applyAnswers(rec, draftAnswers); err != nil {
		return err
	}

	if err := responseService.SaveDraft(context.Background(), rec); err != nil {
		return fmt.Errorf("saving draft failed: %w", err)
	}
	cmd.Printf("Saved draft for record %s\n", rec.ID)
	return nil
}

func runDiscard(cmd *cobra.Command, args []string) error {
	if responseService == nil {
		return errors.New("response service not configured")
	}

	rec, err := loadRecord(defaultDataset(discardDataset), args[0])
	if err != nil {
		return err
	}

	if err := responseService.Discard(context.Background(), rec); err != nil {
		if errors.Is(err, domain.ErrNoRecordResponse) {
			return fmt.Errorf("record %s has no response to discard", rec.ID)
		}
		return fmt.Errorf("discarding record failed: %w", err)
	}
	cmd.Printf("Discarded record %s\n", rec.ID)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	if responseService == nil {
		return errors.New("response service not configured")
	}

	rec, err := loadRecord(defaultDataset(deleteDataset), args[0])
	if err != nil {
		return err
	}

	if err := responseService.Delete(context.Background(), rec); err != nil {
		if errors.Is(err, domain.ErrNoRecordResponse) {
			return fmt.Errorf("record %s has no response to delete", rec.ID)
		}
		return fmt.Errorf("deleting response failed: %w", err)
	}
	cmd.Printf("Deleted response of record %s\n", rec.ID)
	return nil
}

// loadRecord finds the record in the locally cached page.
func loadRecord(datasetID, recordID string) (*domain.Record, error) {
	if recordStorage == nil {
		return nil, errors.New("record storage not configured")
	}
	if datasetID == "" {
		return nil, errors.New("no dataset given: pass --dataset or set defaults.dataset")
	}

	records, err := recordStorage.Get(context.Background(), datasetID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errors.New("no fetched records for this dataset: run 'annotate records' first")
		}
		return nil, fmt.Errorf("loading cached records failed: %w", err)
	}

	for i := range records.Items {
		if records.Items[i].ID == recordID {
			return &records.Items[i], nil
		}
	}
	return nil, fmt.Errorf("record %s is not in the fetched page", recordID)
}

// applyAnswers parses question=value pairs and records them on the matching
// questions. Values are coerced by question type before validation.
func applyAnswers(rec *domain.Record, answers []string) error {
	for _, raw := range answers {
		name, value, ok := strings.Cut(raw, "=")
		if !ok {
			return fmt.Errorf("invalid answer %q: expected question=value", raw)
		}

		q := rec.Question(name)
		if q == nil {
			return fmt.Errorf("unknown question %q", name)
		}
		q.Respond(coerceAnswer(q, value))

		if !q.HasValidAnswer() {
			return fmt.Errorf("invalid answer for question %q: %q", name, value)
		}
	}
	return nil
}

// coerceAnswer converts the flag string into the shape the question expects.
func coerceAnswer(q *domain.Question, value string) any {
	switch q.Settings.Type {
	case domain.QuestionTypeMultiLabelSelection, domain.QuestionTypeRanking:
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	case domain.QuestionTypeRating:
		if n, err := strconv.ParseFloat(value, 64); err == nil {
			return n
		}
		return value
	default:
		return value
	}
}
