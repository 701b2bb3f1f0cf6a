package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/annotate-cli/internal/core/domain"
	"github.com/custodia-labs/annotate-cli/internal/core/ports/driving"
)

var (
	recordsDataset string
	recordsStatus  string
	recordsSearch  string
	recordsOffset  int
	recordsLimit   int
	recordsJSON    bool
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Fetch records for annotation",
	Long: `Fetches a page of records from the backend, joined with the dataset's
field and question schemas, and caches it locally for the response commands.

Use --search to switch to full-text search. With --search the reported total
is the backend's match count; without it the total equals the page length.`,
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().StringVarP(&recordsDataset, "dataset", "d", "", "dataset id (falls back to defaults.dataset)")
	recordsCmd.Flags().StringVar(&recordsStatus, "status", "", "filter by response status (pending, draft, submitted, discarded)")
	recordsCmd.Flags().StringVar(&recordsSearch, "search", "", "full-text search query")
	recordsCmd.Flags().IntVar(&recordsOffset, "offset", 0, "index of the first record")
	recordsCmd.Flags().IntVarP(&recordsLimit, "limit", "n", 0, "page size (falls back to defaults.limit)")
	recordsCmd.Flags().BoolVar(&recordsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(recordsCmd)
}

func runRecords(cmd *cobra.Command, _ []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	datasetID := defaultDataset(recordsDataset)
	if datasetID == "" {
		return errors.New("no dataset given: pass --dataset or set defaults.dataset")
	}

	records, err := recordService.GetRecordsForAnnotate(context.Background(), driving.GetRecordsQuery{
		DatasetID:  datasetID,
		Offset:     recordsOffset,
		Limit:      defaultLimit(recordsLimit),
		Status:     domain.AnswerStatus(recordsStatus),
		SearchText: recordsSearch,
	})
	if err != nil {
		return fmt.Errorf("fetching records failed: %w", err)
	}

	if recordsJSON {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal records: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	return outputRecords(cmd, records)
}

func outputRecords(cmd *cobra.Command, records *domain.Records) error {
	if len(records.Items) == 0 {
		cmd.Println("No records found.")
		return nil
	}

	cmd.Printf("Records (%d of %d):\n", len(records.Items), records.Total)
	cmd.Println()
	for i := range records.Items {
		outputRecord(cmd, &records.Items[i])
	}
	return nil
}

func outputRecord(cmd *cobra.Command, rec *domain.Record) {
	status := domain.StatusPending
	if rec.Answer != nil {
		status = rec.Answer.Status
	}
	cmd.Printf("  %s [%s]\n", rec.ID, status)

	for i := range rec.Fields {
		f := &rec.Fields[i]
		cmd.Printf("      %s (%s): %v\n", f.Title, f.Type, f.Content)
	}
	for i := range rec.Questions {
		q := &rec.Questions[i]
		marker := " "
		if q.IsAnswered() {
			marker = "*"
		}
		cmd.Printf("    %s %s (%s)", marker, q.Title, q.Settings.Type)
		if q.IsAnswered() {
			cmd.Printf(" = %v", q.Answer.Value)
		}
		if suggestion := rec.SuggestionFor(q.Name); suggestion != nil {
			cmd.Printf(" [suggested: %v]", suggestion.Value)
		}
		cmd.Println()
	}
	cmd.Println()
}
