package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/annotate-cli/internal/core/domain"
)

var datasetsJSON bool

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List datasets available for annotation",
	Long: `Lists all datasets the current user can annotate.

Use 'annotate datasets show [id]' for one dataset's details, including its
annotation guidelines.`,
	RunE: runDatasets,
}

var datasetsShowCmd = &cobra.Command{
	Use:   "show [dataset-id]",
	Short: "Show one dataset's details",
	Args:  cobra.ExactArgs(1),
	RunE:  runDatasetsShow,
}

func init() {
	datasetsCmd.Flags().BoolVar(&datasetsJSON, "json", false, "output as JSON")
	datasetsCmd.AddCommand(datasetsShowCmd)
	rootCmd.AddCommand(datasetsCmd)
}

func runDatasets(cmd *cobra.Command, _ []string) error {
	if datasetService == nil {
		return errors.New("dataset service not configured")
	}

	datasets, err := datasetService.List(context.Background())
	if err != nil {
		return fmt.Errorf("listing datasets failed: %w", err)
	}

	if datasetsJSON {
		data, err := json.MarshalIndent(datasets, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal datasets: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(datasets) == 0 {
		cmd.Println("No datasets found.")
		return nil
	}

	cmd.Println("Datasets:")
	cmd.Println()
	for i := range datasets {
		printDatasetLine(cmd, &datasets[i])
	}
	return nil
}

func runDatasetsShow(cmd *cobra.Command, args []string) error {
	if datasetService == nil {
		return errors.New("dataset service not configured")
	}

	dataset, err := datasetService.Get(context.Background(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("dataset %s not found", args[0])
		}
		return fmt.Errorf("fetching dataset failed: %w", err)
	}

	cmd.Printf("%s (%s)\n", dataset.Name, dataset.ID)
	cmd.Printf("  Workspace: %s\n", dataset.WorkspaceID)
	cmd.Printf("  Status:    %s\n", dataset.Status)
	if dataset.Guidelines != "" {
		cmd.Println()
		cmd.Println("Guidelines:")
		cmd.Println(dataset.Guidelines)
	}
	return nil
}

func printDatasetLine(cmd *cobra.Command, d *domain.Dataset) {
	cmd.Printf("  %s  %s [%s]\n", d.ID, d.Name, d.Status)
}
