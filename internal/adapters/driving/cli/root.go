package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/annotate-cli/internal/core/ports/driven"
	"github.com/custodia-labs/annotate-cli/internal/core/ports/driving"
	"github.com/custodia-labs/annotate-cli/internal/logger"
)

// version is set by the composition root before Execute.
var version = "dev"

// Services injected by the composition root. Commands guard against nil so
// a partially wired binary fails with a clear message instead of a panic.
var (
	recordService   driving.RecordService
	responseService driving.ResponseService
	datasetService  driving.DatasetService
	recordStorage   driven.RecordStorage
	configStore     driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Annotate datasets from the command line",
	Long: `annotate is a command-line annotation client.

It fetches records from an annotation backend together with the dataset's
field and question schemas, lets you answer the questions, and submits,
drafts or discards your responses.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Services bundles everything the commands need.
type Services struct {
	Records   driving.RecordService
	Responses driving.ResponseService
	Datasets  driving.DatasetService
	Storage   driven.RecordStorage
	Config    driven.ConfigStore
}

// SetServices injects the service implementations into the command tree.
func SetServices(s Services) {
	recordService = s.Records
	responseService = s.Responses
	datasetService = s.Datasets
	recordStorage = s.Storage
	configStore = s.Config
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// defaultDataset resolves the dataset id: an explicit flag value wins,
// otherwise the configured default.
func defaultDataset(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if configStore == nil {
		return ""
	}
	return configStore.GetString("defaults.dataset")
}

// defaultLimit resolves the page size the same way.
func defaultLimit(flagValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	if configStore != nil {
		if limit := configStore.GetInt("defaults.limit"); limit > 0 {
			return limit
		}
	}
	return 10
}
