// Command annotate is a command-line annotation client.
//
// It wires the backend API client, the local SQLite record cache and the
// TOML config store into the core services, then hands control to the CLI.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/annotate-cli/internal/adapters/driven/api/argilla"
	"github.com/custodia-labs/annotate-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/annotate-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/annotate-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/annotate-cli/internal/core/services"
	"github.com/custodia-labs/annotate-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config store: %w", err)
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("initialising record cache: %w", err)
	}
	defer store.Close() //nolint:errcheck

	recordStorage := store.RecordStorage()

	svcs := cli.Services{
		Storage: recordStorage,
		Config:  configStore,
	}

	// The backend services need credentials. Without them only login,
	// version and help are usable; the other commands report that their
	// service is not configured.
	client, err := argilla.NewClient(argilla.Config{
		BaseURL: configStore.GetString("api.url"),
		APIKey:  configStore.GetString("api.key"),
	})
	if err != nil {
		logger.Debug("Backend client not available: %v (run 'annotate login')", err)
	} else {
		records := argilla.NewRecordRepository(client)
		fields := argilla.NewFieldRepository(client)
		questions := argilla.NewQuestionRepository(client)
		datasets := argilla.NewDatasetRepository(client)

		svcs.Records = services.NewRecordService(records, fields, questions, recordStorage)
		svcs.Responses = services.NewResponseService(records)
		svcs.Datasets = services.NewDatasetService(datasets)
	}

	cli.SetServices(svcs)
	cli.SetVersion(version)

	return cli.Execute()
}
