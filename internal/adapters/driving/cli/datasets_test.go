package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/annotate-cli/internal/core/domain"
)

func TestDatasetsCmd_Use(t *testing.T) {
	assert.Equal(t, "datasets", datasetsCmd.Use)
}

func TestDatasetsCmd_ListsDatasets(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	datasetService = &mockDatasetService{
		datasets: []domain.Dataset{
			{ID: "ds-1", Name: "sentiment", Status: "ready"},
			{ID: "ds-2", Name: "intent", Status: "draft"},
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"datasets"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "ds-1  sentiment [ready]")
	assert.Contains(t, buf.String(), "ds-2  intent [draft]")
}

func TestDatasetsCmd_EmptyList(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"datasets"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No datasets found.")
}

func TestDatasetsCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	datasetService = &mockDatasetService{
		datasets: []domain.Dataset{{ID: "ds-1", Name: "sentiment"}},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"datasets", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"ID": "ds-1"`)
	assert.Contains(t, buf.String(), `"Name": "sentiment"`)
}

func TestDatasetsCmd_NilService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	datasetService = nil

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"datasets"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset service not configured")
}

func TestDatasetsShowCmd_ShowsGuidelines(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	datasetService = &mockDatasetService{
		dataset: &domain.Dataset{
			ID:          "ds-1",
			Name:        "sentiment",
			WorkspaceID: "ws-1",
			Status:      "ready",
			Guidelines:  "# Read the text, pick the sentiment",
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"datasets", "show", "ds-1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "sentiment (ds-1)")
	assert.Contains(t, buf.String(), "Workspace: ws-1")
	assert.Contains(t, buf.String(), "# Read the text, pick the sentiment")
}

func TestDatasetsShowCmd_NotFound(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	datasetService = &mockDatasetService{err: domain.ErrNotFound}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"datasets", "show", "ds-404"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset ds-404 not found")
}
