package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/annotate-cli/internal/core/domain"
)

func TestRecordsCmd_Use(t *testing.T) {
	assert.Equal(t, "records", recordsCmd.Use)
}

func TestRecordsCmd_HasDatasetFlag(t *testing.T) {
	flag := recordsCmd.Flags().Lookup("dataset")
	require.NotNil(t, flag, "dataset flag should exist")
	assert.Equal(t, "d", flag.Shorthand)
}

func TestRecordsCmd_HasLimitFlag(t *testing.T) {
	flag := recordsCmd.Flags().Lookup("limit")
	require.NotNil(t, flag, "limit flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
}

func TestRecordsCmd_RequiresDataset(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"records"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no dataset given")
}

func TestRecordsCmd_FetchesRecords(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	records := &mockRecordService{
		records: &domain.Records{
			Items: []domain.Record{cachedRecord()},
			Total: 42,
		},
	}
	recordService = records

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"records", "--dataset", "ds-1", "--status", "pending", "--offset", "20"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Records (1 of 42):")
	assert.Contains(t, buf.String(), "rec-1 [pending]")
	assert.Equal(t, "ds-1", records.lastQuery.DatasetID)
	assert.Equal(t, domain.StatusPending, records.lastQuery.Status)
	assert.Equal(t, 20, records.lastQuery.Offset)
	assert.Equal(t, 10, records.lastQuery.Limit, "limit should default to 10")
}

func TestRecordsCmd_DatasetFromConfig(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	records := &mockRecordService{}
	recordService = records
	configStore = &mockConfigStore{values: map[string]any{
		"defaults.dataset": "ds-cfg",
		"defaults.limit":   25,
	}}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"records"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "ds-cfg", records.lastQuery.DatasetID)
	assert.Equal(t, 25, records.lastQuery.Limit)
}

func TestRecordsCmd_SearchPassedThrough(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	records := &mockRecordService{}
	recordService = records

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"records", "-d", "ds-1", "--search", "battery life"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "battery life", records.lastQuery.SearchText)
}

func TestRecordsCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	recordService = &mockRecordService{
		records: &domain.Records{Items: []domain.Record{cachedRecord()}, Total: 1},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"records", "-d", "ds-1", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"ID": "rec-1"`)
}

func TestRecordsCmd_EmptyPage(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"records", "-d", "ds-1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No records found.")
}

func TestRecordsCmd_ServiceError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	recordService = &mockRecordService{err: domain.ErrFetchingRecords}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"records", "-d", "ds-1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, domain.ErrFetchingRecords)
}

func TestRecordsCmd_NilService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	recordService = nil

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"records", "-d", "ds-1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "record service not configured")
}
