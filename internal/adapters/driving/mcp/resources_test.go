package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/annotate-cli/internal/core/domain"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}

func TestExtractDatasetID(t *testing.T) {
	tests := []struct {
		name   string
		uri    string
		suffix string
		want   string
	}{
		{
			name:   "guidelines URI",
			uri:    "annotate://datasets/ds-1/guidelines",
			suffix: "/guidelines",
			want:   "ds-1",
		},
		{
			name:   "records URI",
			uri:    "annotate://datasets/ds-1/records",
			suffix: "/records",
			want:   "ds-1",
		},
		{
			name:   "wrong scheme",
			uri:    "other://datasets/ds-1/records",
			suffix: "/records",
			want:   "",
		},
		{
			name:   "missing suffix",
			uri:    "annotate://datasets/ds-1",
			suffix: "/records",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDatasetID(tt.uri, tt.suffix))
		})
	}
}

func TestServer_handleDatasetsResource(t *testing.T) {
	t.Run("lists datasets as JSON", func(t *testing.T) {
		srv, err := NewServer(&Ports{
			Records: &mockRecordService{},
			Datasets: &mockDatasetService{
				datasets: []domain.Dataset{
					{ID: "ds-1", Name: "sentiment", WorkspaceID: "ws-1", Status: "ready"},
				},
			},
		})
		require.NoError(t, err)

		result, err := srv.handleDatasetsResource(context.Background(), readRequest("annotate://datasets"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, `"id": "ds-1"`)
		assert.Contains(t, result.Contents[0].Text, `"name": "sentiment"`)
	})

	t.Run("returns empty list without dataset service", func(t *testing.T) {
		srv, err := NewServer(&Ports{Records: &mockRecordService{}})
		require.NoError(t, err)

		result, err := srv.handleDatasetsResource(context.Background(), readRequest("annotate://datasets"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("propagates listing failure", func(t *testing.T) {
		srv, err := NewServer(&Ports{
			Records:  &mockRecordService{},
			Datasets: &mockDatasetService{err: domain.ErrFetchingDatasets},
		})
		require.NoError(t, err)

		_, err = srv.handleDatasetsResource(context.Background(), readRequest("annotate://datasets"))

		assert.ErrorIs(t, err, domain.ErrFetchingDatasets)
	})
}

func TestServer_handleGuidelinesResource(t *testing.T) {
	t.Run("returns guidelines as markdown", func(t *testing.T) {
		srv, err := NewServer(&Ports{
			Records: &mockRecordService{},
			Datasets: &mockDatasetService{
				dataset: &domain.Dataset{
					ID:         "ds-1",
					Guidelines: "# Annotate carefully",
					CreatedAt:  time.Now(),
				},
			},
		})
		require.NoError(t, err)

		result, err := srv.handleGuidelinesResource(
			context.Background(),
			readRequest("annotate://datasets/ds-1/guidelines"),
		)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "text/markdown", result.Contents[0].MIMEType)
		assert.Equal(t, "# Annotate carefully", result.Contents[0].Text)
	})

	t.Run("malformed URI is not found", func(t *testing.T) {
		srv, err := NewServer(&Ports{
			Records:  &mockRecordService{},
			Datasets: &mockDatasetService{},
		})
		require.NoError(t, err)

		_, err = srv.handleGuidelinesResource(
			context.Background(),
			readRequest("annotate://workspaces/ws-1/guidelines"),
		)

		require.Error(t, err)
	})
}

func TestServer_handleRecordsResource(t *testing.T) {
	t.Run("returns cached page as JSON", func(t *testing.T) {
		srv, err := NewServer(&Ports{
			Records: &mockRecordService{},
			Storage: cachedPage(hydratedRecord()),
		})
		require.NoError(t, err)

		result, err := srv.handleRecordsResource(
			context.Background(),
			readRequest("annotate://datasets/ds-1/records"),
		)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, `"id": "rec-1"`)
	})

	t.Run("no cached page is not found", func(t *testing.T) {
		srv, err := NewServer(&Ports{
			Records: &mockRecordService{},
			Storage: &mockStorage{},
		})
		require.NoError(t, err)

		_, err = srv.handleRecordsResource(
			context.Background(),
			readRequest("annotate://datasets/ds-1/records"),
		)

		require.Error(t, err)
	})
}
