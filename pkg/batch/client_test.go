package batch_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docpatch/docpatch/pkg/batch"
	"github.com/docpatch/docpatch/pkg/docops"
)

func TestClientExecute(t *testing.T) {
	t.Parallel()

	var gotPath, gotAuth string
	var gotBody docops.BatchUpdateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(docops.BatchUpdateResponse{
			DocumentID: "doc-9",
			Replies:    []map[string]any{{}},
		})
	}))
	defer srv.Close()

	client, err := batch.NewClient(batch.ClientConfig{BaseURL: srv.URL, Token: "sekrit"})
	require.NoError(t, err)

	resp, err := client.Execute(context.Background(), "doc-9", insertOps(1))
	require.NoError(t, err)

	assert.Equal(t, "/v1/documents/doc-9:batchUpdate", gotPath)
	assert.Equal(t, "Bearer sekrit", gotAuth)
	require.Len(t, gotBody.Requests, 1)
	assert.Equal(t, "op-0", gotBody.Requests[0].InsertText.Text)
	assert.Equal(t, "doc-9", resp.DocumentID)
}

func TestClientExecuteRemoteError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"index out of range"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client, err := batch.NewClient(batch.ClientConfig{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Execute(context.Background(), "doc-9", insertOps(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "index out of range")
}

func TestClientRequiresConfiguration(t *testing.T) {
	t.Parallel()

	_, err := batch.NewClient(batch.ClientConfig{})
	assert.Error(t, err)

	client, err := batch.NewClient(batch.ClientConfig{BaseURL: "https://docs.example.com"})
	require.NoError(t, err)

	_, err = client.Execute(context.Background(), "", insertOps(1))
	assert.Error(t, err)
}
