package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/versus/internal/core/domain"
)

func TestListParsesArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "list", r.URL.Query().Get("action"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]domain.Comparison{
			{ID: "1-a", A: "Coffee", B: "Tea", VotesA: 2, VotesB: 3},
		})
	}))
	defer server.Close()

	store := NewWebAppStore(server.URL, server.Client())
	items, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Coffee", items[0].A)
	assert.Equal(t, 3, items[0].VotesB)
}

func TestListNonArrayMeansEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"not set up yet"}`))
	}))
	defer server.Close()

	store := NewWebAppStore(server.URL, server.Client())
	items, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListKeepsExistingQueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc", r.URL.Query().Get("key"))
		assert.Equal(t, "list", r.URL.Query().Get("action"))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	store := NewWebAppStore(server.URL+"?key=abc", server.Client())
	_, err := store.List(context.Background())
	require.NoError(t, err)
}

func TestListTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	store := NewWebAppStore(server.URL, nil)
	_, err := store.List(context.Background())
	assert.Error(t, err)
}

func TestUpdateSendsWholeCollection(t *testing.T) {
	var got struct {
		Action string              `json:"action"`
		Data   []domain.Comparison `json:"data"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer server.Close()

	items := []domain.Comparison{
		{ID: "1-a", A: "X", B: "Y", VotesA: 1},
		{ID: "2-b", A: "P", B: "Q"},
	}
	store := NewWebAppStore(server.URL, server.Client())
	require.NoError(t, store.Update(context.Background(), items))

	assert.Equal(t, "update", got.Action)
	assert.Equal(t, items, got.Data)
}

func TestUpdateAcceptsAnyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("script error"))
	}))
	defer server.Close()

	// there is no response contract on update; a resolved call is success
	store := NewWebAppStore(server.URL, server.Client())
	assert.NoError(t, store.Update(context.Background(), nil))
}

func TestUpdateTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	store := NewWebAppStore(server.URL, nil)
	assert.Error(t, store.Update(context.Background(), nil))
}
