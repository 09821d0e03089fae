package helix

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/errata-labs/errata-go/pkg"
)

func TestClient_CreateErrorPattern(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/createErrorPattern", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req CreateErrorPatternRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "card_declined", req.Code)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": ErrorPattern{ID: "err-1", APIID: req.APIID, Code: req.Code},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())
	pattern, err := client.CreateErrorPattern(context.Background(), CreateErrorPatternRequest{
		APIID: "api-1",
		Code:  "card_declined",
	})

	require.NoError(t, err)
	assert.Equal(t, "err-1", pattern.ID)
	assert.Equal(t, "api-1", pattern.APIID)
}

func TestClient_FindSolutionsByErrorCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/findSolutionsByErrorCode", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"errors":    ErrorPattern{ID: "err-1", Code: "card_declined"},
			"solutions": []Solution{{ID: "sol-1", ErrorID: "err-1", Title: "Retry"}},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())
	pattern, sols, err := client.FindSolutionsByErrorCode(context.Background(), "card_declined")

	require.NoError(t, err)
	assert.Equal(t, "err-1", pattern.ID)
	require.Len(t, sols, 1)
	assert.Equal(t, "Retry", sols[0].Title)
}

func TestClient_FindSolutionsByErrorCode_NullError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"errors":    nil,
			"solutions": []Solution{},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())
	_, _, err := client.FindSolutionsByErrorCode(context.Background(), "nope")

	require.Error(t, err)
	assert.True(t, pkg.IsCode(err, pkg.ErrRecordNotFoundCode))
}

func TestClient_NonSuccessStatusIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())
	_, err := client.CreateAPI(context.Background(), CreateAPIRequest{Name: "Stripe"})

	require.Error(t, err)
	assert.True(t, pkg.IsCode(err, pkg.ErrUpstreamCode))
}

func TestClient_TransportFailureIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, zap.NewNop())
	_, err := client.GetAPIErrors(context.Background(), "Stripe")

	require.Error(t, err)
	assert.True(t, pkg.IsCode(err, pkg.ErrUpstreamCode))
}
