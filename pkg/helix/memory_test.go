package helix

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/errata-labs/errata-go/pkg"
)

func seedMemory(t *testing.T) (*Memory, API, ErrorPattern) {
	t.Helper()
	ctx := context.Background()
	store := NewMemory()

	api, err := store.CreateAPI(ctx, CreateAPIRequest{Name: "Stripe", BaseURL: "https://api.stripe.com"})
	require.NoError(t, err)

	pattern, err := store.CreateErrorPattern(ctx, CreateErrorPatternRequest{
		APIID:      api.ID,
		Code:       "card_declined",
		Message:    "The card was declined",
		HTTPStatus: 402,
		Severity:   "error",
	})
	require.NoError(t, err)

	return store, api, pattern
}

func TestMemory_CreateAPIIdempotentOnName(t *testing.T) {
	store, api, _ := seedMemory(t)

	again, err := store.CreateAPI(context.Background(), CreateAPIRequest{Name: "Stripe"})
	require.NoError(t, err)
	assert.Equal(t, api.ID, again.ID)
}

func TestMemory_GetAPIErrors(t *testing.T) {
	store, _, pattern := seedMemory(t)
	ctx := context.Background()

	other, err := store.CreateAPI(ctx, CreateAPIRequest{Name: "GitHub"})
	require.NoError(t, err)
	_, err = store.CreateErrorPattern(ctx, CreateErrorPatternRequest{APIID: other.ID, Code: "bad_credentials"})
	require.NoError(t, err)

	patterns, err := store.GetAPIErrors(ctx, "Stripe")
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, pattern.ID, patterns[0].ID)

	_, err = store.GetAPIErrors(ctx, "Twilio")
	require.Error(t, err)
	assert.True(t, pkg.IsCode(err, pkg.ErrRecordNotFoundCode))
}

func TestMemory_FindSolutionsByErrorCode(t *testing.T) {
	store, _, pattern := seedMemory(t)
	ctx := context.Background()

	sol, err := store.CreateSolution(ctx, CreateSolutionRequest{
		ErrorID: pattern.ID,
		Title:   "Ask for another card",
		Upvotes: 7,
	})
	require.NoError(t, err)

	found, sols, err := store.FindSolutionsByErrorCode(ctx, "card_declined")
	require.NoError(t, err)
	assert.Equal(t, pattern.ID, found.ID)
	require.Len(t, sols, 1)
	assert.Equal(t, sol.ID, sols[0].ID)

	_, _, err = store.FindSolutionsByErrorCode(ctx, "nope")
	require.Error(t, err)
	assert.True(t, pkg.IsCode(err, pkg.ErrRecordNotFoundCode))
}

func TestMemory_Parameters(t *testing.T) {
	store, _, pattern := seedMemory(t)

	_, err := store.CreateParameter(context.Background(), CreateParameterRequest{
		ErrorID:   pattern.ID,
		Name:      "amount",
		ParamType: "string",
		Required:  true,
	})
	require.NoError(t, err)

	params := store.Parameters(pattern.ID)
	require.Len(t, params, 1)
	assert.Equal(t, "amount", params[0].Name)
	assert.Empty(t, store.Parameters("other"))
}
