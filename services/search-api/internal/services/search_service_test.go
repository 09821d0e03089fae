package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/errata-labs/errata-go/pkg"
	"github.com/errata-labs/errata-go/pkg/cache"
	"github.com/errata-labs/errata-go/pkg/dataset"
	"github.com/errata-labs/errata-go/pkg/helix"
)

func testEngine() *dataset.Engine {
	return dataset.NewEngine([]dataset.ErrorRecord{
		{
			API:                 dataset.APIStripe,
			Resource:            "charge",
			ErrorType:           dataset.TypeCard,
			ErrorCode:           "card_declined",
			HTTPStatus:          402,
			ErrorMessage:        "The card was declined",
			SolutionTitle:       "Ask for another card",
			SolutionDescription: "Request a different payment method.",
			Severity:            dataset.SeverityError,
			SourceURL:           "https://docs.stripe.com/error-codes#card_declined",
		},
		{
			API:          dataset.APIStripe,
			ErrorType:    dataset.TypeAuthentication,
			HTTPStatus:   401,
			ErrorMessage: "Invalid API Key provided",
			Severity:     dataset.SeverityCritical,
		},
	})
}

func newTestService(store helix.Store) SearchService {
	logger := zap.NewNop()
	results := cache.NewResultCache(nil, time.Second, logger)
	return NewSearchService(logger, testEngine(), store, results)
}

func TestSearch_DelegatesToEngine(t *testing.T) {
	svc := newTestService(nil)

	res, err := svc.Search(context.Background(), "trace-1", dataset.Query{Text: "card"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "card_declined", res.Errors[0].ErrorCode)
}

func TestGetByCode_NotFound(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.GetByCode("trace-1", "nope")
	require.Error(t, err)
	assert.True(t, pkg.IsCode(err, pkg.ErrRecordNotFoundCode))
}

func TestSolutions_SnapshotOnlyMode(t *testing.T) {
	svc := newTestService(nil)

	res, err := svc.Solutions(context.Background(), "trace-1", "card_declined")
	require.NoError(t, err)
	assert.Equal(t, "card_declined", res.Error.Code)
	require.Len(t, res.Solutions, 1)
	assert.Equal(t, "Request a different payment method.", res.Solutions[0].Description)
	assert.Equal(t, 7, res.Solutions[0].Upvotes)
}

func TestSolutions_PrefersStore(t *testing.T) {
	ctx := context.Background()
	store := helix.NewMemory()
	api, err := store.CreateAPI(ctx, helix.CreateAPIRequest{Name: "Stripe"})
	require.NoError(t, err)
	pattern, err := store.CreateErrorPattern(ctx, helix.CreateErrorPatternRequest{
		APIID: api.ID, Code: "card_declined",
	})
	require.NoError(t, err)
	_, err = store.CreateSolution(ctx, helix.CreateSolutionRequest{
		ErrorID: pattern.ID, Title: "From the store",
	})
	require.NoError(t, err)

	svc := newTestService(store)

	res, err := svc.Solutions(ctx, "trace-1", "card_declined")
	require.NoError(t, err)
	require.Len(t, res.Solutions, 1)
	assert.Equal(t, "From the store", res.Solutions[0].Title)
}

func TestSolutions_StoreMissIsAuthoritative(t *testing.T) {
	// A reachable store that does not know the code means not found; the
	// snapshot fallback is only for upstream failures.
	svc := newTestService(helix.NewMemory())

	_, err := svc.Solutions(context.Background(), "trace-1", "card_declined")
	require.Error(t, err)
	assert.True(t, pkg.IsCode(err, pkg.ErrRecordNotFoundCode))
}

func TestSolutions_UpstreamFailureDegradesToSnapshot(t *testing.T) {
	svc := newTestService(unreachableStore{})

	res, err := svc.Solutions(context.Background(), "trace-1", "card_declined")
	require.NoError(t, err)
	require.Len(t, res.Solutions, 1)
	assert.Equal(t, "Ask for another card", res.Solutions[0].Title)
}

func TestStats(t *testing.T) {
	svc := newTestService(nil)

	stats, err := svc.Stats(context.Background(), "trace-1")
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "Stripe", stats[0].Name)
	assert.Equal(t, 2, stats[0].ErrorCount)
}

// unreachableStore simulates a store whose transport is down.
type unreachableStore struct{}

func (unreachableStore) CreateAPI(context.Context, helix.CreateAPIRequest) (helix.API, error) {
	return helix.API{}, pkg.NewAppError(pkg.ErrUpstreamCode, pkg.ErrUpstreamCode.Message, nil)
}
func (unreachableStore) CreateErrorPattern(context.Context, helix.CreateErrorPatternRequest) (helix.ErrorPattern, error) {
	return helix.ErrorPattern{}, pkg.NewAppError(pkg.ErrUpstreamCode, pkg.ErrUpstreamCode.Message, nil)
}
func (unreachableStore) CreateSolution(context.Context, helix.CreateSolutionRequest) (helix.Solution, error) {
	return helix.Solution{}, pkg.NewAppError(pkg.ErrUpstreamCode, pkg.ErrUpstreamCode.Message, nil)
}
func (unreachableStore) CreateParameter(context.Context, helix.CreateParameterRequest) (helix.Parameter, error) {
	return helix.Parameter{}, pkg.NewAppError(pkg.ErrUpstreamCode, pkg.ErrUpstreamCode.Message, nil)
}
func (unreachableStore) GetAPIErrors(context.Context, string) ([]helix.ErrorPattern, error) {
	return nil, pkg.NewAppError(pkg.ErrUpstreamCode, pkg.ErrUpstreamCode.Message, nil)
}
func (unreachableStore) FindSolutionsByErrorCode(context.Context, string) (helix.ErrorPattern, []helix.Solution, error) {
	return helix.ErrorPattern{}, nil, pkg.NewAppError(pkg.ErrUpstreamCode, pkg.ErrUpstreamCode.Message, nil)
}
