package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/errata-labs/errata-go/pkg/dataset"
	"github.com/errata-labs/errata-go/pkg/helix"
)

func sampleRecords() []dataset.ErrorRecord {
	return []dataset.ErrorRecord{
		{
			API:                 dataset.APIStripe,
			Resource:            "charge",
			ErrorType:           dataset.TypeCard,
			ErrorCode:           "card_declined",
			HTTPStatus:          402,
			ErrorMessage:        "The card was declined",
			SolutionTitle:       "Ask for another card",
			SolutionDescription: "Request a different payment method.",
			ParamsImplicated:    []string{"source", "amount"},
			Severity:            dataset.SeverityError,
			SourceURL:           "https://docs.stripe.com/error-codes#card_declined",
		},
		{
			API:          dataset.APIGitHub,
			Resource:     "authentication",
			ErrorType:    dataset.TypeAuthentication,
			ErrorCode:    "bad_credentials",
			HTTPStatus:   401,
			ErrorMessage: "Bad credentials",
			Severity:     dataset.SeverityCritical,
		},
	}
}

func TestIngestAll_CreatesFullGraph(t *testing.T) {
	store := helix.NewMemory()
	ingester := NewIngester(zap.NewNop(), store)

	report, err := ingester.IngestAll(context.Background(), sampleRecords())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Processed)
	assert.Equal(t, 0, report.Failed)

	ctx := context.Background()
	stripeErrors, err := store.GetAPIErrors(ctx, "Stripe")
	require.NoError(t, err)
	require.Len(t, stripeErrors, 1)
	assert.Equal(t, "card_declined", stripeErrors[0].Code)
	assert.Equal(t, "card_error: The card was declined", stripeErrors[0].Description)
	assert.Equal(t, "POST", stripeErrors[0].Method)
	assert.Equal(t, 402, stripeErrors[0].HTTPStatus)

	// Solutions carry computed upvotes and a rendered code example
	_, sols, err := store.FindSolutionsByErrorCode(ctx, "card_declined")
	require.NoError(t, err)
	require.Len(t, sols, 1)
	assert.Equal(t, 7, sols[0].Upvotes)
	assert.Contains(t, sols[0].CodeExample, "card_declined")
	assert.Contains(t, sols[0].CodeExample, "stripe.charge.create")

	// One parameter node per implicated param
	assert.Len(t, store.Parameters(stripeErrors[0].ID), 2)

	// GitHub batch registered under its own API node
	githubErrors, err := store.GetAPIErrors(ctx, "GitHub")
	require.NoError(t, err)
	require.Len(t, githubErrors, 1)
	_, sols, err = store.FindSolutionsByErrorCode(ctx, "bad_credentials")
	require.NoError(t, err)
	require.Len(t, sols, 1)
	assert.Equal(t, 10, sols[0].Upvotes)
	assert.Contains(t, sols[0].CodeExample, "api.github.com")
}

func TestIngestAll_DefaultsMethodAndStatus(t *testing.T) {
	store := helix.NewMemory()
	ingester := NewIngester(zap.NewNop(), store)

	records := []dataset.ErrorRecord{{
		API:          dataset.APIGitHub,
		ErrorType:    dataset.TypeInvalidRequest,
		ErrorCode:    "validation_failed",
		ErrorMessage: "Validation Failed",
	}}
	_, err := ingester.IngestAll(context.Background(), records)
	require.NoError(t, err)

	patterns, err := store.GetAPIErrors(context.Background(), "GitHub")
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, "GET", patterns[0].Method)
	assert.Equal(t, 400, patterns[0].HTTPStatus)
}

func TestIngestAll_UnknownAPIBatchFails(t *testing.T) {
	store := helix.NewMemory()
	ingester := NewIngester(zap.NewNop(), store)

	records := append(sampleRecords(), dataset.ErrorRecord{
		API:          dataset.APIName("Twilio"),
		ErrorType:    "api_error",
		ErrorMessage: "m",
	})

	report, err := ingester.IngestAll(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Processed)
	assert.Equal(t, 1, report.Failed)
}

// failingStore rejects every solution write to exercise log-and-continue.
type failingStore struct {
	*helix.Memory
}

func (f failingStore) CreateSolution(ctx context.Context, req helix.CreateSolutionRequest) (helix.Solution, error) {
	return helix.Solution{}, errors.New("write failed")
}

func TestIngestAll_RecordFailuresAreCountedNotFatal(t *testing.T) {
	ingester := NewIngester(zap.NewNop(), failingStore{helix.NewMemory()})

	report, err := ingester.IngestAll(context.Background(), sampleRecords())

	require.NoError(t, err)
	assert.Equal(t, 0, report.Processed)
	assert.Equal(t, 2, report.Failed)
}
