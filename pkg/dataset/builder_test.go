package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/errata-labs/errata-go/pkg"
)

func TestBuild_Deterministic(t *testing.T) {
	first, err := Build(buildDate)
	require.NoError(t, err)
	second, err := Build(buildDate)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, len(StripeSeed)+len(GitHubSeed))
}

func TestBuild_RecordsFullyNormalized(t *testing.T) {
	records, err := Build(buildDate)
	require.NoError(t, err)

	for _, r := range records {
		assert.NotZero(t, r.HTTPStatus, "code %s", r.Code())
		assert.NotEmpty(t, r.Severity, "code %s", r.Code())
		assert.NotEmpty(t, r.Category, "code %s", r.Code())
		assert.NotEmpty(t, r.SourceURL, "code %s", r.Code())
		assert.Equal(t, buildDate, r.LastVerified, "code %s", r.Code())
		if r.ErrorType == TypeRateLimit {
			assert.Equal(t, 429, r.HTTPStatus, "code %s", r.Code())
		}
		if r.API == APIStripe && r.ErrorType == TypeAuthentication {
			assert.Empty(t, r.ErrorCode, "stripe auth records carry no granular code")
		}
	}
}

func TestBuild_KeepsCuratedDuplicates(t *testing.T) {
	records, err := Build(buildDate)
	require.NoError(t, err)

	// The curated set has intentional duplicates by natural key; the snapshot
	// preserves them and Dedupe collapses them downstream.
	assert.Greater(t, len(records), len(Dedupe(records)))
}

func TestBuildAt_RejectsInvalidRow(t *testing.T) {
	rows := []SeedRow{
		{API: APIStripe, ErrorType: TypeCard, ErrorCode: "card_declined", ErrorMessage: "declined"},
		{API: APIStripe, ErrorType: TypeCard, ErrorCode: "broken_row"}, // no message
	}

	_, err := BuildAt(rows, buildDate)

	require.Error(t, err)
	assert.True(t, pkg.IsCode(err, pkg.ErrSeedInvalidCode))
}

func TestBuildAt_MapsPipelineSeverity(t *testing.T) {
	rows := []SeedRow{
		{API: APIStripe, ErrorType: TypeCard, ErrorCode: "a_code", ErrorMessage: "m", Severity: PipelineBlocking},
		{API: APIStripe, ErrorType: TypeCard, ErrorCode: "b_code", ErrorMessage: "m", Severity: PipelineConfig},
		{API: APIStripe, ErrorType: TypeCard, ErrorCode: "c_code", ErrorMessage: "m", Severity: PipelineTransient},
	}

	records, err := BuildAt(rows, buildDate)
	require.NoError(t, err)

	assert.Equal(t, SeverityCritical, records[0].Severity)
	assert.Equal(t, SeverityError, records[1].Severity)
	assert.Equal(t, SeverityWarning, records[2].Severity)
}
