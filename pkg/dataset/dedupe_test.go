package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupe_FirstOccurrenceWins(t *testing.T) {
	records := []ErrorRecord{
		{API: APIStripe, ErrorType: TypeCard, ErrorCode: "card_declined", ErrorMessage: "first"},
		{API: APIStripe, ErrorType: TypeInvalidRequest, ErrorCode: "parameter_missing", ErrorMessage: "keep"},
		{API: APIStripe, ErrorType: TypeCard, ErrorCode: "card_declined", ErrorMessage: "second"},
	}

	out := Dedupe(records)

	assert.Len(t, out, 2)
	assert.Equal(t, "first", out[0].ErrorMessage)
	assert.Equal(t, "parameter_missing", out[1].ErrorCode)
}

func TestDedupe_TypeOnlyRecordsKeyedByType(t *testing.T) {
	records := []ErrorRecord{
		{API: APIStripe, ErrorType: TypeAuthentication, ErrorMessage: "first"},
		{API: APIStripe, ErrorType: TypeAuthentication, ErrorMessage: "second"},
		{API: APIStripe, ErrorType: TypeRateLimit, ErrorMessage: "other type"},
	}

	out := Dedupe(records)

	assert.Len(t, out, 2)
	assert.Equal(t, "first", out[0].ErrorMessage)
}

func TestDedupe_DeclineCodeVariantsShareKey(t *testing.T) {
	// Variants differing only in decline_code collapse: the natural key is
	// error_code, not the decline code.
	records := []ErrorRecord{
		{API: APIStripe, ErrorType: TypeCard, ErrorCode: "card_declined", DeclineCode: "generic_decline"},
		{API: APIStripe, ErrorType: TypeCard, ErrorCode: "card_declined", DeclineCode: "insufficient_funds"},
	}

	out := Dedupe(records)

	assert.Len(t, out, 1)
	assert.Equal(t, "generic_decline", out[0].DeclineCode)
}
