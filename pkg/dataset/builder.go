package dataset

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/errata-labs/errata-go/pkg"
)

var seedValidator = validator.New()

// BuildAt validates and normalizes a seed set with an explicit build date.
// A row missing a required field (api, error_type, error_message) rejects the
// whole build: an incomplete record must never reach the snapshot.
func BuildAt(rows []SeedRow, date string) ([]ErrorRecord, error) {
	records := make([]ErrorRecord, 0, len(rows))
	for i, row := range rows {
		if err := seedValidator.Struct(row); err != nil {
			return nil, pkg.NewAppError(pkg.ErrSeedInvalidCode,
				fmt.Sprintf("seed row %d (%s/%s) failed validation", i, row.API, row.ErrorCode), err)
		}
		records = append(records, NormalizeAt(row.record(), date))
	}
	return records, nil
}

// Build validates and normalizes the full curated seed set (Stripe then
// GitHub), stamped with today's date. Duplicates are preserved; Dedupe runs
// downstream of the snapshot.
func Build(date string) ([]ErrorRecord, error) {
	rows := make([]SeedRow, 0, len(StripeSeed)+len(GitHubSeed))
	rows = append(rows, StripeSeed...)
	rows = append(rows, GitHubSeed...)
	return BuildAt(rows, date)
}

// record converts a seed row into a partial ErrorRecord, mapping the pipeline
// severity vocabulary to the canonical one.
func (s SeedRow) record() ErrorRecord {
	r := ErrorRecord{
		API:                 s.API,
		Resource:            s.Resource,
		Method:              s.Method,
		ErrorType:           s.ErrorType,
		ErrorCode:           s.ErrorCode,
		DeclineCode:         s.DeclineCode,
		ErrorMessage:        s.ErrorMessage,
		SolutionTitle:       s.SolutionTitle,
		SolutionDescription: s.SolutionDescription,
		ReproduceInTestMode: s.ReproduceInTestMode,
		ParamsImplicated:    s.ParamsImplicated,
		SourceURL:           s.SourceURL,
		Category:            s.Category,
		Tags:                s.Tags,
	}
	if s.Severity != "" {
		r.Severity = s.Severity.Canonical()
	}
	return r
}
