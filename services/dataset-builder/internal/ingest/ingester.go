package ingest

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/errata-labs/errata-go/pkg"
	"github.com/errata-labs/errata-go/pkg/dataset"
	"github.com/errata-labs/errata-go/pkg/helix"
	"github.com/errata-labs/errata-go/pkg/utils"
)

// APIMeta is the registration metadata for one source API.
type APIMeta struct {
	Name          string
	BaseURL       string
	Version       string
	DocsURL       string
	DefaultMethod string
}

// apiMeta maps the known source APIs to their store registration. An unknown
// API in the snapshot is an ingest failure for its records, not a crash.
var apiMeta = map[dataset.APIName]APIMeta{
	dataset.APIStripe: {
		Name:          string(dataset.APIStripe),
		BaseURL:       "https://api.stripe.com",
		Version:       "2023-10-16",
		DocsURL:       "https://docs.stripe.com",
		DefaultMethod: "POST",
	},
	dataset.APIGitHub: {
		Name:          string(dataset.APIGitHub),
		BaseURL:       "https://api.github.com",
		Version:       "2022-11-28",
		DocsURL:       "https://docs.github.com/en/rest",
		DefaultMethod: "GET",
	},
}

// Retry policy for transient store failures. Only upstream-unavailable
// errors are retried; validation-style failures fail the record immediately.
const (
	maxAttempts  = 3
	retryBase    = 200 * time.Millisecond
	retryMaxWait = 5 * time.Second
)

// Report summarizes one ingest run.
type Report struct {
	Processed int
	Failed    int
}

// Ingester pushes a normalized record collection into the remote store.
type Ingester struct {
	logger *zap.Logger
	store  helix.Store
}

func NewIngester(logger *zap.Logger, store helix.Store) *Ingester {
	return &Ingester{logger: logger, store: store}
}

// IngestAll registers each API present in the collection and ingests its
// records in input order. Per-record failures are logged and skipped; only a
// failed API registration aborts that API's batch.
func (ing *Ingester) IngestAll(ctx context.Context, records []dataset.ErrorRecord) (Report, error) {
	var report Report

	grouped, order := groupByAPI(records)
	for _, api := range order {
		batch := grouped[api]

		meta, ok := apiMeta[api]
		if !ok {
			ing.logger.Error("unknown API in collection, skipping batch",
				zap.String("api", string(api)), zap.Int("records", len(batch)))
			report.Failed += len(batch)
			continue
		}

		var apiNode helix.API
		err := ing.retry(ctx, "createAPI", func() error {
			var callErr error
			apiNode, callErr = ing.store.CreateAPI(ctx, helix.CreateAPIRequest{
				Name:    meta.Name,
				BaseURL: meta.BaseURL,
				Version: meta.Version,
				DocsURL: meta.DocsURL,
			})
			return callErr
		})
		if err != nil {
			ing.logger.Error("API registration failed, skipping batch",
				zap.String("api", meta.Name), zap.Error(err))
			report.Failed += len(batch)
			continue
		}
		ing.logger.Info("API node ready", zap.String("api", meta.Name), zap.String("id", apiNode.ID))

		for _, rec := range batch {
			if err := ing.ingestRecord(ctx, apiNode.ID, meta, rec); err != nil {
				ing.logger.Error("record ingest failed",
					zap.String("api", meta.Name),
					zap.String("code", rec.Code()),
					zap.Error(err),
				)
				report.Failed++
				continue
			}
			report.Processed++
			if report.Processed%5 == 0 {
				ing.logger.Info("ingest progress",
					zap.Int("processed", report.Processed), zap.Int("total", len(records)))
			}
		}
	}

	ing.logger.Info("ingest complete",
		zap.Int("processed", report.Processed), zap.Int("failed", report.Failed))
	return report, nil
}

func (ing *Ingester) ingestRecord(ctx context.Context, apiID string, meta APIMeta, rec dataset.ErrorRecord) error {
	method := rec.Method
	if method == "" {
		method = meta.DefaultMethod
	}
	status := rec.HTTPStatus
	if status == 0 {
		status = 400
	}

	var errorNode helix.ErrorPattern
	err := ing.retry(ctx, "createErrorPattern", func() error {
		var callErr error
		errorNode, callErr = ing.store.CreateErrorPattern(ctx, helix.CreateErrorPatternRequest{
			APIID:       apiID,
			Code:        rec.Code(),
			Message:     rec.ErrorMessage,
			Description: rec.Description(),
			Resource:    rec.Resource,
			Method:      method,
			HTTPStatus:  status,
			Severity:    string(rec.Severity),
		})
		return callErr
	})
	if err != nil {
		return err
	}

	if err := ing.retry(ctx, "createSolution", func() error {
		_, callErr := ing.store.CreateSolution(ctx, helix.CreateSolutionRequest{
			ErrorID:     errorNode.ID,
			Title:       rec.SolutionTitle,
			Description: rec.DisplaySolution(),
			CodeExample: codeExample(rec),
			SourceURL:   rec.SourceURL,
			Upvotes:     dataset.Upvotes(rec.Severity),
		})
		return callErr
	}); err != nil {
		return err
	}

	for _, param := range rec.ParamsImplicated {
		if err := ing.retry(ctx, "createParameter", func() error {
			_, callErr := ing.store.CreateParameter(ctx, helix.CreateParameterRequest{
				ErrorID:     errorNode.ID,
				Name:        param,
				ParamType:   "string",
				Required:    true,
				Description: fmt.Sprintf("Parameter involved in %s", rec.Code()),
				Example:     fmt.Sprintf("%q", "example_"+param),
			})
			return callErr
		}); err != nil {
			return err
		}
	}
	return nil
}

// retry re-runs fn on upstream-unavailable errors with jittered exponential
// backoff, giving a briefly unreachable store a chance to recover mid-run.
func (ing *Ingester) retry(ctx context.Context, op string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = fn()
		if err == nil || !pkg.IsCode(err, pkg.ErrUpstreamCode) {
			return err
		}
		if attempt == maxAttempts {
			break
		}
		delay := utils.CalculateExponentialBackoffWithJitter(attempt, retryBase, retryMaxWait)
		ing.logger.Warn("store call failed, backing off",
			zap.String("op", op),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return err
}

// codeExample renders a handling snippet for the stored solution, in the
// style API consumers would write.
func codeExample(rec dataset.ErrorRecord) string {
	if rec.API == dataset.APIGitHub {
		return fmt.Sprintf(`// Handle %[1]s
try {
  const response = await fetch('https://api.github.com/%[2]s', {
    headers: {
      'Authorization': 'token your_token_here',
      'Accept': 'application/vnd.github.v3+json'
    }
  });

  if (!response.ok) {
    throw new Error(`+"`HTTP ${response.status}: ${response.statusText}`"+`);
  }

  const data = await response.json();
} catch (err) {
  if (err.message.includes('%[3]d')) {
    // %[4]s
    console.log('GitHub API Error:', err.message);
  }
}`, rec.Code(), rec.Resource, rec.HTTPStatus, rec.DisplaySolution())
	}

	return fmt.Sprintf(`// Handle %[1]s
try {
  // Your Stripe API call here
  const result = await stripe.%[2]s.create({
    // parameters...
  });
} catch (err) {
  if (err.code === '%[1]s') {
    // %[3]s
    console.log('Error:', err.message);
    // Handle specific error case
  }
}`, rec.Code(), rec.Resource, rec.DisplaySolution())
}

// groupByAPI splits the collection per API, preserving record order and the
// order APIs first appear.
func groupByAPI(records []dataset.ErrorRecord) (map[dataset.APIName][]dataset.ErrorRecord, []dataset.APIName) {
	grouped := make(map[dataset.APIName][]dataset.ErrorRecord)
	var order []dataset.APIName
	for _, r := range records {
		if _, ok := grouped[r.API]; !ok {
			order = append(order, r.API)
		}
		grouped[r.API] = append(grouped[r.API], r)
	}
	return grouped, order
}
