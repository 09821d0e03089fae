package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/errata-labs/errata-go/pkg"
	"github.com/errata-labs/errata-go/pkg/cache"
	"github.com/errata-labs/errata-go/pkg/dataset"
	"github.com/errata-labs/errata-go/pkg/helix"
)

// SolutionsResult pairs an error pattern with its known fixes.
type SolutionsResult struct {
	Error     helix.ErrorPattern `json:"error"`
	Solutions []helix.Solution   `json:"solutions"`
}

type SearchService interface {
	Search(ctx context.Context, traceID string, q dataset.Query) (dataset.Result, error)
	ListAll(ctx context.Context, traceID string, page int, api, severity string) (dataset.Result, error)
	GetByCode(traceID, code string) (dataset.ErrorRecord, error)
	Solutions(ctx context.Context, traceID, code string) (SolutionsResult, error)
	Stats(ctx context.Context, traceID string) ([]dataset.APIStats, error)
}

type SearchServiceImpl struct {
	logger  *zap.Logger
	engine  *dataset.Engine
	store   helix.Store // optional; nil means snapshot-only mode
	results *cache.ResultCache
}

func NewSearchService(logger *zap.Logger, engine *dataset.Engine, store helix.Store, results *cache.ResultCache) SearchService {
	return &SearchServiceImpl{
		logger:  logger,
		engine:  engine,
		store:   store,
		results: results,
	}
}

func (s *SearchServiceImpl) Search(ctx context.Context, traceID string, q dataset.Query) (dataset.Result, error) {
	key := cache.Key(q)
	if res, ok := s.results.Get(ctx, key); ok {
		s.logger.Debug("search cache hit", zap.String(pkg.TraceId, traceID), zap.String("key", key))
		return res, nil
	}

	res := s.engine.Search(q)
	s.logger.Info("search executed",
		zap.String(pkg.TraceId, traceID),
		zap.String("query", q.Text),
		zap.Int("page", q.Page),
		zap.Int("total", res.Total),
	)
	s.results.Set(ctx, key, res)
	return res, nil
}

func (s *SearchServiceImpl) ListAll(ctx context.Context, traceID string, page int, api, severity string) (dataset.Result, error) {
	return s.Search(ctx, traceID, dataset.Query{Page: page, API: api, Severity: severity})
}

func (s *SearchServiceImpl) GetByCode(traceID, code string) (dataset.ErrorRecord, error) {
	rec, err := s.engine.FindByCode(code)
	if err != nil {
		s.logger.Warn("error pattern not found", zap.String(pkg.TraceId, traceID), zap.String("code", code))
		return dataset.ErrorRecord{}, err
	}
	return rec, nil
}

// Solutions asks the remote store first and falls back to the snapshot's
// curated solution when the store is absent or unreachable. Only a missing
// record is a hard failure.
func (s *SearchServiceImpl) Solutions(ctx context.Context, traceID, code string) (SolutionsResult, error) {
	if s.store != nil {
		pattern, sols, err := s.store.FindSolutionsByErrorCode(ctx, code)
		if err == nil {
			return SolutionsResult{Error: pattern, Solutions: sols}, nil
		}
		if pkg.IsCode(err, pkg.ErrRecordNotFoundCode) {
			return SolutionsResult{}, err
		}
		s.logger.Warn("store unavailable, serving snapshot solution",
			zap.String(pkg.TraceId, traceID),
			zap.String("code", code),
			zap.Error(err),
		)
	}
	return s.localSolutions(code)
}

func (s *SearchServiceImpl) localSolutions(code string) (SolutionsResult, error) {
	rec, err := s.engine.FindByCode(code)
	if err != nil {
		return SolutionsResult{}, err
	}
	return SolutionsResult{
		Error: helix.ErrorPattern{
			Code:        rec.Code(),
			Message:     rec.ErrorMessage,
			Description: rec.Description(),
			Resource:    rec.Resource,
			Method:      rec.Method,
			HTTPStatus:  rec.HTTPStatus,
			Severity:    string(rec.Severity),
		},
		Solutions: []helix.Solution{{
			Title:       rec.SolutionTitle,
			Description: rec.DisplaySolution(),
			SourceURL:   rec.SourceURL,
			Upvotes:     dataset.Upvotes(rec.Severity),
		}},
	}, nil
}

// Stats serves the snapshot aggregation; the store is only consulted to log
// drift between ingested and local counts, never to fail the request.
func (s *SearchServiceImpl) Stats(ctx context.Context, traceID string) ([]dataset.APIStats, error) {
	stats := s.engine.Stats()
	if s.store == nil {
		return stats, nil
	}
	for _, st := range stats {
		patterns, err := s.store.GetAPIErrors(ctx, st.Name)
		if err != nil {
			s.logger.Warn("store stats lookup failed",
				zap.String(pkg.TraceId, traceID),
				zap.String("api", st.Name),
				zap.Error(err),
			)
			continue
		}
		if len(patterns) != st.ErrorCount {
			s.logger.Info("store count differs from snapshot",
				zap.String(pkg.TraceId, traceID),
				zap.String("api", st.Name),
				zap.Int("store", len(patterns)),
				zap.Int("snapshot", st.ErrorCount),
			)
		}
	}
	return stats, nil
}
