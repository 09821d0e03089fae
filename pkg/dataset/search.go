package dataset

import (
	"sort"
	"strings"

	"github.com/errata-labs/errata-go/pkg"
)

// PageSize is the fixed result page size.
const PageSize = 20

// Query holds search parameters. Zero values mean "no filter"; API and
// Severity also accept the "all" sentinel.
type Query struct {
	Text     string
	Page     int
	API      string
	Severity string
}

// Result is one page of search output.
type Result struct {
	Errors  []ErrorRecord `json:"errors"`
	Total   int           `json:"total"`
	Page    int           `json:"page"`
	Pages   int           `json:"pages"`
	HasMore bool          `json:"hasMore"`
}

// APIStats summarizes one API's share of the collection for the dashboard.
type APIStats struct {
	Name       string   `json:"name"`
	ErrorCount int      `json:"errorCount"`
	Categories []string `json:"categories"`
}

// Engine runs filter/search/rank/paginate over a read-only snapshot. Searches
// share no mutable state, so concurrent calls need no synchronization.
type Engine struct {
	records []ErrorRecord
}

func NewEngine(records []ErrorRecord) *Engine {
	return &Engine{records: records}
}

// codes that tag a record as belonging to another API; mixed datasets have
// leaked these across collections before.
var contaminationMarkers = map[APIName][]string{
	APIGitHub: {"github"},
}

func contaminated(r ErrorRecord) bool {
	for api, markers := range contaminationMarkers {
		if r.API == api {
			continue
		}
		for _, m := range markers {
			if strings.Contains(r.Code(), m) {
				return true
			}
		}
	}
	return false
}

// clean drops contaminated records and collapses duplicates. Runs before any
// filtering so duplicate rows never inflate totals.
func (e *Engine) clean() []ErrorRecord {
	out := make([]ErrorRecord, 0, len(e.records))
	for _, r := range e.records {
		if contaminated(r) {
			continue
		}
		out = append(out, r)
	}
	return Dedupe(out)
}

// Search applies the full query flow: exclusion, dedupe, API filter, severity
// filter, text match, relevance ordering, pagination. A page past the end
// yields an empty page with correct totals; it never fails.
func (e *Engine) Search(q Query) Result {
	recs := e.clean()

	if q.API != "" && q.API != pkg.FilterAll {
		filtered := recs[:0]
		for _, r := range recs {
			if string(r.API) == q.API {
				filtered = append(filtered, r)
			}
		}
		recs = filtered
	}

	if q.Severity != "" && q.Severity != pkg.FilterAll {
		filtered := recs[:0]
		for _, r := range recs {
			// Filter on inferred severity so filtering and display agree even
			// for records that predate the canonical vocabulary.
			if InferSeverity(r.Code(), r.ErrorMessage) == Severity(q.Severity) {
				filtered = append(filtered, r)
			}
		}
		recs = filtered
	}

	query := strings.ToLower(q.Text)
	if query != "" {
		filtered := recs[:0]
		for _, r := range recs {
			if matchesQuery(r, query) {
				filtered = append(filtered, r)
			}
		}
		recs = filtered

		// Exact code matches first, then prefix matches; everything else keeps
		// input order. The rule is a partial order, so the sort must be stable.
		sort.SliceStable(recs, func(i, j int) bool {
			return queryRank(recs[i], query) < queryRank(recs[j], query)
		})
	}

	return paginate(recs, q.Page)
}

// ListAll is Search without a text query: the full deduplicated set, filtered
// and paginated.
func (e *Engine) ListAll(page int, api, severity string) Result {
	return e.Search(Query{Page: page, API: api, Severity: severity})
}

// FindByCode looks up a record by its natural key in the cleaned collection.
func (e *Engine) FindByCode(code string) (ErrorRecord, error) {
	for _, r := range e.clean() {
		if r.Code() == code {
			return r, nil
		}
	}
	return ErrorRecord{}, pkg.NewAppError(pkg.ErrRecordNotFoundCode, "no error pattern with code "+code, pkg.ErrRecordNotFound)
}

// Stats groups the cleaned collection per API, with categories in first-seen
// order.
func (e *Engine) Stats() []APIStats {
	var order []APIName
	counts := make(map[APIName]int)
	categories := make(map[APIName][]string)
	seen := make(map[APIName]map[string]struct{})

	for _, r := range e.clean() {
		if _, ok := counts[r.API]; !ok {
			order = append(order, r.API)
			seen[r.API] = make(map[string]struct{})
		}
		counts[r.API]++
		if _, ok := seen[r.API][r.Category]; !ok && r.Category != "" {
			seen[r.API][r.Category] = struct{}{}
			categories[r.API] = append(categories[r.API], r.Category)
		}
	}

	stats := make([]APIStats, 0, len(order))
	for _, api := range order {
		stats = append(stats, APIStats{
			Name:       string(api),
			ErrorCount: counts[api],
			Categories: categories[api],
		})
	}
	return stats
}

func matchesQuery(r ErrorRecord, query string) bool {
	return strings.Contains(strings.ToLower(r.Code()), query) ||
		strings.Contains(strings.ToLower(r.ErrorMessage), query) ||
		strings.Contains(strings.ToLower(r.SolutionDescription), query) ||
		strings.Contains(strings.ToLower(r.Resource), query)
}

func queryRank(r ErrorRecord, query string) int {
	code := strings.ToLower(r.Code())
	switch {
	case code == query:
		return 0
	case strings.HasPrefix(code, query):
		return 1
	default:
		return 2
	}
}

func paginate(recs []ErrorRecord, page int) Result {
	if page < 1 {
		page = 1
	}
	total := len(recs)
	pages := (total + PageSize - 1) / PageSize

	start := (page - 1) * PageSize
	end := start + PageSize
	hasMore := end < total
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	errors := make([]ErrorRecord, end-start)
	copy(errors, recs[start:end])

	return Result{
		Errors:  errors,
		Total:   total,
		Page:    page,
		Pages:   pages,
		HasMore: hasMore,
	}
}
