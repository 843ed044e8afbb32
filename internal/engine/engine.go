package engine

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/MrJJimenez/jobagg/internal/metrics"
	"github.com/MrJJimenez/jobagg/internal/models"
	"github.com/MrJJimenez/jobagg/internal/provider"
)

const defaultFetchTimeout = 20 * time.Second

// Engine aggregates listings across providers: fan-out, normalization,
// filtering, deduplication, the location-specificity fallback, and final
// ordering. It holds no request state and is safe for concurrent use.
type Engine struct {
	registry *provider.Registry
	log      zerolog.Logger
	now      func() time.Time
	timeout  time.Duration
}

type Option func(*Engine)

// WithNow overrides the clock, used by recency tests.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithFetchTimeout bounds each individual provider call.
func WithFetchTimeout(timeout time.Duration) Option {
	return func(e *Engine) { e.timeout = timeout }
}

func New(registry *provider.Registry, opts ...Option) *Engine {
	engine := &Engine{
		registry: registry,
		log:      zerolog.Nop(),
		now:      time.Now,
		timeout:  defaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// Result is the full ordered record set for a run, before pagination.
type Result struct {
	Jobs     []models.Job
	Fallback bool
}

// Search runs one aggregation for an already normalized and validated
// request. Provider outages degrade to empty contributions; the only
// error surfaced is caller cancellation.
func (e *Engine) Search(ctx context.Context, req models.SearchRequest) (*Result, error) {
	if req.IsRemote {
		jobs, err := e.searchRemote(ctx, req)
		if err != nil {
			return nil, err
		}
		return &Result{Jobs: jobs}, nil
	}

	jobs, err := e.fetchScoped(ctx, req, req.Locations)
	if err != nil {
		return nil, err
	}

	cities := req.Cities()
	if len(cities) > 0 {
		// Fallback controller: either narrow to city matches or widen
		// the whole run to country scope and flag it.
		matched := filterByCity(jobs, cities)
		if len(matched) == 0 {
			metrics.FallbacksTotal.Inc()
			e.log.Info().Strs("cities", cities).Msg("no city-scoped results, widening to country scope")

			wideReq := req.CountryWide()
			wide, err := e.fetchScoped(ctx, wideReq, wideReq.Locations)
			if err != nil {
				return nil, err
			}
			sortByRecency(wide)
			return &Result{Jobs: wide, Fallback: true}, nil
		}
		jobs = matched
	}

	sortByRecency(jobs)
	return &Result{Jobs: jobs}, nil
}

// fetchScoped runs one full fetch pass at the given location scope:
// cross-product fan-out, country-safe providers once, then the filter
// pipeline and cross-pass dedup.
func (e *Engine) fetchScoped(ctx context.Context, req models.SearchRequest, locations []string) ([]models.Job, error) {
	var tasks []fetchTask
	for _, location := range locations {
		for _, skill := range req.Skills {
			for _, prov := range e.registry.CityScoped {
				tasks = append(tasks, fetchTask{
					prov: prov,
					query: provider.Query{
						Skills:     []string{skill},
						Levels:     req.Levels,
						Countries:  req.Countries,
						Location:   location,
						PostedDays: req.PostedDays,
					},
				})
			}
		}
	}
	for _, prov := range e.registry.CountrySafe {
		tasks = append(tasks, fetchTask{
			prov: prov,
			query: provider.Query{
				Skills:     req.Skills,
				Levels:     req.Levels,
				Countries:  req.Countries,
				PostedDays: req.PostedDays,
			},
		})
	}

	jobs, err := e.runFetches(ctx, tasks)
	if err != nil {
		return nil, err
	}

	jobs = FilterRecency(jobs, e.now().AddDate(0, 0, -req.PostedDays))
	jobs = FilterCountry(jobs, req.Countries)
	return crossPassDedupe(jobs), nil
}

func (e *Engine) searchRemote(ctx context.Context, req models.SearchRequest) ([]models.Job, error) {
	var tasks []fetchTask
	for _, skill := range req.Skills {
		for _, prov := range e.registry.Remote {
			tasks = append(tasks, fetchTask{
				prov: prov,
				query: provider.Query{
					Skills:     []string{skill},
					Levels:     req.Levels,
					PostedDays: req.PostedDays,
				},
			})
		}
	}

	jobs, err := e.runFetches(ctx, tasks)
	if err != nil {
		return nil, err
	}

	jobs = FilterRecency(jobs, e.now().AddDate(0, 0, -req.PostedDays))
	jobs = crossPassDedupe(jobs)
	sortByRecency(jobs)
	return jobs, nil
}

type fetchTask struct {
	prov  provider.Provider
	query provider.Query
}

type fetchResult struct {
	source string
	jobs   []models.Job
	err    error
}

// runFetches issues every task concurrently, each with its own timeout.
// Results are collected per task so the merge order never depends on
// which fetch finished first.
func (e *Engine) runFetches(ctx context.Context, tasks []fetchTask) ([]models.Job, error) {
	results := make([]fetchResult, len(tasks))

	var wg sync.WaitGroup
	for i, task := range tasks {
		wg.Add(1)
		go func(i int, task fetchTask) {
			defer wg.Done()

			fetchCtx, cancel := context.WithTimeout(ctx, e.timeout)
			defer cancel()

			jobs, err := task.prov.Fetch(fetchCtx, task.query)
			results[i] = fetchResult{
				source: task.prov.Name(),
				jobs:   intraPassDedupe(jobs),
				err:    err,
			}
		}(i, task)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var all []models.Job
	for _, res := range results {
		if res.err != nil {
			metrics.ProviderFetchesTotal.WithLabelValues(res.source, "error").Inc()
			e.log.Warn().Str("provider", res.source).Err(res.err).Msg("provider fetch failed")
			// Partial results before the failure still count.
		} else {
			metrics.ProviderFetchesTotal.WithLabelValues(res.source, "ok").Inc()
		}
		all = append(all, res.jobs...)
	}
	return all, nil
}

// SourceCount is one row of the per-source result summary.
type SourceCount struct {
	Source string
	Total  int
}

// CountBySource tallies results per originating provider, sorted by
// source name for stable output.
func CountBySource(jobs []models.Job) []SourceCount {
	totals := make(map[string]int, len(jobs))
	for _, job := range jobs {
		source := strings.TrimSpace(job.Source)
		if source == "" {
			source = "unknown"
		}
		totals[source]++
	}

	counts := make([]SourceCount, 0, len(totals))
	for source, total := range totals {
		counts = append(counts, SourceCount{Source: source, Total: total})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return strings.ToLower(counts[i].Source) < strings.ToLower(counts[j].Source)
	})
	return counts
}

// sortByRecency orders newest first; records with unknown posting dates
// go last. Ties break on source, title, and URL so runs are
// deterministic regardless of fetch completion order.
func sortByRecency(jobs []models.Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		a, b := jobs[i], jobs[j]
		if a.HasPostedAt() != b.HasPostedAt() {
			return a.HasPostedAt()
		}
		if a.HasPostedAt() && !a.PostedAt.Equal(b.PostedAt) {
			return a.PostedAt.After(b.PostedAt)
		}
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		return a.ApplyURL < b.ApplyURL
	})
}
