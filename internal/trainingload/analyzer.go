package trainingload

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/stridewise/backend/internal/telemetry/tracing"
	"github.com/stridewise/backend/internal/trainingload/engine"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=trainingload_test

type analyzerRepo interface {
	ListActivities(ctx context.Context, userID int64, until time.Time) ([]engine.Activity, error)
	ListUserIDs(ctx context.Context) ([]int64, error)
	UpsertMetrics(ctx context.Context, metrics ComputedMetrics) error
}

type analyzerConfigResolver interface {
	Resolve(ctx context.Context, userID int64) (UserConfig, error)
}

type metricsCache interface {
	Get(ctx context.Context, userID int64, day time.Time, configID string) (*ComputedMetrics, error)
	Set(ctx context.Context, metrics ComputedMetrics) error
	InvalidateUser(ctx context.Context, userID int64) (int, error)
}

// RecomputeReport summarizes a batch recomputation run.
type RecomputeReport struct {
	UsersProcessed int `json:"usersProcessed"`
	DaysComputed   int `json:"daysComputed"`
}

// Analyzer orchestrates the computation pipeline: load activities, build
// daily loads, aggregate windows and derive metrics. The live read path, the
// what-if preview and the batch recomputation all run through the same engine
// calls so their numbers can never disagree.
type Analyzer struct {
	repo       analyzerRepo
	resolver   analyzerConfigResolver
	cache      metricsCache
	normalizer *engine.Normalizer
}

func NewAnalyzer(repo analyzerRepo, resolver analyzerConfigResolver, cache metricsCache) *Analyzer {
	return &Analyzer{
		repo:       repo,
		resolver:   resolver,
		cache:      cache,
		normalizer: engine.NewNormalizer(engine.DefaultFactors),
	}
}

// ComputeForDay returns the metrics of a user as of the given day, serving
// from the cache when possible.
func (a *Analyzer) ComputeForDay(ctx context.Context, userID int64, day time.Time) (_ *ComputedMetrics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trainingload.analyzer.computeForDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	day = engine.DayOf(day)

	cfg, err := a.resolver.Resolve(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve config: %w", err)
	}

	if cached, err := a.cache.Get(ctx, userID, day, cfg.Config.ID()); err == nil {
		return cached, nil
	} else if !errors.Is(err, ErrMetricsNotCached) {
		log.Errorf("failed to get cached metrics for user %d: %s", userID, err)
	}

	activities, err := a.repo.ListActivities(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	metrics := a.computeDay(activities, day, cfg)

	if err := a.cache.Set(ctx, *metrics); err != nil {
		log.Errorf("failed to cache metrics for user %d: %s", userID, err)
	}

	return metrics, nil
}

// Preview computes metrics under a caller-supplied configuration without
// touching the persisted results or the cache.
func (a *Analyzer) Preview(ctx context.Context, userID int64, day time.Time, cfg engine.Config) (_ *ComputedMetrics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trainingload.analyzer.preview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stored, err := a.resolver.Resolve(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve config: %w", err)
	}

	activities, err := a.repo.ListActivities(ctx, userID, engine.DayOf(day))
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	previewCfg := UserConfig{
		UserID:  userID,
		Config:  cfg,
		Profile: stored.Profile,
	}
	return a.computeDay(activities, engine.DayOf(day), previewCfg), nil
}

// RecomputeUser replays the user's whole history chronologically and
// overwrites the persisted metrics for every day from the first activity to
// the last. Returns the number of days written.
func (a *Analyzer) RecomputeUser(ctx context.Context, userID int64) (days int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trainingload.analyzer.recomputeUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	cfg, err := a.resolver.Resolve(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("resolve config: %w", err)
	}

	activities, err := a.repo.ListActivities(ctx, userID, time.Time{})
	if err != nil {
		return 0, fmt.Errorf("list activities: %w", err)
	}
	if len(activities) == 0 {
		return 0, nil
	}

	loads := engine.BuildDailyLoads(a.normalizer, activities, cfg.Profile)
	firstDay := engine.FirstDay(loads)
	lastDay := firstDay
	for d := range loads {
		if d.After(lastDay) {
			lastDay = d
		}
	}

	var errs error
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		if ctx.Err() != nil {
			return days, multierr.Append(errs, ctx.Err())
		}

		metrics := a.deriveMetrics(loads, day, cfg)
		if err := a.repo.UpsertMetrics(ctx, *metrics); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("upsert metrics for day %s: %w", day.Format(time.DateOnly), err))
			continue
		}
		days++
	}

	if _, err := a.cache.InvalidateUser(ctx, userID); err != nil {
		log.Errorf("failed to invalidate cached metrics for user %d: %s", userID, err)
	}

	span.SetAttributes(attribute.Int("days", days))
	return days, errs
}

// RecomputeAllUsers runs RecomputeUser for every known user on a bounded
// worker pool. Cancelling the context stops the submission of new users;
// users already being processed finish their current day loop.
func (a *Analyzer) RecomputeAllUsers(ctx context.Context, workers int) (_ RecomputeReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trainingload.analyzer.recomputeAllUsers")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if workers < 1 {
		workers = 1
	}

	userIDs, err := a.repo.ListUserIDs(ctx)
	if err != nil {
		return RecomputeReport{}, fmt.Errorf("list user ids: %w", err)
	}

	var (
		mutex  sync.Mutex
		report RecomputeReport
		errs   error
		wg     sync.WaitGroup
	)

	jobs := make(chan int64)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for userID := range jobs {
				days, err := a.RecomputeUser(ctx, userID)
				mutex.Lock()
				if err != nil {
					errs = multierr.Append(errs, fmt.Errorf("recompute user %d: %w", userID, err))
				}
				report.UsersProcessed++
				report.DaysComputed += days
				mutex.Unlock()
			}
		}()
	}

submitLoop:
	for _, userID := range userIDs {
		if ctx.Err() != nil {
			log.Warnln("batch recompute cancelled, no more users submitted")
			break
		}
		select {
		case <-ctx.Done():
			log.Warnln("batch recompute cancelled, no more users submitted")
			break submitLoop
		case jobs <- userID:
		}
	}
	close(jobs)
	wg.Wait()

	span.SetAttributes(attribute.Int("users", report.UsersProcessed))
	span.SetAttributes(attribute.Int("days", report.DaysComputed))
	return report, errs
}

func (a *Analyzer) computeDay(activities []engine.Activity, day time.Time, cfg UserConfig) *ComputedMetrics {
	loads := engine.BuildDailyLoads(a.normalizer, activities, cfg.Profile)
	return a.deriveMetrics(loads, day, cfg)
}

func (a *Analyzer) deriveMetrics(loads map[time.Time]engine.DailyLoad, day time.Time, cfg UserConfig) *ComputedMetrics {
	result := &ComputedMetrics{
		UserID:     cfg.UserID,
		Day:        day,
		ConfigID:   cfg.Config.ID(),
		ComputedAt: time.Now(),
	}

	windows, err := engine.Aggregate(loads, day, cfg.Config)
	if err != nil {
		// a stored config is validated at write time, so the only error
		// left here is a too short history
		if !errors.Is(err, engine.ErrInsufficientHistory) {
			log.Errorf("aggregate windows for user %d: %s", cfg.UserID, err)
		}
		result.Status = StatusInsufficientData
		return result
	}

	result.Status = StatusOK
	result.Metrics = engine.ComputeMetrics(*windows)
	return result
}
