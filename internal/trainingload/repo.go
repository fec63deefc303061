package trainingload

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stridewise/backend/internal/telemetry/tracing"
	"github.com/stridewise/backend/internal/trainingload/engine"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrConfigNotFound   = errors.New("training config not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddActivity(ctx context.Context, activity engine.Activity) (_ *engine.Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingload.addActivity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", activity.UserID))

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO activity
				(user_id, day, sport, distance_miles, elevation_gain_feet, duration_minutes,
				 avg_heart_rate, avg_speed_mph, open_water, rpe)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id;`,
		activity.UserID, engine.DayOf(activity.Day), activity.Sport,
		activity.DistanceMiles, activity.ElevationGainFeet, activity.DurationMinutes,
		activity.AvgHeartRate, activity.AvgSpeedMph, activity.OpenWater, activity.RPE,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int64
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int64("activity.id", id))

	activity.ID = id
	activity.Day = engine.DayOf(activity.Day)
	return &activity, nil
}

func (r *Repo) UpdateActivity(ctx context.Context, activity *engine.Activity) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingload.updateActivity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("activity.id", activity.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE activity SET
				day = $1, sport = $2, distance_miles = $3, elevation_gain_feet = $4,
				duration_minutes = $5, avg_heart_rate = $6, avg_speed_mph = $7,
				open_water = $8, rpe = $9
			WHERE id = $10;`,
		engine.DayOf(activity.Day), activity.Sport,
		activity.DistanceMiles, activity.ElevationGainFeet, activity.DurationMinutes,
		activity.AvgHeartRate, activity.AvgSpeedMph, activity.OpenWater, activity.RPE,
		activity.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrActivityNotFound
	}

	return nil
}

func (r *Repo) GetActivity(ctx context.Context, id int64) (_ *engine.Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingload.getActivity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("activity.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, user_id, day, sport, distance_miles, elevation_gain_feet,
				duration_minutes, avg_heart_rate, avg_speed_mph, open_water, rpe
			FROM activity
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	activities, err := r.rows2activities(rows)
	if err != nil {
		return nil, err
	}

	if len(activities) != 1 {
		return nil, ErrActivityNotFound
	}

	return &activities[0], nil
}

// ListActivities returns all activities of a user up to and including the
// given day, oldest first. The zero time means "no upper bound".
func (r *Repo) ListActivities(ctx context.Context, userID int64, until time.Time) (_ []engine.Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingload.listActivities")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))
	if !until.IsZero() {
		span.SetAttributes(attribute.String("until", until.Format(time.DateOnly)))
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, user_id, day, sport, distance_miles, elevation_gain_feet,
				duration_minutes, avg_heart_rate, avg_speed_mph, open_water, rpe
			FROM activity
			WHERE user_id = $1
			AND ($2::date IS NULL OR day <= $2)
			ORDER BY day ASC, id ASC;`,
		userID, day2param(until),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	activities, err := r.rows2activities(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2activities: %w", err)
	}
	return activities, nil
}

func (r *Repo) ListUserIDs(ctx context.Context) (_ []int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingload.listUserIDs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT DISTINCT user_id FROM activity ORDER BY user_id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	userIDs := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		userIDs = append(userIDs, id)
	}

	return userIDs, nil
}

// UpsertMetrics writes one computed result; recomputing the same
// (user, day, config) key overwrites the previous row.
func (r *Repo) UpsertMetrics(ctx context.Context, metrics ComputedMetrics) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingload.upsertMetrics")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", metrics.UserID))
	span.SetAttributes(attribute.String("day", metrics.Day.Format(time.DateOnly)))
	span.SetAttributes(attribute.String("config.id", metrics.ConfigID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO computed_metrics
				(user_id, day, config_id, external_acwr, internal_acwr,
				 normalized_divergence, status, computed_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (user_id, day, config_id) DO UPDATE SET
				external_acwr = EXCLUDED.external_acwr,
				internal_acwr = EXCLUDED.internal_acwr,
				normalized_divergence = EXCLUDED.normalized_divergence,
				status = EXCLUDED.status,
				computed_at = EXCLUDED.computed_at;`,
		metrics.UserID, engine.DayOf(metrics.Day), metrics.ConfigID,
		metrics.ExternalACWR, metrics.InternalACWR, metrics.NormalizedDivergence,
		metrics.Status, metrics.ComputedAt,
	)
	return err
}

// MetricsHistory returns persisted results for a user and config in the
// inclusive [from, to] day range, oldest first.
func (r *Repo) MetricsHistory(ctx context.Context, userID int64, configID string, from, to time.Time) (_ []ComputedMetrics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingload.metricsHistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))
	span.SetAttributes(attribute.String("config.id", configID))

	rows, err := r.db.Query(
		ctx,
		`SELECT
				user_id, day, config_id, external_acwr, internal_acwr,
				normalized_divergence, status, computed_at
			FROM computed_metrics
			WHERE user_id = $1 AND config_id = $2
			AND ($3::date IS NULL OR day >= $3)
			AND ($4::date IS NULL OR day <= $4)
			ORDER BY day ASC;`,
		userID, configID, day2param(from), day2param(to),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2metrics(rows)
}

func (r *Repo) GetConfig(ctx context.Context, userID int64) (_ *UserConfig, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingload.getConfig")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT
				user_id, chronic_period_days, decay_rate, resting_hr, max_hr, gender
			FROM training_config
			WHERE user_id = $1;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrConfigNotFound
	}

	var cfg UserConfig
	var gender string
	if err := rows.Scan(
		&cfg.UserID, &cfg.Config.ChronicPeriodDays, &cfg.Config.DecayRate,
		&cfg.Profile.RestingHR, &cfg.Profile.MaxHR, &gender,
	); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}
	cfg.Profile.Gender = engine.Gender(gender)

	return &cfg, nil
}

func (r *Repo) SetConfig(ctx context.Context, cfg UserConfig) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingload.setConfig")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", cfg.UserID))
	span.SetAttributes(attribute.String("config.id", cfg.Config.ID()))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO training_config
				(user_id, chronic_period_days, decay_rate, resting_hr, max_hr, gender, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, now())
			ON CONFLICT (user_id) DO UPDATE SET
				chronic_period_days = EXCLUDED.chronic_period_days,
				decay_rate = EXCLUDED.decay_rate,
				resting_hr = EXCLUDED.resting_hr,
				max_hr = EXCLUDED.max_hr,
				gender = EXCLUDED.gender,
				updated_at = now();`,
		cfg.UserID, cfg.Config.ChronicPeriodDays, cfg.Config.DecayRate,
		cfg.Profile.RestingHR, cfg.Profile.MaxHR, string(cfg.Profile.Gender),
	)
	return err
}

func (r *Repo) rows2activities(rows pgx.Rows) ([]engine.Activity, error) {
	activities := make([]engine.Activity, 0)
	for rows.Next() {
		var a engine.Activity
		var sport string
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Day, &sport,
			&a.DistanceMiles, &a.ElevationGainFeet, &a.DurationMinutes,
			&a.AvgHeartRate, &a.AvgSpeedMph, &a.OpenWater, &a.RPE,
		); err != nil {
			return nil, err
		}
		a.Sport = engine.SportType(sport)
		a.Day = engine.DayOf(a.Day)
		activities = append(activities, a)
	}
	return activities, nil
}

func (r *Repo) rows2metrics(rows pgx.Rows) ([]ComputedMetrics, error) {
	metrics := make([]ComputedMetrics, 0)
	for rows.Next() {
		var m ComputedMetrics
		if err := rows.Scan(
			&m.UserID, &m.Day, &m.ConfigID,
			&m.ExternalACWR, &m.InternalACWR, &m.NormalizedDivergence,
			&m.Status, &m.ComputedAt,
		); err != nil {
			return nil, err
		}
		m.Day = engine.DayOf(m.Day)
		metrics = append(metrics, m)
	}
	return metrics, nil
}

// day2param maps the zero time to a SQL NULL so open-ended ranges can share
// one query.
func day2param(day time.Time) *time.Time {
	if day.IsZero() {
		return nil
	}
	d := engine.DayOf(day)
	return &d
}
