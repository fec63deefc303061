package trainingload

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/stridewise/backend/internal/middleware"
	"github.com/stridewise/backend/internal/telemetry/metrics"
	"github.com/stridewise/backend/internal/telemetry/tracing"
	"github.com/stridewise/backend/internal/trainingload/engine"
	"github.com/stridewise/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=trainingload_test

type handlerAnalyzer interface {
	ComputeForDay(ctx context.Context, userID int64, day time.Time) (*ComputedMetrics, error)
	Preview(ctx context.Context, userID int64, day time.Time, cfg engine.Config) (*ComputedMetrics, error)
	RecomputeUser(ctx context.Context, userID int64) (int, error)
	RecomputeAllUsers(ctx context.Context, workers int) (RecomputeReport, error)
}

type handlerRepo interface {
	AddActivity(ctx context.Context, activity engine.Activity) (*engine.Activity, error)
	UpdateActivity(ctx context.Context, activity *engine.Activity) error
	GetActivity(ctx context.Context, id int64) (*engine.Activity, error)
	MetricsHistory(ctx context.Context, userID int64, configID string, from, to time.Time) ([]ComputedMetrics, error)
}

type handlerConfigResolver interface {
	Resolve(ctx context.Context, userID int64) (UserConfig, error)
	Update(ctx context.Context, cfg UserConfig) error
}

type MetricsResponse struct {
	ComputedMetrics
	RiskLabels
}

type HistoryResponse struct {
	Metrics []ComputedMetrics `json:"metrics"`
	Total   int               `json:"total"`
}

type RecomputeUserResponse struct {
	UserID       int64 `json:"userId"`
	DaysComputed int   `json:"daysComputed"`
}

type AddActivityResponse struct {
	engine.Activity
	DaysComputed int `json:"daysComputed"`
}

type UpdateActivityResponse struct {
	UpdatedID    int64 `json:"updatedId"`
	DaysComputed int   `json:"daysComputed"`
}

const recomputeWorkers = 4

type Handler struct {
	analyzer handlerAnalyzer
	repo     handlerRepo
	resolver handlerConfigResolver
	metrics  *metrics.Manager
}

func NewHandler(
	analyzer handlerAnalyzer,
	repo handlerRepo,
	resolver handlerConfigResolver,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		analyzer: analyzer,
		repo:     repo,
		resolver: resolver,
		metrics:  metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	recomputesAllowedPerMin int,
) {
	router.HandleFunc("/trainingload/user/{id}/metrics", handler.HandleGetMetrics).Methods("GET", "OPTIONS").Name("get-metrics")
	router.HandleFunc("/trainingload/user/{id}/metrics/history", handler.HandleMetricsHistory).Methods("GET", "OPTIONS").Name("metrics-history")
	router.HandleFunc("/trainingload/user/{id}/preview", handler.HandlePreview).Methods("POST", "OPTIONS").Name("preview-metrics")
	router.HandleFunc("/trainingload/user/{id}/config", handler.HandleGetConfig).Methods("GET", "OPTIONS").Name("get-config")
	router.HandleFunc("/trainingload/user/{id}/config", handler.HandleUpdateConfig).Methods("PUT", "OPTIONS").Name("update-config")
	router.HandleFunc("/trainingload/user/{id}/activities", handler.HandleAddActivity).Methods("POST", "OPTIONS").Name("new-activity")
	router.HandleFunc("/trainingload/activities/{id}", handler.HandleUpdateActivity).Methods("PUT", "OPTIONS").Name("update-activity")

	recomputeRouter := router.PathPrefix("/trainingload").Subrouter()
	recomputeRouter.HandleFunc("/user/{id}/recompute", handler.HandleRecomputeUser).Methods("POST", "OPTIONS").Name("recompute-user")
	recomputeRouter.HandleFunc("/recompute", handler.HandleRecomputeAll).Methods("POST", "OPTIONS").Name("recompute-all")
	recomputeRouter.Use(middleware.RateLimit(rateLimiter, "trainingload-recompute", recomputesAllowedPerMin, handler.metrics))
}

func (handler *Handler) HandleGetMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainingload.metrics")
	defer span.End()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	day := engine.DayOf(time.Now())
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			http.Error(w, "error, invalid date, use YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		day = engine.DayOf(parsed)
	}

	computed, err := handler.analyzer.ComputeForDay(ctx, userID, day)
	if err != nil {
		log.Errorf("failed to compute metrics for user %d: %s", userID, err)
		http.Error(w, "failed to compute metrics", http.StatusInternalServerError)
		return
	}
	handler.metrics.CounterMetricsComputed.Inc()

	respJson, err := json.Marshal(MetricsResponse{
		ComputedMetrics: *computed,
		RiskLabels:      NewRiskLabels(computed.Metrics),
	})
	if err != nil {
		log.Errorf("failed to marshal metrics response: %s", err)
		http.Error(w, "failed to marshal metrics response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleMetricsHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainingload.history")
	defer span.End()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var from, to time.Time
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		parsed, err := time.Parse(time.DateOnly, fromStr)
		if err != nil {
			http.Error(w, "error, invalid from date, use YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		from = parsed
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		parsed, err := time.Parse(time.DateOnly, toStr)
		if err != nil {
			http.Error(w, "error, invalid to date, use YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		to = parsed
	}

	cfg, err := handler.resolver.Resolve(ctx, userID)
	if err != nil {
		log.Errorf("failed to resolve config for user %d: %s", userID, err)
		http.Error(w, "failed to resolve config", http.StatusInternalServerError)
		return
	}

	history, err := handler.repo.MetricsHistory(ctx, userID, cfg.Config.ID(), from, to)
	if err != nil {
		log.Errorf("failed to get metrics history for user %d: %s", userID, err)
		http.Error(w, "failed to get metrics history", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(HistoryResponse{
		Metrics: history,
		Total:   len(history),
	})
	if err != nil {
		log.Errorf("failed to marshal history response: %s", err)
		http.Error(w, "failed to marshal history response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainingload.preview")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var cfg engine.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		log.Tracef("preview metrics, unmarshal json params: %s", err)
		http.Error(w, "preview metrics failed", http.StatusBadRequest)
		return
	}

	day := engine.DayOf(time.Now())
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			http.Error(w, "error, invalid date, use YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		day = engine.DayOf(parsed)
	}

	computed, err := handler.analyzer.Preview(ctx, userID, day, cfg)
	if errors.Is(err, engine.ErrInvalidConfiguration) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("failed to preview metrics for user %d: %s", userID, err)
		http.Error(w, "failed to preview metrics", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(MetricsResponse{
		ComputedMetrics: *computed,
		RiskLabels:      NewRiskLabels(computed.Metrics),
	})
	if err != nil {
		log.Errorf("failed to marshal preview response: %s", err)
		http.Error(w, "failed to marshal preview response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleGetConfig(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainingload.getConfig")
	defer span.End()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	cfg, err := handler.resolver.Resolve(ctx, userID)
	if err != nil {
		log.Errorf("failed to resolve config for user %d: %s", userID, err)
		http.Error(w, "failed to resolve config", http.StatusInternalServerError)
		return
	}

	cfgJson, err := json.Marshal(cfg)
	if err != nil {
		log.Errorf("failed to marshal config: %s", err)
		http.Error(w, "failed to marshal config", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cfgJson, http.StatusOK)
}

func (handler *Handler) HandleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainingload.updateConfig")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var cfg UserConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		log.Tracef("update config, unmarshal json params: %s", err)
		http.Error(w, "update config failed", http.StatusBadRequest)
		return
	}
	cfg.UserID = userID

	err := handler.resolver.Update(ctx, cfg)
	if errors.Is(err, engine.ErrInvalidConfiguration) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("failed to update config for user %d: %s", userID, err)
		http.Error(w, "failed to update config", http.StatusInternalServerError)
		return
	}

	// a configuration switch invalidates all previously computed metrics
	days, err := handler.analyzer.RecomputeUser(ctx, userID)
	if err != nil {
		log.Errorf("failed to recompute user %d after config update: %s", userID, err)
		http.Error(w, "config updated, recompute failed", http.StatusInternalServerError)
		return
	}
	handler.metrics.CounterRecomputations.Inc()

	respJson, err := json.Marshal(RecomputeUserResponse{
		UserID:       userID,
		DaysComputed: days,
	})
	if err != nil {
		log.Errorf("failed to marshal config update response: %s", err)
		http.Error(w, "failed to marshal config update response", http.StatusInternalServerError)
		return
	}

	log.Debugf("config updated for user %d, %d days recomputed", userID, days)
	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (handler *Handler) HandleAddActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainingload.newActivity")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var activity engine.Activity
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		log.Tracef("new activity, unmarshal json params: %s", err)
		http.Error(w, "add activity failed", http.StatusBadRequest)
		return
	}
	activity.UserID = userID

	if activity.Day.IsZero() {
		activity.Day = time.Now()
	}
	if activity.Sport == "" {
		http.Error(w, "error, sport empty", http.StatusBadRequest)
		return
	}

	addedActivity, err := handler.repo.AddActivity(ctx, activity)
	if err != nil {
		log.Errorf("failed to add new activity [user %d] [%s]: %s", userID, activity.Sport, err)
		http.Error(w, "error, failed to add new activity", http.StatusInternalServerError)
		return
	}
	handler.metrics.CounterActivitiesIngested.Inc()

	days, err := handler.analyzer.RecomputeUser(ctx, userID)
	if err != nil {
		// the activity is stored, stale metrics will be fixed by the next recompute
		log.Errorf("failed to recompute user %d after new activity: %s", userID, err)
	}

	respJson, err := json.Marshal(AddActivityResponse{
		Activity:     *addedActivity,
		DaysComputed: days,
	})
	if err != nil {
		log.Errorf("failed to marshal new activity: %s", err)
		http.Error(w, "error, failed to add new activity", http.StatusInternalServerError)
		return
	}

	log.Debugf("new activity added: %s", respJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdateActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainingload.updateActivity")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var activity engine.Activity
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		log.Errorf("update activity, unmarshal json params: %s", err)
		http.Error(w, "update activity failed", http.StatusBadRequest)
		return
	}
	activity.ID = id

	currentActivity, err := handler.repo.GetActivity(ctx, id)
	if errors.Is(err, ErrActivityNotFound) {
		log.Debugf("activity %d not found", id)
		http.Error(w, "activity not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get activity %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	activity.UserID = currentActivity.UserID

	if err := handler.repo.UpdateActivity(ctx, &activity); err != nil {
		log.Errorf("failed to update activity %d: %s", id, err)
		http.Error(w, "error, failed to update activity", http.StatusInternalServerError)
		return
	}

	// a correction changes that day and every day downstream of it
	days, err := handler.analyzer.RecomputeUser(ctx, activity.UserID)
	if err != nil {
		log.Errorf("failed to recompute user %d after activity update: %s", activity.UserID, err)
	}

	respJson, err := json.Marshal(UpdateActivityResponse{
		UpdatedID:    id,
		DaysComputed: days,
	})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	log.Debugf("activity updated: [user %d]: %d", activity.UserID, id)
	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (handler *Handler) HandleRecomputeUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainingload.recomputeUser")
	defer span.End()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	startedAt := time.Now()
	days, err := handler.analyzer.RecomputeUser(ctx, userID)
	if err != nil {
		log.Errorf("failed to recompute user %d: %s", userID, err)
		http.Error(w, "failed to recompute user", http.StatusInternalServerError)
		return
	}
	handler.metrics.CounterRecomputations.Inc()
	handler.metrics.HistRecomputeDuration.Observe(time.Since(startedAt).Seconds())

	respJson, err := json.Marshal(RecomputeUserResponse{
		UserID:       userID,
		DaysComputed: days,
	})
	if err != nil {
		log.Errorf("failed to marshal recompute response: %s", err)
		http.Error(w, "failed to marshal recompute response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (handler *Handler) HandleRecomputeAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainingload.recomputeAll")
	defer span.End()

	startedAt := time.Now()
	report, err := handler.analyzer.RecomputeAllUsers(ctx, recomputeWorkers)
	if err != nil {
		log.Errorf("batch recompute finished with errors: %s", err)
		http.Error(w, "batch recompute failed", http.StatusInternalServerError)
		return
	}
	handler.metrics.CounterRecomputations.Inc()
	handler.metrics.HistRecomputeDuration.Observe(time.Since(startedAt).Seconds())

	respJson, err := json.Marshal(report)
	if err != nil {
		log.Errorf("failed to marshal batch recompute response: %s", err)
		http.Error(w, "failed to marshal batch recompute response", http.StatusInternalServerError)
		return
	}

	log.Debugf("batch recompute done: %s", respJson)
	pkg.WriteJSONResponseOK(w, string(respJson))
}

func userIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return 0, false
	}
	userID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "error, user id NaN", http.StatusBadRequest)
		return 0, false
	}
	return userID, true
}
