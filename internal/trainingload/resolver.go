package trainingload

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stridewise/backend/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=resolver_mocks_test.go -package=trainingload_test

const configCacheExpireSeconds = 10 * 60

type configRepo interface {
	GetConfig(ctx context.Context, userID int64) (*UserConfig, error)
	SetConfig(ctx context.Context, cfg UserConfig) error
}

// ConfigResolver answers "which configuration applies to this user" on the
// hot path. Results are held in an in-process cache and fall back to the
// system default when the user never stored an override.
type ConfigResolver struct {
	repo  configRepo
	cache *freecache.Cache
}

func NewConfigResolver(repo configRepo) *ConfigResolver {
	megabyte := 1024 * 1024
	return &ConfigResolver{
		repo:  repo,
		cache: freecache.NewCache(megabyte),
	}
}

func (cr *ConfigResolver) Resolve(ctx context.Context, userID int64) (_ UserConfig, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trainingload.config.resolve")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cacheKey := configCacheKey(userID)
	if cachedBytes, err := cr.cache.Get(cacheKey); err == nil {
		var cfg UserConfig
		if err = json.Unmarshal(cachedBytes, &cfg); err == nil {
			return cfg, nil
		}
		log.Errorf("failed to unmarshal cached config for user %d: %s", userID, err)
	}

	cfg, err := cr.repo.GetConfig(ctx, userID)
	switch {
	case errors.Is(err, ErrConfigNotFound):
		defaultCfg := DefaultUserConfig(userID)
		cfg = &defaultCfg
	case err != nil:
		return UserConfig{}, fmt.Errorf("get config for user %d: %w", userID, err)
	}

	cfgBytes, err := json.Marshal(cfg)
	if err != nil {
		return UserConfig{}, fmt.Errorf("marshal config: %w", err)
	}
	if err := cr.cache.Set(cacheKey, cfgBytes, configCacheExpireSeconds); err != nil {
		log.Errorf("failed to cache config for user %d: %s", userID, err)
	}

	return *cfg, nil
}

// Update validates and persists a user's configuration, then drops the
// cached entry so the next Resolve sees the new values.
func (cr *ConfigResolver) Update(ctx context.Context, cfg UserConfig) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trainingload.config.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := cfg.Config.Validate(); err != nil {
		return err
	}

	if err := cr.repo.SetConfig(ctx, cfg); err != nil {
		return fmt.Errorf("set config for user %d: %w", cfg.UserID, err)
	}

	cr.Invalidate(cfg.UserID)
	return nil
}

func (cr *ConfigResolver) Invalidate(userID int64) {
	cr.cache.Del(configCacheKey(userID))
}

func configCacheKey(userID int64) []byte {
	return []byte(fmt.Sprintf("config::%d", userID))
}
