package trainingload

import (
	"time"

	"github.com/stridewise/backend/internal/trainingload/engine"
)

const (
	StatusOK               = "ok"
	StatusInsufficientData = "insufficient data"
)

// UserConfig is the persisted per-user computation setup: the window
// configuration plus the athlete profile the TRIMP formula needs.
type UserConfig struct {
	UserID  int64                 `json:"userId"`
	Config  engine.Config         `json:"config"`
	Profile engine.AthleteProfile `json:"profile"`
}

func DefaultUserConfig(userID int64) UserConfig {
	return UserConfig{
		UserID:  userID,
		Config:  engine.DefaultConfig(),
		Profile: engine.DefaultAthleteProfile,
	}
}

// ComputedMetrics is one persisted computation result, keyed by
// (user, day, configuration). Recomputing the same key overwrites it.
type ComputedMetrics struct {
	UserID     int64     `json:"userId"`
	Day        time.Time `json:"day"`
	ConfigID   string    `json:"configId"`
	Status     string    `json:"status"`
	ComputedAt time.Time `json:"computedAt"`
	engine.Metrics
}

// RiskLabels attaches the qualitative bucket for each present ACWR.
type RiskLabels struct {
	ExternalRisk string `json:"externalRisk,omitempty"`
	InternalRisk string `json:"internalRisk,omitempty"`
}

func NewRiskLabels(m engine.Metrics) RiskLabels {
	var labels RiskLabels
	if m.ExternalACWR != nil {
		labels.ExternalRisk = engine.RiskBucket(*m.ExternalACWR)
	}
	if m.InternalACWR != nil {
		labels.InternalRisk = engine.RiskBucket(*m.InternalACWR)
	}
	return labels
}
