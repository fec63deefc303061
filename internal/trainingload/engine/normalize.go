package engine

import (
	log "github.com/sirupsen/logrus"
)

// Factors holds the per-sport conversion constants used to express every
// activity in running-mile equivalents. The values are conservative and
// research-informed but heuristically tuned, so they are kept configurable
// rather than hard-coded into the formulas.
type Factors struct {
	// ElevationFeetPerLoadMile converts climbed feet into extra load miles
	// for running (and the running-style fallback).
	ElevationFeetPerLoadMile float64

	// Cycling factors per average cruising speed bucket.
	CyclingSlowFactor     float64 // below CyclingSlowMaxMph
	CyclingModerateFactor float64
	CyclingFastFactor     float64 // above CyclingModerateMaxMph
	CyclingSlowMaxMph     float64
	CyclingModerateMaxMph float64

	// Swimming is ~4x less distance-efficient than running for the same
	// aerobic stimulus; open water carries a small surcharge.
	SwimPoolFactor      float64
	SwimOpenWaterFactor float64

	RowingFactor float64

	// Backcountry skiing: base distance multiplier plus a vertical-gain
	// adjustment. The multiplier stays >= 1 so ski load never drops below
	// the actual distance covered.
	SkiingFactor                   float64
	SkiingElevationFeetPerLoadMile float64

	// Non-distance sports: load is (duration hours) * RPE * StrengthFactor.
	StrengthFactor float64
}

// DefaultFactors are the system-wide conversion constants.
var DefaultFactors = Factors{
	ElevationFeetPerLoadMile: 750,

	CyclingSlowFactor:     0.29,
	CyclingModerateFactor: 0.31,
	CyclingFastFactor:     0.34,
	CyclingSlowMaxMph:     12,
	CyclingModerateMaxMph: 16,

	SwimPoolFactor:      4.0,
	SwimOpenWaterFactor: 4.2,

	RowingFactor: 1.5,

	SkiingFactor:                   1.1,
	SkiingElevationFeetPerLoadMile: 600,

	StrengthFactor: 0.30,
}

// Normalizer converts raw activities into external load expressed in
// running-mile equivalents. Pure computation, no I/O.
type Normalizer struct {
	factors Factors
}

func NewNormalizer(factors Factors) *Normalizer {
	return &Normalizer{factors: factors}
}

// Normalize returns the external load of one activity in running-mile
// equivalents. Unrecognized sport types are logged and handled with the
// running-style calculation instead of being dropped, so no training load
// silently disappears from the aggregates.
func (n *Normalizer) Normalize(activity Activity) float64 {
	f := n.factors

	switch activity.Sport {
	case SportRunning:
		return activity.DistanceMiles + activity.ElevationGainFeet/f.ElevationFeetPerLoadMile
	case SportCycling:
		return activity.DistanceMiles * n.cyclingFactor(activity.AvgSpeedMph)
	case SportSwimming:
		if activity.OpenWater {
			return activity.DistanceMiles * f.SwimOpenWaterFactor
		}
		return activity.DistanceMiles * f.SwimPoolFactor
	case SportRowing:
		return activity.DistanceMiles * f.RowingFactor
	case SportBackcountrySkiing:
		return activity.DistanceMiles*f.SkiingFactor + activity.ElevationGainFeet/f.SkiingElevationFeetPerLoadMile
	case SportStrength:
		// duration-and-effort proxy, there is no distance to normalize
		return (activity.DurationMinutes / 60) * activity.RPE * f.StrengthFactor
	case SportOther:
		return activity.DistanceMiles + activity.ElevationGainFeet/f.ElevationFeetPerLoadMile
	default:
		log.Warnf(
			"normalize: unrecognized sport type [%s] for activity %d, falling back to running-style load",
			activity.Sport, activity.ID,
		)
		return activity.DistanceMiles + activity.ElevationGainFeet/f.ElevationFeetPerLoadMile
	}
}

func (n *Normalizer) cyclingFactor(avgSpeedMph float64) float64 {
	switch {
	case avgSpeedMph <= 0:
		// no speed data, assume moderate cruising
		return n.factors.CyclingModerateFactor
	case avgSpeedMph < n.factors.CyclingSlowMaxMph:
		return n.factors.CyclingSlowFactor
	case avgSpeedMph < n.factors.CyclingModerateMaxMph:
		return n.factors.CyclingModerateFactor
	default:
		return n.factors.CyclingFastFactor
	}
}
