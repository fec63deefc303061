package engine

import (
	"errors"
	"math"
	"time"
)

// ErrInsufficientHistory means the user's recorded history does not yet span
// the configured chronic window. Metrics for such days are "not yet
// computable", never a partial average over whatever data exists.
var ErrInsufficientHistory = errors.New("insufficient history for chronic window")

// Windows holds the rolling window state for one (user, day): the acute and
// chronic averages of external and internal load.
type Windows struct {
	AcuteExternal   float64 `json:"acuteExternal"`
	ChronicExternal float64 `json:"chronicExternal"`
	AcuteInternal   float64 `json:"acuteInternal"`
	ChronicInternal float64 `json:"chronicInternal"`
}

// Aggregate computes the acute and chronic rolling averages of a user's daily
// loads as of the given day. Every caller — the live per-day path and the
// historical batch path — must go through this one routine.
//
// The acute window is the unweighted mean over the trailing AcuteWindowDays
// calendar days inclusive of asOf; days without activities count as zero.
// The chronic window is either the unweighted mean over the trailing
// cfg.ChronicPeriodDays, or, when cfg.DecayRate > 0, the exponentially
// decayed weighted mean with weights normalized to sum to one.
func Aggregate(loads map[time.Time]DailyLoad, asOf time.Time, cfg Config) (*Windows, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	asOf = DayOf(asOf)

	first := FirstDay(loads)
	if first.IsZero() {
		return nil, ErrInsufficientHistory
	}
	historyDays := int(asOf.Sub(first).Hours()/24) + 1
	if historyDays < cfg.ChronicPeriodDays {
		return nil, ErrInsufficientHistory
	}

	acuteExt, acuteInt := windowMean(loads, asOf, AcuteWindowDays, 0)
	chronicExt, chronicInt := windowMean(loads, asOf, cfg.ChronicPeriodDays, cfg.DecayRate)

	return &Windows{
		AcuteExternal:   acuteExt,
		ChronicExternal: chronicExt,
		AcuteInternal:   acuteInt,
		ChronicInternal: chronicInt,
	}, nil
}

// windowMean averages the trailing windowDays of loads ending at asOf.
// With decayRate 0 this is a plain mean; otherwise day i before asOf gets
// weight e^(-decayRate*i), with the weights normalized to sum to one so the
// result is insensitive to window length once the rate is large.
func windowMean(loads map[time.Time]DailyLoad, asOf time.Time, windowDays int, decayRate float64) (external, internal float64) {
	var weightSum float64
	for i := 0; i < windowDays; i++ {
		weight := 1.0
		if decayRate > 0 {
			weight = math.Exp(-decayRate * float64(i))
		}
		weightSum += weight

		day := asOf.AddDate(0, 0, -i)
		load := loads[day] // zero value for rest days, diluting the average
		external += weight * load.ExternalMiles
		internal += weight * load.InternalTRIMP
	}

	external /= weightSum
	internal /= weightSum
	return external, internal
}
