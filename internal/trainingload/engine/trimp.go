package engine

import (
	"math"

	log "github.com/sirupsen/logrus"
)

// banister TRIMP constants; the exponential weighting differs by gender,
// with the midpoint applied when gender is unknown
const (
	trimpScale      = 0.64
	trimpExpMale    = 1.92
	trimpExpFemale  = 1.67
	trimpExpNeutral = (trimpExpMale + trimpExpFemale) / 2
)

// TRIMP computes the heart-rate based internal load (training impulse) of a
// single activity: duration * hrr * 0.64 * e^(k * hrr), with the heart rate
// reserve clamped to [0, 1].
//
// Activities without heart rate data yield 0 rather than an error: their
// external load still counts while their internal load stays invisible, which
// lets the divergence metric reflect the reduced measurement confidence.
func TRIMP(durationMinutes, avgHR, restingHR, maxHR float64, gender Gender) float64 {
	if durationMinutes <= 0 || avgHR <= 0 {
		return 0
	}

	hrRange := maxHR - restingHR
	if hrRange <= 0 {
		log.Warnf("trimp: invalid heart rate range (max %.0f <= resting %.0f), skipping", maxHR, restingHR)
		return 0
	}

	hrr := (avgHR - restingHR) / hrRange
	if hrr < 0 {
		hrr = 0
	}
	if hrr > 1 {
		hrr = 1
	}

	k := trimpExpNeutral
	switch gender {
	case GenderMale:
		k = trimpExpMale
	case GenderFemale:
		k = trimpExpFemale
	}

	return durationMinutes * hrr * trimpScale * math.Exp(k*hrr)
}
