package engine

import "math"

const (
	// ratioEpsilon guards the ACWR divisions: a chronic average at or below
	// it means there is no meaningful baseline, and the ratio is undefined
	// (null) rather than zero or infinity.
	ratioEpsilon = 1e-6

	// nearZero is the documented threshold below which an ACWR value is
	// treated as zero inside the divergence formula, avoiding floating-point
	// blow-up while the formula saturates at +-2.
	nearZero = 0.01

	divergenceBound = 2.0
)

// Metrics is the computed output for one (user, day, configuration). Nil
// pointers mean "not yet computable" — insufficient baseline must surface as
// missing data, never as a misleading number.
type Metrics struct {
	ExternalACWR         *float64 `json:"externalAcwr"`
	InternalACWR         *float64 `json:"internalAcwr"`
	NormalizedDivergence *float64 `json:"normalizedDivergence"`
}

// ComputeMetrics derives both ACWR values and the normalized divergence from
// aggregated window state. This function, together with NormalizedDivergence,
// is the single place in the system where this arithmetic exists; every
// caller (live serving, batch recomputation, what-if previews) feeds its own
// windows through here and never duplicates the formulas inline.
func ComputeMetrics(windows Windows) Metrics {
	var m Metrics

	if windows.ChronicExternal > ratioEpsilon {
		v := round3(windows.AcuteExternal / windows.ChronicExternal)
		m.ExternalACWR = &v
	}
	if windows.ChronicInternal > ratioEpsilon {
		v := round3(windows.AcuteInternal / windows.ChronicInternal)
		m.InternalACWR = &v
	}

	if m.ExternalACWR != nil && m.InternalACWR != nil {
		d := NormalizedDivergence(*m.ExternalACWR, *m.InternalACWR)
		m.NormalizedDivergence = &d
	}

	return m
}

// NormalizedDivergence is the scale-independent mismatch between the external
// and internal ACWR: (ext - int) / ((ext + int) / 2), clamped to [-2, 2] and
// rounded to three decimals. The formula is antisymmetric in its arguments
// and saturates at the bound when one ratio is near zero and the other is
// meaningfully positive. When both ratios are below the near-zero threshold
// there is nothing to diverge from and the result is 0.
func NormalizedDivergence(externalACWR, internalACWR float64) float64 {
	if externalACWR < nearZero && internalACWR < nearZero {
		return 0
	}

	d := (externalACWR - internalACWR) / ((externalACWR + internalACWR) / 2)
	if d > divergenceBound {
		d = divergenceBound
	}
	if d < -divergenceBound {
		d = -divergenceBound
	}
	return round3(d)
}

// RiskBucket maps an ACWR value onto the published qualitative threshold
// table. This is a presentation-layer lookup, not part of the computation.
func RiskBucket(acwr float64) string {
	switch {
	case acwr < 0.8:
		return "undertraining"
	case acwr <= 1.3:
		return "optimal"
	case acwr <= 1.5:
		return "elevated risk"
	default:
		return "high risk"
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
