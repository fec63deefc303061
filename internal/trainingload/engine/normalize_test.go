package engine_test

import (
	"testing"

	"github.com/stridewise/backend/internal/trainingload/engine"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNormalizer_Running(t *testing.T) {
	n := engine.NewNormalizer(engine.DefaultFactors)

	load := n.Normalize(engine.Activity{
		Sport:             engine.SportRunning,
		DistanceMiles:     6,
		ElevationGainFeet: 750,
	})
	// 6 miles + 750ft of climbing = one extra load mile
	assert.InDelta(t, 7.0, load, 1e-9)

	flat := n.Normalize(engine.Activity{
		Sport:         engine.SportRunning,
		DistanceMiles: 3.1,
	})
	assert.InDelta(t, 3.1, flat, 1e-9)
}

func TestNormalizer_Cycling_SpeedBuckets(t *testing.T) {
	n := engine.NewNormalizer(engine.DefaultFactors)

	slow := n.Normalize(engine.Activity{
		Sport:         engine.SportCycling,
		DistanceMiles: 20,
		AvgSpeedMph:   10,
	})
	assert.InDelta(t, 20*0.29, slow, 1e-9)

	moderate := n.Normalize(engine.Activity{
		Sport:         engine.SportCycling,
		DistanceMiles: 20,
		AvgSpeedMph:   14,
	})
	assert.InDelta(t, 20*0.31, moderate, 1e-9)

	fast := n.Normalize(engine.Activity{
		Sport:         engine.SportCycling,
		DistanceMiles: 20,
		AvgSpeedMph:   19,
	})
	assert.InDelta(t, 20*0.34, fast, 1e-9)

	// no speed data defaults to the moderate bucket
	unknownSpeed := n.Normalize(engine.Activity{
		Sport:         engine.SportCycling,
		DistanceMiles: 20,
	})
	assert.InDelta(t, 20*0.31, unknownSpeed, 1e-9)
}

func TestNormalizer_Swimming(t *testing.T) {
	n := engine.NewNormalizer(engine.DefaultFactors)

	pool := n.Normalize(engine.Activity{
		Sport:         engine.SportSwimming,
		DistanceMiles: 2.0,
	})
	assert.InDelta(t, 8.0, pool, 1e-9)

	openWater := n.Normalize(engine.Activity{
		Sport:         engine.SportSwimming,
		DistanceMiles: 2.0,
		OpenWater:     true,
	})
	assert.InDelta(t, 8.4, openWater, 1e-9)
}

func TestNormalizer_Rowing(t *testing.T) {
	n := engine.NewNormalizer(engine.DefaultFactors)

	load := n.Normalize(engine.Activity{
		Sport:         engine.SportRowing,
		DistanceMiles: 4,
	})
	assert.InDelta(t, 6.0, load, 1e-9)
}

func TestNormalizer_BackcountrySkiing_NeverBelowDistance(t *testing.T) {
	n := engine.NewNormalizer(engine.DefaultFactors)

	load := n.Normalize(engine.Activity{
		Sport:             engine.SportBackcountrySkiing,
		DistanceMiles:     5,
		ElevationGainFeet: 3000,
	})
	assert.Greater(t, load, 5.0)
	assert.InDelta(t, 5*1.1+3000.0/600, load, 1e-9)
}

func TestNormalizer_Strength(t *testing.T) {
	n := engine.NewNormalizer(engine.DefaultFactors)

	load := n.Normalize(engine.Activity{
		Sport:           engine.SportStrength,
		DurationMinutes: 60,
		RPE:             7,
	})
	assert.InDelta(t, 1*7*0.30, load, 1e-9)

	// no RPE reported and no distance: contributes nothing, not an error
	noEffortData := n.Normalize(engine.Activity{
		Sport:           engine.SportStrength,
		DurationMinutes: 45,
	})
	assert.Zero(t, noEffortData)
}

func TestNormalizer_UnknownSportFallsBackToRunning(t *testing.T) {
	n := engine.NewNormalizer(engine.DefaultFactors)

	load := n.Normalize(engine.Activity{
		Sport:             engine.SportType("underwater_hockey"),
		DistanceMiles:     2,
		ElevationGainFeet: 1500,
	})
	assert.InDelta(t, 2+1500.0/750, load, 1e-9)
}

func TestNormalizer_EmptyActivity(t *testing.T) {
	n := engine.NewNormalizer(engine.DefaultFactors)
	assert.Zero(t, n.Normalize(engine.Activity{Sport: engine.SportRunning}))
	assert.Zero(t, n.Normalize(engine.Activity{Sport: engine.SportOther}))
}
