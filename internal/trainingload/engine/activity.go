package engine

import "time"

// SportType enumerates the activity sources the normalizer understands.
// Anything else falls back to the running-style calculation.
type SportType string

const (
	SportRunning           SportType = "running"
	SportCycling           SportType = "cycling"
	SportSwimming          SportType = "swimming"
	SportRowing            SportType = "rowing"
	SportBackcountrySkiing SportType = "backcountry_skiing"
	SportStrength          SportType = "strength"
	SportOther             SportType = "other"
)

// Activity is one performed session, already mapped into the common schema
// by the ingestion layer.
type Activity struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"userId"`
	Day               time.Time `json:"day"` // calendar day, local to the user
	Sport             SportType `json:"sport"`
	DistanceMiles     float64   `json:"distanceMiles"`
	ElevationGainFeet float64   `json:"elevationGainFeet"`
	DurationMinutes   float64   `json:"durationMinutes"`
	AvgHeartRate      float64   `json:"avgHeartRate"` // 0 when the device recorded none
	AvgSpeedMph       float64   `json:"avgSpeedMph"`  // used for the cycling factor bucket
	OpenWater         bool      `json:"openWater"`    // swimming only
	RPE               float64   `json:"rpe"`          // rating of perceived exertion, 0 when not reported
}

type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = ""
)

// AthleteProfile carries the per-user physiological inputs for TRIMP.
type AthleteProfile struct {
	RestingHR float64 `json:"restingHr"`
	MaxHR     float64 `json:"maxHr"`
	Gender    Gender  `json:"gender"`
}

// DefaultAthleteProfile is used when a user never provided heart rate limits.
var DefaultAthleteProfile = AthleteProfile{
	RestingHR: 60,
	MaxHR:     190,
	Gender:    GenderUnknown,
}

// DayOf truncates t to its calendar day in UTC, the canonical key for all
// daily aggregates.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
