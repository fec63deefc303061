package engine

import "time"

// DailyLoad is the normalized load of one (user, day): external load in
// running-mile equivalents and internal load as summed TRIMP. Days without
// activities are represented by the zero value so rest days dilute the
// rolling windows instead of leaving gaps.
type DailyLoad struct {
	Day           time.Time `json:"day"`
	ExternalMiles float64   `json:"externalMiles"`
	InternalTRIMP float64   `json:"internalTrimp"`
}

// BuildDailyLoads folds a user's activities into per-day normalized loads.
// The returned map is keyed by UTC calendar day.
func BuildDailyLoads(normalizer *Normalizer, activities []Activity, profile AthleteProfile) map[time.Time]DailyLoad {
	loads := make(map[time.Time]DailyLoad)
	for _, activity := range activities {
		day := DayOf(activity.Day)
		load := loads[day]
		load.Day = day
		load.ExternalMiles += normalizer.Normalize(activity)
		load.InternalTRIMP += TRIMP(
			activity.DurationMinutes,
			activity.AvgHeartRate,
			profile.RestingHR,
			profile.MaxHR,
			profile.Gender,
		)
		loads[day] = load
	}
	return loads
}

// FirstDay returns the earliest day present in the loads, or the zero time
// when the user has no history at all.
func FirstDay(loads map[time.Time]DailyLoad) time.Time {
	var first time.Time
	for day := range loads {
		if first.IsZero() || day.Before(first) {
			first = day
		}
	}
	return first
}
