package irdf

import "time"

// SearchCriteria is a transient per-invocation query. A nil FromStation or
// ToStation means the query is incomplete and search yields no results
// rather than an error.
type SearchCriteria struct {
	FromStation *StationInfo
	ToStation   *StationInfo

	JourneyDate time.Time

	// TrainClass is a class code, empty meaning all classes.
	TrainClass string

	// Quota is carried in the query but never used for filtering.
	Quota string

	FlexibleWithDate     bool
	PersonWithDisability bool
	AvailableBerth       bool

	AdvancedSearch bool
}
