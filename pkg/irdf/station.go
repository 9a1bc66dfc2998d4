package irdf

// StationInfo is immutable station reference data, loaded once at catalog
// load and never mutated afterwards.
type StationInfo struct {
	Code string `json:"code" groups:"basic"`
	Name string `json:"name" groups:"basic"`
}

// RouteStation is a single scheduled stop on a train's route. ArrivalTime is
// nil at the origin and DepartureTime is nil at the terminus.
type RouteStation struct {
	Code string `json:"code" groups:"detailed"`
	Name string `json:"name" groups:"detailed"`

	ArrivalTime   *string `json:"arrivalTime" groups:"detailed"`
	DepartureTime *string `json:"departureTime" groups:"detailed"`

	Distance int `json:"distance" groups:"detailed"`

	Platform     string `json:"platform,omitempty" groups:"detailed"`
	StopDuration string `json:"stopDuration,omitempty" groups:"detailed"`
}
