package irdf

// RouteSegment is one leg of a synthesised connecting journey.
type RouteSegment struct {
	Train Train `json:"train" groups:"basic"`

	FromStation StationInfo `json:"fromStation" groups:"basic"`
	ToStation   StationInfo `json:"toStation" groups:"basic"`

	DepartureTime string `json:"departureTime" groups:"basic"`
	ArrivalTime   string `json:"arrivalTime" groups:"basic"`
	Duration      string `json:"duration" groups:"basic"`

	AvailableClasses []string `json:"availableClasses" groups:"basic"`

	IsTransfer   bool   `json:"isTransfer,omitempty" groups:"basic"`
	TransferTime string `json:"transferTime,omitempty" groups:"basic"`
}

// PartialJourney is a two-train itinerary through an intermediate station,
// produced only by the connecting-journey finder and never persisted.
type PartialJourney struct {
	// Train is the first leg's train, kept as the primary reference for
	// callers that render a single headline service.
	Train Train `json:"train" groups:"basic"`

	FromStation StationInfo `json:"fromStation" groups:"basic"`
	ToStation   StationInfo `json:"toStation" groups:"basic"`

	DepartureTime string `json:"departureTime" groups:"basic"`
	ArrivalTime   string `json:"arrivalTime" groups:"basic"`
	Duration      string `json:"duration" groups:"basic"`

	// AvailableClasses is the class-code intersection of both legs.
	AvailableClasses []string `json:"availableClasses" groups:"basic"`

	IsPartialRoute bool           `json:"isPartialRoute" groups:"basic"`
	RouteSegments  []RouteSegment `json:"routeSegments" groups:"basic"`

	TotalDuration string `json:"totalDuration" groups:"basic"`
	TransferCount int    `json:"transferCount" groups:"basic"`
}
