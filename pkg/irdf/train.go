package irdf

import "math"

type ClassAvailabilityStatus string

const (
	ClassAvailabilityStatusAvailable ClassAvailabilityStatus = "available"
	ClassAvailabilityStatusWaiting   ClassAvailabilityStatus = "waiting"
	ClassAvailabilityStatusFull      ClassAvailabilityStatus = "full"
)

type TrainClassAvailability struct {
	Code string `json:"code" groups:"basic"`
	Name string `json:"name" groups:"basic"`

	Fare           float64 `json:"fare" groups:"basic"`
	AvailableSeats int     `json:"availableSeats" groups:"basic"`
	WaitingList    int     `json:"waitingList,omitempty" groups:"basic"`

	Status ClassAvailabilityStatus `json:"status" groups:"basic"`
}

// Train is a single timetabled service. Source and Destination carry the
// denormalised station display names from the upstream feed; SourceCode and
// DestinationCode are resolved at load time and are the canonical route
// matching key whenever they are present.
type Train struct {
	TrainNumber string `json:"trainNumber" groups:"basic"`
	TrainName   string `json:"trainName" groups:"basic"`

	Source          string `json:"source" groups:"basic"`
	Destination     string `json:"destination" groups:"basic"`
	SourceCode      string `json:"sourceCode,omitempty" groups:"basic"`
	DestinationCode string `json:"destinationCode,omitempty" groups:"basic"`

	DepartureTime string `json:"departureTime" groups:"basic"` // "HH:MM" 24h local
	ArrivalTime   string `json:"arrivalTime" groups:"basic"`
	Duration      string `json:"duration" groups:"basic"` // "<int>h <int>m"

	RunningDays []RunningDay `json:"runningDays" groups:"basic"`

	AvailableClasses []TrainClassAvailability `json:"availableClasses" groups:"basic"`

	Stations []RouteStation `json:"stations" groups:"detailed"`
}

// MinimumFare returns the cheapest fare across the train's classes. A train
// with no classes has no defined minimum and yields +Inf so that it orders
// after every priced train.
func (t *Train) MinimumFare() float64 {
	minimum := math.Inf(1)
	for _, class := range t.AvailableClasses {
		if class.Fare < minimum {
			minimum = class.Fare
		}
	}
	return minimum
}

func (t *Train) HasClass(code string) bool {
	return t.ClassByCode(code) != nil
}

func (t *Train) ClassByCode(code string) *TrainClassAvailability {
	for i := range t.AvailableClasses {
		if t.AvailableClasses[i].Code == code {
			return &t.AvailableClasses[i]
		}
	}
	return nil
}

// ArrivalDayOffset reports which day of the journey the train arrives on.
// 1 means same-day arrival, 2 means the arrival clock time is before the
// departure clock time and the train gets in the next day.
func (t *Train) ArrivalDayOffset() int {
	departure, departureOK := ParseClockMinutes(t.DepartureTime)
	arrival, arrivalOK := ParseClockMinutes(t.ArrivalTime)

	if departureOK && arrivalOK && arrival < departure {
		return 2
	}
	return 1
}

// DeriveClassStatus gives the availability status used by the catalog
// loader. Only available/full are ever derived here - the waiting state
// exists on the wire but is set upstream, not computed from seat counts.
func DeriveClassStatus(availableSeats int) ClassAvailabilityStatus {
	if availableSeats > 0 {
		return ClassAvailabilityStatusAvailable
	}
	return ClassAvailabilityStatusFull
}
