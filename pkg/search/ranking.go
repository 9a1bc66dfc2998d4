package search

import (
	"sort"
	"time"

	"github.com/railbooker/railbooker/pkg/irdf"
)

type SortKey string

const (
	SortByDeparture SortKey = "departure"
	SortByDuration  SortKey = "duration"
	SortByFare      SortKey = "fare"
)

// SortTrains returns a new slice ordered by the given key. The sort is
// stable so equal keys keep their relative catalog order - ties are common,
// several trains can leave at the same minute. Unknown keys leave the input
// order untouched.
func SortTrains(trains []irdf.Train, key SortKey) []irdf.Train {
	sorted := make([]irdf.Train, len(trains))
	copy(sorted, trains)

	switch key {
	case SortByDeparture:
		sort.SliceStable(sorted, func(i, j int) bool {
			return clockMinutes(sorted[i].DepartureTime) < clockMinutes(sorted[j].DepartureTime)
		})
	case SortByDuration:
		sort.SliceStable(sorted, func(i, j int) bool {
			return durationMinutes(sorted[i].Duration) < durationMinutes(sorted[j].Duration)
		})
	case SortByFare:
		// MinimumFare is +Inf for a train with no classes, so those sort
		// after every priced train.
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].MinimumFare() < sorted[j].MinimumFare()
		})
	}

	return sorted
}

// Malformed clock and duration strings evaluate to zero rather than failing
// the whole sort.
func clockMinutes(value string) int {
	minutes, _ := irdf.ParseClockMinutes(value)
	return minutes
}

func durationMinutes(value string) int {
	minutes, _ := irdf.ParseDurationMinutes(value)
	return minutes
}

type BookingSortKey string

const (
	BookingSortByFare   BookingSortKey = "fare"
	BookingSortByDate   BookingSortKey = "date"
	BookingSortByStatus BookingSortKey = "status"
)

// SortBookings orders a flattened booking list for the transaction views.
// Same contract as SortTrains: stable, new slice, fail-soft key parsing.
func SortBookings(bookings []irdf.PNRStatus, key BookingSortKey) []irdf.PNRStatus {
	sorted := make([]irdf.PNRStatus, len(bookings))
	copy(sorted, bookings)

	switch key {
	case BookingSortByFare:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Fare < sorted[j].Fare
		})
	case BookingSortByDate:
		sort.SliceStable(sorted, func(i, j int) bool {
			return journeyDate(sorted[i].JourneyDate).Before(journeyDate(sorted[j].JourneyDate))
		})
	case BookingSortByStatus:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Status < sorted[j].Status
		})
	}

	return sorted
}

func journeyDate(value string) time.Time {
	date, _ := time.Parse("2006-01-02", value)
	return date
}
