// Package pnr resolves booking identifiers against the passenger repository
// and projects consolidated status records. Absent PNRs are a first-class
// outcome, not an error.
package pnr

import (
	"github.com/railbooker/railbooker/pkg/irdf"
)

// Lookup scans passengers in repository order and returns the status for the
// first booking whose PNR matches, or nil when no booking matches anywhere.
// Duplicate PNRs across passengers are malformed data; the first encountered
// wins, deterministically.
func Lookup(pnr string, passengers []irdf.Passenger, trains []irdf.Train, stations []irdf.StationInfo) *irdf.PNRStatus {
	for i := range passengers {
		passenger := &passengers[i]

		for j := range passenger.Bookings {
			if passenger.Bookings[j].PNR == pnr {
				status := buildStatus(passenger, &passenger.Bookings[j], trains, stations)
				return &status
			}
		}
	}

	return nil
}

// AllBookings flattens every booking of every passenger into status records,
// in repository traversal order. Callers apply their own sorting.
func AllBookings(passengers []irdf.Passenger, trains []irdf.Train, stations []irdf.StationInfo) []irdf.PNRStatus {
	var statuses []irdf.PNRStatus

	for i := range passengers {
		passenger := &passengers[i]

		for j := range passenger.Bookings {
			statuses = append(statuses, buildStatus(passenger, &passenger.Bookings[j], trains, stations))
		}
	}

	return statuses
}

func buildStatus(passenger *irdf.Passenger, booking *irdf.Booking, trains []irdf.Train, stations []irdf.StationInfo) irdf.PNRStatus {
	trainName := irdf.UnknownTrainName
	for i := range trains {
		if trains[i].TrainNumber == booking.TrainNumber {
			trainName = trains[i].TrainName
			break
		}
	}

	return irdf.PNRStatus{
		PNR:         booking.PNR,
		TrainNumber: booking.TrainNumber,
		TrainName:   trainName,

		JourneyDate: booking.JourneyDate,

		From:            booking.From,
		To:              booking.To,
		FromStationName: stationName(booking.From, stations),
		ToStationName:   stationName(booking.To, stations),

		ClassCode:  booking.ClassCode,
		SeatNumber: booking.SeatNumber,
		Fare:       booking.Fare,
		Status:     booking.Status,

		Passenger: irdf.PNRPassenger{
			Name:   passenger.Name,
			Age:    passenger.Age,
			Gender: passenger.Gender,
		},
	}
}

// stationName resolves a station code to its display name, keeping the raw
// code when the station is unknown.
func stationName(code string, stations []irdf.StationInfo) string {
	for i := range stations {
		if stations[i].Code == code {
			return stations[i].Name
		}
	}
	return code
}
