package search

import (
	"testing"

	"github.com/railbooker/railbooker/pkg/irdf"
)

func pricedTrain(number string, departure string, duration string, fares ...float64) irdf.Train {
	train := irdf.Train{
		TrainNumber:   number,
		DepartureTime: departure,
		Duration:      duration,
	}
	for _, fare := range fares {
		train.AvailableClasses = append(train.AvailableClasses, irdf.TrainClassAvailability{
			Code: "SL", Fare: fare, AvailableSeats: 10, Status: irdf.ClassAvailabilityStatusAvailable,
		})
	}
	return train
}

func TestSortTrainsByDeparture(t *testing.T) {
	trains := []irdf.Train{
		pricedTrain("1", "17:00", "2h 00m", 100),
		pricedTrain("2", "06:15", "2h 00m", 100),
		pricedTrain("3", "09:30", "2h 00m", 100),
	}

	sorted := SortTrains(trains, SortByDeparture)

	assertOrder(t, sorted, "2", "3", "1")
}

func TestSortTrainsByDurationMalformedSortsFirst(t *testing.T) {
	trains := []irdf.Train{
		pricedTrain("1", "06:00", "15h 30m", 100),
		pricedTrain("2", "06:00", "not a duration", 100),
		pricedTrain("3", "06:00", "2h 05m", 100),
	}

	sorted := SortTrains(trains, SortByDuration)

	assertOrder(t, sorted, "2", "3", "1")
}

func TestSortTrainsByFareEmptyClassesSortLast(t *testing.T) {
	trains := []irdf.Train{
		pricedTrain("1", "06:00", "2h 00m", 200),
		pricedTrain("2", "06:00", "2h 00m"), // no classes, undefined minimum
		pricedTrain("3", "06:00", "2h 00m", 100),
	}

	sorted := SortTrains(trains, SortByFare)

	assertOrder(t, sorted, "3", "1", "2")
}

func TestSortTrainsByFareUsesMinimumAcrossClasses(t *testing.T) {
	expensive := pricedTrain("1", "06:00", "2h 00m", 900, 150)
	cheap := pricedTrain("2", "06:00", "2h 00m", 200)

	sorted := SortTrains([]irdf.Train{cheap, expensive}, SortByFare)

	// 150 is the minimum of train 1 even though its first class costs 900.
	assertOrder(t, sorted, "1", "2")
}

func TestSortTrainsStability(t *testing.T) {
	trains := []irdf.Train{
		pricedTrain("1", "09:30", "2h 00m", 100),
		pricedTrain("2", "09:30", "2h 00m", 100),
		pricedTrain("3", "06:00", "2h 00m", 100),
		pricedTrain("4", "09:30", "2h 00m", 100),
	}

	sorted := SortTrains(trains, SortByDeparture)
	assertOrder(t, sorted, "3", "1", "2", "4")

	// Sorting twice with no data change yields an identical ordering.
	again := SortTrains(sorted, SortByDeparture)
	assertOrder(t, again, "3", "1", "2", "4")
}

func TestSortTrainsDoesNotMutateInput(t *testing.T) {
	trains := []irdf.Train{
		pricedTrain("1", "17:00", "2h 00m", 100),
		pricedTrain("2", "06:15", "2h 00m", 100),
	}

	SortTrains(trains, SortByDeparture)

	assertOrder(t, trains, "1", "2")
}

func TestSortBookings(t *testing.T) {
	bookings := []irdf.PNRStatus{
		{PNR: "1", Fare: 500, JourneyDate: "2026-09-10", Status: "waiting"},
		{PNR: "2", Fare: 100, JourneyDate: "2026-09-08", Status: "confirmed"},
		{PNR: "3", Fare: 300, JourneyDate: "2026-09-09", Status: "confirmed"},
	}

	byFare := SortBookings(bookings, BookingSortByFare)
	if byFare[0].PNR != "2" || byFare[2].PNR != "1" {
		t.Errorf("fare sort order wrong: %v", bookingPNRs(byFare))
	}

	byDate := SortBookings(bookings, BookingSortByDate)
	if byDate[0].PNR != "2" || byDate[2].PNR != "1" {
		t.Errorf("date sort order wrong: %v", bookingPNRs(byDate))
	}

	byStatus := SortBookings(bookings, BookingSortByStatus)
	if byStatus[2].PNR != "1" {
		t.Errorf("status sort order wrong: %v", bookingPNRs(byStatus))
	}
}

func assertOrder(t *testing.T, trains []irdf.Train, numbers ...string) {
	t.Helper()

	if len(trains) != len(numbers) {
		t.Fatalf("expected %d trains, got %d", len(numbers), len(trains))
	}
	for i, number := range numbers {
		if trains[i].TrainNumber != number {
			t.Fatalf("position %d: got train %s, want %s (full order %v)", i, trains[i].TrainNumber, number, trainNumbers(trains))
		}
	}
}

func bookingPNRs(bookings []irdf.PNRStatus) []string {
	var pnrs []string
	for _, booking := range bookings {
		pnrs = append(pnrs, booking.PNR)
	}
	return pnrs
}
