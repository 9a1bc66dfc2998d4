package search

import (
	"fmt"
	"testing"
	"time"

	"github.com/railbooker/railbooker/pkg/irdf"
)

func routedTrain(number string, departure string, duration string, stopCodes ...string) irdf.Train {
	train := irdf.Train{
		TrainNumber:   number,
		DepartureTime: departure,
		Duration:      duration,
		RunningDays:   []irdf.RunningDay{irdf.RunningDayMonday},
		AvailableClasses: []irdf.TrainClassAvailability{
			{Code: "SL", Fare: 400, AvailableSeats: 5, Status: irdf.ClassAvailabilityStatusAvailable},
			{Code: "3A", Fare: 1100, AvailableSeats: 2, Status: irdf.ClassAvailabilityStatusAvailable},
		},
	}
	for _, code := range stopCodes {
		train.Stations = append(train.Stations, irdf.RouteStation{Code: code, Name: code})
	}
	if len(stopCodes) > 0 {
		train.SourceCode = stopCodes[0]
		train.DestinationCode = stopCodes[len(stopCodes)-1]
	}
	return train
}

func connectionCriteria() irdf.SearchCriteria {
	return irdf.SearchCriteria{
		FromStation:    &irdf.StationInfo{Code: "NDLS", Name: "New Delhi"},
		ToStation:      &irdf.StationInfo{Code: "MAS", Name: "Chennai Central"},
		JourneyDate:    time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		AdvancedSearch: true,
	}
}

func TestCoversSegmentUsesStopOrder(t *testing.T) {
	train := routedTrain("1", "06:00", "10h 00m", "NDLS", "JHS", "NGP", "MAS")

	if !coversSegment(&train, irdf.StationInfo{Code: "NDLS"}, irdf.StationInfo{Code: "NGP"}) {
		t.Error("expected NDLS->NGP to be covered")
	}
	if coversSegment(&train, irdf.StationInfo{Code: "NGP"}, irdf.StationInfo{Code: "NDLS"}) {
		t.Error("expected reversed segment not to be covered")
	}
	if coversSegment(&train, irdf.StationInfo{Code: "NDLS"}, irdf.StationInfo{Code: "BZA"}) {
		t.Error("expected segment to an unserved station not to be covered")
	}
}

func TestFindPartialJourneysBuildsConnections(t *testing.T) {
	firstLeg := routedTrain("1", "06:00", "5h 00m", "NDLS", "JHS", "NGP")
	secondLeg := routedTrain("2", "14:00", "6h 00m", "NGP", "BZA", "MAS")

	journeys := FindPartialJourneys(connectionCriteria(), []irdf.Train{firstLeg, secondLeg})

	if len(journeys) != 1 {
		t.Fatalf("expected 1 connection via NGP, got %d", len(journeys))
	}

	journey := journeys[0]
	if journey.TransferCount != 1 {
		t.Errorf("transfer count = %d, want 1", journey.TransferCount)
	}
	if len(journey.RouteSegments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(journey.RouteSegments))
	}
	if journey.RouteSegments[1].FromStation.Code != "NGP" {
		t.Errorf("second leg should start at the junction, got %s", journey.RouteSegments[1].FromStation.Code)
	}

	// 06:00 + 5h leg + 45m transfer + 6h leg = 17:45 arrival, 11h 45m total.
	if journey.ArrivalTime != "17:45" {
		t.Errorf("arrival = %s, want 17:45", journey.ArrivalTime)
	}
	if journey.TotalDuration != "11h 45m" {
		t.Errorf("total duration = %s, want 11h 45m", journey.TotalDuration)
	}
}

func TestFindPartialJourneysExcludesSameTrain(t *testing.T) {
	through := routedTrain("1", "06:00", "11h 00m", "NDLS", "NGP", "MAS")

	journeys := FindPartialJourneys(connectionCriteria(), []irdf.Train{through})

	if len(journeys) != 0 {
		t.Errorf("expected no transfer onto the same train, got %d journeys", len(journeys))
	}
}

func TestFindPartialJourneysClassIntersection(t *testing.T) {
	firstLeg := routedTrain("1", "06:00", "5h 00m", "NDLS", "NGP")
	secondLeg := routedTrain("2", "14:00", "6h 00m", "NGP", "MAS")
	secondLeg.AvailableClasses = []irdf.TrainClassAvailability{
		{Code: "3A", Fare: 1000, AvailableSeats: 3, Status: irdf.ClassAvailabilityStatusAvailable},
		{Code: "1A", Fare: 3000, AvailableSeats: 1, Status: irdf.ClassAvailabilityStatusAvailable},
	}

	journeys := FindPartialJourneys(connectionCriteria(), []irdf.Train{firstLeg, secondLeg})

	if len(journeys) != 1 {
		t.Fatalf("expected 1 journey, got %d", len(journeys))
	}
	if len(journeys[0].AvailableClasses) != 1 || journeys[0].AvailableClasses[0] != "3A" {
		t.Errorf("expected class intersection [3A], got %v", journeys[0].AvailableClasses)
	}
}

func TestFindPartialJourneysWrapsMidnight(t *testing.T) {
	firstLeg := routedTrain("1", "22:00", "4h 00m", "NDLS", "NGP")
	secondLeg := routedTrain("2", "03:00", "5h 00m", "NGP", "MAS")

	journeys := FindPartialJourneys(connectionCriteria(), []irdf.Train{firstLeg, secondLeg})

	if len(journeys) != 1 {
		t.Fatalf("expected 1 journey, got %d", len(journeys))
	}

	// 22:00 + 4h = 02:00 next day, +45m +5h = 07:45; total 9h 45m.
	if journeys[0].ArrivalTime != "07:45" {
		t.Errorf("arrival = %s, want 07:45", journeys[0].ArrivalTime)
	}
	if journeys[0].TotalDuration != "9h 45m" {
		t.Errorf("total duration = %s, want 9h 45m", journeys[0].TotalDuration)
	}
}

func TestFindPartialJourneysRankedAndTruncated(t *testing.T) {
	var trains []irdf.Train

	// Twelve first-leg trains with ascending durations paired against one
	// second leg gives twelve combinations; only the fastest ten survive.
	for i := 0; i < 12; i++ {
		leg := routedTrain(fmt.Sprintf("1%02d", i), "06:00", fmt.Sprintf("%dh 00m", 3+i), "NDLS", "NGP")
		trains = append(trains, leg)
	}
	trains = append(trains, routedTrain("201", "20:00", "4h 00m", "NGP", "MAS"))

	journeys := FindPartialJourneys(connectionCriteria(), trains)

	if len(journeys) != 10 {
		t.Fatalf("expected truncation to 10 suggestions, got %d", len(journeys))
	}

	previous := -1
	for _, journey := range journeys {
		minutes, ok := irdf.ParseDurationMinutes(journey.TotalDuration)
		if !ok {
			t.Fatalf("unparsable total duration %q", journey.TotalDuration)
		}
		if minutes < previous {
			t.Fatal("journeys not sorted ascending by total duration")
		}
		previous = minutes
	}

	if journeys[0].Train.TrainNumber != "100" {
		t.Errorf("fastest first leg should rank first, got %s", journeys[0].Train.TrainNumber)
	}
}

func TestFindPartialJourneysIncompleteCriteria(t *testing.T) {
	criteria := connectionCriteria()
	criteria.FromStation = nil

	if journeys := FindPartialJourneys(criteria, nil); len(journeys) != 0 {
		t.Errorf("expected no journeys for incomplete criteria, got %d", len(journeys))
	}
}
