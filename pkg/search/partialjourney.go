package search

import (
	"sort"

	"github.com/railbooker/railbooker/pkg/irdf"
)

const transferBufferMinutes = 45

// Legacy assumptions, used only when a leg's own duration string cannot be
// parsed.
const fallbackFirstLegMinutes = 180
const fallbackSecondLegMinutes = 240

const maxPartialJourneySuggestions = 10

// FindPartialJourneys synthesises two-train itineraries through a junction
// station for routes where direct trains may be insufficient. Results are
// ranked by total duration, then transfer count, and truncated to the top
// suggestions. Incomplete criteria yield no results.
func FindPartialJourneys(criteria irdf.SearchCriteria, trains []irdf.Train) []irdf.PartialJourney {
	if criteria.FromStation == nil || criteria.ToStation == nil {
		return nil
	}

	from := *criteria.FromStation
	to := *criteria.ToStation

	var journeys []irdf.PartialJourney

	for _, junction := range junctionStations() {
		if junction.Code == from.Code || junction.Code == to.Code {
			continue
		}

		var firstLegTrains []irdf.Train
		var secondLegTrains []irdf.Train

		for _, train := range trains {
			if coversSegment(&train, from, junction) {
				firstLegTrains = append(firstLegTrains, train)
			}
			if coversSegment(&train, junction, to) {
				secondLegTrains = append(secondLegTrains, train)
			}
		}

		for _, firstTrain := range firstLegTrains {
			for _, secondTrain := range secondLegTrains {
				// No transferring onto the same train.
				if firstTrain.TrainNumber == secondTrain.TrainNumber {
					continue
				}

				journeys = append(journeys, buildPartialJourney(firstTrain, secondTrain, from, junction, to))
			}
		}
	}

	sort.SliceStable(journeys, func(i, j int) bool {
		durationI := durationMinutes(journeys[i].TotalDuration)
		durationJ := durationMinutes(journeys[j].TotalDuration)
		if durationI != durationJ {
			return durationI < durationJ
		}
		return journeys[i].TransferCount < journeys[j].TransferCount
	})

	if len(journeys) > maxPartialJourneySuggestions {
		journeys = journeys[:maxPartialJourneySuggestions]
	}

	return journeys
}

// coversSegment checks the train's ordered stop list: it covers from->to iff
// both appear and from precedes to. Trains without a stop list only cover
// their own full endpoint-to-endpoint route.
func coversSegment(train *irdf.Train, from irdf.StationInfo, to irdf.StationInfo) bool {
	if len(train.Stations) == 0 {
		return train.SourceCode != "" && train.SourceCode == from.Code &&
			train.DestinationCode != "" && train.DestinationCode == to.Code
	}

	fromPosition := stopPosition(train, from.Code)
	toPosition := stopPosition(train, to.Code)

	return fromPosition >= 0 && toPosition >= 0 && fromPosition < toPosition
}

func stopPosition(train *irdf.Train, stationCode string) int {
	for i, stop := range train.Stations {
		if stop.Code == stationCode {
			return i
		}
	}
	return -1
}

func buildPartialJourney(firstTrain irdf.Train, secondTrain irdf.Train, from irdf.StationInfo, junction irdf.StationInfo, to irdf.StationInfo) irdf.PartialJourney {
	firstLegMinutes := legMinutes(&firstTrain, fallbackFirstLegMinutes)
	secondLegMinutes := legMinutes(&secondTrain, fallbackSecondLegMinutes)

	firstDeparture := clockMinutes(firstTrain.DepartureTime)
	firstArrival := firstDeparture + firstLegMinutes
	secondDeparture := firstArrival + transferBufferMinutes
	secondArrival := secondDeparture + secondLegMinutes

	totalDuration := wallClockDuration(firstDeparture, secondArrival)

	firstSegment := irdf.RouteSegment{
		Train:            firstTrain,
		FromStation:      from,
		ToStation:        junction,
		DepartureTime:    firstTrain.DepartureTime,
		ArrivalTime:      irdf.FormatClock(firstArrival),
		Duration:         irdf.FormatDuration(firstLegMinutes),
		AvailableClasses: classCodes(firstTrain.AvailableClasses),
	}

	secondSegment := irdf.RouteSegment{
		Train:            secondTrain,
		FromStation:      junction,
		ToStation:        to,
		DepartureTime:    irdf.FormatClock(secondDeparture),
		ArrivalTime:      irdf.FormatClock(secondArrival),
		Duration:         irdf.FormatDuration(secondLegMinutes),
		AvailableClasses: classCodes(secondTrain.AvailableClasses),
		IsTransfer:       true,
		TransferTime:     irdf.FormatDuration(transferBufferMinutes),
	}

	return irdf.PartialJourney{
		Train:            firstTrain,
		FromStation:      from,
		ToStation:        to,
		DepartureTime:    firstTrain.DepartureTime,
		ArrivalTime:      irdf.FormatClock(secondArrival),
		Duration:         totalDuration,
		AvailableClasses: commonClasses(firstTrain.AvailableClasses, secondTrain.AvailableClasses),
		IsPartialRoute:   true,
		RouteSegments:    []irdf.RouteSegment{firstSegment, secondSegment},
		TotalDuration:    totalDuration,
		TransferCount:    1,
	}
}

func legMinutes(train *irdf.Train, fallback int) int {
	if minutes, ok := irdf.ParseDurationMinutes(train.Duration); ok {
		return minutes
	}
	return fallback
}

// wallClockDuration is the clock-face difference between departure and final
// arrival, wrapping forward a day when the arrival lands past midnight.
func wallClockDuration(departureMinutes int, arrivalMinutes int) string {
	difference := arrivalMinutes%(24*60) - departureMinutes%(24*60)
	if difference < 0 {
		difference += 24 * 60
	}
	return irdf.FormatDuration(difference)
}

func classCodes(classes []irdf.TrainClassAvailability) []string {
	var codes []string
	for _, class := range classes {
		codes = append(codes, class.Code)
	}
	return codes
}

func commonClasses(first []irdf.TrainClassAvailability, second []irdf.TrainClassAvailability) []string {
	secondCodes := map[string]bool{}
	for _, class := range second {
		secondCodes[class.Code] = true
	}

	var common []string
	for _, class := range first {
		if secondCodes[class.Code] {
			common = append(common, class.Code)
		}
	}
	return common
}
