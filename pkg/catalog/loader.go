package catalog

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/railbooker/railbooker/pkg/irdf"
	"github.com/rs/zerolog/log"
)

// Raw feed shapes. The upstream train feed uses classCode/className on class
// entries - the loader renames them so the rest of the system only ever sees
// code/name.
type rawTrainClass struct {
	ClassCode      string  `json:"classCode"`
	ClassName      string  `json:"className"`
	Fare           float64 `json:"fare"`
	AvailableSeats int     `json:"availableSeats"`
	WaitingList    int     `json:"waitingList"`
}

type rawRouteStation struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	ArrivalTime   *string `json:"arrivalTime"`
	DepartureTime *string `json:"departureTime"`
	Distance      int     `json:"distance"`
}

type rawTrain struct {
	TrainNumber      string            `json:"trainNumber"`
	TrainName        string            `json:"trainName"`
	Source           string            `json:"source"`
	Destination      string            `json:"destination"`
	DepartureTime    string            `json:"departureTime"`
	ArrivalTime      string            `json:"arrivalTime"`
	Duration         string            `json:"duration"`
	RunningDays      []irdf.RunningDay `json:"runningDays"`
	AvailableClasses []rawTrainClass   `json:"availableClasses"`
	Stations         []rawRouteStation `json:"stations"`
}

// DecodeTrains reads the raw train feed and normalises it into domain
// records: class fields renamed, availability status derived from seat
// counts, endpoint codes derived from the route stop list when present.
func DecodeTrains(r io.Reader) ([]irdf.Train, error) {
	var rawTrains []rawTrain
	if err := json.NewDecoder(r).Decode(&rawTrains); err != nil {
		return nil, err
	}

	trains := make([]irdf.Train, 0, len(rawTrains))
	for _, raw := range rawTrains {
		train := irdf.Train{
			TrainNumber:   raw.TrainNumber,
			TrainName:     raw.TrainName,
			Source:        raw.Source,
			Destination:   raw.Destination,
			DepartureTime: raw.DepartureTime,
			ArrivalTime:   raw.ArrivalTime,
			Duration:      raw.Duration,
			RunningDays:   raw.RunningDays,
		}

		for _, class := range raw.AvailableClasses {
			train.AvailableClasses = append(train.AvailableClasses, irdf.TrainClassAvailability{
				Code:           class.ClassCode,
				Name:           class.ClassName,
				Fare:           class.Fare,
				AvailableSeats: class.AvailableSeats,
				WaitingList:    class.WaitingList,
				Status:         irdf.DeriveClassStatus(class.AvailableSeats),
			})
		}

		for _, stop := range raw.Stations {
			train.Stations = append(train.Stations, irdf.RouteStation{
				Code:          stop.Code,
				Name:          stop.Name,
				ArrivalTime:   stop.ArrivalTime,
				DepartureTime: stop.DepartureTime,
				Distance:      stop.Distance,
			})
		}

		if len(train.Stations) > 0 {
			train.SourceCode = train.Stations[0].Code
			train.DestinationCode = train.Stations[len(train.Stations)-1].Code
		}

		trains = append(trains, train)
	}

	return trains, nil
}

func DecodeStations(r io.Reader) ([]irdf.StationInfo, error) {
	var stations []irdf.StationInfo
	if err := json.NewDecoder(r).Decode(&stations); err != nil {
		return nil, err
	}
	return stations, nil
}

func DecodePassengers(r io.Reader) ([]irdf.Passenger, error) {
	var passengers []irdf.Passenger
	if err := json.NewDecoder(r).Decode(&passengers); err != nil {
		return nil, err
	}
	return passengers, nil
}

const (
	TrainsFilename     = "trains.json"
	StationsFilename   = "stations.json"
	PassengersFilename = "passengers.json"
)

// FromFiles loads a catalog snapshot from a directory of JSON datasets.
// Each dataset fails soft to empty - a missing or corrupt file is logged and
// the rest of the catalog still loads.
func FromFiles(directory string) *Catalog {
	trains := loadDataset(filepath.Join(directory, TrainsFilename), DecodeTrains)
	stations := loadDataset(filepath.Join(directory, StationsFilename), DecodeStations)
	passengers := loadDataset(filepath.Join(directory, PassengersFilename), DecodePassengers)

	log.Info().
		Int("trains", len(trains)).
		Int("stations", len(stations)).
		Int("passengers", len(passengers)).
		Str("directory", directory).
		Msg("Loaded catalog from files")

	return New(trains, stations, passengers)
}

func loadDataset[T any](path string, decode func(io.Reader) ([]T, error)) []T {
	file, err := os.Open(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Failed to open dataset")
		return nil
	}
	defer file.Close()

	records, err := decode(file)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Failed to decode dataset")
		return nil
	}

	return records
}
