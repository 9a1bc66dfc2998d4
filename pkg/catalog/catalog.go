package catalog

import (
	"strings"

	"github.com/railbooker/railbooker/pkg/irdf"
)

// Catalog is a read-only snapshot of the reference datasets for a session.
// It is safe for concurrent readers because nothing mutates it after New.
type Catalog struct {
	trains     []irdf.Train
	stations   []irdf.StationInfo
	passengers []irdf.Passenger

	trainByNumber map[string]*irdf.Train
	stationByCode map[string]*irdf.StationInfo
	stationByName map[string]*irdf.StationInfo
}

func New(trains []irdf.Train, stations []irdf.StationInfo, passengers []irdf.Passenger) *Catalog {
	c := &Catalog{
		trains:     trains,
		stations:   stations,
		passengers: passengers,

		trainByNumber: map[string]*irdf.Train{},
		stationByCode: map[string]*irdf.StationInfo{},
		stationByName: map[string]*irdf.StationInfo{},
	}

	for i := range c.stations {
		station := &c.stations[i]
		c.stationByCode[station.Code] = station

		// First station wins on a duplicated display name. Codes are the
		// canonical key; names are presentational.
		if _, exists := c.stationByName[station.Name]; !exists {
			c.stationByName[station.Name] = station
		}
	}

	for i := range c.trains {
		train := &c.trains[i]
		c.trainByNumber[train.TrainNumber] = train

		resolveEndpointCodes(train, c.stationByName)
	}

	return c
}

// Empty is the fallback snapshot when every data source fails to load.
func Empty() *Catalog {
	return New(nil, nil, nil)
}

// resolveEndpointCodes fills in the canonical endpoint codes for trains whose
// feed record carried only display names and no route stop list.
func resolveEndpointCodes(train *irdf.Train, byName map[string]*irdf.StationInfo) {
	if train.SourceCode == "" {
		if station := byName[train.Source]; station != nil {
			train.SourceCode = station.Code
		}
	}
	if train.DestinationCode == "" {
		if station := byName[train.Destination]; station != nil {
			train.DestinationCode = station.Code
		}
	}
}

func (c *Catalog) Trains() []irdf.Train {
	return c.trains
}

func (c *Catalog) Stations() []irdf.StationInfo {
	return c.stations
}

func (c *Catalog) Passengers() []irdf.Passenger {
	return c.passengers
}

func (c *Catalog) TrainByNumber(trainNumber string) *irdf.Train {
	return c.trainByNumber[trainNumber]
}

func (c *Catalog) StationByCode(code string) *irdf.StationInfo {
	return c.stationByCode[code]
}

// StationNameByCode resolves a code to a display name, falling back to the
// raw code when the station is unknown.
func (c *Catalog) StationNameByCode(code string) string {
	if station := c.stationByCode[code]; station != nil {
		return station.Name
	}
	return code
}

// SearchStations does the case-insensitive substring filter behind station
// autocomplete. An empty query returns the whole list.
func (c *Catalog) SearchStations(query string) []irdf.StationInfo {
	if query == "" {
		return c.stations
	}

	query = strings.ToLower(query)

	var matches []irdf.StationInfo
	for _, station := range c.stations {
		if strings.Contains(strings.ToLower(station.Name), query) ||
			strings.Contains(strings.ToLower(station.Code), query) {
			matches = append(matches, station)
		}
	}
	return matches
}
