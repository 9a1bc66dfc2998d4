package catalog

import (
	"testing"

	"github.com/railbooker/railbooker/pkg/irdf"
)

func snapshot() *Catalog {
	stations := []irdf.StationInfo{
		{Code: "NDLS", Name: "New Delhi"},
		{Code: "MMCT", Name: "Mumbai Central"},
		{Code: "BCT", Name: "Mumbai Central"}, // duplicate display name
		{Code: "MAS", Name: "Chennai Central"},
	}
	trains := []irdf.Train{
		{TrainNumber: "12951", TrainName: "Mumbai Rajdhani", Source: "New Delhi", Destination: "Mumbai Central"},
		{TrainNumber: "12621", TrainName: "Tamil Nadu Express", Source: "New Delhi", Destination: "Chennai Central", SourceCode: "NDLS", DestinationCode: "MAS"},
	}
	return New(trains, stations, nil)
}

func TestNewResolvesEndpointCodesFromNames(t *testing.T) {
	c := snapshot()

	train := c.TrainByNumber("12951")
	if train == nil {
		t.Fatal("expected train 12951 in the index")
	}
	if train.SourceCode != "NDLS" {
		t.Errorf("source code = %q, want NDLS", train.SourceCode)
	}
	// "Mumbai Central" is ambiguous; the first station in feed order wins.
	if train.DestinationCode != "MMCT" {
		t.Errorf("destination code = %q, want MMCT", train.DestinationCode)
	}
}

func TestNewKeepsExistingEndpointCodes(t *testing.T) {
	c := snapshot()

	train := c.TrainByNumber("12621")
	if train.SourceCode != "NDLS" || train.DestinationCode != "MAS" {
		t.Errorf("pre-resolved codes were rewritten: %s -> %s", train.SourceCode, train.DestinationCode)
	}
}

func TestStationNameByCodeFallsBackToCode(t *testing.T) {
	c := snapshot()

	if got := c.StationNameByCode("MAS"); got != "Chennai Central" {
		t.Errorf("StationNameByCode(MAS) = %q", got)
	}
	if got := c.StationNameByCode("XXXX"); got != "XXXX" {
		t.Errorf("unknown code should fall back to itself, got %q", got)
	}
}

func TestSearchStations(t *testing.T) {
	c := snapshot()

	if got := c.SearchStations(""); len(got) != 4 {
		t.Errorf("empty query should return all stations, got %d", len(got))
	}

	byName := c.SearchStations("central")
	if len(byName) != 3 {
		t.Fatalf("expected 3 matches for 'central', got %d", len(byName))
	}

	byCode := c.SearchStations("ndls")
	if len(byCode) != 1 || byCode[0].Code != "NDLS" {
		t.Errorf("expected code match for 'ndls', got %v", byCode)
	}

	if got := c.SearchStations("zzz"); len(got) != 0 {
		t.Errorf("expected no matches for 'zzz', got %d", len(got))
	}
}

func TestEmptyCatalogLookups(t *testing.T) {
	c := Empty()

	if c.TrainByNumber("12951") != nil {
		t.Error("empty catalog returned a train")
	}
	if c.StationByCode("NDLS") != nil {
		t.Error("empty catalog returned a station")
	}
	if got := c.SearchStations("delhi"); len(got) != 0 {
		t.Errorf("empty catalog returned %d stations", len(got))
	}
}
