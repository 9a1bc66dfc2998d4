package search

import (
	_ "embed"
	"sync"

	"github.com/railbooker/railbooker/pkg/irdf"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// The connecting-journey finder only considers transfers at a small set of
// major junction stations, shipped as embedded reference data.
//
//go:embed junctions.yaml
var junctionsYAML []byte

var loadJunctions sync.Once
var junctions []irdf.StationInfo

func junctionStations() []irdf.StationInfo {
	loadJunctions.Do(func() {
		var document struct {
			Junctions []irdf.StationInfo `yaml:"junctions"`
		}

		if err := yaml.Unmarshal(junctionsYAML, &document); err != nil {
			log.Error().Err(err).Msg("Failed to parse junction stations")
			return
		}

		junctions = document.Junctions
	})

	return junctions
}
