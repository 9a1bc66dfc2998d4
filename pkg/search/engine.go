// Package search implements the train matching engine: direct route search,
// result ranking and the connecting-journey finder used by advanced search.
// Everything here is a synchronous transform over an in-memory snapshot -
// incomplete queries and empty catalogs degrade to empty results, never
// errors.
package search

import (
	"time"

	"github.com/jinzhu/copier"
	"github.com/railbooker/railbooker/pkg/irdf"
	"github.com/rs/zerolog/log"
)

// Search filters the catalog down to the trains satisfying the criteria:
// route match, class membership, and at least one running day inside the
// (possibly flexible) date window. When a specific class was requested each
// result carries only that class entry; the catalog records themselves are
// never touched.
func Search(criteria irdf.SearchCriteria, trains []irdf.Train) []irdf.Train {
	if criteria.FromStation == nil || criteria.ToStation == nil {
		log.Debug().Msg("Search criteria missing stations")
		return nil
	}

	window := irdf.ExpandSearchWindow(criteria.JourneyDate, criteria.FlexibleWithDate)

	var results []irdf.Train
	for _, train := range trains {
		if !matchesRoute(&train, criteria.FromStation, criteria.ToStation) {
			continue
		}

		if criteria.TrainClass != "" && !train.HasClass(criteria.TrainClass) {
			continue
		}

		if !runsInWindow(&train, window) {
			continue
		}

		result := train
		if criteria.TrainClass != "" {
			result = projectClass(train, criteria.TrainClass)
		}

		// Unreachable given the class filter above, but enforced as a final
		// invariant for advanced search results.
		if criteria.AdvancedSearch && criteria.TrainClass != "" && len(result.AvailableClasses) == 0 {
			continue
		}

		results = append(results, result)
	}

	return results
}

// matchesRoute compares endpoints by station code when both sides carry one,
// with exact display-name equality as the fallback for records that never
// resolved a code.
func matchesRoute(train *irdf.Train, from *irdf.StationInfo, to *irdf.StationInfo) bool {
	sourceMatch := train.Source == from.Name
	if train.SourceCode != "" && from.Code != "" {
		sourceMatch = train.SourceCode == from.Code
	}

	destinationMatch := train.Destination == to.Name
	if train.DestinationCode != "" && to.Code != "" {
		destinationMatch = train.DestinationCode == to.Code
	}

	return sourceMatch && destinationMatch
}

// runsInWindow is existential: any one matching day in the window is enough.
func runsInWindow(train *irdf.Train, window []time.Time) bool {
	for _, date := range window {
		if train.RunsOnDate(date) {
			return true
		}
	}
	return false
}

// projectClass deep-copies the train and keeps only the requested class in
// the copy, leaving the underlying catalog record intact.
func projectClass(train irdf.Train, classCode string) irdf.Train {
	var projected irdf.Train
	if err := copier.CopyWithOption(&projected, &train, copier.Option{DeepCopy: true}); err != nil {
		log.Error().Err(err).Str("train", train.TrainNumber).Msg("Failed to copy train for class projection")
		projected = train
	}

	var classes []irdf.TrainClassAvailability
	for _, class := range projected.AvailableClasses {
		if class.Code == classCode {
			classes = append(classes, class)
		}
	}
	projected.AvailableClasses = classes

	return projected
}
