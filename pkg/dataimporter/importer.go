package dataimporter

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/kr/pretty"
	"github.com/railbooker/railbooker/pkg/catalog"
	"github.com/railbooker/railbooker/pkg/database"
	"github.com/rs/zerolog/log"
)

// ImportDirectory replaces the database copies of the three reference
// datasets with the contents of the given directory. Each dataset is
// imported independently; a failure on one does not block the others.
func ImportDirectory(ctx context.Context, directory string, verbose bool) error {
	importDataset(ctx, filepath.Join(directory, catalog.TrainsFilename), database.TrainsCollection, catalog.DecodeTrains, verbose)
	importDataset(ctx, filepath.Join(directory, catalog.StationsFilename), database.StationsCollection, catalog.DecodeStations, verbose)
	importDataset(ctx, filepath.Join(directory, catalog.PassengersFilename), database.PassengersCollection, catalog.DecodePassengers, verbose)

	return nil
}

func importDataset[T any](ctx context.Context, path string, collectionName string, decode func(io.Reader) ([]T, error), verbose bool) {
	file, err := os.Open(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to open dataset")
		return
	}
	defer file.Close()

	records, err := decode(file)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to decode dataset")
		return
	}

	collection := database.GetCollection(collectionName)
	if err := collection.Drop(ctx); err != nil {
		log.Error().Err(err).Str("collection", collectionName).Msg("Failed to drop collection")
		return
	}

	if len(records) > 0 {
		documents := make([]interface{}, len(records))
		for i, record := range records {
			documents[i] = record
		}

		if _, err := collection.InsertMany(ctx, documents); err != nil {
			log.Error().Err(err).Str("collection", collectionName).Msg("Failed to insert records")
			return
		}
	}

	log.Info().Int("records", len(records)).Str("collection", collectionName).Msg("Imported dataset")

	if verbose && len(records) > 0 {
		log.Debug().Msgf("First record: %# v", pretty.Formatter(records[0]))
	}
}
