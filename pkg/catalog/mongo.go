package catalog

import (
	"context"

	"github.com/railbooker/railbooker/pkg/database"
	"github.com/railbooker/railbooker/pkg/irdf"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

// FromDatabase hydrates a catalog snapshot from the mongo collections the
// data-importer maintains. Any collection that cannot be read degrades to
// empty - the engine tolerates an empty catalog.
func FromDatabase(ctx context.Context) *Catalog {
	trains := loadCollection[irdf.Train](ctx, database.TrainsCollection)
	stations := loadCollection[irdf.StationInfo](ctx, database.StationsCollection)
	passengers := loadCollection[irdf.Passenger](ctx, database.PassengersCollection)

	log.Info().
		Int("trains", len(trains)).
		Int("stations", len(stations)).
		Int("passengers", len(passengers)).
		Msg("Loaded catalog from database")

	return New(trains, stations, passengers)
}

func loadCollection[T any](ctx context.Context, collectionName string) []T {
	collection := database.GetCollection(collectionName)

	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		log.Warn().Err(err).Str("collection", collectionName).Msg("Failed to query collection")
		return nil
	}
	defer cursor.Close(ctx)

	var records []T
	if err := cursor.All(ctx, &records); err != nil {
		log.Warn().Err(err).Str("collection", collectionName).Msg("Failed to decode collection")
		return nil
	}

	return records
}
