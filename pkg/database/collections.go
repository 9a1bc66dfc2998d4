package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	TrainsCollection     = "trains"
	StationsCollection   = "stations"
	PassengersCollection = "passengers"
)

func createIndexes() {
	trainsCollection := GetCollection(TrainsCollection)
	_, err := trainsCollection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "trainnumber", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "sourcecode", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "destinationcode", Value: 1}},
		},
	}, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}

	stationsCollection := GetCollection(StationsCollection)
	_, err = stationsCollection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "code", Value: 1}},
		},
	}, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}

	passengersCollection := GetCollection(PassengersCollection)
	_, err = passengersCollection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "bookings.pnr", Value: 1}},
		},
	}, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
