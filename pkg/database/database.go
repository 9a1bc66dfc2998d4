package database

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/railbooker/railbooker/pkg/util"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoInstance struct {
	Client   *mongo.Client
	Database *mongo.Database
}

var MongoGlobalInstance *MongoInstance

const defaultMongoConnectionString = "mongodb://localhost:27017/"
const defaultMongoDatabase = "railbooker"

func Connect() error {
	connectionString := defaultMongoConnectionString
	dbName := defaultMongoDatabase

	env := util.GetEnvironmentVariables()

	if env["RAILBOOKER_MONGODB_CONNECTION"] != "" {
		connectionString = env["RAILBOOKER_MONGODB_CONNECTION"]
	}

	if env["RAILBOOKER_MONGODB_DATABASE"] != "" {
		dbName = env["RAILBOOKER_MONGODB_DATABASE"]
	}

	connect := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(connectionString))
		if err != nil {
			return err
		}

		if err := client.Ping(ctx, nil); err != nil {
			return err
		}

		MongoGlobalInstance = &MongoInstance{
			Client:   client,
			Database: client.Database(dbName),
		}

		return nil
	}

	if err := backoff.Retry(connect, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4)); err != nil {
		return err
	}

	createIndexes()

	return nil
}

func GetCollection(collectionName string) *mongo.Collection {
	return MongoGlobalInstance.Database.Collection(collectionName)
}
