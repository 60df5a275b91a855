package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	createPortIndexes()
	createTripIndexes()
	createFareIndexes()
	createOperationalStatusIndexes()
}

func createPortIndexes() {
	portsCollection := GetCollection("ports")
	portsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "terminalrefs", Value: 1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := portsCollection.Indexes().CreateMany(context.Background(), portsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createTripIndexes() {
	tripsCollection := GetCollection("trips")
	tripsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "departureportref", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "arrivalportref", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "servicename", Value: 1}},
		},
		{
			Keys: bson.D{
				{Key: "validfrom", Value: 1},
				{Key: "validuntil", Value: 1},
			},
		},
	}

	opts := options.CreateIndexes()
	_, err := tripsCollection.Indexes().CreateMany(context.Background(), tripsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createFareIndexes() {
	faresCollection := GetCollection("fares")
	fareRouteServiceIndexName := "FareRouteService"
	faresIndex := []mongo.IndexModel{
		{
			Options: &options.IndexOptions{
				Name: &fareRouteServiceIndexName,
			},
			Keys: bson.D{
				{Key: "departureportref", Value: 1},
				{Key: "arrivalportref", Value: 1},
				{Key: "servicename", Value: 1},
			},
		},
	}

	opts := options.CreateIndexes()
	_, err := faresCollection.Indexes().CreateMany(context.Background(), faresIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createOperationalStatusIndexes() {
	statusCollection := GetCollection("operational_status")
	statusIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "servicename", Value: 1}},
		},
		{
			Keys:    bson.D{{Key: "modificationdatetime", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(24 * 3600), // Expire after 24 hours
		},
	}

	opts := options.CreateIndexes()
	_, err := statusCollection.Indexes().CreateMany(context.Background(), statusIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
