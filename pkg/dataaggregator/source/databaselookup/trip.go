package databaselookup

import (
	"context"
	"errors"

	"github.com/okiferry/okiferry/pkg/dataaggregator/query"
	"github.com/okiferry/okiferry/pkg/database"
	"github.com/okiferry/okiferry/pkg/ftdf"
	"go.mongodb.org/mongo-driver/bson"
)

func (s Source) TripQuery(tripQuery query.Trip) (*ftdf.Trip, error) {
	tripsCollection := database.GetCollection("trips")
	var trip *ftdf.Trip
	tripsCollection.FindOne(context.Background(), tripQuery.ToBson()).Decode(&trip)

	if trip == nil {
		return nil, errors.New("could not find a matching Trip")
	}

	return trip, nil
}

func (s Source) TripsSnapshotQuery(snapshotQuery query.TripsSnapshot) ([]*ftdf.Trip, error) {
	tripsCollection := database.GetCollection("trips")

	cursor, err := tripsCollection.Find(context.Background(), bson.M{})
	if err != nil {
		return nil, err
	}

	var trips []*ftdf.Trip
	if err := cursor.All(context.Background(), &trips); err != nil {
		return nil, err
	}

	return trips, nil
}
