package databaselookup

import (
	"context"

	"github.com/okiferry/okiferry/pkg/dataaggregator/query"
	"github.com/okiferry/okiferry/pkg/database"
	"github.com/okiferry/okiferry/pkg/ftdf"
	"go.mongodb.org/mongo-driver/bson"
)

func (s Source) FaresSnapshotQuery(snapshotQuery query.FaresSnapshot) ([]*ftdf.Fare, error) {
	faresCollection := database.GetCollection("fares")

	cursor, err := faresCollection.Find(context.Background(), bson.M{})
	if err != nil {
		return nil, err
	}

	var fares []*ftdf.Fare
	if err := cursor.All(context.Background(), &fares); err != nil {
		return nil, err
	}

	return fares, nil
}
