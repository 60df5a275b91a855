package databaselookup

import (
	"context"
	"errors"

	"github.com/okiferry/okiferry/pkg/dataaggregator/query"
	"github.com/okiferry/okiferry/pkg/database"
	"github.com/okiferry/okiferry/pkg/ftdf"
	"go.mongodb.org/mongo-driver/bson"
)

func (s Source) OperationalStatusQuery(statusQuery query.OperationalStatus) (*ftdf.OperationalStatus, error) {
	statusCollection := database.GetCollection("operational_status")
	var status *ftdf.OperationalStatus
	statusCollection.FindOne(context.Background(), statusQuery.ToBson()).Decode(&status)

	if status == nil {
		return nil, errors.New("could not find a matching Operational Status")
	}

	return status, nil
}

func (s Source) OperationalStatusSnapshotQuery(snapshotQuery query.OperationalStatusSnapshot) (map[string]*ftdf.OperationalStatus, error) {
	statusCollection := database.GetCollection("operational_status")

	cursor, err := statusCollection.Find(context.Background(), bson.M{})
	if err != nil {
		return nil, err
	}

	statuses := map[string]*ftdf.OperationalStatus{}

	for cursor.Next(context.Background()) {
		var status ftdf.OperationalStatus
		if err := cursor.Decode(&status); err != nil {
			return nil, err
		}

		statuses[status.ServiceName] = &status
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return statuses, nil
}
