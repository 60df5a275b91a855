package databaselookup

import (
	"context"
	"errors"

	"github.com/okiferry/okiferry/pkg/dataaggregator/query"
	"github.com/okiferry/okiferry/pkg/database"
	"github.com/okiferry/okiferry/pkg/ftdf"
	"go.mongodb.org/mongo-driver/bson"
)

func (s Source) PortQuery(portQuery query.Port) (*ftdf.Port, error) {
	portsCollection := database.GetCollection("ports")
	var port *ftdf.Port
	portsCollection.FindOne(context.Background(), portQuery.ToBson()).Decode(&port)

	if port == nil {
		return nil, errors.New("could not find a matching Port")
	}

	return port, nil
}

func (s Source) PortsListQuery(portsQuery query.PortsList) ([]*ftdf.Port, error) {
	portsCollection := database.GetCollection("ports")

	cursor, err := portsCollection.Find(context.Background(), bson.M{})
	if err != nil {
		return nil, err
	}

	var ports []*ftdf.Port
	if err := cursor.All(context.Background(), &ports); err != nil {
		return nil, err
	}

	return ports, nil
}
