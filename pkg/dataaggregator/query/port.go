package query

import "go.mongodb.org/mongo-driver/bson"

type Port struct {
	PrimaryIdentifier string
}

func (p *Port) ToBson() bson.M {
	if p.PrimaryIdentifier != "" {
		return bson.M{"primaryidentifier": p.PrimaryIdentifier}
	}

	return nil
}

type PortsList struct {
}
