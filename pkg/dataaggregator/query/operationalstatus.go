package query

import "go.mongodb.org/mongo-driver/bson"

type OperationalStatus struct {
	ServiceName string
}

func (o *OperationalStatus) ToBson() bson.M {
	if o.ServiceName != "" {
		return bson.M{"servicename": o.ServiceName}
	}

	return nil
}

// OperationalStatusSnapshot asks for the latest advisory of every service,
// keyed by service name. Services without a current advisory are absent.
type OperationalStatusSnapshot struct {
}
