package farescsv

import (
	"context"
	"io"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/okiferry/okiferry/pkg/database"
	"github.com/okiferry/okiferry/pkg/ftdf"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FaresCSV imports the base adult/child fare table, one row per port pair
// per service.
type FaresCSV struct {
	rows []*fareRow
}

type fareRow struct {
	DeparturePort string `csv:"departure_port"`
	ArrivalPort   string `csv:"arrival_port"`
	Service       string `csv:"service"`
	Adult         int    `csv:"adult"`
	Child         int    `csv:"child"`
}

func (f *FaresCSV) ParseFile(reader io.Reader) error {
	return gocsv.Unmarshal(reader, &f.rows)
}

func (f *FaresCSV) Import(datasource *ftdf.DataSourceReference) error {
	now := time.Now()

	var operations []mongo.WriteModel

	for _, row := range f.rows {
		fare := &ftdf.Fare{
			DeparturePortRef:     row.DeparturePort,
			ArrivalPortRef:       row.ArrivalPort,
			ServiceName:          row.Service,
			Adult:                row.Adult,
			Child:                row.Child,
			ModificationDateTime: now,
			DataSource:           datasource,
		}

		operation := mongo.NewReplaceOneModel().
			SetFilter(bson.M{
				"departureportref": fare.DeparturePortRef,
				"arrivalportref":   fare.ArrivalPortRef,
				"servicename":      fare.ServiceName,
			}).
			SetReplacement(fare).
			SetUpsert(true)

		operations = append(operations, operation)
	}

	if len(operations) == 0 {
		return nil
	}

	faresCollection := database.GetCollection("fares")

	startTime := time.Now()
	_, err := faresCollection.BulkWrite(context.Background(), operations, &options.BulkWriteOptions{})
	log.Info().Int("Length", len(operations)).Str("Time", time.Since(startTime).String()).Msg("Bulk write Fares")

	return err
}
