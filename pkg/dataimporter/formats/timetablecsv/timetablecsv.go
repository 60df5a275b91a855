package timetablecsv

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/okiferry/okiferry/pkg/database"
	"github.com/okiferry/okiferry/pkg/ftdf"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TimetableCSV imports the operator's scheduled sailings spreadsheet.
type TimetableCSV struct {
	rows []*timetableRow
}

type timetableRow struct {
	TripID        string         `csv:"trip_id"`
	Service       string         `csv:"service"`
	DeparturePort string         `csv:"departure_port"`
	ArrivalPort   string         `csv:"arrival_port"`
	DepartureTime ftdf.ClockTime `csv:"departure_time"`
	ArrivalTime   ftdf.ClockTime `csv:"arrival_time"`
	ValidFrom     string         `csv:"valid_from"`
	ValidUntil    string         `csv:"valid_until"`
	DaysOfWeek    string         `csv:"days_of_week"`
	NextTripID    string         `csv:"next_trip_id"`
	BaseStatus    int            `csv:"base_status"`
}

var weekdayNames = map[string]time.Weekday{
	"Sun": time.Sunday,
	"Mon": time.Monday,
	"Tue": time.Tuesday,
	"Wed": time.Wednesday,
	"Thu": time.Thursday,
	"Fri": time.Friday,
	"Sat": time.Saturday,
}

func (t *TimetableCSV) ParseFile(reader io.Reader) error {
	return gocsv.Unmarshal(reader, &t.rows)
}

func (t *TimetableCSV) Import(datasource *ftdf.DataSourceReference) error {
	now := time.Now()

	var operations []mongo.WriteModel

	for _, row := range t.rows {
		trip, err := row.toTrip(datasource, now)
		if err != nil {
			log.Error().Err(err).Str("trip", row.TripID).Msg("Skipping invalid timetable row")
			continue
		}

		operation := mongo.NewReplaceOneModel().
			SetFilter(bson.M{"primaryidentifier": trip.PrimaryIdentifier}).
			SetReplacement(trip).
			SetUpsert(true)

		operations = append(operations, operation)
	}

	if len(operations) == 0 {
		return nil
	}

	tripsCollection := database.GetCollection("trips")

	startTime := time.Now()
	_, err := tripsCollection.BulkWrite(context.Background(), operations, &options.BulkWriteOptions{})
	log.Info().Int("Length", len(operations)).Str("Time", time.Since(startTime).String()).Msg("Bulk write Trips")

	return err
}

func (row *timetableRow) toTrip(datasource *ftdf.DataSourceReference, now time.Time) (*ftdf.Trip, error) {
	validFrom, err := time.Parse(ftdf.YearMonthDayFormat, row.ValidFrom)
	if err != nil {
		return nil, err
	}

	trip := &ftdf.Trip{
		PrimaryIdentifier:    row.TripID,
		ModificationDateTime: now,
		DataSource:           datasource,
		ServiceName:          row.Service,
		DeparturePortRef:     row.DeparturePort,
		ArrivalPortRef:       row.ArrivalPort,
		DepartureTime:        row.DepartureTime,
		ArrivalTime:          row.ArrivalTime,
		ValidFrom:            validFrom,
		NextTripRef:          row.NextTripID,
		BaseStatus:           ftdf.StatusCode(row.BaseStatus),
	}

	// An empty valid_until column means the sailing runs until a new
	// timetable season replaces it.
	if row.ValidUntil != "" {
		validUntil, err := time.Parse(ftdf.YearMonthDayFormat, row.ValidUntil)
		if err != nil {
			return nil, err
		}
		trip.ValidUntil = &validUntil
	}

	if row.DaysOfWeek != "" {
		for _, name := range strings.Split(row.DaysOfWeek, "|") {
			if weekday, ok := weekdayNames[name]; ok {
				trip.DaysOfWeek = append(trip.DaysOfWeek, weekday)
			}
		}
	}

	return trip, nil
}
