package statusfeed

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/okiferry/okiferry/pkg/ftdf"
)

// SnapshotCacheKey is the redis key holding the latest full status snapshot,
// a JSON map of service name to OperationalStatus. Search reads this key;
// only the status feed consumer writes it.
const SnapshotCacheKey = "okiferry/statusfeed/snapshot"

// QueueName is the rmq queue raw advisories travel through between the
// poller and the consumer.
const QueueName = "status-feed-queue"

// feedDocument is the upstream advisory schema, one document per service.
type feedDocument struct {
	Service string `json:"service"`
	Updated string `json:"updated"`

	Alert  bool   `json:"alert"`
	Status string `json:"status"`

	EffectiveFrom string `json:"effective_from"`

	Title string `json:"title"`
	Text  string `json:"text"`

	ExtraSailings []feedExtraSailing `json:"extra_sailings"`
}

// feedExtraSailing field names deliberately line up with ftdf.Trip so that
// copier can lift them straight across.
type feedExtraSailing struct {
	DeparturePortRef string         `json:"departure_port"`
	ArrivalPortRef   string         `json:"arrival_port"`
	DepartureTime    ftdf.ClockTime `json:"departure_time"`
	ArrivalTime      ftdf.ClockTime `json:"arrival_time"`
}

var feedStatusCodes = map[string]ftdf.StatusCode{
	"normal":         ftdf.StatusNormal,
	"cancelled":      ftdf.StatusCancelled,
	"partial-cancel": ftdf.StatusPartialCancel,
	"changed":        ftdf.StatusChanged,
	"extra":          ftdf.StatusExtra,
}

// ParseFeedDocument turns a raw advisory payload into an OperationalStatus,
// synthesizing the feed's extra sailings as Trips in the reserved extra-trip
// identifier namespace. Extras are valid only on the feed date and are
// rebuilt from scratch on every refresh - they never become timetable rows.
func ParseFeedDocument(payload []byte, datasource *ftdf.DataSourceReference, now time.Time) (*ftdf.OperationalStatus, error) {
	var document feedDocument
	if err := json.Unmarshal(payload, &document); err != nil {
		return nil, err
	}

	if document.Service == "" {
		return nil, fmt.Errorf("advisory document is missing a service name")
	}

	statusCode, ok := feedStatusCodes[document.Status]
	if !ok {
		return nil, fmt.Errorf("unrecognised advisory status %q", document.Status)
	}

	status := &ftdf.OperationalStatus{
		ServiceName:          document.Service,
		ModificationDateTime: now,
		DataSource:           datasource,
		HasAlert:             document.Alert,
		StatusCode:           statusCode,
		Title:                document.Title,
		Text:                 document.Text,
	}

	if document.Updated != "" {
		if updated, err := time.Parse(time.RFC3339, document.Updated); err == nil {
			status.ModificationDateTime = updated
		}
	}

	if document.EffectiveFrom != "" {
		effectiveFrom, err := ftdf.ParseClockTime(document.EffectiveFrom)
		if err != nil {
			return nil, err
		}
		status.EffectiveFromTime = effectiveFrom
	}

	feedDate := ftdf.TruncateToDate(now.In(ftdf.ServiceLocation()))

	for i, sailing := range document.ExtraSailings {
		trip := &ftdf.Trip{}
		if err := copier.Copy(trip, sailing); err != nil {
			return nil, err
		}

		trip.PrimaryIdentifier = ftdf.ExtraTripIdentifier(document.Service, i)
		trip.ServiceName = document.Service
		trip.ValidFrom = feedDate
		validUntil := feedDate
		trip.ValidUntil = &validUntil
		trip.BaseStatus = ftdf.StatusExtra
		trip.Synthetic = true
		trip.DataSource = datasource
		trip.ModificationDateTime = now

		status.ExtraTrips = append(status.ExtraTrips, trip)
	}

	return status, nil
}
