package statusfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/okiferry/okiferry/pkg/database"
	"github.com/okiferry/okiferry/pkg/ftdf"
	"github.com/okiferry/okiferry/pkg/redis_client"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const numConsumers = 2
const batchSize = 50

var snapshotCache *cache.Cache[string]

func createSnapshotCache() {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(90*time.Minute))

	snapshotCache = cache.New[string](redisStore)
}

// StartConsumers runs the background consumers that apply queued advisories
// to the database and refresh the redis status snapshot.
func StartConsumers(metrics *Metrics) error {
	createSnapshotCache()

	log.Info().Msg("Starting status feed consumers")

	queue, err := redis_client.QueueConnection.OpenQueue(QueueName)
	if err != nil {
		return err
	}
	if err := queue.StartConsuming(numConsumers*batchSize, 1*time.Second); err != nil {
		return err
	}

	for i := 0; i < numConsumers; i++ {
		if _, err := queue.AddBatchConsumer(fmt.Sprintf("%s-%d", QueueName, i), batchSize, 2*time.Second, NewBatchConsumer(i, metrics)); err != nil {
			return err
		}
	}

	return nil
}

type BatchConsumer struct {
	id      int
	metrics *Metrics
}

func NewBatchConsumer(id int, metrics *Metrics) *BatchConsumer {
	return &BatchConsumer{id: id, metrics: metrics}
}

func (consumer *BatchConsumer) Consume(batch rmq.Deliveries) {
	statusCollection := database.GetCollection("operational_status")
	opts := options.Replace().SetUpsert(true)

	for _, payload := range batch.Payloads() {
		var status *ftdf.OperationalStatus
		if err := json.Unmarshal([]byte(payload), &status); err != nil {
			log.Error().Err(err).Msg("Failed to decode queued advisory")

			if consumer.metrics != nil {
				consumer.metrics.AdvisoryFailures.Inc()
			}
			continue
		}

		_, err := statusCollection.ReplaceOne(context.Background(), bson.M{"servicename": status.ServiceName}, status, opts)
		if err != nil {
			log.Error().Err(err).Str("service", status.ServiceName).Msg("Failed to store Operational Status")
			continue
		}

		if consumer.metrics != nil {
			consumer.metrics.AdvisoriesApplied.Inc()
		}
	}

	if err := refreshSnapshot(); err != nil {
		log.Error().Err(err).Msg("Failed to refresh status snapshot")
	}

	if ackErrors := batch.Ack(); len(ackErrors) > 0 {
		for _, err := range ackErrors {
			log.Error().Err(err).Msg("Failed to ack advisory")
		}
	}
}

// refreshSnapshot rewrites the full service-to-status map into redis so
// searches see every applied advisory in one read.
func refreshSnapshot() error {
	statusCollection := database.GetCollection("operational_status")

	cursor, err := statusCollection.Find(context.Background(), bson.M{})
	if err != nil {
		return err
	}

	statuses := map[string]*ftdf.OperationalStatus{}
	for cursor.Next(context.Background()) {
		var status ftdf.OperationalStatus
		if err := cursor.Decode(&status); err != nil {
			return err
		}

		statuses[status.ServiceName] = &status
	}

	if err := cursor.Err(); err != nil {
		return err
	}

	snapshotJSON, err := json.Marshal(statuses)
	if err != nil {
		return err
	}

	return snapshotCache.Set(context.Background(), SnapshotCacheKey, string(snapshotJSON))
}
