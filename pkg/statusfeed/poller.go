package statusfeed

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/cenkalti/backoff/v4"
	"github.com/okiferry/okiferry/pkg/ftdf"
	"github.com/rs/zerolog/log"
)

const defaultPollInterval = 5 * time.Minute

// Poller fetches each service's advisory endpoint on its own cadence and
// publishes the parsed advisory onto the process queue. Retry policy lives
// here - the search core only ever reads whatever snapshot the consumer last
// produced.
type Poller struct {
	Config *FeedConfig
	Queue  rmq.Queue

	HTTPClient *http.Client
	Metrics    *Metrics
}

func (p *Poller) Run() {
	client := p.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	for _, serviceFeed := range p.Config.Services {
		go p.pollService(serviceFeed, client)
	}

	select {}
}

func (p *Poller) pollService(serviceFeed ServiceFeed, client *http.Client) {
	interval := serviceFeed.PollIntervalDuration(defaultPollInterval)

	log.Info().Str("service", serviceFeed.Name).Str("interval", interval.String()).Msg("Polling status feed")

	for {
		startTime := time.Now()

		if err := p.pollOnce(serviceFeed, client); err != nil {
			log.Error().Err(err).Str("service", serviceFeed.Name).Msg("Failed to poll status feed")

			if p.Metrics != nil {
				p.Metrics.FetchFailures.Inc()
			}
		}

		waitTime := interval - time.Since(startTime)
		if waitTime > 0 {
			time.Sleep(waitTime)
		}
	}
}

func (p *Poller) pollOnce(serviceFeed ServiceFeed, client *http.Client) error {
	var payload []byte

	fetch := func() error {
		resp, err := client.Get(serviceFeed.FeedURL)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("status feed returned HTTP %d", resp.StatusCode)
		}

		payload, err = io.ReadAll(resp.Body)
		return err
	}

	retryPolicy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)
	if err := backoff.Retry(fetch, retryPolicy); err != nil {
		return err
	}

	if p.Metrics != nil {
		p.Metrics.Fetches.Inc()
	}

	datasource := &ftdf.DataSourceReference{
		OriginalFormat: "statusfeed-json",
		Provider:       serviceFeed.Name,
		DatasetID:      "live-status",
		Timestamp:      fmt.Sprintf("%d", time.Now().Unix()),
	}

	status, err := ParseFeedDocument(payload, datasource, time.Now())
	if err != nil {
		return err
	}

	statusJSON, err := status.MarshalBinary()
	if err != nil {
		return err
	}

	if err := p.Queue.PublishBytes(statusJSON); err != nil {
		return err
	}

	if p.Metrics != nil {
		p.Metrics.AdvisoriesPublished.Inc()
	}

	return nil
}
