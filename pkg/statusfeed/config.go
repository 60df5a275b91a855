package statusfeed

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ServiceFeed describes one ferry service's live status endpoint.
type ServiceFeed struct {
	Name    string `yaml:"name" validate:"required"`
	FeedURL string `yaml:"feed_url" validate:"required,url"`

	// PollInterval overrides the poller's default cadence for this feed.
	PollInterval string `yaml:"poll_interval" validate:"omitempty"`
}

func (f *ServiceFeed) PollIntervalDuration(fallback time.Duration) time.Duration {
	if f.PollInterval == "" {
		return fallback
	}

	interval, err := time.ParseDuration(f.PollInterval)
	if err != nil {
		return fallback
	}

	return interval
}

type FeedConfig struct {
	Services []ServiceFeed `yaml:"services" validate:"required,min=1,dive"`
}

func LoadFeedConfig(path string) (*FeedConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config FeedConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	validate := validator.New()
	if err := validate.Struct(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
