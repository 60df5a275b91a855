package statusfeed

import (
	"github.com/okiferry/okiferry/pkg/database"
	"github.com/okiferry/okiferry/pkg/redis_client"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "status-feed",
		Usage: "Live operational status ingest",
		Subcommands: []*cli.Command{
			{
				Name:  "poll",
				Usage: "poll the configured service feeds and queue advisories",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Value: "data/status-feeds.yaml",
						Usage: "path to the service feed configuration",
					},
					&cli.StringFlag{
						Name:  "metrics-listen",
						Value: ":2112",
						Usage: "listen target for the metrics endpoint",
					},
				},
				Action: func(c *cli.Context) error {
					if err := redis_client.Connect(); err != nil {
						log.Fatal().Err(err).Msg("Failed to connect to Redis")
					}

					config, err := LoadFeedConfig(c.String("config"))
					if err != nil {
						return err
					}

					queue, err := redis_client.QueueConnection.OpenQueue(QueueName)
					if err != nil {
						return err
					}

					metrics := NewMetrics()
					metrics.Serve(c.String("metrics-listen"))

					poller := &Poller{
						Config:  config,
						Queue:   queue,
						Metrics: metrics,
					}
					poller.Run()

					return nil
				},
			},
			{
				Name:  "consume",
				Usage: "apply queued advisories to the database and snapshot cache",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "metrics-listen",
						Value: ":2113",
						Usage: "listen target for the metrics endpoint",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}
					if err := redis_client.Connect(); err != nil {
						log.Fatal().Err(err).Msg("Failed to connect to Redis")
					}

					metrics := NewMetrics()
					metrics.Serve(c.String("metrics-listen"))

					if err := StartConsumers(metrics); err != nil {
						return err
					}

					select {}
				},
			},
		},
	}
}
