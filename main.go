package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/okiferry/okiferry/pkg/api"
	"github.com/okiferry/okiferry/pkg/dataimporter"
	"github.com/okiferry/okiferry/pkg/statusfeed"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	godotenv.Load()

	if os.Getenv("OKIFERRY_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("OKIFERRY_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "okiferry",
		Description: "Single binary of truth for okiferry - runs all the services",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			statusfeed.RegisterCLI(),
			dataimporter.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
