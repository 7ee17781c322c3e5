package main

import (
	"strings"

	"github.com/icecrime/ghrelay/configuration"
	"github.com/icecrime/ghrelay/events"
	"github.com/icecrime/ghrelay/gh"
	"github.com/icecrime/ghrelay/server"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var serveCommand = cli.Command{
	Name:   "serve",
	Usage:  "Start the relay HTTP server",
	Flags:  configuration.Flags(),
	Action: doServeCommand,
}

// runServer is replaced in tests to stop short of listening.
var runServer = startServer

func doServeCommand(c *cli.Context) error {
	config, err := loadConfiguration(c)
	if err != nil {
		return err
	}
	return runServer(config)
}

func startServer(config *configuration.Config) error {
	level, _ := logrus.ParseLevel(config.LogLevel)
	logrus.SetLevel(level)
	if gh.GetToken(config) == "" {
		logrus.Warn("no GitHub token configured, requests will be anonymous")
	}

	client, err := gh.MakeClient(config)
	if err != nil {
		return err
	}
	publisher, err := events.New(config.NSQ)
	if err != nil {
		return err
	}
	defer publisher.Stop()

	return server.NewServer(config, client, publisher).Run()
}

func loadConfiguration(c *cli.Context) (*configuration.Config, error) {
	config, err := configuration.FromFlags(c)
	if err != nil {
		return nil, err
	}
	if errs := config.Validate(); len(errs) != 0 {
		var strErrors []string
		for _, err := range errs {
			strErrors = append(strErrors, err.Error())
		}
		return nil, errors.New(strings.Join(strErrors, "\n"))
	}
	return config, nil
}
