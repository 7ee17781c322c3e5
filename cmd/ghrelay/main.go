package main

import (
	"os"

	"github.com/icecrime/ghrelay/configuration"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "ghrelay"
	app.Usage = "Relay a GitHub profile, its repositories and issue creation over HTTP"
	app.Version = "0.1.0"

	app.Flags = configuration.Flags()
	app.Action = doServeCommand
	app.Commands = []cli.Command{
		serveCommand,
		validateCommand,
	}
	return app
}
