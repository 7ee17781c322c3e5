package main

import (
	"fmt"

	"github.com/icecrime/ghrelay/configuration"

	"github.com/urfave/cli"
)

var validateCommand = cli.Command{
	Name:   "validate",
	Usage:  "Validate the relay configuration",
	Flags:  configuration.Flags(),
	Action: doValidateCommand,
}

func doValidateCommand(c *cli.Context) error {
	if _, err := loadConfiguration(c); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	fmt.Fprintln(c.App.Writer, "Configuration is valid")
	return nil
}
