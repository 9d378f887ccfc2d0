package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"gitlab.com/webpilot/clicmds"
)

func main() {
	app := cli.NewApp()
	app.Name = "webpilot"
	app.Version = "0.1"
	app.Usage = "Drive a remote browser over the driver protocol"
	app.Commands = []*cli.Command{
		{
			Name:    "probe",
			Aliases: []string{"p"},
			Usage:   "resolve a selector against a live page",
			Action:  clicmds.Probe,
			Flags:   clicmds.ProbeFlags(),
		},
		{
			Name:    "trace",
			Aliases: []string{"t"},
			Usage:   "dump a recorded protocol trace",
			Action:  clicmds.Trace,
			Flags:   clicmds.TraceFlags(),
		},
	}
	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
