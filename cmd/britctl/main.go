package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[britctl] %v\n", err)
	os.Exit(1)
}

func main() {
	app := cli.NewApp()
	app.Name = "britctl"
	app.Usage = "operate a BRIT matcher and run payer exchanges against it"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "path to the matcher's config file (defaults to ./config.yaml)",
		},
		cli.StringFlag{
			Name:   "matcher, m",
			Value:  "http://localhost:8080",
			Usage:  "base URL of the matcher",
			EnvVar: "BRIT_MATCHER_URL",
		},
		cli.StringFlag{
			Name:  "loglevel",
			Value: "warn",
			Usage: "log level for client-side logging",
		},
	}
	app.Commands = []cli.Command{
		genKeyCommand,
		tokenCommand,
		importAddressesCommand,
		exchangeCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}
