package main

import (
	stdlog "log"
	"os"

	"github.com/urfave/cli/v2"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	app := &cli.App{
		Name:    "bytesieve",
		Usage:   "zero-chunk sieving and XOR masking of byte payloads",
		Version: Version,
		Commands: []*cli.Command{
			runCommand,
			maskCommand,
			unmaskCommand,
			logsCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		stdlog.Fatalf("%v", err)
	}
}
