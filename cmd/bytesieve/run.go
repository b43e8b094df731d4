package main

import (
	"bytesieve/pkg/job"
	"bytesieve/pkg/log"

	"github.com/urfave/cli/v2"
)

var (
	runCommand = &cli.Command{
		Name:        "run",
		Usage:       "runs the collect-and-process flow",
		UsageText:   "run [options]",
		Description: `collects the ascending sequence up to the threshold, processes it through the configured chain, and prints the attempts and summary`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "Run name used in the summary line"},
			&cli.IntFlag{Name: "threshold", Usage: "Upper bound of the collected sequence"},
			&cli.Int64Flag{Name: "factor", Usage: "Multiplier factor"},
			&cli.Int64Flag{Name: "delta", Usage: "Offset added after multiplication"},
			&cli.IntFlag{Name: "retries", Usage: "Number of diagnostic attempt iterations"},
		},
		Action: runCmd,
	}
)

func runCmd(c *cli.Context) error {
	log.MustInit("bytesieve")
	defer log.Close()

	cfg, err := job.LoadConfig(false)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Command-line options win over file and environment.
	if c.IsSet("name") {
		cfg.Name = c.String("name")
	}
	if c.IsSet("threshold") {
		cfg.Threshold = c.Int("threshold")
	}
	if c.IsSet("factor") {
		cfg.Factor = c.Int64("factor")
	}
	if c.IsSet("delta") {
		cfg.Delta = c.Int64("delta")
	}
	if c.IsSet("retries") {
		cfg.Retries = c.Int("retries")
	}

	j, err := job.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create job: %v", err)
	}

	log.Printf("run starting: name=%s threshold=%d factor=%d", cfg.Name, cfg.Threshold, cfg.Factor)
	j.Run()
	log.Printf("run complete")
	return nil
}
