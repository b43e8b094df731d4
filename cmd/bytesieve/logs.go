package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"bytesieve/pkg/log"

	"github.com/urfave/cli/v2"
)

// timeFormats includes common layouts to try when parsing absolute time
// strings. Order matters; more specific formats come earlier.
var timeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimeSpec attempts to parse a string as either a relative duration
// from now (e.g. "1h", "30m") or an absolute timestamp.
func parseTimeSpec(spec string) (time.Time, error) {
	duration, err := time.ParseDuration(spec)
	if err == nil {
		return time.Now().Add(-duration), nil
	}

	for _, layout := range timeFormats {
		ts, err := time.Parse(layout, spec)
		if err == nil {
			return ts, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid time specification: '%s'. Use a relative duration (e.g. '1h', '30m') or an absolute format (e.g. '2023-10-27T15:04:05Z')", spec)
}

const logsCommandHelpTemplate = `NAME:
   {{.HelpName}} - {{.Usage}}

USAGE:
   {{.HelpName}} {{if .UsageText}}{{.UsageText}}{{else}}[command options]{{end}}

MODES (choose one; defaults to --last if no mode specified):
     --last                 Retrieve the most recent N log entries.
     --since                Retrieve logs since a start time up to now.
     --between              Retrieve logs between a start and an end time.

OPTIONS:
{{range .VisibleFlags}}   {{.}}
{{end}}
TIME SPECIFICATION (<time_spec>):
     Either a relative duration from now ("5m", "1h30m") or an absolute
     RFC3339/ISO 8601 timestamp ("2023-10-27T15:04:05Z", "2023-10-27").
`

var (
	logsCommand = &cli.Command{
		Name:               "logs",
		Usage:              "Retrieve JSON log entries from the tool's log database",
		UsageText:          "logs [options] [--last|--since|--between]",
		Description:        `Retrieves logs stored in the SQLite database under the app directory.`,
		CustomHelpTemplate: logsCommandHelpTemplate,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dbfile",
				Aliases: []string{"f"},
				Usage:   "Log database file `NAME` (resolved under the app directory unless a path)",
				Value:   "bytesieve.db",
			},
			&cli.BoolFlag{
				Name:    "pretty",
				Aliases: []string{"p"},
				Usage:   "Output entries with id and insertion time instead of raw JSON",
			},
			&cli.BoolFlag{
				Name:  "last",
				Usage: "Mode: retrieve the most recent N log entries (default)",
			},
			&cli.BoolFlag{
				Name:  "since",
				Usage: "Mode: retrieve logs since a start time",
			},
			&cli.BoolFlag{
				Name:  "between",
				Usage: "Mode: retrieve logs between a start and an end time",
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "Number of entries for --last mode `NUMBER`",
				Value:   100,
			},
			&cli.StringFlag{
				Name:    "start",
				Aliases: []string{"s"},
				Usage:   "Start `TIME_SPEC` for --since/--between",
			},
			&cli.StringFlag{
				Name:    "end",
				Aliases: []string{"e"},
				Usage:   "End `TIME_SPEC` for --between",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   "Max entries for --since/--between `NUMBER`",
				Value:   1000,
			},
		},
		Action: logsCmd,
	}
)

func logsCmd(c *cli.Context) error {
	isLast := c.Bool("last")
	isSince := c.Bool("since")
	isBetween := c.Bool("between")

	modeCount := 0
	for _, m := range []bool{isLast, isSince, isBetween} {
		if m {
			modeCount++
		}
	}
	if modeCount == 0 {
		isLast = true
	} else if modeCount > 1 {
		return cli.Exit("Error: only one mode flag (--last, --since, --between) can be specified at a time.", 1)
	}

	if err := log.Init(c.String("dbfile")); err != nil {
		return cli.Exit(fmt.Sprintf("Error initializing logger (required for DB access): %v", err), 1)
	}
	defer log.Close()

	var results []log.LogEntry
	var retrievalErr error

	switch {
	case isLast:
		count := c.Int("count")
		if count <= 0 {
			return cli.Exit("Error: --count (-n) must be a positive number.", 1)
		}
		results, retrievalErr = log.GetLastNLogs(count)

	case isSince:
		if !c.IsSet("start") {
			return cli.Exit("Error: --start (-s) is required for --since mode.", 1)
		}
		startTime, err := parseTimeSpec(c.String("start"))
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error parsing start time: %v", err), 1)
		}
		results, retrievalErr = log.GetLogsSince(startTime, c.Int("limit"))

	case isBetween:
		if !c.IsSet("start") || !c.IsSet("end") {
			return cli.Exit("Error: --start (-s) and --end (-e) are required for --between mode.", 1)
		}
		startTime, err := parseTimeSpec(c.String("start"))
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error parsing start time: %v", err), 1)
		}
		endTime, err := parseTimeSpec(c.String("end"))
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error parsing end time: %v", err), 1)
		}
		if startTime.After(endTime) {
			fmt.Fprintf(os.Stderr, "Warning: start time (%s) is after end time (%s).\n",
				startTime.Format(time.RFC3339), endTime.Format(time.RFC3339))
		}
		results, retrievalErr = log.GetLogsBetween(startTime, endTime, c.Int("limit"))
	}

	if retrievalErr != nil {
		if errors.Is(retrievalErr, log.ErrNotInitialized) {
			return cli.Exit("Internal error: logger DB handle became unavailable.", 2)
		}
		return cli.Exit(fmt.Sprintf("Error retrieving logs: %v", retrievalErr), 1)
	}

	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, "No log entries found matching the criteria.")
		return nil
	}

	for _, entry := range results {
		if c.Bool("pretty") {
			fmt.Printf("%d  %s  %s", entry.ID, entry.InsertedAt.Format(time.RFC3339), entry.Event)
		} else {
			fmt.Print(entry.Event)
		}
	}
	return nil
}
