// Package job wires the collector and the processor pipeline into a
// configured run.
package job

import (
	"fmt"
	"io"
	"os"

	"bytesieve/pkg/log"
	"bytesieve/pkg/pipeline"
	"bytesieve/pkg/sequence"
)

// Job runs the configured collect-and-process flow: collect the
// ascending sequence up to the threshold, push it through the processor
// chain, then emit the diagnostic attempts and the summary line.
type Job struct {
	cfg   Config
	chain *pipeline.Chain
	out   io.Writer
}

// New builds a Job from the config. The chain always carries the
// multiplier; a non-zero delta appends an offset stage.
func New(cfg *Config) (*Job, error) {
	procs := []pipeline.Processor{pipeline.NewMultiplier(cfg.Factor)}
	if cfg.Delta != 0 {
		procs = append(procs, pipeline.NewOffset(cfg.Delta))
	}
	chain, err := pipeline.NewChain(procs)
	if err != nil {
		return nil, fmt.Errorf("job: failed to build processor chain: %w", err)
	}
	return &Job{
		cfg:   *cfg,
		chain: chain,
		out:   os.Stdout,
	}, nil
}

// SetOutput redirects the attempt and summary lines. Defaults to stdout.
func (j *Job) SetOutput(w io.Writer) {
	j.out = w
}

// Run executes the flow to completion. It is synchronous and has no
// error conditions: every stage is a total function over its input.
func (j *Job) Run() {
	values := sequence.CollectUntil(j.cfg.Threshold)
	log.Debug().Int("threshold", j.cfg.Threshold).Int("collected", len(values)).Msg("sequence collected")

	processed := j.chain.Process(values)
	log.Debug().Int64("factor", j.cfg.Factor).Int64("delta", j.cfg.Delta).Msg("sequence processed")

	for attempt := 0; attempt < j.cfg.Retries; attempt++ {
		fmt.Fprintf(j.out, "attempt %d\n", attempt)
	}

	fmt.Fprintf(j.out, "%s: %v\n", j.cfg.Name, processed)
}
