package main

import (
	"fmt"
	"io"
	"os"

	"bytesieve/internal/fn"
	"bytesieve/pkg/buffers"
	"bytesieve/pkg/log"
	"bytesieve/pkg/transform"

	"github.com/klauspost/compress/zstd"
	"github.com/urfave/cli/v2"
)

var (
	maskCommand = &cli.Command{
		Name:        "mask",
		Usage:       "sieves zero chunks and XOR-masks a payload",
		UsageText:   "mask [options]",
		Description: `reads a payload, drops all-zero 4-byte chunks, XORs the survivors with 0xAA, and writes the result`,
		Flags:       maskFlags,
		Action: func(c *cli.Context) error {
			return maskCmd(c, false)
		},
	}

	unmaskCommand = &cli.Command{
		Name:        "unmask",
		Usage:       "reverses the XOR mask on a payload",
		UsageText:   "unmask [options]",
		Description: `undoes the 0xAA mask (and zstd when enabled); chunks dropped by the sieve are not reconstructible`,
		Flags:       maskFlags,
		Action: func(c *cli.Context) error {
			return maskCmd(c, true)
		},
	}

	maskFlags = []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "Input `PATH` (defaults to stdin)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output `PATH` (defaults to stdout)",
		},
		&cli.BoolFlag{
			Name:  "zstd",
			Usage: "Add zstd fast compression as the last pipeline stage",
		},
	}
)

func maskCmd(c *cli.Context, reverse bool) error {
	log.SetStd()

	in := io.Reader(os.Stdin)
	if p := c.String("input"); p != "" {
		f, err := os.Open(p)
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error opening input: %v", err), 1)
		}
		defer f.Close()
		in = f
	}

	out := io.Writer(os.Stdout)
	if p := c.String("output"); p != "" {
		f, err := os.Create(p)
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error creating output: %v", err), 1)
		}
		defer f.Close()
		out = f
	}

	processor, err := buildProcessor(c.Bool("zstd"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error building pipeline: %v", err), 1)
	}

	verb := fn.T(reverse, "unmask", "mask")
	if c.Bool("zstd") {
		// Compressed payloads are a single frame; process in one pass.
		if err := processWhole(in, out, processor, reverse); err != nil {
			return cli.Exit(fmt.Sprintf("Error during %s: %v", verb, err), 1)
		}
		return nil
	}

	// Sieve and mask are blockwise-composable as long as blocks stay a
	// multiple of the chunk size, so the plain path streams.
	if err := processBlocks(in, out, processor, reverse); err != nil {
		return cli.Exit(fmt.Sprintf("Error during %s: %v", verb, err), 1)
	}
	return nil
}

func buildProcessor(withZstd bool) (*transform.PayloadProcessor, error) {
	sieve, err := transform.NewZeroChunkSieve(transform.DefaultChunkSize)
	if err != nil {
		return nil, err
	}
	transforms := []transform.Transform{sieve, transform.NewMaskTransform(transform.DefaultMask)}
	if withZstd {
		zt, err := transform.NewZstdTransform(zstd.SpeedFastest)
		if err != nil {
			return nil, err
		}
		transforms = append(transforms, zt)
	}
	return transform.NewPayloadProcessor(transforms)
}

func processWhole(in io.Reader, out io.Writer, p *transform.PayloadProcessor, reverse bool) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	result, err := applyDirection(p, data, reverse)
	if err != nil {
		return err
	}
	if _, err := out.Write(result); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func processBlocks(in io.Reader, out io.Writer, p *transform.PayloadProcessor, reverse bool) error {
	buffer := buffers.StreamBufferPool.Get()
	defer buffers.StreamBufferPool.Put(buffer)

	for {
		n, err := io.ReadFull(in, buffer)
		if n > 0 {
			result, perr := applyDirection(p, buffer[:n], reverse)
			if perr != nil {
				return perr
			}
			if _, werr := out.Write(result); werr != nil {
				return fmt.Errorf("write: %w", werr)
			}
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
	}
}

func applyDirection(p *transform.PayloadProcessor, data []byte, reverse bool) ([]byte, error) {
	if reverse {
		return p.ParseInput(data)
	}
	return p.PrepareOutput(data)
}
