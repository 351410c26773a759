package main

import (
	"bytes"
	"io"
	"os"

	"github.com/andybalholm/lz77"
	"github.com/andybalholm/lz77/lz4"
	"github.com/andybalholm/lz77/snappy"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// packConfig is the default window for pack: large enough to find real
// matches, small enough that the linear search stays quick.
var packConfig = lz77.Config{WindowSize: 4096 + 258, LookaheadSize: 258}

// countingWriter counts the bytes written through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func newWriter(format string, dst io.Writer, cfg lz77.Config) (*lz77.Writer, error) {
	switch format {
	case "snappy":
		return snappy.NewWriter(dst, cfg), nil
	case "lz4":
		return lz4.NewWriter(dst, cfg), nil
	case "text":
		return &lz77.Writer{
			Dest:        dst,
			MatchFinder: &lz77.TokenMatchFinder{Config: cfg, MinLength: 3},
			Encoder:     lz77.TextEncoder{},
		}, nil
	}
	return nil, errors.Errorf("unknown format %q (want snappy, lz4 or text)", format)
}

func newPackCmd(opts *options) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "pack FILE",
		Short: "Compress FILE into a Snappy or LZ4 stream using the greedy LZ77 matcher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd, packConfig)
			if err != nil {
				return err
			}
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			var dst io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return errors.Wrap(err, "create output")
				}
				defer f.Close()
				dst = f
			}
			counter := &countingWriter{w: dst}

			w, err := newWriter(format, counter, cfg)
			if err != nil {
				return err
			}
			if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
				return errors.Wrapf(err, "write %s", format)
			}
			if err := w.Close(); err != nil {
				return errors.Wrapf(err, "close %s", format)
			}

			glog.Infof("packed %s: %d bytes -> %d bytes (%s)", args[0], len(data), counter.n, format)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "snappy", "output format: snappy, lz4 or text")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file (- for standard output)")
	return cmd
}
