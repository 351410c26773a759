package main

import (
	"bytes"
	"fmt"

	"github.com/andybalholm/lz77"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newRoundtripCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip FILE",
		Short: "Encode and decode FILE, and check that the result matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd, lz77.DefaultConfig())
			if err != nil {
				return err
			}
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			tokens, err := lz77.Encode(data, cfg)
			if err != nil {
				return errors.Wrap(err, "encode")
			}
			decoded, err := lz77.Decode(tokens)
			if err != nil {
				return errors.Wrap(err, "decode")
			}
			if !bytes.Equal(decoded, data) {
				return errors.Errorf("round trip mismatch: %d bytes in, %d bytes out", len(data), len(decoded))
			}

			longest := 0
			for _, t := range tokens {
				if t.Length > longest {
					longest = t.Length
				}
			}
			glog.V(1).Infof("window %d, lookahead %d, longest match %d", cfg.WindowSize, cfg.LookaheadSize, longest)

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d bytes, %d tokens, ok\n", args[0], len(data), len(tokens))
			return err
		},
	}
}
