package main

import (
	"bytes"
	"time"

	"github.com/andybalholm/lz77"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/htmlindex"
)

func newTokensCmd(opts *options) *cobra.Command {
	var charset string

	cmd := &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream of FILE, one (offset, length, indicator) per line",
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

			start := time.Now()
			var out []byte
			if charset == "" {
				tokens, err := lz77.Encode(data, cfg)
				if err != nil {
					return err
				}
				out = lz77.AppendTokenText(nil, tokens)
				glog.V(1).Infof("encoded %d bytes into %d tokens in %v", len(data), len(tokens), time.Since(start))
			} else {
				runes, err := decodeText(data, charset)
				if err != nil {
					return err
				}
				tokens, err := lz77.Encode(runes, cfg)
				if err != nil {
					return err
				}
				out = lz77.AppendTokenText(nil, tokens)
				glog.V(1).Infof("encoded %d characters into %d tokens in %v", len(runes), len(tokens), time.Since(start))
			}

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&charset, "charset", "", "treat FILE as text in this encoding (e.g. utf-8, shift_jis) and encode characters")
	return cmd
}

// decodeText converts data from the named character encoding into runes.
func decodeText(data []byte, charset string) ([]rune, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, errors.Wrapf(err, "charset %q", charset)
	}
	utf8, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", charset)
	}
	return bytes.Runes(utf8), nil
}
