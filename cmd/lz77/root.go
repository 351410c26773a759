package main

import (
	"flag"
	"io"
	"os"

	"github.com/andybalholm/lz77"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// options holds the flags shared by every subcommand.
type options struct {
	windowSize    int
	lookaheadSize int
	maxMatch      int
	configFile    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "lz77",
		Short:         "Sliding-window LZ77 compression tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			glog.Flush()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&opts.windowSize, "window", "w", lz77.DefaultWindowSize, "sliding window size")
	flags.IntVarP(&opts.lookaheadSize, "lookahead", "l", lz77.DefaultLookaheadSize, "lookahead buffer size")
	flags.IntVar(&opts.maxMatch, "max-match", 0, "maximum match length (0 = unlimited)")
	flags.StringVarP(&opts.configFile, "config", "c", "", "YAML file with window_size, lookahead_size and max_match_length")
	// glog registers its flags (-v, -logtostderr, ...) on the standard
	// flag set.
	flags.AddGoFlagSet(flag.CommandLine)

	rootCmd.AddCommand(
		newTokensCmd(opts),
		newRoundtripCmd(opts),
		newPackCmd(opts),
		newSweepCmd(opts),
	)
	return rootCmd
}

// config builds the window configuration: defaults, then the config file,
// then any flags given explicitly on the command line.
func (o *options) config(cmd *cobra.Command, defaults lz77.Config) (lz77.Config, error) {
	cfg := defaults

	if o.configFile != "" {
		data, err := os.ReadFile(o.configFile)
		if err != nil {
			return lz77.Config{}, errors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return lz77.Config{}, errors.Wrapf(err, "parse config %s", o.configFile)
		}
		glog.V(1).Infof("loaded config from %s: %+v", o.configFile, cfg)
	}

	flags := cmd.Flags()
	if flags.Changed("window") {
		cfg.WindowSize = o.windowSize
	}
	if flags.Changed("lookahead") {
		cfg.LookaheadSize = o.lookaheadSize
	}
	if flags.Changed("max-match") {
		cfg.MaxMatchLength = o.maxMatch
	}

	if err := cfg.Validate(); err != nil {
		return lz77.Config{}, err
	}
	return cfg, nil
}

// readInput reads the named file, or standard input if name is "-".
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	glog.V(1).Infof("read %d bytes from %s", len(data), name)
	return data, nil
}
