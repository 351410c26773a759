package main

import (
	"fmt"
	"io"
	"os"

	"github.com/andybalholm/lz77"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/wcharczuk/go-chart/v2"
)

// sweepPoint is the result of encoding with one window size.
type sweepPoint struct {
	windowSize int
	tokens     int
}

// sweep encodes data once per window size, doubling from minWindow up to
// maxWindow. The lookahead comes from cfg, clamped to the window size.
func sweep(data []byte, cfg lz77.Config, minWindow, maxWindow int) ([]sweepPoint, error) {
	if minWindow < 1 || maxWindow < minWindow {
		return nil, errors.Errorf("bad window range %d..%d", minWindow, maxWindow)
	}

	var points []sweepPoint
	for size := minWindow; size <= maxWindow; size *= 2 {
		c := cfg
		c.WindowSize = size
		if c.LookaheadSize > size {
			c.LookaheadSize = size
		}
		tokens, err := lz77.Encode(data, c)
		if err != nil {
			return nil, errors.Wrapf(err, "window %d", size)
		}
		glog.V(1).Infof("window %d: %d tokens", size, len(tokens))
		points = append(points, sweepPoint{windowSize: size, tokens: len(tokens)})
	}
	return points, nil
}

// renderSweep draws token count against window size as an SVG line chart.
func renderSweep(w io.Writer, points []sweepPoint) error {
	xvals := make([]float64, 0, len(points))
	yvals := make([]float64, 0, len(points))
	for _, p := range points {
		xvals = append(xvals, float64(p.windowSize))
		yvals = append(yvals, float64(p.tokens))
	}

	graph := chart.Chart{
		XAxis: chart.XAxis{Name: "window size"},
		YAxis: chart.YAxis{Name: "tokens"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					DotWidth: 3,
				},
				XValues: xvals,
				YValues: yvals,
			},
		},
	}
	return graph.Render(chart.SVG, w)
}

func newSweepCmd(opts *options) *cobra.Command {
	var minWindow, maxWindow int
	var svgPath string

	cmd := &cobra.Command{
		Use:   "sweep FILE",
		Short: "Count tokens for a range of window sizes",
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

			points, err := sweep(data, cfg, minWindow, maxWindow)
			if err != nil {
				return err
			}
			for _, p := range points {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\n", p.windowSize, p.tokens); err != nil {
					return err
				}
			}

			if svgPath == "" {
				return nil
			}
			if len(points) < 2 {
				return errors.New("need at least two window sizes to plot")
			}
			f, err := os.Create(svgPath)
			if err != nil {
				return errors.Wrap(err, "create svg")
			}
			if err := renderSweep(f, points); err != nil {
				f.Close()
				return errors.Wrap(err, "render svg")
			}
			return f.Close()
		},
	}

	cmd.Flags().IntVar(&minWindow, "min", 16, "smallest window size")
	cmd.Flags().IntVar(&maxWindow, "max", 1024, "largest window size")
	cmd.Flags().StringVar(&svgPath, "svg", "", "write a chart of the results to this SVG file")
	return cmd
}
