// SPDX-License-Identifier: MIT
// Package: main
//
// Purpose:
//  - Command-line driver for the gns engine: classify a (base, digit set)
//    pair, inspect its Smith hash, expand or iterate points, run job files.
//  - Global flags configure logging, output encoding and the metrics endpoint.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// cli holds the flag values and process-wide collaborators of one invocation.
type cli struct {
	out, errOut io.Writer

	logLevel    string
	logFormat   string
	output      string
	metricsAddr string

	// job selection (classify, hash, expand, orbit)
	configPath string
	jobName    string
	matrix     string
	digits     string
	epsilon    float64
	maxVolume  uint64
	maxOrbit   int
	points     []string

	// batch
	parallel int

	logger  *slog.Logger
	metrics *http.Server
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "gns",
		Short: "Explore generalized number systems over the integer lattice",
		Long: `gns decides whether a radix base M and a digit set D form a number system,
i.e. whether every lattice point has a finite radix expansion, by enumerating
every cycle of the digit-stripping map inside a guaranteed bounding box.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  c.setup,
		PersistentPostRunE: c.teardown,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&c.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&c.logFormat, "log-format", outputText, "log format (text, json)")
	pf.StringVarP(&c.output, "output", "o", outputText, "output format (text, json)")
	pf.StringVar(&c.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")

	root.AddCommand(
		c.classifyCmd(),
		c.hashCmd(),
		c.expandCmd(),
		c.orbitCmd(),
		c.batchCmd(),
	)

	return root
}

// setup validates global flags, builds the logger and starts the metrics server.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if c.output != outputText && c.output != outputJSON {
		return fmt.Errorf("unknown output format %q", c.output)
	}
	logger, err := newLogger(c.errOut, c.logLevel, c.logFormat)
	if err != nil {
		return err
	}
	c.logger = logger
	if c.metricsAddr != "" {
		srv, addr, err := startMetricsServer(c.metricsAddr, c.logger)
		if err != nil {
			return err
		}
		c.metrics = srv
		c.logger.Info("metrics server listening", slog.String("addr", addr.String()))
	}

	return nil
}

func (c *cli) teardown(cmd *cobra.Command, _ []string) error {
	if c.metrics == nil {
		return nil
	}
	err := stopMetricsServer(cmd.Context(), c.metrics)
	c.metrics = nil

	return err
}

// addJobFlags registers the flags that select or describe a single job.
func (c *cli) addJobFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&c.configPath, "config", "c", "", "jobs file (YAML)")
	f.StringVar(&c.jobName, "job", "", "job name within --config")
	f.StringVarP(&c.matrix, "matrix", "m", "", `radix base, rows separated by ';', e.g. "1,2;3,1"`)
	f.StringVarP(&c.digits, "digits", "d", "", `digit set: canonical, symmetric, jsymmetric or vectors "x,y;..."`)
	f.Float64Var(&c.epsilon, "epsilon", 0, "bounding-box series cutoff (default 1e-9)")
	f.Uint64Var(&c.maxVolume, "max-volume", 0, "largest bounding box the cycle search may enumerate")
	f.IntVar(&c.maxOrbit, "max-orbit", 0, "longest orbit or expansion to follow")
}
