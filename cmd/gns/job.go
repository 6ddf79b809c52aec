package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gns/cmd/gns/config"
	"github.com/katalvlaran/gns/digits"
	"github.com/katalvlaran/gns/gns"
	"github.com/katalvlaran/gns/matrix"
	"github.com/katalvlaran/gns/radix"
)

// run is one job bound to a run id and a logger carrying both.
type run struct {
	id     string
	job    config.Job
	logger *slog.Logger
}

func (c *cli) newRun(job config.Job) *run {
	id := uuid.NewString()

	return &run{
		id:     id,
		job:    job,
		logger: c.logger.With(slog.String("run_id", id), slog.String("job", job.Name)),
	}
}

// resolveJob assembles the job of a single-job command: the --config entry
// (if any) with every explicitly set flag applied on top.
func (c *cli) resolveJob(cmd *cobra.Command) (config.Job, error) {
	job := config.Job{Name: "cli"}
	if c.configPath != "" {
		f, err := config.Load(c.configPath)
		if err != nil {
			return job, err
		}
		if job, err = f.Find(c.jobName); err != nil {
			return job, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("matrix") {
		m, err := config.ParseMatrix(c.matrix)
		if err != nil {
			return job, fmt.Errorf("--matrix: %w", err)
		}
		job.Matrix = m
	}
	if flags.Changed("digits") {
		if err := applyDigits(&job, c.digits); err != nil {
			return job, err
		}
	}
	if job.Digits == "" && len(job.DigitVectors) == 0 {
		job.Digits = string(digits.KindCanonical)
	}
	if flags.Changed("epsilon") {
		job.Epsilon = c.epsilon
	}
	if flags.Changed("max-volume") {
		job.MaxVolume = c.maxVolume
	}
	if flags.Changed("max-orbit") {
		job.MaxOrbit = c.maxOrbit
	}
	if flags.Changed("point") {
		job.Points = job.Points[:0]
		for _, p := range c.points {
			v, err := config.ParseVector(p)
			if err != nil {
				return job, fmt.Errorf("--point %q: %w", p, err)
			}
			job.Points = append(job.Points, v)
		}
	}

	return job, job.Validate()
}

// applyDigits sets either the construction kind or the explicit vectors of job.
func applyDigits(job *config.Job, s string) error {
	switch digits.Kind(s) {
	case digits.KindCanonical, digits.KindSymmetric, digits.KindJSymmetric:
		job.Digits, job.DigitVectors = s, nil
		return nil
	}
	vs, err := config.ParseMatrix(s)
	if err != nil {
		return fmt.Errorf("--digits: %w", err)
	}
	job.Digits, job.DigitVectors = "", vs

	return nil
}

// system builds the number system of r.job.
func (r *run) system(ctx context.Context) (*gns.NumberSystem, error) {
	base, err := matrix.FromRows(r.job.Matrix)
	if err != nil {
		return nil, err
	}
	props, err := radix.New(base)
	if err != nil {
		return nil, err
	}
	ds := r.job.DigitVectors
	if r.job.Digits != "" {
		if ds, err = digits.Build(digits.Kind(r.job.Digits), props); err != nil {
			return nil, err
		}
	}
	r.logger.Debug("number system ready",
		slog.Int64("det", props.Det()),
		slog.Float64("contraction", props.Contraction()),
		slog.Int("digits", len(ds)))

	opts := []gns.Option{gns.WithContext(ctx), gns.WithLogger(r.logger)}
	if r.job.Epsilon > 0 {
		opts = append(opts, gns.WithEpsilon(r.job.Epsilon))
	}
	if r.job.MaxVolume > 0 {
		opts = append(opts, gns.WithMaxVolume(r.job.MaxVolume))
	}
	if r.job.MaxOrbit > 0 {
		opts = append(opts, gns.WithMaxOrbit(r.job.MaxOrbit))
	}

	return gns.New(props, ds, opts...)
}
