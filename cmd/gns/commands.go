package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gns/cmd/gns/config"
	"github.com/katalvlaran/gns/gns"
)

func (c *cli) classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Find every cycle of φ and decide whether (M, D) is a number system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			job, err := c.resolveJob(cmd)
			if err != nil {
				return err
			}
			res, jobErr := c.classify(cmd.Context(), job)
			if err := c.emit(res, func() { writeClassify(c.out, res) }); err != nil {
				return err
			}

			return jobErr
		},
	}
	c.addJobFlags(cmd)

	return cmd
}

// classify runs one job to completion. A failure is recorded in the result
// and also returned.
func (c *cli) classify(ctx context.Context, job config.Job) (*classifyResult, error) {
	r := c.newRun(job)
	res := &classifyResult{RunID: r.id, Job: job.Name}
	r.logger.Info("classification started", slog.Any("matrix", job.Matrix))
	ns, err := r.system(ctx)
	if err == nil {
		res.Report, err = ns.Classify()
	}
	if err != nil {
		res.Error = err.Error()
		r.logger.Error("classification failed", slog.String("error", err.Error()))
		return res, err
	}
	r.logger.Info("classification finished",
		slog.Bool("number_system", res.Report.IsNumberSystem),
		slog.Int("cycles", len(res.Report.Cycles)))

	return res, nil
}

func (c *cli) hashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Show the Smith hash moduli and the digit of every residue class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			job, err := c.resolveJob(cmd)
			if err != nil {
				return err
			}
			r := c.newRun(job)
			ns, err := r.system(cmd.Context())
			if err != nil {
				return err
			}
			table := ns.Table()
			res := &hashResult{
				RunID:  r.id,
				Job:    job.Name,
				Moduli: table.Hash().Moduli(),
				Size:   table.Size(),
				Digits: table.Digits(),
			}
			for _, p := range job.Points {
				h, d := table.Lookup(p)
				res.Points = append(res.Points, pointHash{Point: p, Hash: h, Digit: d})
			}

			return c.emit(res, func() { writeHash(c.out, res) })
		},
	}
	c.addJobFlags(cmd)
	cmd.Flags().StringArrayVarP(&c.points, "point", "p", nil, `lattice point "x,y,..." (repeatable)`)

	return cmd
}

func (c *cli) expandCmd() *cobra.Command {
	return c.pointCmd("expand", "Print the radix expansion of lattice points",
		func(ns *gns.NumberSystem, p []int64) ([][]int64, error) { return ns.Expansion(p) })
}

func (c *cli) orbitCmd() *cobra.Command {
	return c.pointCmd("orbit", "Print the orbit z, φ(z), φ²(z), … of lattice points",
		func(ns *gns.NumberSystem, p []int64) ([][]int64, error) { return ns.Orbit(p) })
}

// pointCmd builds a command that applies walk to every requested point.
func (c *cli) pointCmd(use, short string, walk func(*gns.NumberSystem, []int64) ([][]int64, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			job, err := c.resolveJob(cmd)
			if err != nil {
				return err
			}
			if len(job.Points) == 0 {
				return fmt.Errorf("%s: no points (use --point or points in the jobs file)", use)
			}
			r := c.newRun(job)
			ns, err := r.system(cmd.Context())
			if err != nil {
				return err
			}
			res := &pointsResult{RunID: r.id, Job: job.Name}
			failed := 0
			for _, p := range job.Points {
				pr := pointResult{Point: p}
				if pr.Vectors, err = walk(ns, p); err != nil {
					pr.Error = err.Error()
					failed++
					r.logger.Warn(use+" failed", slog.Any("point", p), slog.String("error", pr.Error))
				}
				res.Points = append(res.Points, pr)
			}
			if err := c.emit(res, func() { writePoints(c.out, use, res) }); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%s: %d of %d points failed", use, failed, len(job.Points))
			}

			return nil
		},
	}
	c.addJobFlags(cmd)
	cmd.Flags().StringArrayVarP(&c.points, "point", "p", nil, `lattice point "x,y,..." (repeatable)`)

	return cmd
}

func (c *cli) batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Classify every job of a jobs file concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.configPath == "" {
				return errors.New("batch: --config is required")
			}
			if c.parallel < 1 {
				return fmt.Errorf("batch: --parallel must be positive, got %d", c.parallel)
			}
			f, err := config.Load(c.configPath)
			if err != nil {
				return err
			}

			results := make([]*classifyResult, len(f.Jobs))
			g, gCtx := errgroup.WithContext(cmd.Context())
			g.SetLimit(c.parallel)
			for i, job := range f.Jobs {
				g.Go(func() error {
					results[i], _ = c.classify(gCtx, job)
					// only cancellation stops the batch; job failures are reported per job
					return cmd.Context().Err()
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			res := &batchResult{Jobs: results}
			if err := c.emit(res, func() { writeBatch(c.out, res) }); err != nil {
				return err
			}
			failed := 0
			for _, r := range results {
				if r.Error != "" {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("batch: %d of %d jobs failed", failed, len(results))
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&c.configPath, "config", "c", "", "jobs file (YAML)")
	cmd.Flags().IntVar(&c.parallel, "parallel", runtime.NumCPU(), "jobs classified concurrently")

	return cmd
}
