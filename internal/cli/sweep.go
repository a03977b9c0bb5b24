package cli

import (
	"context"
	"fmt"
	"maps"
	"runtime"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"lifegen/internal/core"
	pcore "lifegen/pkg/core"
)

// sweepJob is one (rule, seed) combination.
type sweepJob struct {
	rule string
	seed int64
}

type sweepResult struct {
	job     sweepJob
	alive   int
	peak    int
	extinct int // turn the board emptied, or -1
}

func newSweepCommand() *cobra.Command {
	var (
		sim      string
		set      []string
		ruleList []string
		seeds    int
		seedBase int64
		steps    int
		workers  int
		top      int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run many rule and seed combinations in parallel and rank them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseSet(set)
			if err != nil {
				return err
			}
			factory, ok := core.Sims()[sim]
			if !ok {
				return fmt.Errorf("%w: unknown sim %q", pcore.ErrInvalidArgument, sim)
			}
			if seeds <= 0 || steps < 0 {
				return fmt.Errorf("%w: --seeds must be positive and --steps non-negative", pcore.ErrInvalidArgument)
			}
			jobs := sweepJobs(ruleList, seeds, seedBase)
			logrus.Infof("sweeping %d combinations of %s (%d workers, %d steps)", len(jobs), sim, workers, steps)

			start := time.Now()
			results, err := runSweep(cmd.Context(), factory, params, jobs, steps, workers)
			if err != nil {
				return err
			}
			rankSweep(results)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d runs in %s\n", len(results), time.Since(start).Round(time.Millisecond))
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RULE\tSEED\tALIVE\tPEAK\tEXTINCT")
			for i, r := range results {
				if top > 0 && i >= top {
					break
				}
				extinct := "-"
				if r.extinct >= 0 {
					extinct = fmt.Sprint(r.extinct)
				}
				rule := r.job.rule
				if rule == "" {
					rule = "(default)"
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n", rule, r.job.seed, r.alive, r.peak, extinct)
			}
			return tw.Flush()
		},
	}
	f := cmd.Flags()
	f.StringVar(&sim, "sim", "life", "Simulation name")
	f.StringArrayVar(&set, "set", nil, "Sim parameter as key=value (can be repeated)")
	f.StringSliceVar(&ruleList, "rules", nil, "Comma-separated rules to sweep (default: the sim's own rule)")
	f.IntVar(&seeds, "seeds", 8, "Seeds per rule")
	f.Int64Var(&seedBase, "seed-base", 1, "First seed")
	f.IntVar(&steps, "steps", 200, "Generations per run")
	f.IntVar(&workers, "workers", runtime.NumCPU(), "Concurrent runs")
	f.IntVar(&top, "top", 0, "Print only the best N runs (0 prints all)")
	return cmd
}

func sweepJobs(ruleList []string, seeds int, seedBase int64) []sweepJob {
	if len(ruleList) == 0 {
		ruleList = []string{""}
	}
	jobs := make([]sweepJob, 0, len(ruleList)*seeds)
	for _, rule := range ruleList {
		for i := 0; i < seeds; i++ {
			jobs = append(jobs, sweepJob{rule: rule, seed: seedBase + int64(i)})
		}
	}
	return jobs
}

// runSweep runs every job on at most workers goroutines. The first failing
// run cancels the rest. Results keep the order of jobs.
func runSweep(ctx context.Context, factory core.Factory, params map[string]string, jobs []sweepJob, steps, workers int) ([]sweepResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]sweepResult, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runSweepJob(ctx, factory, params, job, steps)
			if err != nil {
				return fmt.Errorf("rule %q seed %d: %w", job.rule, job.seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runSweepJob(ctx context.Context, factory core.Factory, params map[string]string, job sweepJob, steps int) (sweepResult, error) {
	cfg := maps.Clone(params)
	if job.rule != "" {
		if cfg == nil {
			cfg = map[string]string{}
		}
		cfg["rule"] = job.rule
	}
	sim, err := factory(cfg)
	if err != nil {
		return sweepResult{}, err
	}
	defer sim.Close()
	if err := sim.Reset(job.seed); err != nil {
		return sweepResult{}, err
	}

	res := sweepResult{job: job, peak: sim.Alive(), extinct: -1}
	for sim.Turn() < steps && sim.Alive() > 0 {
		if err := ctx.Err(); err != nil {
			return sweepResult{}, err
		}
		if err := sim.Step(); err != nil {
			return sweepResult{}, err
		}
		res.peak = max(res.peak, sim.Alive())
	}
	res.alive = sim.Alive()
	if res.alive == 0 {
		res.extinct = sim.Turn()
	}
	logrus.Debugf("sweep rule=%q seed=%d alive=%d extinct=%d", job.rule, job.seed, res.alive, res.extinct)
	return res, nil
}

// rankSweep orders surviving runs before extinct ones, then by final
// population, then by how long extinct runs lasted.
func rankSweep(results []sweepResult) {
	slices.SortStableFunc(results, func(a, b sweepResult) int {
		if (a.extinct < 0) != (b.extinct < 0) {
			if a.extinct < 0 {
				return -1
			}
			return 1
		}
		if a.alive != b.alive {
			return b.alive - a.alive
		}
		return b.extinct - a.extinct
	})
}
