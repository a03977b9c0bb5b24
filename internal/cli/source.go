package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"lifegen/internal/scenario"
	pcore "lifegen/pkg/core"
)

// sourceOptions are the flags shared by commands that build one sim.
type sourceOptions struct {
	scenario    string
	sim         string
	set         []string
	seed        int64
	steps       int
	patternFile string
}

func (o *sourceOptions) bind(cmd *cobra.Command, defaultSteps int) {
	f := cmd.Flags()
	f.StringVarP(&o.scenario, "scenario", "f", "", "Path to a scenario YAML file")
	f.StringVar(&o.sim, "sim", "life", "Simulation name (see `lifegen sims`)")
	f.StringArrayVar(&o.set, "set", nil, "Sim parameter as key=value (can be repeated)")
	f.Int64Var(&o.seed, "seed", 1, "Seed for the random initial board")
	f.IntVar(&o.steps, "steps", defaultSteps, "Number of generations to advance")
	f.StringVar(&o.patternFile, "pattern-file", "", "Seed the board from a text pattern instead of randomly")
}

// resolve merges the scenario file, if any, with the flags. Flags only
// override scenario fields when given explicitly.
func (o *sourceOptions) resolve(cmd *cobra.Command) (*scenario.Scenario, error) {
	params, err := parseSet(o.set)
	if err != nil {
		return nil, err
	}
	changed := cmd.Flags().Changed

	if o.scenario == "" {
		seed := o.seed
		s := &scenario.Scenario{
			Sim:         o.sim,
			Params:      params,
			Seed:        &seed,
			Steps:       o.steps,
			PatternFile: o.patternFile,
		}
		return s, s.Validate()
	}

	s, err := scenario.Load(o.scenario)
	if err != nil {
		return nil, err
	}
	if changed("sim") {
		s.Sim = o.sim
	}
	if len(params) > 0 && s.Params == nil {
		s.Params = map[string]string{}
	}
	for k, v := range params {
		s.Params[k] = v
	}
	if changed("seed") {
		seed := o.seed
		s.Seed = &seed
	}
	if changed("steps") {
		s.Steps = o.steps
	}
	if changed("pattern-file") {
		// relative to the working directory, not the scenario file
		path, err := filepath.Abs(o.patternFile)
		if err != nil {
			return nil, err
		}
		s.Pattern, s.Cells, s.PatternFile = "", nil, path
	}
	return s, s.Validate()
}

func parseSet(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		k, v, ok := strings.Cut(kv, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: --set %q is not key=value", pcore.ErrInvalidArgument, kv)
		}
		out[k] = strings.TrimSpace(v)
	}
	return out, nil
}
