package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lifegen/internal/core"
	pcore "lifegen/pkg/core"
)

// Launcher opens a window for sim and blocks until it closes. restart
// restores the initial board.
type Launcher func(sim core.Sim, restart func() error, scale, tps int) error

// NewGUICommand returns the windowed front end. It takes the same source
// flags as run; --steps is ignored.
func NewGUICommand(launch Launcher) *cobra.Command {
	var (
		src   sourceOptions
		scale int
		tps   int
	)
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Open the simulation in a window",
		Long: "Open the simulation in a window.\n\n" +
			"Keys: space pause, N single step, R restart, S reseed randomly, Q or Esc quit.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if scale <= 0 {
				return fmt.Errorf("%w: --scale must be positive", pcore.ErrInvalidArgument)
			}
			s, err := src.resolve(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("tps") && s.TPS > 0 {
				tps = s.TPS
			}
			sim, err := s.Build()
			if err != nil {
				return err
			}
			defer sim.Close()

			logrus.Infof("opening %s (%dx%d, scale %d, %d tps)", sim.Name(), sim.Size().W, sim.Size().H, scale, tps)
			return launch(sim, func() error { return s.Apply(sim) }, scale, tps)
		},
	}
	src.bind(cmd, 0)
	cmd.Flags().IntVar(&scale, "scale", 4, "Pixels per cell")
	cmd.Flags().IntVar(&tps, "tps", 30, "Generations per second")
	return cmd
}

// NewStandaloneGUICommand is NewGUICommand configured as a top-level
// command named use.
func NewStandaloneGUICommand(use string, launch Launcher) *cobra.Command {
	cmd := NewGUICommand(launch)
	cmd.Use = use
	configure(cmd)
	return cmd
}
