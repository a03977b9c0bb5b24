package cli

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lifegen/internal/core"
)

const clearScreen = "\x1b[H\x1b[2J"

func newPlayCommand() *cobra.Command {
	var (
		src sourceOptions
		tps int
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Animate a simulation in the terminal",
		Long:  "Animate a simulation in the terminal at a fixed tick rate. With --steps 0 it runs until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			clock := core.NewFixedStep(tps)
			logrus.Debugf("playing %s at %d tps", sim.Name(), tps)

			for s.Steps == 0 || sim.Turn() < s.Steps {
				if !clock.ShouldStep() {
					select {
					case <-ctx.Done():
						return nil
					case <-time.After(clock.Remaining()):
					}
					continue
				}
				fmt.Fprint(out, clearScreen)
				if err := writeFrame(out, sim); err != nil {
					return err
				}
				fmt.Fprintf(out, "alive %d   [ctrl-c to stop]\n", sim.Alive())
				if err := sim.Step(); err != nil {
					return err
				}
			}
			fmt.Fprint(out, clearScreen)
			if err := writeFrame(out, sim); err != nil {
				return err
			}
			fmt.Fprintf(out, "alive %d\n", sim.Alive())
			return nil
		},
	}
	src.bind(cmd, 0)
	cmd.Flags().IntVar(&tps, "tps", 10, "Generations per second")
	return cmd
}
