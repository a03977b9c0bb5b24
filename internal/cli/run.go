package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lifegen/internal/core"
	"lifegen/internal/render"
)

func newRunCommand() *cobra.Command {
	var (
		src   sourceOptions
		every int
		quiet bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Advance a simulation headlessly and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := src.resolve(cmd)
			if err != nil {
				return err
			}
			sim, err := s.Build()
			if err != nil {
				return err
			}
			defer sim.Close()

			out := cmd.OutOrStdout()
			logrus.Infof("running %s for %d steps", sim.Name(), s.Steps)
			start := time.Now()
			for i := 0; i < s.Steps; i++ {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				if err := sim.Step(); err != nil {
					return fmt.Errorf("step %d: %w", sim.Turn()+1, err)
				}
				if every > 0 && sim.Turn()%every == 0 && !quiet {
					if err := writeFrame(out, sim); err != nil {
						return err
					}
				}
			}
			if !quiet && (every <= 0 || s.Steps%every != 0 || s.Steps == 0) {
				if err := writeFrame(out, sim); err != nil {
					return err
				}
			}
			fmt.Fprintf(out, "sim=%s turn=%d alive=%d\n", sim.Name(), sim.Turn(), sim.Alive())
			logrus.Infof("finished in %s", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
	src.bind(cmd, 100)
	cmd.Flags().IntVar(&every, "every", 0, "Also print the board every N turns (0 prints only the final board)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the summary line")
	return cmd
}

func writeFrame(w io.Writer, sim core.Sim) error {
	if _, err := fmt.Fprintf(w, "turn %d\n", sim.Turn()); err != nil {
		return err
	}
	return render.WriteConsole(w, sim.Cells(), sim.Size())
}
