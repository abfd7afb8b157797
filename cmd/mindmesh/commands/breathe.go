package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/PabloGalante/mindmesh/internal/app/breathing"
	"github.com/PabloGalante/mindmesh/internal/domain"
)

func breatheCmd() *cobra.Command {
	var (
		technique string
		cycles    int
		tick      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "breathe",
		Short: "Run a guided breathing exercise in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := setupLogging(io.Discard)
			if err != nil {
				return err
			}
			defer logs.Close()

			return runBreathe(cmd.Context(), cmd.OutOrStdout(), technique, cycles, tick)
		},
	}

	cmd.Flags().StringVarP(&technique, "technique", "t", "4-7-8", "technique id: 4-7-8, box or relaxing")
	cmd.Flags().IntVarP(&cycles, "cycles", "n", 3, "cycles to run, 0 runs until interrupted")
	cmd.Flags().DurationVar(&tick, "tick", breathing.DefaultInterval, "length of one count")
	_ = cmd.Flags().MarkHidden("tick")
	return cmd
}

func runBreathe(ctx context.Context, out io.Writer, id string, cycles int, tick time.Duration) error {
	if tick <= 0 {
		return fmt.Errorf("tick must be positive, got %s", tick)
	}

	tech, err := breathing.Lookup(id)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\n%s\n\n", tech.Name, tech.Description)

	ctrl := breathing.NewController(tech)
	announce := func(p domain.Phase) {
		fmt.Fprintf(out, "%-12s %ds\n", breathing.Instruction(p), tech.Duration(p))
	}
	announce(ctrl.State().Phase)

	completed := 0
	runner := breathing.NewRunner(ctrl,
		breathing.WithInterval(tick),
		breathing.WithCycles(cycles),
		breathing.WithObserver(func(state domain.CadenceState, changed bool) {
			if !changed {
				return
			}
			if state.Phase == domain.PhaseInhale {
				completed++
				// the run ends here, no next inhale to announce
				if cycles > 0 && completed >= cycles {
					return
				}
			}
			announce(state.Phase)
		}),
	)

	err = runner.Run(ctx)
	if err != nil && ctx.Err() != nil {
		fmt.Fprintln(out, "\nStopped. Take a moment before you move on.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nDone, %d cycles. Notice how you feel.\n", cycles)
	return nil
}
