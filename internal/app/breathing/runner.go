package breathing

import (
	"context"
	"time"

	"github.com/PabloGalante/mindmesh/internal/domain"
	"github.com/PabloGalante/mindmesh/internal/observability"
)

// DefaultInterval is the cadence of one tick.
const DefaultInterval = time.Second

// Ticker is the time source behind a Runner.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// NewTickerFunc builds a Ticker firing every d.
type NewTickerFunc func(d time.Duration) Ticker

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// Observer is called after every tick with the new state.
type Observer func(state domain.CadenceState, phaseChanged bool)

// Runner drives a Controller from a Ticker on the caller's goroutine.
type Runner struct {
	ctrl      *Controller
	interval  time.Duration
	newTicker NewTickerFunc
	observe   Observer
	maxCycles int
}

type RunnerOption func(*Runner)

func WithTicker(f NewTickerFunc) RunnerOption {
	return func(r *Runner) { r.newTicker = f }
}

// WithInterval sets the tick length. Non-positive values keep DefaultInterval.
func WithInterval(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.interval = d
		}
	}
}

func WithObserver(o Observer) RunnerOption {
	return func(r *Runner) { r.observe = o }
}

// WithCycles stops the run after n complete cycles. n <= 0 runs until cancelled.
func WithCycles(n int) RunnerOption {
	return func(r *Runner) { r.maxCycles = n }
}

func NewRunner(ctrl *Controller, opts ...RunnerOption) *Runner {
	r := &Runner{
		ctrl:      ctrl,
		interval:  DefaultInterval,
		newTicker: NewTimeTicker,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run starts the controller and ticks it until ctx is done or the cycle
// limit is reached. The controller is left stopped, at the phase and counter
// it reached. Cancellation returns ctx.Err().
func (r *Runner) Run(ctx context.Context) error {
	tech := r.ctrl.Technique()
	log := observability.LoggerFromContext(ctx).With(
		"technique", tech.ID,
		"max_cycles", r.maxCycles,
	)
	log.Info("breathing run started")

	ticker := r.newTicker(r.interval)
	defer ticker.Stop()

	r.ctrl.Start()
	defer r.ctrl.Stop()

	cycles := 0
	for {
		select {
		case <-ctx.Done():
			log.Info("breathing run cancelled", "cycles", cycles)
			return ctx.Err()
		case <-ticker.C():
			changed := r.ctrl.Tick()
			state := r.ctrl.State()
			if changed && state.Phase == domain.PhaseInhale {
				cycles++
			}
			if r.observe != nil {
				r.observe(state, changed)
			}
			if r.maxCycles > 0 && cycles >= r.maxCycles {
				log.Info("breathing run finished", "cycles", cycles)
				return nil
			}
		}
	}
}
