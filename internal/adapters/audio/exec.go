package audio

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/PabloGalante/mindmesh/internal/domain"
	"github.com/PabloGalante/mindmesh/internal/observability"
)

var ErrNoPlayerCommand = errors.New("audio player command is empty")

// ExecPlayer plays tracks through an external command line player such as
// ffplay or mpv. The track path is appended as the last argument. Pausing
// suspends the process where the platform allows it.
type ExecPlayer struct {
	argv []string
	now  func() time.Time

	mu      sync.Mutex
	proc    *process
	track   domain.Track
	paused  bool
	started time.Time
	elapsed time.Duration
}

type process struct {
	cmd  *exec.Cmd
	done chan struct{}
}

func (p *process) exited() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// NewExecPlayer splits command on whitespace and checks that the binary
// exists.
func NewExecPlayer(command string) (*ExecPlayer, error) {
	argv := strings.Fields(command)
	if len(argv) == 0 {
		return nil, ErrNoPlayerCommand
	}
	return NewExecPlayerArgs(argv)
}

func NewExecPlayerArgs(argv []string) (*ExecPlayer, error) {
	if len(argv) == 0 {
		return nil, ErrNoPlayerCommand
	}
	if _, err := exec.LookPath(argv[0]); err != nil {
		return nil, fmt.Errorf("audio player %q: %w", argv[0], err)
	}
	return &ExecPlayer{argv: append([]string(nil), argv...), now: time.Now}, nil
}

func (e *ExecPlayer) Play(ctx context.Context, track domain.Track) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	log := observability.LoggerFromContext(ctx).With("track", track.Title, "source", track.Source)

	if e.proc != nil && !e.proc.exited() && track == e.track {
		if !e.paused {
			return nil
		}
		if err := resume(e.proc.cmd.Process); err == nil {
			e.paused = false
			e.started = e.now()
			log.Debug("resumed audio")
			return nil
		}
	}

	e.stopLocked()

	args := append(append([]string(nil), e.argv[1:]...), track.Source)
	// The process outlives the caller's context, Close ends it.
	cmd := exec.Command(e.argv[0], args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", e.argv[0], err)
	}

	proc := &process{cmd: cmd, done: make(chan struct{})}
	go func() {
		_ = cmd.Wait()
		close(proc.done)
	}()

	e.proc = proc
	e.track = track
	e.paused = false
	e.started = e.now()
	e.elapsed = 0
	log.Debug("started audio", "pid", cmd.Process.Pid)
	return nil
}

func (e *ExecPlayer) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.proc == nil || e.proc.exited() || e.paused {
		return nil
	}

	e.elapsed += e.now().Sub(e.started)
	if err := suspend(e.proc.cmd.Process); err != nil {
		// No suspend support: stop and start over on the next Play.
		e.stopLocked()
		return nil
	}
	e.paused = true
	return nil
}

// Position reports the time played. The total length is unknown to a
// command line player, so it is always 0.
func (e *ExecPlayer) Position() (time.Duration, time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.proc == nil {
		return e.elapsed, 0
	}
	elapsed := e.elapsed
	if !e.paused && !e.proc.exited() {
		elapsed += e.now().Sub(e.started)
	}
	return elapsed, 0
}

// Finished is true when the player process exited on its own, which is how
// a command line player signals the end of a track.
func (e *ExecPlayer) Finished() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.proc != nil && !e.paused && e.proc.exited()
}

// Close kills any running player process and waits for it to exit.
func (e *ExecPlayer) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
	return nil
}

func (e *ExecPlayer) stopLocked() {
	if e.proc == nil {
		return
	}
	if !e.proc.exited() {
		if e.paused {
			_ = resume(e.proc.cmd.Process)
		}
		_ = e.proc.cmd.Process.Kill()
	}
	<-e.proc.done
	e.proc = nil
	e.paused = false
}
