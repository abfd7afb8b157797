package audio

import (
	"context"
	"os/exec"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/PabloGalante/mindmesh/internal/domain"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestSilentPlayer_Position(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewSilentPlayer(time.Minute)
	p.now = clock.now

	rain := domain.Track{Title: "Peaceful Rain", Source: "music/1.mp3"}
	require.NoError(t, p.Play(context.Background(), rain))

	clock.advance(10 * time.Second)
	elapsed, total := p.Position()
	assert.Equal(t, 10*time.Second, elapsed)
	assert.Equal(t, time.Minute, total)

	require.NoError(t, p.Pause())
	clock.advance(time.Hour)
	elapsed, _ = p.Position()
	assert.Equal(t, 10*time.Second, elapsed, "paused time does not count")

	// resuming the same track keeps the position
	require.NoError(t, p.Play(context.Background(), rain))
	clock.advance(5 * time.Second)
	elapsed, _ = p.Position()
	assert.Equal(t, 15*time.Second, elapsed)

	// a new track starts from zero
	require.NoError(t, p.Play(context.Background(), domain.Track{Title: "Ocean Waves", Source: "music/2.mp3"}))
	elapsed, _ = p.Position()
	assert.Zero(t, elapsed)

	clock.advance(2 * time.Hour)
	elapsed, _ = p.Position()
	assert.Equal(t, time.Minute, elapsed, "clamped to the track length")

	assert.Equal(t, 3, p.Plays)
	assert.Equal(t, 1, p.Pauses)
}

func TestSilentPlayer_Finished(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewSilentPlayer(time.Minute)
	p.now = clock.now

	rain := domain.Track{Title: "Peaceful Rain", Source: "music/1.mp3"}
	assert.False(t, p.Finished())

	require.NoError(t, p.Play(context.Background(), rain))
	clock.advance(59 * time.Second)
	assert.False(t, p.Finished())

	clock.advance(time.Second)
	assert.True(t, p.Finished())

	// replaying an ended track starts it over
	require.NoError(t, p.Play(context.Background(), rain))
	assert.False(t, p.Finished())
	elapsed, _ := p.Position()
	assert.Zero(t, elapsed)

	require.NoError(t, p.Pause())
	clock.advance(time.Hour)
	assert.False(t, p.Finished(), "paused tracks do not end")

	endless := NewSilentPlayer(0)
	endless.now = clock.now
	require.NoError(t, endless.Play(context.Background(), rain))
	clock.advance(24 * time.Hour)
	assert.False(t, endless.Finished(), "no length, no end")
}

func TestExecPlayer_FinishedWhenProcessExits(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	defer goleak.VerifyNone(t)

	p, err := NewExecPlayerArgs([]string{"sh", "-c", "exit 0"})
	require.NoError(t, err)

	require.NoError(t, p.Play(context.Background(), domain.Track{Title: "Ocean Waves", Source: "music/2.mp3"}))
	assert.Eventually(t, p.Finished, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, p.Close())
	assert.False(t, p.Finished())
}

func TestSilentPlayer_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewSilentPlayer(0).Play(ctx, domain.Track{Title: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewExecPlayer_Errors(t *testing.T) {
	_, err := NewExecPlayer("   ")
	assert.ErrorIs(t, err, ErrNoPlayerCommand)

	_, err = NewExecPlayer("definitely-not-a-real-player-binary -q")
	assert.Error(t, err)
}

func TestExecPlayer_PlayPauseClose(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	defer goleak.VerifyNone(t)

	// the track path lands in $0 and is ignored
	p, err := NewExecPlayerArgs([]string{"sh", "-c", "sleep 30"})
	require.NoError(t, err)

	ctx := context.Background()
	track := domain.Track{Title: "Forest Birds", Source: "music/3.mp3"}

	require.NoError(t, p.Play(ctx, track))
	first := p.proc
	require.NotNil(t, first)

	require.NoError(t, p.Pause())
	require.NoError(t, p.Play(ctx, track))
	assert.Same(t, first, p.proc, "same track resumes the running process")

	require.NoError(t, p.Play(ctx, domain.Track{Title: "Gentle Stream", Source: "music/4.mp3"}))
	assert.NotSame(t, first, p.proc, "a new track restarts the player")
	assert.True(t, first.exited())

	require.NoError(t, p.Close())
	assert.Nil(t, p.proc)
	_, total := p.Position()
	assert.Zero(t, total)
}
