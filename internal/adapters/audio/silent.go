package audio

import (
	"context"
	"sync"
	"time"

	"github.com/PabloGalante/mindmesh/internal/domain"
)

// SilentPlayer keeps play/pause state and a position clock without making
// any sound. Used with --mute and when no player command is available.
type SilentPlayer struct {
	mu      sync.Mutex
	now     func() time.Time
	length  time.Duration
	track   domain.Track
	playing bool
	started time.Time
	elapsed time.Duration

	Plays  int
	Pauses int
}

// NewSilentPlayer pretends every track lasts length.
func NewSilentPlayer(length time.Duration) *SilentPlayer {
	return &SilentPlayer{now: time.Now, length: length}
}

// SetClock replaces the time source behind Position and Finished.
func (s *SilentPlayer) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *SilentPlayer) Play(ctx context.Context, track domain.Track) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if track != s.track || s.endedLocked() {
		s.track = track
		s.elapsed = 0
	}
	s.playing = true
	s.started = s.now()
	s.Plays++
	return nil
}

func (s *SilentPlayer) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.playing {
		s.elapsed += s.now().Sub(s.started)
		s.playing = false
	}
	s.Pauses++
	return nil
}

func (s *SilentPlayer) Position() (time.Duration, time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elapsed := s.elapsedLocked()
	if s.length > 0 && elapsed > s.length {
		elapsed = s.length
	}
	return elapsed, s.length
}

// Finished is true once a playing track has run for its whole length.
// With no length a track never ends.
func (s *SilentPlayer) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing && s.endedLocked()
}

func (s *SilentPlayer) elapsedLocked() time.Duration {
	elapsed := s.elapsed
	if s.playing {
		elapsed += s.now().Sub(s.started)
	}
	return elapsed
}

func (s *SilentPlayer) endedLocked() bool {
	return s.length > 0 && s.elapsedLocked() >= s.length
}

func (s *SilentPlayer) Close() error { return nil }
