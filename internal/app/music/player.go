package music

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/PabloGalante/mindmesh/internal/domain"
	"github.com/PabloGalante/mindmesh/internal/observability"
)

var (
	ErrEmptyPlaylist = errors.New("playlist is empty")
	ErrNoSuchTrack   = errors.New("no such track")
)

var defaultTitles = []string{
	"Peaceful Rain",
	"Ocean Waves",
	"Forest Birds",
	"Gentle Stream",
	"Night Crickets",
}

// DefaultPlaylist returns the ambient sounds, expected as 1.mp3 ... 5.mp3 in dir.
func DefaultPlaylist(dir string) []domain.Track {
	tracks := make([]domain.Track, len(defaultTitles))
	for i, title := range defaultTitles {
		tracks[i] = domain.Track{
			Title:  title,
			Source: filepath.Join(dir, fmt.Sprintf("%d.mp3", i+1)),
		}
	}
	return tracks
}

// Player walks a playlist and forwards play/pause to an AudioPlayer.
type Player struct {
	audio   domain.AudioPlayer
	tracks  []domain.Track
	current int
	playing bool
}

func NewPlayer(audio domain.AudioPlayer, tracks []domain.Track) (*Player, error) {
	if len(tracks) == 0 {
		return nil, ErrEmptyPlaylist
	}
	return &Player{
		audio:  audio,
		tracks: append([]domain.Track(nil), tracks...),
	}, nil
}

func (p *Player) Tracks() []domain.Track { return append([]domain.Track(nil), p.tracks...) }
func (p *Player) Current() domain.Track  { return p.tracks[p.current] }
func (p *Player) Index() int             { return p.current }
func (p *Player) Playing() bool          { return p.playing }

// Toggle pauses a playing track or plays the current one. The playing flag
// only flips when the audio call succeeds.
func (p *Player) Toggle(ctx context.Context) error {
	if p.playing {
		if err := p.audio.Pause(); err != nil {
			return fmt.Errorf("pause %q: %w", p.Current().Title, err)
		}
		p.playing = false
		return nil
	}
	return p.play(ctx)
}

// Next moves to the following track, wrapping around, and plays it.
func (p *Player) Next(ctx context.Context) error {
	p.current = (p.current + 1) % len(p.tracks)
	return p.play(ctx)
}

// Prev moves to the previous track, wrapping around, and plays it.
func (p *Player) Prev(ctx context.Context) error {
	p.current = (p.current - 1 + len(p.tracks)) % len(p.tracks)
	return p.play(ctx)
}

// PlayAt selects track i and plays it.
func (p *Player) PlayAt(ctx context.Context, i int) error {
	if i < 0 || i >= len(p.tracks) {
		return fmt.Errorf("%w: %d of %d", ErrNoSuchTrack, i+1, len(p.tracks))
	}
	p.current = i
	return p.play(ctx)
}

// Advance moves on to the next track once the playing one has ended. It
// reports whether it switched.
func (p *Player) Advance(ctx context.Context) (bool, error) {
	if !p.playing || !p.audio.Finished() {
		return false, nil
	}
	return true, p.Next(ctx)
}

// Position is the elapsed and total length of the current track. total is 0
// when the backend cannot tell.
func (p *Player) Position() (elapsed, total time.Duration) {
	return p.audio.Position()
}

// Progress is the percentage of the current track played so far, 0 when the
// length is unknown.
func (p *Player) Progress() float64 {
	elapsed, total := p.audio.Position()
	if total <= 0 {
		return 0
	}
	pct := float64(elapsed) / float64(total) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

func (p *Player) play(ctx context.Context) error {
	track := p.Current()
	if err := p.audio.Play(ctx, track); err != nil {
		p.playing = false
		return fmt.Errorf("play %q: %w", track.Title, err)
	}
	p.playing = true
	observability.LoggerFromContext(ctx).Info("playing ambient sound", "title", track.Title, "index", p.current)
	return nil
}
