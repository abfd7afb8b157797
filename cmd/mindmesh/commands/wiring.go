package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/PabloGalante/mindmesh/internal/adapters/audio"
	"github.com/PabloGalante/mindmesh/internal/adapters/llm"
	memstore "github.com/PabloGalante/mindmesh/internal/adapters/storage/memory"
	"github.com/PabloGalante/mindmesh/internal/app/conversation"
	"github.com/PabloGalante/mindmesh/internal/config"
	"github.com/PabloGalante/mindmesh/internal/domain"
	"github.com/PabloGalante/mindmesh/internal/observability"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogging points the global logger at the configured file, or at
// fallback when none is set.
func setupLogging(fallback io.Writer) (io.Closer, error) {
	if cfg.Log.File == "" {
		observability.Init(fallback, cfg.Log.Level)
		return nopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	observability.Init(f, cfg.Log.Level)
	return f, nil
}

// newLLM picks the canned client or Gemini from the config.
func newLLM(ctx context.Context) (domain.LLMClient, error) {
	log := observability.Logger()

	if cfg.UseMockLLM() {
		log.Info("using mock LLM client")
		return llm.NewMockLLM(), nil
	}

	gc := llm.GeminiConfig{
		ModelName: cfg.LLM.ModelName,
	}
	switch cfg.LLM.Backend {
	case config.BackendVertex:
		gc.Project = cfg.LLM.GCPProjectID
		gc.Location = cfg.LLM.GCPLocation
	default:
		gc.APIKey = cfg.LLM.APIKey
	}

	log.Info("using gemini LLM client", "backend", cfg.LLM.Backend, "model", cfg.LLM.ModelName)
	client, err := llm.NewGeminiClient(ctx, gc)
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}
	return client, nil
}

func newConversation(ctx context.Context) (*conversation.Service, error) {
	client, err := newLLM(ctx)
	if err != nil {
		return nil, err
	}
	return conversation.NewService(client, memstore.NewSessionStore(), memstore.NewMessageStore()), nil
}

type closablePlayer interface {
	domain.AudioPlayer
	io.Closer
}

// silentTrackLength is what the silent player pretends each track lasts.
const silentTrackLength = 3 * time.Minute

// newAudio returns the command line player, or a silent one when muted or
// when the player binary is missing.
func newAudio(mute bool) closablePlayer {
	if mute {
		return audio.NewSilentPlayer(silentTrackLength)
	}
	p, err := audio.NewExecPlayer(cfg.Audio.Player)
	if err != nil {
		observability.Logger().Warn("audio player unavailable, sounds are muted", "error", err)
		return audio.NewSilentPlayer(silentTrackLength)
	}
	return p
}
