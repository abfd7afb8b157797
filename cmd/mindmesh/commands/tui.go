package commands

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/PabloGalante/mindmesh/internal/adapters/tui"
	"github.com/PabloGalante/mindmesh/internal/app/music"
	"github.com/PabloGalante/mindmesh/internal/domain"
	"github.com/PabloGalante/mindmesh/internal/observability"
)

func tuiCmd() *cobra.Command {
	var mute bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive terminal app (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), mute)
		},
	}
	cmd.Flags().BoolVar(&mute, "mute", false, "do not play ambient sounds")
	return cmd
}

func runTUI(ctx context.Context, mute bool) error {
	// logs would draw over the screen, so they go to a file or nowhere
	logs, err := setupLogging(io.Discard)
	if err != nil {
		return err
	}
	defer logs.Close()

	svc, err := newConversation(ctx)
	if err != nil {
		return err
	}

	player := newAudio(mute)
	defer player.Close()

	playlist, err := music.NewPlayer(player, music.DefaultPlaylist(cfg.Audio.TracksDir))
	if err != nil {
		return err
	}

	model := tui.New(tui.Deps{
		Chat:    svc,
		Music:   playlist,
		UserID:  domain.UserID(cfg.UserID),
		Context: ctx,
	})

	observability.Logger().Info("starting tui", "user_id", cfg.UserID)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
