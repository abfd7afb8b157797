package commands

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpadapter "github.com/PabloGalante/mindmesh/internal/adapters/http"
	"github.com/PabloGalante/mindmesh/internal/observability"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), nil)
		},
	}
}

// runServe serves until ctx is done, then shuts down gracefully. ready, if
// not nil, receives the bound address once the listener is open.
func runServe(ctx context.Context, ready chan<- string) error {
	logs, err := setupLogging(os.Stdout)
	if err != nil {
		return err
	}
	defer logs.Close()

	log := observability.WithFields("component", "api")

	svc, err := newConversation(ctx)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           httpadapter.NewServer(svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("mindmesh api listening", "addr", ln.Addr().String(), "mode", cfg.Mode)
		if ready != nil {
			ready <- ln.Addr().String()
		}
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down api")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
