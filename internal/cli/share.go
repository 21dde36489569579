package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Settc/liftscript/internal/logging"
	"github.com/Settc/liftscript/internal/share"
)

func newShareCommand(ctx context.Context, a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Publish the current workout and print its share code.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.currentText(ctx)
			if err != nil {
				return err
			}
			if err := requireText(text); err != nil {
				return err
			}
			if name == "" {
				if name, err = a.manager.CurrentName(); err != nil {
					return err
				}
			}

			exchange, err := a.exchange(ctx)
			if err != nil {
				return err
			}
			code, err := exchange.Publish(ctx, share.Workout{Name: name, Text: text})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Share code: %s\n", code)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name shown to the recipient (default: the saved name)")

	return cmd
}

func newImportCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <code>",
		Short: "Replace the current workout with a shared one.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exchange, err := a.exchange(ctx)
			if err != nil {
				return err
			}
			w, err := exchange.Resolve(ctx, args[0])
			switch {
			case errors.Is(err, share.ErrNotFound):
				return fmt.Errorf("no workout shared under %q", args[0])
			case err != nil:
				return err
			}

			if err := a.manager.SaveText(w.Text); err != nil {
				return err
			}
			if err := a.manager.SetCurrentName(""); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %q; run \"liftscript save\" with a name to keep it.\n", w.Name)
			return nil
		},
	}
}

func newServeCommand(ctx context.Context, a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the share exchange over HTTP.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr()
			}
			level, err := logging.ParseLevel(a.cfg.Log.Level)
			if err != nil {
				return err
			}
			log := logging.New(cmd.ErrOrStderr(), level)

			db, err := a.store(ctx)
			if err != nil {
				return err
			}
			srv := &http.Server{
				Addr:              addr,
				Handler:           share.NewHandler(share.NewService(db, log), log),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info("share server listening", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("share server: %w", err)
			case <-ctx.Done():
			}

			log.Info("shutting down share server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown share server: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: server.host:server.port from config)")

	return cmd
}
