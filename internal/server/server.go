// Package server mounts the HTTP control surface and owns its life cycle.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/searchbot/searchbot/internal/browser"
	"github.com/searchbot/searchbot/internal/config"
	"github.com/searchbot/searchbot/internal/handler"
	"github.com/searchbot/searchbot/internal/handler/profiles"
	runhandler "github.com/searchbot/searchbot/internal/handler/run"
	"github.com/searchbot/searchbot/internal/handler/terms"
	"github.com/searchbot/searchbot/internal/logging"
	"github.com/searchbot/searchbot/internal/middleware"
	"github.com/searchbot/searchbot/internal/schedule"
	"github.com/searchbot/searchbot/internal/svc"
)

// Options holds optional server dependencies.
type Options struct {
	SvcCtx *svc.ServiceContext // pre-initialized service context
	Quiet  bool                // suppress startup messages for clean CLI output
}

// Run starts the server with the given configuration. It blocks until the
// context is cancelled or startup fails.
func Run(ctx context.Context, c config.Config, opts ...Options) error {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	return run(ctx, c, o)
}

func run(ctx context.Context, c config.Config, opts Options) error {
	if err := checkPortAvailable(c.Port); err != nil {
		return fmt.Errorf("port %d is already in use - only one instance allowed per computer", c.Port)
	}

	svcCtx := opts.SvcCtx
	if svcCtx == nil {
		var err error
		svcCtx, err = svc.NewServiceContext(c)
		if err != nil {
			return err
		}
	}

	r := NewRouter(svcCtx, opts.Quiet)

	// Pick up term edits made outside the process.
	watchCtx, cancelWatch := context.WithCancel(ctx)
	defer cancelWatch()
	go func() {
		if err := svcCtx.Store.Watch(watchCtx); err != nil {
			logging.Errorf("store watcher: %v", err)
		}
	}()

	if c.Schedule.Spec != "" {
		kind, err := browser.ParseKind(c.Schedule.Browser)
		if err != nil {
			return fmt.Errorf("schedule: %w", err)
		}
		sched := schedule.New(c.Schedule.Spec, svcCtx.Store, svcCtx.Runner, c.Schedule.DelaySeconds, kind)
		if err := sched.Start(); err != nil {
			return err
		}
		defer sched.Stop()
	}

	httpServer := &http.Server{
		Addr:        fmt.Sprintf("%s:%d", c.Host, c.Port),
		Handler:     r,
		IdleTimeout: 120 * time.Second,
	}

	if !opts.Quiet {
		fmt.Printf("Server ready at http://localhost:%d\n", c.Port)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	if !opts.Quiet {
		fmt.Println("\nShutting down server gracefully...")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// NewRouter builds the chi router with all API routes mounted.
func NewRouter(svcCtx *svc.ServiceContext, quiet bool) chi.Router {
	r := chi.NewRouter()

	if !quiet {
		r.Use(chimw.Logger)
	}
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handler.HealthCheckHandler(svcCtx))

		r.Get("/profiles", profiles.ListProfilesHandler(svcCtx))
		r.Post("/profiles/refresh", profiles.RefreshProfilesHandler(svcCtx))
		r.Post("/apply-profiles", profiles.ApplyProfilesHandler(svcCtx))
		r.Get("/selected-profiles", profiles.SelectedProfilesHandler(svcCtx))

		r.Post("/save", terms.SaveTermsHandler(svcCtx))
		r.Get("/load", terms.LoadTermsHandler(svcCtx))

		r.Post("/start", runhandler.StartHandler(svcCtx))
		r.Post("/stop", runhandler.StopHandler(svcCtx))
		r.Get("/status", runhandler.StatusHandler(svcCtx))
	})

	return r
}

// checkPortAvailable checks if a port is available for binding.
func checkPortAvailable(port int) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return err
	}
	ln.Close()
	return nil
}
