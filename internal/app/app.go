package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minefield-annotator/internal/config"
	"github.com/vancomm/minefield-annotator/internal/middleware"
)

type Options struct {
	Addr        string
	BasePath    string
	CorsOrigins []string
}

func OptionsFromEnv() Options {
	return Options{
		Addr:        config.Addr(),
		BasePath:    config.BasePath(),
		CorsOrigins: config.CorsOrigins(),
	}
}

type App struct {
	log    *logrus.Logger
	opts   Options
	router *http.ServeMux
	ws     *config.WebSocket
}

func New(log *logrus.Logger, opts Options) *App {
	a := &App{
		log:    log,
		opts:   opts,
		router: http.NewServeMux(),
		ws:     config.NewWebSocket(opts.CorsOrigins),
	}
	a.loadRoutes()
	return a
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Cors(a.opts.CorsOrigins),
		middleware.Recoverer(),
		middleware.Logging(a.log),
		middleware.RequestID(),
	)
}

// Start serves until ctx is cancelled, then shuts the server down.
func (a *App) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.opts.Addr)
	if err != nil {
		return fmt.Errorf("unable to listen on %s: %w", a.opts.Addr, err)
	}
	return a.Serve(ctx, ln)
}

func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.log.WithFields(logrus.Fields{
		"addr":      ln.Addr().String(),
		"base path": a.opts.BasePath,
	}).Info("annotator online")

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	a.log.Info("annotator stopped")
	return nil
}
