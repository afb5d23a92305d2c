package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"spin2win/internal/config"
)

const (
	shutdownTimeout  = 10 * time.Second
	maxEvictInterval = time.Minute
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
	s.initServiceProvider()
	defer s.ServiceProvider.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := s.ServiceProvider.Logger()
	srv := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           s.ServiceProvider.Router(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.evictSessions(ctx)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// evictSessions Периодически убирает сессии с истёкшим токеном, пока жив ctx
func (s *App) evictSessions(ctx context.Context) {
	interval := min(s.ServiceProvider.TokenCfg().TTL(), maxEvictInterval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	serv := s.ServiceProvider.StrategyService()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			serv.EvictExpired(ctx)
		}
	}
}
