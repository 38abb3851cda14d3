package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/qubitara/hr-console/internal/api"
	"github.com/qubitara/hr-console/internal/api/metrics"
	"github.com/qubitara/hr-console/internal/infrastructure/config"
	"github.com/qubitara/hr-console/internal/notify"
	"github.com/qubitara/hr-console/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Auth events feed the audit log and the login counters.
	notifier := notify.NewNotifier(log)
	notifier.Subscribe(auditSubscriber(log))
	notifier.Subscribe(metricsSubscriber())
	notifier.Start(ctx)

	e, err := api.NewRouter(cfg, log, notifier)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("hr console listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// auditSubscriber writes one structured line per auth event.
func auditSubscriber(log zerolog.Logger) notify.Subscriber {
	return func(event notify.AuthEvent) {
		log.Info().
			Str("kind", string(event.Kind)).
			Str("email", event.Email).
			Str("user_id", event.UserID).
			Str("role", string(event.Role)).
			Time("at", event.At).
			Msg("auth event")
	}
}

// metricsSubscriber maps auth events onto the login counters.
func metricsSubscriber() notify.Subscriber {
	return func(event notify.AuthEvent) {
		switch event.Kind {
		case notify.LoginSucceeded:
			metrics.LoginsTotal.WithLabelValues("success").Inc()
		case notify.LoginFailed:
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		case notify.LoginThrottled:
			metrics.LoginsTotal.WithLabelValues("rate_limited").Inc()
		}
	}
}
