package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"radar/internal/app"
	"radar/internal/platform/config"
	"radar/internal/platform/logger"
	"radar/pkg/platform/audit/relay"
)

const (
	shutdownTimeout      = 10 * time.Second
	auditTopicPartitions = 3
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg, err := config.Load()
	if err != nil {
		// The logger depends on config, so report on stderr.
		_, _ = os.Stderr.WriteString("radar: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.New(cfg.Log)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Warn("failed to release resources", zap.Error(err))
		}
	}()

	go a.RunMaintenance(ctx)

	relayDone, err := startRelay(ctx, cfg, a, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting radar", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		stop()
		<-relayDone
		return err
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err = srv.Shutdown(shutdownCtx)
	<-relayDone
	return err
}

// startRelay runs the audit outbox relay until ctx ends. The returned channel
// closes once the relay has stopped.
func startRelay(ctx context.Context, cfg *config.Config, a *app.App, log *zap.Logger) (<-chan struct{}, error) {
	done := make(chan struct{})
	if len(cfg.Kafka.Brokers) == 0 {
		log.Info("KAFKA_BROKERS not set, audit relay disabled")
		close(done)
		return done, nil
	}
	client, err := relay.NewKafkaClient(cfg.Kafka.Brokers, "radar-audit-relay")
	if err != nil {
		return nil, err
	}
	if err := relay.EnsureTopic(ctx, client, cfg.Kafka.Topic, auditTopicPartitions, 1); err != nil {
		log.Warn("could not ensure audit topic", zap.String("topic", cfg.Kafka.Topic), zap.Error(err))
	}
	r := relay.New(a.Outbox, client, cfg.Kafka.Topic, relay.WithLogger(log))
	go func() {
		defer close(done)
		defer client.Close()
		if err := r.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Warn("audit relay stopped", zap.Error(err))
		}
	}()
	log.Info("audit relay started", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	return done, nil
}
