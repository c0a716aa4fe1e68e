// Package app wires configuration into stores, services and the HTTP router.
// Both the server and radarctl build from here so they share one graph.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"radar/internal/answercrypt"
	assessmentHandler "radar/internal/assessment/handler"
	assessmentService "radar/internal/assessment/service"
	assessmentStore "radar/internal/assessment/store"
	consentHandler "radar/internal/consent/handler"
	consentService "radar/internal/consent/service"
	consentStore "radar/internal/consent/store"
	datarightsHandler "radar/internal/datarights/handler"
	datarightsService "radar/internal/datarights/service"
	"radar/internal/flags/engine"
	flagsHandler "radar/internal/flags/handler"
	flagService "radar/internal/flags/service"
	flagStore "radar/internal/flags/store"
	jwttoken "radar/internal/jwt_token"
	"radar/internal/platform/config"
	"radar/internal/platform/metrics"
	"radar/internal/platform/postgres"
	"radar/internal/radar/aggregator"
	radarCache "radar/internal/radar/cache"
	radarHandler "radar/internal/radar/handler"
	radarStore "radar/internal/radar/store"
	rateLimit "radar/internal/ratelimit/middleware"
	rateLimitService "radar/internal/ratelimit/service"
	rateLimitStore "radar/internal/ratelimit/store"
	httptransport "radar/internal/transport/http"
	audit "radar/pkg/platform/audit"
	"radar/pkg/platform/audit/publishers/compliance"
	auditmemory "radar/pkg/platform/audit/store/memory"
	auditpostgres "radar/pkg/platform/audit/store/postgres"
	"radar/pkg/platform/tx"
)

// App is the assembled process graph.
type App struct {
	Config     *config.Config
	Router     http.Handler
	Assessment *assessmentService.Service
	DataRights *datarightsService.Service
	JWT        *jwttoken.JWTService
	// Outbox is the relay side of the audit store.
	Outbox audit.Outbox

	logger  *zap.Logger
	db      *sql.DB
	redis   *redis.Client
	buckets *rateLimitStore.InMemoryBucketStore
	closers []func() error
}

const bucketSweepInterval = 5 * time.Minute

type stores struct {
	participants datarightsParticipants
	answers      datarightsAnswers
	profiles     profileStore
	consents     consentService.Store
	flags        flagService.Store
	audit        auditStore
	tx           tx.Runner
}

// The concrete memory and postgres stores satisfy both the lifecycle and the
// data rights ports; these unions let one value feed both services.
type datarightsParticipants interface {
	assessmentService.ParticipantStore
	datarightsService.ParticipantStore
}

type datarightsAnswers interface {
	assessmentService.AnswerStore
	datarightsService.AnswerStore
}

type profileStore interface {
	assessmentService.ProfileStore
	datarightsService.ProfileStore
}

type auditStore interface {
	audit.Store
	audit.Outbox
}

// Build opens backing services and assembles every component. Callers must
// Close the returned App.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{Config: cfg, logger: logger}
	ok := false
	defer func() {
		if !ok {
			_ = a.Close()
		}
	}()

	st, err := a.openStores(ctx)
	if err != nil {
		return nil, err
	}

	cipher, err := answercrypt.New(answercrypt.NewStaticKeyProvider(cfg.AnswerEncryptionKey))
	if err != nil {
		return nil, err
	}
	mapping, err := aggregator.LoadMapping(cfg.RadarMappingFile)
	if err != nil {
		return nil, fmt.Errorf("load radar mapping: %w", err)
	}
	rules, err := engine.LoadRuleEngine(cfg.FlagRulesFile)
	if err != nil {
		return nil, fmt.Errorf("load flag rules: %w", err)
	}
	cache, err := a.openCache(ctx)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	publisher := compliance.New(st.audit,
		compliance.WithLogger(logger),
		compliance.WithMetrics(compliance.NewMetrics(registry)),
	)
	a.closers = append(a.closers, publisher.Close)
	a.Outbox = st.audit

	consents := consentService.New(st.consents,
		consentService.WithLogger(logger),
		consentService.WithAuditPublisher(publisher),
	)
	flags := flagService.New(rules, st.flags,
		flagService.WithLogger(logger),
		flagService.WithAuditPublisher(publisher),
	)

	a.Assessment, err = assessmentService.New(assessmentService.Dependencies{
		Participants: st.participants,
		Answers:      st.answers,
		Profiles:     st.profiles,
		Consents:     consents,
		Flags:        flags,
		Scorer:       aggregator.New(mapping),
		Cipher:       cipher,
		Tx:           st.tx,
	},
		assessmentService.WithLogger(logger),
		assessmentService.WithAuditPublisher(publisher),
		assessmentService.WithMetrics(m),
		assessmentService.WithCache(cache),
	)
	if err != nil {
		return nil, err
	}

	a.DataRights, err = datarightsService.New(datarightsService.Dependencies{
		Participants: st.participants,
		Answers:      st.answers,
		Profiles:     st.profiles,
		Flags:        flags,
		Consents:     consents,
		Cipher:       cipher,
		Tx:           st.tx,
	},
		datarightsService.WithLogger(logger),
		datarightsService.WithAuditPublisher(publisher),
		datarightsService.WithMetrics(m),
		datarightsService.WithCache(cache),
	)
	if err != nil {
		return nil, err
	}

	limiter, err := a.openLimiter()
	if err != nil {
		return nil, err
	}

	a.JWT = jwttoken.NewJWTService(cfg.Server.JWTSigningKey, cfg.Server.JWTIssuer, cfg.Server.JWTAudience)

	a.Router = httptransport.NewRouter(httptransport.Handlers{
		Assessment: assessmentHandler.New(a.Assessment, a.JWT, cfg.Server.ParticipantTokenTTL, logger),
		Consent:    consentHandler.New(consents, a.Assessment, logger),
		Flags:      flagsHandler.New(flags, a.Assessment, logger),
		Radar:      radarHandler.New(a.Assessment, logger),
		DataRights: datarightsHandler.New(a.DataRights, logger),
	}, httptransport.Options{
		Validator:  a.JWT.Bearer(),
		AdminToken: cfg.Server.AdminToken,
		Metrics:    promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Health:     a.Health,
		RateLimit:  rateLimit.New(limiter, logger, rateLimit.WithDisabled(cfg.RateLimit.Disabled)),
	}, logger)

	ok = true
	return a, nil
}

func (a *App) openStores(ctx context.Context) (*stores, error) {
	if a.Config.DatabaseURL == "" {
		a.logger.Warn("DATABASE_URL not set, using in-memory stores")
		return &stores{
			participants: assessmentStore.NewInMemoryParticipantStore(),
			answers:      assessmentStore.NewInMemoryAnswerStore(),
			profiles:     radarStore.NewInMemoryStore(),
			consents:     consentStore.NewInMemoryStore(),
			flags:        flagStore.NewInMemoryStore(),
			audit:        auditmemory.NewInMemoryStore(),
			tx:           tx.NewMemoryRunner(),
		}, nil
	}

	db, err := postgres.Open(ctx, a.Config.DatabaseURL)
	if err != nil {
		return nil, err
	}
	a.db = db
	a.closers = append(a.closers, db.Close)
	if err := postgres.Migrate(ctx, db); err != nil {
		return nil, err
	}
	a.logger.Info("connected to postgres")
	return &stores{
		participants: assessmentStore.NewPostgresParticipantStore(db),
		answers:      assessmentStore.NewPostgresAnswerStore(db),
		profiles:     radarStore.NewPostgres(db),
		consents:     consentStore.NewPostgres(db),
		flags:        flagStore.NewPostgres(db),
		audit:        auditpostgres.New(db),
		tx:           tx.NewSQLRunner(db),
	}, nil
}

// openCache prefers redis when configured and falls back to the in-process
// cache otherwise.
func (a *App) openCache(ctx context.Context) (assessmentService.ProfileCache, error) {
	cfg := a.Config.Redis
	if cfg.URL == "" {
		return radarCache.NewMemory(cfg.CacheTTL), nil
	}
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	a.redis = client
	a.closers = append(a.closers, client.Close)
	a.logger.Info("radar cache and rate limits backed by redis")
	return radarCache.NewRedis(client, cfg.CacheTTL), nil
}

// openLimiter shares budgets through redis when configured, otherwise keeps
// them in process.
func (a *App) openLimiter() (*rateLimitService.Service, error) {
	var buckets rateLimitService.BucketStore
	if a.redis != nil {
		buckets = rateLimitStore.NewRedisBucketStore(a.redis)
	} else {
		a.buckets = rateLimitStore.NewInMemoryBucketStore()
		buckets = a.buckets
	}
	return rateLimitService.New(buckets, rateLimitService.WithLogger(a.logger))
}

// RunMaintenance sweeps idle in-process rate limit windows until ctx ends.
func (a *App) RunMaintenance(ctx context.Context) {
	if a.buckets == nil {
		return
	}
	ticker := time.NewTicker(bucketSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := a.buckets.Sweep(now.UTC()); n > 0 {
				a.logger.Debug("swept idle rate limit windows", zap.Int("count", n))
			}
		}
	}
}

// Health pings the database and redis when they are configured.
func (a *App) Health(ctx context.Context) error {
	if a.db != nil {
		if err := a.db.PingContext(ctx); err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
	}
	if a.redis != nil {
		if err := a.redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	return nil
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
