package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	dErrors "radar/pkg/domain-errors"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr          string
	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string
	// ParticipantTokenTTL is the lifetime of tokens handed out at registration.
	ParticipantTokenTTL time.Duration
	// AdminToken guards /admin routes. Empty disables them.
	AdminToken string
}

// RedisConfig configures the optional radar cache backend.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CacheTTL     time.Duration
}

// KafkaConfig configures the audit outbox relay. Empty Brokers disables it.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// RateLimitConfig toggles per-address request budgets.
type RateLimitConfig struct {
	Disabled bool
}

// LogConfig selects the zap builder and optional rotating file sink.
type LogConfig struct {
	Env   string
	Level string
	File  string
}

// Config is the full process configuration.
type Config struct {
	Server Server
	// AnswerEncryptionKey is base64; decoded and validated by answercrypt.
	AnswerEncryptionKey string
	DatabaseURL         string
	Redis               RedisConfig
	Kafka               KafkaConfig
	Log                 LogConfig
	RateLimit           RateLimitConfig
	RadarMappingFile    string
	FlagRulesFile       string
	// ErasureWindow bounds how long a deletion request may wait for hard purge.
	ErasureWindow time.Duration
}

const (
	// DefaultErasureWindow is the 30-day hard-erasure bound.
	DefaultErasureWindow = 30 * 24 * time.Hour

	DefaultParticipantTokenTTL = 7 * 24 * time.Hour
)

// Load reads configuration from the environment, after optionally loading a
// .env file from the working directory. Missing secrets are a
// configuration error so the process fails fast at startup.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests avoid process env.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Server: Server{
			Addr:          valueOr(getenv("RADAR_ADDR"), ":8080"),
			JWTSigningKey: getenv("JWT_SIGNING_KEY"),
			JWTIssuer:     valueOr(getenv("JWT_ISSUER"), "radar"),
			JWTAudience:   valueOr(getenv("JWT_AUDIENCE"), "radar-api"),
			AdminToken:    getenv("ADMIN_API_TOKEN"),

			ParticipantTokenTTL: DefaultParticipantTokenTTL,
		},
		AnswerEncryptionKey: getenv("ANSWER_ENCRYPTION_KEY"),
		DatabaseURL:         getenv("DATABASE_URL"),
		Redis: RedisConfig{
			URL:          getenv("REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			CacheTTL:     15 * time.Minute,
		},
		Kafka: KafkaConfig{
			Brokers: splitList(getenv("KAFKA_BROKERS")),
			Topic:   valueOr(getenv("AUDIT_TOPIC"), "radar.audit.compliance"),
		},
		Log: LogConfig{
			Env:   valueOr(getenv("LOG_ENV"), "dev"),
			Level: valueOr(getenv("LOG_LEVEL"), "info"),
			File:  getenv("LOG_FILE"),
		},
		RateLimit: RateLimitConfig{
			Disabled: strings.EqualFold(getenv("RATE_LIMIT_DISABLED"), "true"),
		},
		RadarMappingFile: getenv("RADAR_MAPPING_FILE"),
		FlagRulesFile:    getenv("FLAG_RULES_FILE"),
		ErasureWindow:    DefaultErasureWindow,
	}

	if cfg.AnswerEncryptionKey == "" {
		return nil, dErrors.New(dErrors.CodeConfiguration, "ANSWER_ENCRYPTION_KEY is required")
	}
	if cfg.Server.JWTSigningKey == "" {
		return nil, dErrors.New(dErrors.CodeConfiguration, "JWT_SIGNING_KEY is required")
	}
	if raw := getenv("ERASURE_WINDOW"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, dErrors.New(dErrors.CodeConfiguration, "ERASURE_WINDOW must be a positive duration")
		}
		if d > DefaultErasureWindow {
			return nil, dErrors.New(dErrors.CodeConfiguration, "ERASURE_WINDOW cannot exceed 30 days")
		}
		cfg.ErasureWindow = d
	}
	if raw := getenv("PARTICIPANT_TOKEN_TTL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, dErrors.New(dErrors.CodeConfiguration, "PARTICIPANT_TOKEN_TTL must be a positive duration")
		}
		cfg.Server.ParticipantTokenTTL = d
	}
	return cfg, nil
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
