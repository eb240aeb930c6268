// Package config loads process configuration from the environment so main
// stays lean. Regulatory windows live in the compliance policy defaults;
// only the knobs product/operations may legitimately tune appear here.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config captures server, storage and policy configuration.
type Config struct {
	Addr string `env:"ACEAUDIT_ADDR" envDefault:":8080"`

	// DatabaseURL selects PostgreSQL-backed stores when set; otherwise the
	// server runs on seeded in-memory stores (dev mode).
	DatabaseURL string `env:"ACEAUDIT_DATABASE_URL"`

	// KafkaBrokers enables the Kafka audit publisher when non-empty.
	KafkaBrokers []string `env:"ACEAUDIT_KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"ACEAUDIT_KAFKA_TOPIC" envDefault:"aceaudit.audit"`

	// GraceWindowDays is the renewal grace period after accreditation expiry.
	GraceWindowDays int `env:"ACEAUDIT_GRACE_WINDOW_DAYS" envDefault:"30"`

	// Per-capability grace tolerances. The regulatory source of truth has not
	// confirmed whether these survive into the grace period, so each is an
	// explicit flag rather than a hard-coded assumption.
	PublishDuringGrace           bool `env:"ACEAUDIT_PUBLISH_DURING_GRACE" envDefault:"false"`
	IssueCertificatesDuringGrace bool `env:"ACEAUDIT_ISSUE_CERTS_DURING_GRACE" envDefault:"false"`

	// RetentionWarningDays controls how far ahead of the retention deadline
	// an event is reported as due_soon.
	RetentionWarningDays int `env:"ACEAUDIT_RETENTION_WARNING_DAYS" envDefault:"90"`

	OTELEndpoint string `env:"ACEAUDIT_OTEL_ENDPOINT"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.GraceWindowDays < 0 {
		return Config{}, fmt.Errorf("grace window days must not be negative, got %d", cfg.GraceWindowDays)
	}
	if cfg.RetentionWarningDays < 0 {
		return Config{}, fmt.Errorf("retention warning days must not be negative, got %d", cfg.RetentionWarningDays)
	}
	return cfg, nil
}
