package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Log           LogConfig           `yaml:"log"`
	Classifier    ClassifierConfig    `yaml:"classifier"`
	Notifications NotificationsConfig `yaml:"notifications"`
	CORS          CORSConfig          `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ClassifierConfig holds bucket-classification settings.
type ClassifierConfig struct {
	// Timezone is the IANA zone used for "today" and the evening cutoff.
	Timezone string `yaml:"timezone" env:"CLASSIFIER_TIMEZONE" env-default:"Europe/Bucharest"`
	// DelayedCutoffHour is the local hour from which assigned-but-untouched
	// orders count as delayed.
	DelayedCutoffHour int `yaml:"delayed_cutoff_hour" env:"CLASSIFIER_DELAYED_CUTOFF_HOUR" env-default:"18"`
	// TickInterval is how often classification re-runs without new data,
	// so time-gated rules stay current.
	TickInterval time.Duration `yaml:"tick_interval" env:"CLASSIFIER_TICK_INTERVAL" env-default:"60s"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// NotificationsConfig holds notification summary settings.
type NotificationsConfig struct {
	// EpochRaw is the validity cutover as RFC3339; orders last modified
	// before it never appear in summaries.
	EpochRaw string `yaml:"epoch" env:"NOTIFICATIONS_EPOCH" env-default:"2024-01-01T00:00:00Z"`
	// OverdueAfter is how long an open order may sit unmodified before it
	// counts as overdue.
	OverdueAfter time.Duration `yaml:"overdue_after" env:"NOTIFICATIONS_OVERDUE_AFTER" env-default:"168h"`

	// Epoch is parsed from EpochRaw during validation.
	Epoch time.Time `yaml:"-" env:"-"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
