package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Auth        AuthConfig        `yaml:"auth"`
	Rebrickable RebrickableConfig `yaml:"rebrickable"`
	Locker      LockerConfig      `yaml:"locker"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimitPerMin int           `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT_PER_MINUTE" env-default:"300"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token and password settings for the sync accounts.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"legolocker"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"15m"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"  env:"AUTH_REFRESH_TOKEN_TTL"  env-default:"720h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
}

// RebrickableConfig holds catalog search settings. An empty APIKey disables
// catalog search only; the rest of the application is unaffected.
type RebrickableConfig struct {
	APIKey   string        `yaml:"api_key"   env:"REBRICKABLE_API_KEY"`
	BaseURL  string        `yaml:"base_url"  env:"REBRICKABLE_BASE_URL" env-default:"https://rebrickable.com/api/v3"`
	PageSize int           `yaml:"page_size" env:"REBRICKABLE_PAGE_SIZE" env-default:"10"`
	Timeout  time.Duration `yaml:"timeout"   env:"REBRICKABLE_TIMEOUT"   env-default:"10s"`
}

// Enabled reports whether catalog search is configured.
func (c RebrickableConfig) Enabled() bool { return c.APIKey != "" }

// LockerConfig holds settings for the local client store.
type LockerConfig struct {
	// DataDir is where snapshot substrates keep their files.
	DataDir string `yaml:"data_dir" env:"LOCKER_DATA_DIR" env-default:".legolocker"`
	// Substrates is the ranked, comma-separated list of snapshot backends
	// tried in order at startup: file, keystore, memory.
	Substrates string `yaml:"substrates" env:"LOCKER_SUBSTRATES" env-default:"file,keystore,memory"`
	// SeedOnFirstRun populates starter rows when no prior snapshot exists.
	SeedOnFirstRun bool `yaml:"seed_on_first_run" env:"LOCKER_SEED_ON_FIRST_RUN" env-default:"true"`
	// SeedWhenEmpty re-seeds starter rows whenever a table has zero rows,
	// even after the user deleted everything. Off by default.
	SeedWhenEmpty bool `yaml:"seed_when_empty" env:"LOCKER_SEED_WHEN_EMPTY" env-default:"false"`
	// ServerURL is the document API base URL used in remote-sync mode.
	ServerURL string `yaml:"server_url" env:"LOCKER_SERVER_URL" env-default:"http://localhost:8080"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
