package config

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config is built once at startup and passed down read-only.
type Config struct {
	Port string `env:"PORT, default=5000"`
	Env  string `env:"APP_ENV, default=development"`

	Log LogConfig
	JWT JWTConfig
	DB  DBConfig
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL, default=info"`
	Pretty bool   `env:"LOG_PRETTY, default=false"`
}

// JWTConfig holds the token signing settings. The secret has no default.
type JWTConfig struct {
	Secret    string        `env:"JWT_SECRET, required"`
	ExpiresIn time.Duration `env:"JWT_EXPIRES_IN, default=1h"`
}

// DBConfig holds database connection parameters
type DBConfig struct {
	Host     string `env:"DB_HOST, default=localhost"`
	Port     int    `env:"DB_PORT, default=5432"`
	User     string `env:"DB_USER, default=postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME, default=school"`
	SSLMode  string `env:"DB_SSLMODE, default=disable"`
	// CACert is a path to a root certificate. When set the connection is verified.
	CACert string `env:"DB_CA_CERT"`
}

// Load reads an optional .env file, then the environment.
func Load(ctx context.Context) (*Config, error) {
	// a missing .env is fine, the environment may already be populated
	_ = godotenv.Load()
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

func (c DBConfig) sslMode() string {
	if c.CACert != "" {
		return "verify-full"
	}
	return c.SSLMode
}

// DSN returns a keyword/value connection string for pgxpool.
func (c DBConfig) DSN() string {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.sslMode())
	if c.CACert != "" {
		dsn += " sslrootcert=" + c.CACert
	}
	return dsn
}

// MigrateURL returns the pgx5:// URL golang-migrate expects.
func (c DBConfig) MigrateURL() string {
	q := url.Values{}
	q.Set("sslmode", c.sslMode())
	if c.CACert != "" {
		q.Set("sslrootcert", c.CACert)
	}
	u := url.URL{
		Scheme:   "pgx5",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + strconv.Itoa(c.Port),
		Path:     "/" + c.Name,
		RawQuery: q.Encode(),
	}
	return u.String()
}
