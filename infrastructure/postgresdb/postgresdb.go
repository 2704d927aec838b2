// Package postgresdb provides pgx connection pool support for the managed
// todo store. The store is addressed by an endpoint URL plus an access key;
// the key is injected into the connection string as the password.
package postgresdb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mann-127/duoapi/sdk/environment"
)

// PostgreSQL error codes
const (
	uniqueViolation = "23505"
	undefinedTable  = "42P01"
)

// Set of error variables for CRUD operations.
var (
	ErrDBNotFound        = pgx.ErrNoRows
	ErrDBDuplicatedEntry = errors.New("duplicated entry")
	ErrUndefinedTable    = errors.New("undefined table")
)

type Pool = pgxpool.Pool

// Options represents the exportable database configuration. StoreURL is the
// store endpoint; StoreKey is the access credential.
type Options struct {
	StoreURL    string        `env:"STORE_URL" required:"true"`
	StoreKey    string        `env:"STORE_KEY" required:"true"`
	MaxConns    int           `env:"STORE_MAX_CONNS" default:"25"`
	MinConns    int           `env:"STORE_MIN_CONNS" default:"5"`
	MaxLifetime time.Duration `env:"STORE_MAX_LIFETIME" default:"1h"`
	MaxIdleTime time.Duration `env:"STORE_MAX_IDLE_TIME" default:"30m"`
	HealthCheck time.Duration `env:"STORE_HEALTH_CHECK" default:"1m"`
	LogQueries  bool          `env:"STORE_LOG_QUERIES" default:"false"`
}

// options holds the internal runtime configuration
type options struct {
	logger         *slog.Logger
	tracer         pgx.QueryTracer
	connectTimeout time.Duration
}

// Option is a function that configures the database options
type Option func(*options)

// WithLogger sets a custom logger for the database
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTracer sets a custom query tracer
func WithTracer(tracer pgx.QueryTracer) Option {
	return func(o *options) {
		o.tracer = tracer
	}
}

// WithConnectTimeout sets the connection timeout
func WithConnectTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.connectTimeout = timeout
	}
}

// NewFromEnv creates a new store connection using environment variables
func NewFromEnv(prefix string, opts ...Option) (*pgxpool.Pool, error) {
	var cfg Options
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing store config: %w", err)
	}
	return New(cfg, opts...)
}

// New creates a new store connection with the given config and applies options
func New(cfg Options, opts ...Option) (*pgxpool.Pool, error) {
	internalOpts := &options{
		connectTimeout: 10 * time.Second,
	}

	for _, opt := range opts {
		opt(internalOpts)
	}

	if internalOpts.logger == nil {
		internalOpts.logger = slog.Default()
	}

	if internalOpts.tracer == nil && cfg.LogQueries {
		internalOpts.tracer = NewLoggingQueryTracer(internalOpts.logger)
	}

	dsn, err := BuildDSN(cfg.StoreURL, cfg.StoreKey)
	if err != nil {
		return nil, fmt.Errorf("building store dsn: %w", err)
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = int32(cfg.MinConns)
	poolConfig.MaxConnLifetime = cfg.MaxLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxIdleTime
	poolConfig.HealthCheckPeriod = cfg.HealthCheck

	if internalOpts.tracer != nil {
		poolConfig.ConnConfig.Tracer = internalOpts.tracer
	}

	ctx, cancel := context.WithTimeout(context.Background(), internalOpts.connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging store: %w", err)
	}

	return pool, nil
}

// BuildDSN combines the store endpoint with the access key. The endpoint is a
// postgres URL that names the user and database; the key becomes the password.
func BuildDSN(storeURL, storeKey string) (string, error) {
	u, err := url.Parse(storeURL)
	if err != nil {
		return "", fmt.Errorf("parsing store url: %w", err)
	}

	username := "postgres"
	if u.User != nil && u.User.Username() != "" {
		username = u.User.Username()
	}
	u.User = url.UserPassword(username, storeKey)

	return u.String(), nil
}

// StatusCheck returns nil if it can successfully talk to the database
func StatusCheck(ctx context.Context, pool *pgxpool.Pool) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Second)
		defer cancel()
	}

	return pool.Ping(ctx)
}

// HandlePgError converts PostgreSQL errors to application errors
func HandlePgError(err error) error {
	if err == nil {
		return nil
	}

	var pqerr *pgconn.PgError
	if errors.As(err, &pqerr) {
		switch pqerr.Code {
		case undefinedTable:
			return ErrUndefinedTable
		case uniqueViolation:
			return ErrDBDuplicatedEntry
		}
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrDBNotFound
	}

	return err
}
