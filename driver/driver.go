package driver

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-sql-driver/mysql"
	"golang.org/x/time/rate"
)

// Driver runs statement text on a *sql.DB. It is safe for concurrent use.
type Driver struct {
	db      *sql.DB
	logger  *slog.Logger
	limiter *rate.Limiter
	slow    time.Duration
	debug   bool
}

// Option configures a Driver.
type Option func(*Driver)

// WithDebug logs every statement at debug level.
func WithDebug() Option {
	return func(d *Driver) {
		d.debug = true
	}
}

// WithSlowQueryLog logs statements taking at least threshold at warn level.
func WithSlowQueryLog(threshold time.Duration) Option {
	return func(d *Driver) {
		d.slow = threshold
	}
}

// WithLogger replaces the default slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

// WithRateLimit throttles statements to r per second with the given burst.
// Callers block until a token is available or their context is done.
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(d *Driver) {
		d.limiter = rate.NewLimiter(r, burst)
	}
}

// Open connects with cfg and applies its pool limits.
func Open(cfg *Config, opts ...Option) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	connector, err := mysql.NewConnector(cfg.MySQL)
	if err != nil {
		return nil, fmt.Errorf("driver: open: %w", err)
	}
	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return OpenDB(db, opts...), nil
}

// OpenDB wraps an existing *sql.DB.
func OpenDB(db *sql.DB, opts ...Option) *Driver {
	d := &Driver{db: db, logger: slog.Default()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DB returns the underlying *sql.DB.
func (d *Driver) DB() *sql.DB { return d.db }

// Close closes the underlying *sql.DB.
func (d *Driver) Close() error { return d.db.Close() }

// Ping verifies the connection.
func (d *Driver) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("driver: ping: %w", err)
	}
	return nil
}

// Exec runs a statement and returns the number of affected rows.
func (d *Driver) Exec(ctx context.Context, query string) (int64, error) {
	if err := d.wait(ctx); err != nil {
		return 0, err
	}
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query)
	d.log(ctx, "exec", query, time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("driver: exec: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("driver: rows affected: %w", err)
	}
	return n, nil
}

// Query runs a statement returning rows. The caller must close the rows.
func (d *Driver) Query(ctx context.Context, query string) (*sql.Rows, error) {
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query)
	d.log(ctx, "query", query, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("driver: query: %w", err)
	}
	return rows, nil
}

func (d *Driver) wait(ctx context.Context) error {
	if d.limiter == nil {
		return nil
	}
	if err := d.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("driver: rate limit: %w", err)
	}
	return nil
}

func (d *Driver) log(ctx context.Context, op, query string, elapsed time.Duration, err error) {
	if d.slow > 0 && elapsed >= d.slow {
		d.logger.WarnContext(ctx, "slow query detected", "op", op, "duration", elapsed, "query", query)
	}
	if !d.debug {
		return
	}
	if err != nil {
		d.logger.DebugContext(ctx, "statement failed", "op", op, "duration", elapsed, "query", query, "error", err)
		return
	}
	d.logger.DebugContext(ctx, "statement", "op", op, "duration", elapsed, "query", query)
}
