// Package dbmetrics wraps database/sql with query metrics and carries
// the active transaction through the context, so a repository method can
// run either standalone or inside a transaction without knowing which.
package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/Tsolgiun/office-plus-booking/pkg/metrics"
)

// DBExecutor is the query surface shared by *sql.DB, *sql.Tx and the
// metered wrappers in this package.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor is a DBExecutor bound to an open transaction.
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// poolStatsInterval is how often the pool gauges are refreshed.
const poolStatsInterval = 15 * time.Second

// DB wraps *sql.DB and reports per-query metrics.
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	service string
}

// Wrap returns a metered DB.
func Wrap(db *sql.DB, m *metrics.Metrics, service string) *DB {
	return &DB{db: db, metrics: m, service: service}
}

// WrapWithDefault wraps db and starts a goroutine publishing connection
// pool gauges until stop is closed.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, service string, stop <-chan struct{}) *DB {
	wrapped := Wrap(db, m, service)

	go func() {
		ticker := time.NewTicker(poolStatsInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.SetDBPoolStats(service, db.Stats())
			case <-stop:
				return
			}
		}
	}()

	return wrapped
}

func (d *DB) observe(operation string, start time.Time, err error) {
	d.metrics.ObserveDBQuery(d.service, operation, time.Since(start), err)
}

// ExecContext runs a statement and records its latency.
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe("exec", start, err)
	return res, err
}

// QueryContext runs a query and records its latency.
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe("query", start, err)
	return rows, err
}

// QueryRowContext runs a single-row query. Errors surface at Scan time,
// so only the latency is recorded here.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe("query_row", start, nil)
	return row
}

// BeginTx opens a metered transaction.
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	start := time.Now()
	tx, err := d.db.BeginTx(ctx, opts)
	d.observe("begin_tx", start, err)
	if err != nil {
		return nil, err
	}
	return &metricsTx{tx: tx, db: d}, nil
}

// metricsTx reports metrics for statements executed inside a transaction.
type metricsTx struct {
	tx *sql.Tx
	db *DB
}

func (t *metricsTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.db.observe("tx_exec", start, err)
	return res, err
}

func (t *metricsTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.db.observe("tx_query", start, err)
	return rows, err
}

func (t *metricsTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.db.observe("tx_query_row", start, nil)
	return row
}

func (t *metricsTx) Commit() error {
	start := time.Now()
	err := t.tx.Commit()
	t.db.observe("tx_commit", start, err)
	return err
}

func (t *metricsTx) Rollback() error {
	start := time.Now()
	err := t.tx.Rollback()
	t.db.observe("tx_rollback", start, err)
	return err
}
