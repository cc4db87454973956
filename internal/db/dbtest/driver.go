// Package dbtest provides an in-process database/sql driver that records executed statements.
package dbtest

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync"
)

// Recorder is a driver.Connector whose connections record every Exec
type Recorder struct {
	// RowsAffected is reported for each successful Exec
	RowsAffected int64
	// ExecErr, when set, fails every Exec
	ExecErr error

	mu    sync.Mutex
	execs []string
}

// Open returns a *sql.DB backed by a new Recorder
func Open() (*sql.DB, *Recorder) {
	rec := &Recorder{}
	return sql.OpenDB(rec), rec
}

// Execs returns the executed statements in order
func (r *Recorder) Execs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.execs...)
}

func (r *Recorder) Connect(context.Context) (driver.Conn, error) {
	return &conn{rec: r}, nil
}

func (r *Recorder) Driver() driver.Driver {
	return r
}

func (r *Recorder) Open(string) (driver.Conn, error) {
	return &conn{rec: r}, nil
}

type conn struct {
	rec *Recorder
}

func (c *conn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("dbtest: prepared statements not supported")
}

func (c *conn) Close() error {
	return nil
}

func (c *conn) Begin() (driver.Tx, error) {
	return nil, errors.New("dbtest: transactions not supported")
}

func (c *conn) Ping(context.Context) error {
	return nil
}

func (c *conn) ExecContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Result, error) {
	if c.rec.ExecErr != nil {
		return nil, c.rec.ExecErr
	}
	c.rec.mu.Lock()
	c.rec.execs = append(c.rec.execs, query)
	c.rec.mu.Unlock()
	return driver.RowsAffected(c.rec.RowsAffected), nil
}
