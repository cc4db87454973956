package sink

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/shaibs3/signupsql/internal/db"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

type PostgresSink struct {
	db      *sql.DB
	logger  *zap.Logger
	applied metric.Int64Counter
}

// NewPostgresSink opens and pings the database named by extra_details.conn_str.
// With extra_details.create_table set it also creates public.submissions.
func NewPostgresSink(config SinkConfig, logger *zap.Logger, meter metric.Meter) (*PostgresSink, error) {
	pgLogger := logger.Named("postgres")

	connStr, ok := config.ExtraDetails["conn_str"].(string)
	if !ok || connStr == "" {
		return nil, fmt.Errorf("conn_str is required for Postgres sink")
	}
	createTable, _ := config.ExtraDetails["create_table"].(bool)

	var applied metric.Int64Counter
	if meter != nil {
		var err error
		applied, err = meter.Int64Counter("sink_statements_applied",
			metric.WithDescription("Insert statements applied to the target database"))
		if err != nil {
			return nil, fmt.Errorf("failed to create sink counter: %w", err)
		}
	}

	dbConn, err := sql.Open("postgres", connStr)
	if err != nil {
		pgLogger.Error("failed to open Postgres connection", zap.Error(err))
		return nil, fmt.Errorf("failed to open Postgres connection: %w", err)
	}
	return newPostgresSink(context.Background(), dbConn, createTable, pgLogger, applied)
}

// newPostgresSink pings dbConn and optionally creates the submissions table.
// dbConn is closed on failure.
func newPostgresSink(ctx context.Context, dbConn *sql.DB, createTable bool, pgLogger *zap.Logger, applied metric.Int64Counter) (*PostgresSink, error) {
	if err := dbConn.PingContext(ctx); err != nil {
		_ = dbConn.Close()
		pgLogger.Error("failed to ping Postgres", zap.Error(err))
		return nil, fmt.Errorf("failed to ping Postgres: %w", err)
	}

	if createTable {
		if err := db.EnsureSchema(ctx, dbConn); err != nil {
			_ = dbConn.Close()
			pgLogger.Error("failed to create submissions table", zap.Error(err))
			return nil, fmt.Errorf("failed to create submissions table: %w", err)
		}
	}

	pgLogger.Info("Postgres sink initialized", zap.Bool("create_table", createTable))
	return &PostgresSink{
		db:      dbConn,
		logger:  pgLogger,
		applied: applied,
	}, nil
}

// Apply executes the statement once. A failure is returned as-is, with no retry.
func (p *PostgresSink) Apply(ctx context.Context, statement string) error {
	n, err := db.ExecStatement(ctx, p.db, statement)
	if err != nil {
		return fmt.Errorf("failed to apply insert statement: %w", err)
	}
	if p.applied != nil {
		p.applied.Add(ctx, 1)
	}
	p.logger.Info("insert statement applied", zap.Int64("rows_affected", n))
	return nil
}

func (p *PostgresSink) Close() error {
	return p.db.Close()
}
