package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shaibs3/signupsql/internal/config"
	"github.com/shaibs3/signupsql/internal/signup"
	"github.com/shaibs3/signupsql/internal/sink"
	"github.com/shaibs3/signupsql/internal/telemetry"
	"go.uber.org/zap"
)

// App represents one conversion run
type App struct {
	config    *config.Config
	logger    *zap.Logger
	telemetry *telemetry.Telemetry
	sink      sink.StatementSink
	out       io.Writer
}

// NewApp wires telemetry and the optional statement sink. The statement is written to out.
func NewApp(cfg *config.Config, logger *zap.Logger, out io.Writer) (*App, error) {
	appLogger := logger.Named("app")

	tel, err := telemetry.NewTelemetry(logger)
	if err != nil {
		return nil, err
	}

	var target sink.StatementSink
	if cfg.TargetDBConfig != "" {
		factory := sink.NewSinkFactory(logger, tel)
		target, err = factory.CreateSink(cfg.TargetDBConfig)
		if err != nil {
			_ = tel.Shutdown(context.Background())
			return nil, err
		}
	}

	return &App{
		config:    cfg,
		logger:    appLogger,
		telemetry: tel,
		sink:      target,
		out:       out,
	}, nil
}

// Run converts the configured signup file and prints the INSERT statement.
// No output is written when no row qualifies.
func (app *App) Run(ctx context.Context) error {
	defer app.close(ctx)

	res, err := app.convert()
	app.telemetry.RecordRows(ctx, res.Read, res.Admitted, res.Skipped)
	if errors.Is(err, signup.ErrNoRows) {
		app.logger.Warn("no qualifying rows, nothing to insert",
			zap.String("file", app.config.SignupsFile),
			zap.Int("rows_read", res.Read),
			zap.Int("rows_skipped", res.Skipped),
		)
		return nil
	}
	if err != nil {
		return err
	}

	app.logger.Info("signups converted",
		zap.String("file", app.config.SignupsFile),
		zap.Int("rows_read", res.Read),
		zap.Int("rows_admitted", res.Admitted),
		zap.Int("rows_skipped", res.Skipped),
	)

	if _, err := fmt.Fprintln(app.out, res.Statement); err != nil {
		return fmt.Errorf("failed to write statement: %w", err)
	}

	if app.sink != nil {
		if err := app.sink.Apply(ctx, res.Statement); err != nil {
			return err
		}
	}
	return nil
}

func (app *App) convert() (signup.Result, error) {
	f, err := os.Open(app.config.SignupsFile)
	if err != nil {
		return signup.Result{}, fmt.Errorf("failed to open signups file: %w", err)
	}
	defer f.Close()

	return signup.Convert(f)
}

func (app *App) close(ctx context.Context) {
	if snap, err := app.telemetry.Snapshot(); err == nil {
		fields := make([]zap.Field, 0, len(snap))
		for name, v := range snap {
			fields = append(fields, zap.Float64(name, v))
		}
		app.logger.Debug("run metrics", fields...)
	}
	_ = app.telemetry.Shutdown(ctx)

	if app.sink != nil {
		if err := app.sink.Close(); err != nil {
			app.logger.Warn("failed to close sink", zap.Error(err))
		}
	}
}
