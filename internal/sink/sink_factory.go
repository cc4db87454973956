package sink

import (
	"encoding/json"
	"fmt"

	"github.com/shaibs3/signupsql/internal/telemetry"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Factory builds a StatementSink from its JSON configuration
type Factory interface {
	CreateSink(configJSON string) (StatementSink, error)
}

type SinkFactory struct {
	logger    *zap.Logger
	telemetry *telemetry.Telemetry
}

func NewSinkFactory(logger *zap.Logger, tel *telemetry.Telemetry) *SinkFactory {
	return &SinkFactory{
		logger:    logger.Named("factory"),
		telemetry: tel,
	}
}

func (f *SinkFactory) CreateSink(configJSON string) (StatementSink, error) {
	var config SinkConfig
	if err := json.Unmarshal([]byte(configJSON), &config); err != nil {
		return nil, fmt.Errorf("failed to parse sink configuration JSON: %w", err)
	}

	f.logger.Info("creating statement sink", zap.String("sink_type", config.SinkType.String()))

	if !config.SinkType.IsValid() {
		return nil, fmt.Errorf("unsupported sink type: %q", config.SinkType)
	}

	var meter metric.Meter
	if f.telemetry != nil {
		meter = f.telemetry.Meter
	}
	switch config.SinkType {
	case SinkTypePostgres:
		pg, err := NewPostgresSink(config, f.logger, meter)
		if err != nil {
			return nil, err
		}
		return pg, nil
	case SinkTypeMemory:
		return NewInMemorySink(), nil
	default:
		return nil, fmt.Errorf("unsupported sink type: %q", config.SinkType)
	}
}
