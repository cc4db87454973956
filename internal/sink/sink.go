package sink

import "context"

// StatementSink receives a generated INSERT statement after it has been printed
type StatementSink interface {
	Apply(ctx context.Context, statement string) error
	Close() error
}
