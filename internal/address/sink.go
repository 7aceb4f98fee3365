package address

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Sink receives formatted address lines.
type Sink interface {
	Emit(ctx context.Context, line string) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, line string) error

func (f SinkFunc) Emit(ctx context.Context, line string) error {
	return f(ctx, line)
}

type logSink struct {
	log *zap.Logger
}

// NewLogSink emits every line as an info entry on the given logger.
func NewLogSink(log *zap.Logger) Sink {
	return &logSink{log: log}
}

func (s *logSink) Emit(_ context.Context, line string) error {
	s.log.Info(line)
	return nil
}

type writerSink struct {
	w io.Writer
}

// NewWriterSink writes one line per emitted address.
func NewWriterSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

func (s *writerSink) Emit(_ context.Context, line string) error {
	if _, err := fmt.Fprintln(s.w, line); err != nil {
		return fmt.Errorf("failed to write address line: %w", err)
	}
	return nil
}
