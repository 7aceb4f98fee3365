package address

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"address-processor/internal/logger"

	"go.uber.org/zap"
)

// Loader supplies address records. A failed load always returns an error so
// it cannot be mistaken for an empty source.
type Loader interface {
	Load(ctx context.Context) ([]*Address, error)
}

type jsonFileLoader struct {
	path string
}

// NewJSONFileLoader reads a JSON array of address objects from path.
func NewJSONFileLoader(path string) Loader {
	return &jsonFileLoader{path: path}
}

func (l *jsonFileLoader) Load(ctx context.Context) ([]*Address, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("loader", "JSONFile"),
		zap.String("path", l.path),
	)

	data, err := os.ReadFile(l.path)
	if err != nil {
		log.Error("read failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	addresses := []*Address{}
	if err := json.Unmarshal(data, &addresses); err != nil {
		log.Error("decode failed", zap.Error(err))
		return nil, fmt.Errorf("%w: decode %s: %w", ErrLoadFailed, l.path, err)
	}
	if addresses == nil {
		// a literal JSON null
		addresses = []*Address{}
	}

	log.Debug("addresses loaded", zap.Int("count", len(addresses)))
	return addresses, nil
}
