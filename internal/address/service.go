package address

import (
	"context"

	"address-processor/internal/logger"

	"go.uber.org/zap"
)

// Service loads addresses and runs them through the validator and formatter.
type Service interface {
	PrintAll(ctx context.Context) (int, error)
	PrintByType(ctx context.Context, typeName string) (int, error)
	Validate(ctx context.Context) ([]Report, error)
}

// service implements the Service interface
type service struct {
	loader    Loader
	formatter *Formatter
}

func NewService(loader Loader, sink Sink) Service {
	return &service{
		loader:    loader,
		formatter: NewFormatter(sink),
	}
}

func (s *service) PrintAll(ctx context.Context) (int, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "PrintAll"),
	)

	addresses, err := s.loader.Load(ctx)
	if err != nil {
		log.Error("failed to load addresses", zap.Error(err))
		return 0, err
	}

	if err := s.formatter.PrettyPrintAllAddresses(ctx, addresses); err != nil {
		log.Error("failed to print addresses", zap.Error(err))
		return len(addresses), err
	}

	log.Info("addresses printed", zap.Int("count", len(addresses)))
	return len(addresses), nil
}

func (s *service) PrintByType(
	ctx context.Context,
	typeName string,
) (int, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "PrintByType"),
		zap.String("type_name", typeName),
	)

	addresses, err := s.loader.Load(ctx)
	if err != nil {
		log.Error("failed to load addresses", zap.Error(err))
		return 0, err
	}

	if err := s.formatter.PrintAddressesByType(ctx, addresses, typeName); err != nil {
		log.Error("failed to print addresses", zap.Error(err))
		return len(addresses), err
	}

	log.Info("addresses printed", zap.Int("count", len(addresses)))
	return len(addresses), nil
}

func (s *service) Validate(ctx context.Context) ([]Report, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "Validate"),
	)

	addresses, err := s.loader.Load(ctx)
	if err != nil {
		log.Error("failed to load addresses", zap.Error(err))
		return nil, err
	}

	reports := ValidateAddresses(addresses)
	for _, rep := range reports {
		if rep.Valid {
			log.Debug("address valid", zap.Int("index", rep.Index), zap.String("address_id", rep.ID))
			continue
		}
		log.Warn("address invalid",
			zap.Int("index", rep.Index),
			zap.String("address_id", rep.ID),
			zap.String("reason", string(rep.Reason)),
			zap.String("message", rep.Message),
		)
	}

	return reports, nil
}
