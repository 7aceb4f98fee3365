package db

import (
	"database/sql"
	"fmt"

	"address-processor/internal/config"
	"address-processor/internal/logger"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const driverName = "postgres"

// NewDatabase opens and pings a PostgreSQL connection.
func NewDatabase(cfg *config.Config) (*sql.DB, error) {
	return newDatabaseWithDriver(cfg, driverName)
}

func newDatabaseWithDriver(cfg *config.Config, driver string) (*sql.DB, error) {
	db, err := sql.Open(driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	logger.L().Info("database connection established", zap.String("driver", driver))
	return db, nil
}
