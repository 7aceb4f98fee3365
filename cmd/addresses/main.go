package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"address-processor/internal/address"
	"address-processor/internal/config"
	"address-processor/internal/db"
	"address-processor/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	errNoDatabase       = errors.New("database not configured: set DB_URL or DB_HOST")
	errInvalidAddresses = errors.New("one or more addresses are invalid")
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if err := run(context.Background(), os.Args[1:], cfg, os.Stdout); err != nil {
		logger.L().Error("addresses failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, cfg *config.Config, out io.Writer) error {
	fs := flag.NewFlagSet("addresses", flag.ContinueOnError)
	file := fs.String("file", cfg.AddressesFile, "JSON file with an array of addresses")
	fromDB := fs.Bool("db", false, "load addresses from PostgreSQL instead of -file")
	typeName := fs.String("type", "", "only print addresses of this type name")
	validate := fs.Bool("validate", false, "report validity of every address instead of printing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx = logger.WithRunID(ctx, uuid.New().String())

	loader, closeLoader, err := newLoader(cfg, *file, *fromDB)
	if err != nil {
		return err
	}
	defer closeLoader()

	svc := address.NewService(loader, address.NewWriterSink(out))

	switch {
	case *validate:
		reports, err := svc.Validate(ctx)
		if err != nil {
			return err
		}
		return writeReports(out, reports)
	case *typeName != "":
		_, err := svc.PrintByType(ctx, *typeName)
		return err
	default:
		_, err := svc.PrintAll(ctx)
		return err
	}
}

func newLoader(cfg *config.Config, file string, fromDB bool) (address.Loader, func(), error) {
	if !fromDB {
		return address.NewJSONFileLoader(file), func() {}, nil
	}
	if !cfg.HasDatabase() {
		return nil, nil, errNoDatabase
	}

	database, err := db.NewDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}
	return address.NewRepository(database), closeDB(database), nil
}

func closeDB(database *sql.DB) func() {
	return func() {
		if err := database.Close(); err != nil {
			logger.L().Warn("failed to close database", zap.Error(err))
		}
	}
}

func writeReports(out io.Writer, reports []address.Report) error {
	invalid := 0
	for _, rep := range reports {
		if rep.Valid {
			fmt.Fprintf(out, "#%d [%s] valid\n", rep.Index, rep.ID)
			continue
		}
		invalid++
		fmt.Fprintf(out, "#%d [%s] invalid: %s\n", rep.Index, rep.ID, rep.Message)
	}
	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d", errInvalidAddresses, invalid, len(reports))
	}
	return nil
}
