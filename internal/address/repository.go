package address

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"address-processor/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Loader

	GetAll(ctx context.Context) ([]*Address, error)
	GetByTypeName(ctx context.Context, typeName string) ([]*Address, error)
	GetByID(ctx context.Context, id string) (*Address, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const selectAddresses = `
	SELECT
		id,
		type_code, type_name,
		line1, line2,
		province_code, province_name,
		city_or_town,
		country_code, country_name,
		postal_code,
		suburb_or_district, last_updated
	FROM addresses
`

// Load implements Loader over the whole table.
func (r *repository) Load(ctx context.Context) ([]*Address, error) {
	return r.GetAll(ctx)
}

func (r *repository) GetAll(ctx context.Context) ([]*Address, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "GetAll"),
	)

	const q = selectAddresses + `
		ORDER BY created_at, id
	`

	return r.query(ctx, log, q)
}

func (r *repository) GetByTypeName(
	ctx context.Context,
	typeName string,
) ([]*Address, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "GetByTypeName"),
		zap.String("type_name", typeName),
	)

	const q = selectAddresses + `
		WHERE type_name = $1
		ORDER BY created_at, id
	`

	return r.query(ctx, log, q, typeName)
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Address, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "GetByID"),
		zap.String("address_id", id),
	)

	const q = selectAddresses + `
		WHERE id = $1
		LIMIT 1
	`

	a, err := scanAddress(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAddressNotFound
	}
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	return a, nil
}

func (r *repository) query(
	ctx context.Context,
	log *zap.Logger,
	q string,
	args ...any,
) ([]*Address, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	defer rows.Close()

	res := []*Address{}
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
		}
		res = append(res, a)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	return res, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanAddress rebuilds the nested record from flattened columns. A nested
// part whose columns are all NULL stays nil.
func scanAddress(s rowScanner) (*Address, error) {
	var (
		a                          Address
		typeCode, typeName         sql.NullString
		line1, line2               sql.NullString
		provinceCode, provinceName sql.NullString
		city                       sql.NullString
		countryCode, countryName   sql.NullString
		postal                     sql.NullString
		suburb, lastUpdated        sql.NullString
	)

	if err := s.Scan(
		&a.ID,
		&typeCode, &typeName,
		&line1, &line2,
		&provinceCode, &provinceName,
		&city,
		&countryCode, &countryName,
		&postal,
		&suburb, &lastUpdated,
	); err != nil {
		return nil, err
	}

	if typeCode.Valid || typeName.Valid {
		a.Type = &Type{Code: typeCode.String, Name: typeName.String}
	}
	if line1.Valid || line2.Valid {
		a.AddressLineDetail = &LineDetail{Line1: line1.String, Line2: line2.String}
	}
	if provinceCode.Valid || provinceName.Valid {
		a.ProvinceOrState = &ProvinceOrState{Code: provinceCode.String, Name: provinceName.String}
	}
	if countryCode.Valid || countryName.Valid {
		a.Country = &Country{Code: countryCode.String, Name: countryName.String}
	}
	if postal.Valid {
		a.PostalCode = &postal.String
	}
	a.CityOrTown = city.String
	a.SuburbOrDistrict = suburb.String
	a.LastUpdated = lastUpdated.String

	return &a, nil
}
