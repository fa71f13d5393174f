package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Bugian/unit-conversion-api/internal/apperrors"
	"github.com/Bugian/unit-conversion-api/internal/core/domain"
	portsrepo "github.com/Bugian/unit-conversion-api/internal/core/ports/repositories"
	"github.com/Bugian/unit-conversion-api/internal/models"
	"github.com/Bugian/unit-conversion-api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ portsrepo.ConversionRepositoryFacade = (*PgxConversionRepository)(nil)

const conversionColumns = `
	conversion_id, unit_type, original_unit, original_value,
	converted_unit, converted_value, created_at, last_updated_at`

// PgxConversionRepository implements the ConversionRepositoryFacade interface using pgxpool.
type PgxConversionRepository struct {
	BaseRepository
}

// NewPgxConversionRepository creates a new PgxConversionRepository.
func NewPgxConversionRepository(db *pgxpool.Pool) *PgxConversionRepository {
	return &PgxConversionRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// ListConversions retrieves every conversion ordered by id.
func (r *PgxConversionRepository) ListConversions(ctx context.Context) ([]domain.Conversion, error) {
	query := `SELECT` + conversionColumns + `
		FROM conversions
		ORDER BY conversion_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list conversions", err)
	}
	defer rows.Close()

	var modelConversions []models.Conversion
	for rows.Next() {
		var m models.Conversion
		if err := scanConversion(rows, &m); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan conversion", err)
		}
		modelConversions = append(modelConversions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating conversions", err)
	}

	return mapping.ToDomainConversions(modelConversions), nil
}

// FindConversionByID retrieves a conversion by its ID.
func (r *PgxConversionRepository) FindConversionByID(ctx context.Context, conversionID int64) (*domain.Conversion, error) {
	query := `SELECT` + conversionColumns + `
		FROM conversions
		WHERE conversion_id = $1;`

	var m models.Conversion
	err := scanConversion(r.Pool.QueryRow(ctx, query, conversionID), &m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("conversion with ID %d not found", conversionID))
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to get conversion by ID", err)
	}

	d := mapping.ToDomainConversion(m)
	return &d, nil
}

// SaveConversion inserts a new conversion; the id comes from the table's sequence.
func (r *PgxConversionRepository) SaveConversion(ctx context.Context, conversion domain.Conversion) (*domain.Conversion, error) {
	m := mapping.ToModelConversion(conversion)

	err := r.inTx(ctx, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, `
			INSERT INTO conversions (
				unit_type, original_unit, original_value,
				converted_unit, converted_value, created_at, last_updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING conversion_id`,
			m.UnitType, m.OriginalUnit, m.OriginalValue,
			m.ConvertedUnit, m.ConvertedValue, m.CreatedAt, m.LastUpdatedAt,
		).Scan(&m.ConversionID)
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to insert conversion", err)
	}

	saved := mapping.ToDomainConversion(m)
	return &saved, nil
}

// UpdateConversion overwrites the units and values of an existing conversion.
func (r *PgxConversionRepository) UpdateConversion(ctx context.Context, conversion domain.Conversion) error {
	m := mapping.ToModelConversion(conversion)

	return r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE conversions
			SET unit_type = $1, original_unit = $2, original_value = $3,
				converted_unit = $4, converted_value = $5, last_updated_at = $6
			WHERE conversion_id = $7`,
			m.UnitType, m.OriginalUnit, m.OriginalValue,
			m.ConvertedUnit, m.ConvertedValue, m.LastUpdatedAt, m.ConversionID,
		)
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to update conversion", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError(fmt.Sprintf("conversion with ID %d not found", m.ConversionID))
		}
		return nil
	})
}

// DeleteConversion removes a conversion and reports whether a row was deleted.
func (r *PgxConversionRepository) DeleteConversion(ctx context.Context, conversionID int64) (bool, error) {
	var deleted bool
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM conversions WHERE conversion_id = $1`, conversionID)
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete conversion", err)
		}
		deleted = tag.RowsAffected() > 0
		return nil
	})
	return deleted, err
}

func scanConversion(row pgx.Row, m *models.Conversion) error {
	return row.Scan(
		&m.ConversionID, &m.UnitType, &m.OriginalUnit, &m.OriginalValue,
		&m.ConvertedUnit, &m.ConvertedValue, &m.CreatedAt, &m.LastUpdatedAt,
	)
}
