package repositories

import (
	"context"

	"github.com/Bugian/unit-conversion-api/internal/core/domain"
)

// ConversionReader defines read operations for conversion records
type ConversionReader interface {
	// ListConversions retrieves every record in insertion (id) order.
	ListConversions(ctx context.Context) ([]domain.Conversion, error)

	// FindConversionByID retrieves a record by id. Returns apperrors.ErrNotFound if absent.
	FindConversionByID(ctx context.Context, conversionID int64) (*domain.Conversion, error)
}

// ConversionWriter defines write operations for conversion records
type ConversionWriter interface {
	// SaveConversion persists a new record, assigns the next id and returns the stored copy.
	SaveConversion(ctx context.Context, conversion domain.Conversion) (*domain.Conversion, error)

	// UpdateConversion overwrites an existing record. Returns apperrors.ErrNotFound if absent.
	UpdateConversion(ctx context.Context, conversion domain.Conversion) error

	// DeleteConversion removes a record and reports whether one was removed.
	DeleteConversion(ctx context.Context, conversionID int64) (bool, error)
}

// ConversionRepositoryFacade combines all conversion-related repository interfaces
// This is a facade for clients that need access to all operations
type ConversionRepositoryFacade interface {
	ConversionReader
	ConversionWriter
}
