package services

import (
	"context"

	"github.com/Bugian/unit-conversion-api/internal/core/domain"
	"github.com/Bugian/unit-conversion-api/internal/dto"
)

// ConversionReaderSvc defines read operations for conversion records
type ConversionReaderSvc interface {
	// ListConversions retrieves all records in insertion order.
	ListConversions(ctx context.Context) ([]domain.Conversion, error)

	// GetConversionByID retrieves a specific record.
	GetConversionByID(ctx context.Context, conversionID int64) (*domain.Conversion, error)
}

// ConversionWriterSvc defines write operations for conversion records
type ConversionWriterSvc interface {
	// CreateConversion validates the request, computes the converted value and stores a new record.
	CreateConversion(ctx context.Context, req dto.CreateConversionRequest) (*domain.Conversion, error)

	// ReplaceConversion updates a record; omitted fields keep their current value.
	ReplaceConversion(ctx context.Context, conversionID int64, req dto.ReplaceConversionRequest) (*domain.Conversion, error)

	// PartialUpdateConversion updates units and/or value, inferring the unit type from the current source unit.
	PartialUpdateConversion(ctx context.Context, conversionID int64, req dto.PatchConversionRequest) (*domain.Conversion, error)

	// DeleteConversion removes a record. Deleting a missing record is not an error.
	DeleteConversion(ctx context.Context, conversionID int64) (bool, error)
}

// ConversionSvcFacade combines all conversion-related service interfaces
type ConversionSvcFacade interface {
	ConversionReaderSvc
	ConversionWriterSvc
}
