package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Bugian/unit-conversion-api/internal/apperrors"
	"github.com/Bugian/unit-conversion-api/internal/core/domain"
	portsrepo "github.com/Bugian/unit-conversion-api/internal/core/ports/repositories"
	portssvc "github.com/Bugian/unit-conversion-api/internal/core/ports/services"
	"github.com/Bugian/unit-conversion-api/internal/dto"
)

// conversionService implements the ConversionSvcFacade interface
type conversionService struct {
	BaseService
	conversionRepo portsrepo.ConversionRepositoryFacade
	now            func() time.Time
}

// ConversionServiceOption is a functional option for configuring the conversion service
type ConversionServiceOption func(*conversionService)

// WithClock overrides the time source used for audit timestamps.
func WithClock(now func() time.Time) ConversionServiceOption {
	return func(s *conversionService) {
		s.now = now
	}
}

// NewConversionService creates a new conversion service with the provided options
func NewConversionService(repo portsrepo.ConversionRepositoryFacade, options ...ConversionServiceOption) portssvc.ConversionSvcFacade {
	svc := &conversionService{
		conversionRepo: repo,
		now:            time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

func (s *conversionService) ListConversions(ctx context.Context) ([]domain.Conversion, error) {
	conversions, err := s.conversionRepo.ListConversions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list conversions")
		return nil, fmt.Errorf("failed to list conversions in service: %w", err)
	}
	// Return empty slice if no conversions found, not nil
	if conversions == nil {
		return []domain.Conversion{}, nil
	}
	return conversions, nil
}

func (s *conversionService) GetConversionByID(ctx context.Context, conversionID int64) (*domain.Conversion, error) {
	conversion, err := s.conversionRepo.FindConversionByID(ctx, conversionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversion by ID in service: %w", err)
	}
	return conversion, nil
}

func (s *conversionService) CreateConversion(ctx context.Context, req dto.CreateConversionRequest) (*domain.Conversion, error) {
	// Presence of every field is enforced by DTO binding; the unit table check happens here.
	if req.Value == nil {
		return nil, fmt.Errorf("%w: value is required", apperrors.ErrValidation)
	}

	now := s.now()
	conversion := domain.Conversion{
		UnitType:  req.Type,
		Original:  domain.Quantity{Value: *req.Value, Unit: req.From},
		Converted: domain.Quantity{Unit: req.To},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := conversion.Recompute(); err != nil {
		s.LogInfo(ctx, "Rejected conversion with invalid units",
			slog.String("type", req.Type), slog.String("from", req.From), slog.String("to", req.To))
		return nil, err
	}

	saved, err := s.conversionRepo.SaveConversion(ctx, conversion)
	if err != nil {
		s.LogError(ctx, err, "Failed to save conversion")
		return nil, fmt.Errorf("failed to create conversion in service: %w", err)
	}

	s.LogDebug(ctx, "Conversion stored", slog.Int64("conversion_id", saved.ConversionID))
	return saved, nil
}

func (s *conversionService) ReplaceConversion(ctx context.Context, conversionID int64, req dto.ReplaceConversionRequest) (*domain.Conversion, error) {
	conversion, err := s.conversionRepo.FindConversionByID(ctx, conversionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find conversion to replace: %w", err)
	}

	updated := *conversion
	if req.Type != nil {
		updated.UnitType = *req.Type
	}
	if req.From != nil {
		updated.Original.Unit = *req.From
	}
	if req.To != nil {
		updated.Converted.Unit = *req.To
	}
	if req.Value != nil {
		updated.Original.Value = *req.Value
	}

	return s.store(ctx, updated)
}

func (s *conversionService) PartialUpdateConversion(ctx context.Context, conversionID int64, req dto.PatchConversionRequest) (*domain.Conversion, error) {
	conversion, err := s.conversionRepo.FindConversionByID(ctx, conversionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find conversion to patch: %w", err)
	}

	// The unit type is whichever table entry owns the current source unit.
	unitType, ok := domain.InferUnitType(conversion.Original.Unit)
	if !ok {
		return nil, fmt.Errorf("%w: cannot determine unit type for unit '%s'", apperrors.ErrValidation, conversion.Original.Unit)
	}

	updated := *conversion
	updated.UnitType = unitType
	if req.From != nil {
		updated.Original.Unit = *req.From
	}
	if req.To != nil {
		updated.Converted.Unit = *req.To
	}
	if req.Value != nil {
		updated.Original.Value = *req.Value
	}

	return s.store(ctx, updated)
}

// store recomputes the converted value and persists an existing record.
func (s *conversionService) store(ctx context.Context, conversion domain.Conversion) (*domain.Conversion, error) {
	if err := conversion.Recompute(); err != nil {
		return nil, err
	}
	conversion.LastUpdatedAt = s.now()

	if err := s.conversionRepo.UpdateConversion(ctx, conversion); err != nil {
		s.LogError(ctx, err, "Failed to update conversion", slog.Int64("conversion_id", conversion.ConversionID))
		return nil, fmt.Errorf("failed to update conversion in service: %w", err)
	}
	return &conversion, nil
}

func (s *conversionService) DeleteConversion(ctx context.Context, conversionID int64) (bool, error) {
	deleted, err := s.conversionRepo.DeleteConversion(ctx, conversionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete conversion", slog.Int64("conversion_id", conversionID))
		return false, fmt.Errorf("failed to delete conversion in service: %w", err)
	}
	if !deleted {
		s.LogInfo(ctx, "Delete requested for missing conversion", slog.Int64("conversion_id", conversionID))
	}
	return deleted, nil
}
