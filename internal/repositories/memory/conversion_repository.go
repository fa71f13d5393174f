// Package memory provides an in-process implementation of the conversion
// repository, used by default and in tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/Bugian/unit-conversion-api/internal/apperrors"
	"github.com/Bugian/unit-conversion-api/internal/core/domain"
	portsrepo "github.com/Bugian/unit-conversion-api/internal/core/ports/repositories"
)

var _ portsrepo.ConversionRepositoryFacade = (*ConversionRepository)(nil)

// ConversionRepository keeps records in insertion order. Ids come from nextID,
// which only ever grows, so ids are never reused after a delete.
type ConversionRepository struct {
	mu          sync.RWMutex
	conversions []domain.Conversion
	nextID      int64
}

// NewConversionRepository creates an empty repository whose first id is 1.
func NewConversionRepository() *ConversionRepository {
	return &ConversionRepository{nextID: 1}
}

func (r *ConversionRepository) ListConversions(_ context.Context) ([]domain.Conversion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Conversion, len(r.conversions))
	copy(out, r.conversions)
	return out, nil
}

func (r *ConversionRepository) FindConversionByID(_ context.Context, conversionID int64) (*domain.Conversion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(conversionID)
	if i < 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("conversion with ID %d not found", conversionID))
	}
	c := r.conversions[i]
	return &c, nil
}

func (r *ConversionRepository) SaveConversion(_ context.Context, conversion domain.Conversion) (*domain.Conversion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conversion.ConversionID = r.nextID
	r.nextID++
	r.conversions = append(r.conversions, conversion)
	return &conversion, nil
}

func (r *ConversionRepository) UpdateConversion(_ context.Context, conversion domain.Conversion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(conversion.ConversionID)
	if i < 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("conversion with ID %d not found", conversion.ConversionID))
	}
	// creation time is owned by the store
	conversion.CreatedAt = r.conversions[i].CreatedAt
	r.conversions[i] = conversion
	return nil
}

func (r *ConversionRepository) DeleteConversion(_ context.Context, conversionID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(conversionID)
	if i < 0 {
		return false, nil
	}
	r.conversions = append(r.conversions[:i], r.conversions[i+1:]...)
	return true, nil
}

// indexOf must be called with mu held. Records are sorted by id, so a binary search works.
func (r *ConversionRepository) indexOf(conversionID int64) int {
	lo, hi := 0, len(r.conversions)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if r.conversions[mid].ConversionID < conversionID {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(r.conversions) && r.conversions[lo].ConversionID == conversionID {
		return lo
	}
	return -1
}
