package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Bugian/unit-conversion-api/internal/apperrors"
	"github.com/Bugian/unit-conversion-api/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(value float64) domain.Conversion {
	return domain.Conversion{
		UnitType:  "mass",
		Original:  domain.Quantity{Value: value, Unit: "kg"},
		Converted: domain.Quantity{Value: value * 1000, Unit: "g"},
	}
}

func TestConversionRepository_SaveAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewConversionRepository()

	first, err := repo.SaveConversion(ctx, sample(1))
	require.NoError(t, err)
	second, err := repo.SaveConversion(ctx, sample(2))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ConversionID)
	assert.Equal(t, int64(2), second.ConversionID)

	got, err := repo.FindConversionByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, *second, *got)
}

func TestConversionRepository_IDsAreNotReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewConversionRepository()

	_, _ = repo.SaveConversion(ctx, sample(1))
	last, _ := repo.SaveConversion(ctx, sample(2))

	deleted, err := repo.DeleteConversion(ctx, last.ConversionID)
	require.NoError(t, err)
	assert.True(t, deleted)

	next, err := repo.SaveConversion(ctx, sample(3))
	require.NoError(t, err)
	assert.Equal(t, int64(3), next.ConversionID)
}

func TestConversionRepository_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewConversionRepository()
	for i := 1; i <= 4; i++ {
		_, _ = repo.SaveConversion(ctx, sample(float64(i)))
	}
	_, _ = repo.DeleteConversion(ctx, 2)

	list, err := repo.ListConversions(ctx)
	require.NoError(t, err)

	ids := make([]int64, len(list))
	for i, c := range list {
		ids[i] = c.ConversionID
	}
	assert.Equal(t, []int64{1, 3, 4}, ids)

	// mutating the returned slice does not touch the store
	list[0].Original.Value = 99
	again, _ := repo.FindConversionByID(ctx, 1)
	assert.Equal(t, 1.0, again.Original.Value)
}

func TestConversionRepository_FindMissing(t *testing.T) {
	repo := NewConversionRepository()
	_, err := repo.FindConversionByID(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestConversionRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewConversionRepository()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := sample(1)
	c.CreatedAt = created
	saved, _ := repo.SaveConversion(ctx, c)

	saved.Original.Value = 7
	saved.Converted.Value = 7000
	saved.CreatedAt = time.Time{}
	require.NoError(t, repo.UpdateConversion(ctx, *saved))

	got, err := repo.FindConversionByID(ctx, saved.ConversionID)
	require.NoError(t, err)
	assert.Equal(t, 7000.0, got.Converted.Value)
	assert.True(t, got.CreatedAt.Equal(created))

	missing := sample(1)
	missing.ConversionID = 50
	assert.ErrorIs(t, repo.UpdateConversion(ctx, missing), apperrors.ErrNotFound)
}

func TestConversionRepository_DeleteMissingIsNoop(t *testing.T) {
	repo := NewConversionRepository()
	deleted, err := repo.DeleteConversion(context.Background(), 10)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestConversionRepository_ConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	repo := NewConversionRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(v float64) {
			defer wg.Done()
			_, _ = repo.SaveConversion(ctx, sample(v))
		}(float64(i))
	}
	wg.Wait()

	list, err := repo.ListConversions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 50)
	for i, c := range list {
		assert.Equal(t, int64(i+1), c.ConversionID)
	}
}
