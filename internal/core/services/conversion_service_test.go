package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Bugian/unit-conversion-api/internal/apperrors"
	"github.com/Bugian/unit-conversion-api/internal/core/domain"
	portssvc "github.com/Bugian/unit-conversion-api/internal/core/ports/services"
	"github.com/Bugian/unit-conversion-api/internal/core/services"
	"github.com/Bugian/unit-conversion-api/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ConversionRepository ---
type MockConversionRepository struct {
	mock.Mock
}

func (m *MockConversionRepository) ListConversions(ctx context.Context) ([]domain.Conversion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Conversion), args.Error(1)
}

func (m *MockConversionRepository) FindConversionByID(ctx context.Context, conversionID int64) (*domain.Conversion, error) {
	args := m.Called(ctx, conversionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversion), args.Error(1)
}

func (m *MockConversionRepository) SaveConversion(ctx context.Context, conversion domain.Conversion) (*domain.Conversion, error) {
	args := m.Called(ctx, conversion)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversion), args.Error(1)
}

func (m *MockConversionRepository) UpdateConversion(ctx context.Context, conversion domain.Conversion) error {
	args := m.Called(ctx, conversion)
	return args.Error(0)
}

func (m *MockConversionRepository) DeleteConversion(ctx context.Context, conversionID int64) (bool, error) {
	args := m.Called(ctx, conversionID)
	return args.Bool(0), args.Error(1)
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

// --- Test Suite ---
type ConversionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockConversionRepository
	service  portssvc.ConversionSvcFacade
	now      time.Time
}

func (suite *ConversionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockConversionRepository)
	suite.now = time.Date(2024, 5, 15, 14, 30, 0, 0, time.UTC)
	suite.service = services.NewConversionService(suite.mockRepo, services.WithClock(func() time.Time { return suite.now }))
}

func (suite *ConversionServiceTestSuite) existing() *domain.Conversion {
	created := suite.now.Add(-time.Hour)
	return &domain.Conversion{
		ConversionID: 1,
		UnitType:     "mass",
		Original:     domain.Quantity{Value: 2, Unit: "kg"},
		Converted:    domain.Quantity{Value: 2000, Unit: "g"},
		AuditFields:  domain.AuditFields{CreatedAt: created, LastUpdatedAt: created},
	}
}

// --- Test Cases ---

func (suite *ConversionServiceTestSuite) TestCreateConversion_Success() {
	ctx := context.Background()
	req := dto.CreateConversionRequest{Type: "mass", From: "kg", To: "g", Value: floatPtr(2)}

	suite.mockRepo.On("SaveConversion", ctx, mock.MatchedBy(func(c domain.Conversion) bool {
		return c.UnitType == "mass" && c.Original == domain.Quantity{Value: 2, Unit: "kg"} &&
			c.Converted == domain.Quantity{Value: 2000, Unit: "g"} && c.CreatedAt.Equal(suite.now)
	})).Return(&domain.Conversion{
		ConversionID: 1,
		UnitType:     "mass",
		Original:     domain.Quantity{Value: 2, Unit: "kg"},
		Converted:    domain.Quantity{Value: 2000, Unit: "g"},
	}, nil).Once()

	conversion, err := suite.service.CreateConversion(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(conversion)
	suite.Equal(int64(1), conversion.ConversionID)
	suite.Equal(2000.0, conversion.Converted.Value)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestCreateConversion_ZeroValueIsAccepted() {
	ctx := context.Background()
	req := dto.CreateConversionRequest{Type: "temperature", From: "C", To: "F", Value: floatPtr(0)}

	suite.mockRepo.On("SaveConversion", ctx, mock.AnythingOfType("domain.Conversion")).
		Return(&domain.Conversion{ConversionID: 3, Converted: domain.Quantity{Value: 32, Unit: "F"}}, nil).Once()

	conversion, err := suite.service.CreateConversion(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(32.0, conversion.Converted.Value)
}

func (suite *ConversionServiceTestSuite) TestCreateConversion_InvalidUnits() {
	ctx := context.Background()
	cases := []dto.CreateConversionRequest{
		{Type: "pressure", From: "Pa", To: "bar", Value: floatPtr(1)},
		{Type: "mass", From: "kg", To: "m", Value: floatPtr(1)},
		{Type: "mass", From: "kg", To: "g"},
	}

	for _, req := range cases {
		conversion, err := suite.service.CreateConversion(ctx, req)
		suite.Nil(conversion)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveConversion", mock.Anything, mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestCreateConversion_SaveError() {
	ctx := context.Background()
	req := dto.CreateConversionRequest{Type: "mass", From: "kg", To: "g", Value: floatPtr(1)}
	suite.mockRepo.On("SaveConversion", ctx, mock.AnythingOfType("domain.Conversion")).Return(nil, assert.AnError).Once()

	conversion, err := suite.service.CreateConversion(ctx, req)

	suite.Nil(conversion)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestListConversions_EmptyIsNotNil() {
	ctx := context.Background()
	suite.mockRepo.On("ListConversions", ctx).Return(nil, nil).Once()

	conversions, err := suite.service.ListConversions(ctx)

	suite.Require().NoError(err)
	suite.NotNil(conversions)
	suite.Empty(conversions)
}

func (suite *ConversionServiceTestSuite) TestListConversions_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListConversions", ctx).Return(nil, assert.AnError).Once()

	conversions, err := suite.service.ListConversions(ctx)

	suite.Nil(conversions)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *ConversionServiceTestSuite) TestGetConversionByID_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindConversionByID", ctx, int64(999)).Return(nil, apperrors.NewNotFoundError("conversion 999 not found")).Once()

	conversion, err := suite.service.GetConversionByID(ctx, 999)

	suite.Nil(conversion)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ConversionServiceTestSuite) TestReplaceConversion_DefaultsOmittedFields() {
	ctx := context.Background()
	suite.mockRepo.On("FindConversionByID", ctx, int64(1)).Return(suite.existing(), nil).Once()
	suite.mockRepo.On("UpdateConversion", ctx, mock.AnythingOfType("domain.Conversion")).Return(nil).Once()

	conversion, err := suite.service.ReplaceConversion(ctx, 1, dto.ReplaceConversionRequest{To: strPtr("mg")})

	suite.Require().NoError(err)
	suite.Equal("mass", conversion.UnitType)
	suite.Equal(domain.Quantity{Value: 2, Unit: "kg"}, conversion.Original)
	suite.Equal(domain.Quantity{Value: 2000000, Unit: "mg"}, conversion.Converted)
	suite.True(conversion.LastUpdatedAt.Equal(suite.now))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestReplaceConversion_ChangesType() {
	ctx := context.Background()
	suite.mockRepo.On("FindConversionByID", ctx, int64(1)).Return(suite.existing(), nil).Once()
	suite.mockRepo.On("UpdateConversion", ctx, mock.MatchedBy(func(c domain.Conversion) bool {
		return c.UnitType == "length" && c.Converted.Value == 1500
	})).Return(nil).Once()

	req := dto.ReplaceConversionRequest{Type: strPtr("length"), From: strPtr("km"), To: strPtr("m"), Value: floatPtr(1.5)}
	conversion, err := suite.service.ReplaceConversion(ctx, 1, req)

	suite.Require().NoError(err)
	suite.Equal(1500.0, conversion.Converted.Value)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestReplaceConversion_InvalidCombination() {
	ctx := context.Background()
	suite.mockRepo.On("FindConversionByID", ctx, int64(1)).Return(suite.existing(), nil).Once()

	// switching the type alone leaves kg/g, which are not length units
	conversion, err := suite.service.ReplaceConversion(ctx, 1, dto.ReplaceConversionRequest{Type: strPtr("length")})

	suite.Nil(conversion)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateConversion", mock.Anything, mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestReplaceConversion_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindConversionByID", ctx, int64(5)).Return(nil, apperrors.NewNotFoundError("conversion 5 not found")).Once()

	conversion, err := suite.service.ReplaceConversion(ctx, 5, dto.ReplaceConversionRequest{Value: floatPtr(1)})

	suite.Nil(conversion)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ConversionServiceTestSuite) TestPartialUpdateConversion_ValueOnly() {
	ctx := context.Background()
	suite.mockRepo.On("FindConversionByID", ctx, int64(1)).Return(suite.existing(), nil).Once()
	suite.mockRepo.On("UpdateConversion", ctx, mock.AnythingOfType("domain.Conversion")).Return(nil).Once()

	conversion, err := suite.service.PartialUpdateConversion(ctx, 1, dto.PatchConversionRequest{Value: floatPtr(5)})

	suite.Require().NoError(err)
	suite.Equal(domain.Quantity{Value: 5, Unit: "kg"}, conversion.Original)
	suite.Equal(domain.Quantity{Value: 5000, Unit: "g"}, conversion.Converted)
}

func (suite *ConversionServiceTestSuite) TestPartialUpdateConversion_InfersTypeFromSourceUnit() {
	ctx := context.Background()
	// a record whose stored type disagrees with its units still patches as mass
	stale := suite.existing()
	stale.UnitType = ""
	suite.mockRepo.On("FindConversionByID", ctx, int64(1)).Return(stale, nil).Once()
	suite.mockRepo.On("UpdateConversion", ctx, mock.MatchedBy(func(c domain.Conversion) bool {
		return c.UnitType == "mass"
	})).Return(nil).Once()

	conversion, err := suite.service.PartialUpdateConversion(ctx, 1, dto.PatchConversionRequest{To: strPtr("pound")})

	suite.Require().NoError(err)
	suite.Equal(4.40924, conversion.Converted.Value)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestPartialUpdateConversion_UnitOutsideInferredType() {
	ctx := context.Background()
	suite.mockRepo.On("FindConversionByID", ctx, int64(1)).Return(suite.existing(), nil).Once()

	conversion, err := suite.service.PartialUpdateConversion(ctx, 1, dto.PatchConversionRequest{To: strPtr("km")})

	suite.Nil(conversion)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ConversionServiceTestSuite) TestPartialUpdateConversion_UnknownSourceUnit() {
	ctx := context.Background()
	broken := suite.existing()
	broken.Original.Unit = "stone"
	suite.mockRepo.On("FindConversionByID", ctx, int64(1)).Return(broken, nil).Once()

	conversion, err := suite.service.PartialUpdateConversion(ctx, 1, dto.PatchConversionRequest{Value: floatPtr(1)})

	suite.Nil(conversion)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ConversionServiceTestSuite) TestDeleteConversion_MissingIsNotAnError() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteConversion", ctx, int64(42)).Return(false, nil).Once()

	deleted, err := suite.service.DeleteConversion(ctx, 42)

	suite.Require().NoError(err)
	suite.False(deleted)
}

func (suite *ConversionServiceTestSuite) TestDeleteConversion_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteConversion", ctx, int64(1)).Return(false, assert.AnError).Once()

	_, err := suite.service.DeleteConversion(ctx, 1)

	suite.ErrorIs(err, assert.AnError)
}

// --- Run Suite ---
func TestConversionService(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}
