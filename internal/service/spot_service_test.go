package service

import (
	"context"
	"testing"

	"hearth/internal/models"
	"hearth/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MockSpotRepository is a mock of the SpotRepository interface
type MockSpotRepository struct {
	mock.Mock
}

func (m *MockSpotRepository) Create(ctx context.Context, spot *models.Spot) error {
	args := m.Called(ctx, spot)
	return args.Error(0)
}

func (m *MockSpotRepository) GetByID(ctx context.Context, id uint) (*models.Spot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Spot), args.Error(1)
}

func (m *MockSpotRepository) GetOwnerID(ctx context.Context, id uint) (uint, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockSpotRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockSpotRepository) List(ctx context.Context, filter repository.SpotFilter) ([]*models.Spot, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Spot), args.Error(1)
}

func (m *MockSpotRepository) Update(ctx context.Context, spot *models.Spot) error {
	args := m.Called(ctx, spot)
	return args.Error(0)
}

func (m *MockSpotRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSpotRepository) AddImage(ctx context.Context, image *models.SpotImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func str(s string) *string   { return &s }
func f64(v float64) *float64 { return &v }

func validInput() SpotInput {
	return SpotInput{
		Address:     str("123 Disney Lane"),
		City:        str("San Francisco"),
		State:       str("California"),
		Country:     str("United States of America"),
		Lat:         f64(37.76),
		Lng:         f64(-122.47),
		Name:        str("App Academy"),
		Description: str("Place where web developers are created"),
		Price:       f64(123),
	}
}

func TestListSpotsNormalizesPagination(t *testing.T) {
	mockRepo := new(MockSpotRepository)
	svc := NewSpotService(mockRepo)

	mockRepo.On("List", mock.Anything, repository.SpotFilter{Page: 1, Size: 20}).
		Return([]*models.Spot{}, nil)

	_, err := svc.ListSpots(context.Background(), repository.SpotFilter{Page: -4, Size: 900})
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestGetSpotNotFound(t *testing.T) {
	mockRepo := new(MockSpotRepository)
	svc := NewSpotService(mockRepo)

	mockRepo.On("GetByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetSpot(context.Background(), 42)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
	assert.Equal(t, MsgSpotNotFound, appErr.Message)
}

func TestCreateSpotValidation(t *testing.T) {
	mockRepo := new(MockSpotRepository)
	svc := NewSpotService(mockRepo)

	input := validInput()
	input.Price = f64(-1)

	_, err := svc.CreateSpot(context.Background(), 1, input)
	require.Error(t, err)
	appErr := err.(*models.AppError)
	assert.Equal(t, models.CodeValidation, appErr.Code)
	assert.Contains(t, appErr.Fields, "price")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCreateSpotSetsOwner(t *testing.T) {
	mockRepo := new(MockSpotRepository)
	svc := NewSpotService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(spot *models.Spot) bool {
		return spot.OwnerID == 7 && spot.Name == "App Academy"
	})).Return(nil)

	spot, err := svc.CreateSpot(context.Background(), 7, validInput())
	require.NoError(t, err)
	assert.Equal(t, uint(7), spot.OwnerID)
	mockRepo.AssertExpectations(t)
}

func TestUpdateSpotForbidden(t *testing.T) {
	mockRepo := new(MockSpotRepository)
	svc := NewSpotService(mockRepo)

	mockRepo.On("GetByID", mock.Anything, uint(5)).
		Return(&models.Spot{ID: 5, OwnerID: 1, Name: "Theirs"}, nil)

	_, err := svc.UpdateSpot(context.Background(), 2, 5, SpotInput{Name: str("Mine")})
	require.Error(t, err)
	appErr := err.(*models.AppError)
	assert.Equal(t, models.CodeForbidden, appErr.Code)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestDeleteSpotOwnership(t *testing.T) {
	mockRepo := new(MockSpotRepository)
	svc := NewSpotService(mockRepo)

	mockRepo.On("GetOwnerID", mock.Anything, uint(5)).Return(uint(1), nil)
	mockRepo.On("Delete", mock.Anything, uint(5)).Return(nil)

	err := svc.DeleteSpot(context.Background(), 2, 5)
	require.Error(t, err)
	assert.Equal(t, models.CodeForbidden, err.(*models.AppError).Code)
	mockRepo.AssertNotCalled(t, "Delete")

	require.NoError(t, svc.DeleteSpot(context.Background(), 1, 5))
}

func TestDeleteSpotNotFound(t *testing.T) {
	mockRepo := new(MockSpotRepository)
	svc := NewSpotService(mockRepo)

	mockRepo.On("GetOwnerID", mock.Anything, uint(99)).Return(uint(0), gorm.ErrRecordNotFound)

	err := svc.DeleteSpot(context.Background(), 1, 99)
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, err.(*models.AppError).Code)
}
