package airports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pcloudair/airports/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAirportRepository struct {
	mock.Mock
}

func (m *MockAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockAirportRepository) GetByCode(ctx context.Context, code string) (*domain.Airport, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockAirportRepository) Stats(ctx context.Context) (*domain.DatasetStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DatasetStats), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetAirports(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockCache) SetAirports(ctx context.Context, airports []domain.Airport) error {
	args := m.Called(ctx, airports)
	return args.Error(0)
}

func testAirports() []domain.Airport {
	return []domain.Airport{
		{Code: "ATL", Name: "Hartsfield-Jackson Atlanta International Airport", Country: "United States", Latitude: 33.6407, Longitude: -84.4277, MetroPopulation: 6300000, GateCount: 11, IsHub: true},
		{Code: "JFK", Name: "John F. Kennedy International Airport", Country: "United States", Latitude: 40.6413, Longitude: -73.7781, MetroPopulation: 19500000, GateCount: 13, IsHub: true},
		{Code: "BNA", Name: "Nashville International Airport", Country: "United States", Latitude: 36.1263, Longitude: -86.6774, MetroPopulation: 2100000, GateCount: 5, IsHub: false},
	}
}

func TestAirportService_List_CacheMiss(t *testing.T) {
	mockRepo := &MockAirportRepository{}
	mockCache := &MockCache{}

	service := NewAirportService(mockRepo, mockCache, time.Minute)

	ctx := context.Background()
	airports := testAirports()

	mockCache.On("GetAirports", ctx).Return(([]domain.Airport)(nil), nil).Once()
	mockRepo.On("List", ctx).Return(airports, nil).Once()
	mockCache.On("SetAirports", ctx, airports).Return(nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, airports, result)

	mockCache.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestAirportService_List_CacheHit(t *testing.T) {
	mockRepo := &MockAirportRepository{}
	mockCache := &MockCache{}

	service := NewAirportService(mockRepo, mockCache, time.Minute)

	ctx := context.Background()
	airports := testAirports()

	mockCache.On("GetAirports", ctx).Return(airports, nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, airports, result)

	mockCache.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "List")
	mockCache.AssertNotCalled(t, "SetAirports")
}

func TestAirportService_List_CacheError(t *testing.T) {
	mockRepo := &MockAirportRepository{}
	mockCache := &MockCache{}

	service := NewAirportService(mockRepo, mockCache, time.Minute)

	ctx := context.Background()
	airports := testAirports()

	mockCache.On("GetAirports", ctx).Return(([]domain.Airport)(nil), errors.New("cache error")).Once()
	mockRepo.On("List", ctx).Return(airports, nil).Once()
	mockCache.On("SetAirports", ctx, airports).Return(nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, airports, result)

	mockCache.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestAirportService_List_NoCache(t *testing.T) {
	mockRepo := &MockAirportRepository{}

	service := NewAirportService(mockRepo, nil, time.Minute)

	ctx := context.Background()
	airports := testAirports()

	mockRepo.On("List", ctx).Return(airports, nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, airports, result)

	mockRepo.AssertExpectations(t)
}

func TestAirportService_GetByCode_NormalizesInput(t *testing.T) {
	mockRepo := &MockAirportRepository{}

	service := NewAirportService(mockRepo, nil, time.Minute)

	ctx := context.Background()
	atl := testAirports()[0]

	mockRepo.On("GetByCode", ctx, "ATL").Return(&atl, nil).Once()

	result, err := service.GetByCode(ctx, " atl ")

	assert.NoError(t, err)
	assert.Equal(t, &atl, result)

	mockRepo.AssertExpectations(t)
}

func TestAirportService_GetByCode_Malformed(t *testing.T) {
	mockRepo := &MockAirportRepository{}

	service := NewAirportService(mockRepo, nil, time.Minute)

	result, err := service.GetByCode(context.Background(), "ATLA")

	assert.Nil(t, result)
	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	mockRepo.AssertNotCalled(t, "GetByCode")
}

func TestAirportService_GetByCode_NotFound(t *testing.T) {
	mockRepo := &MockAirportRepository{}

	service := NewAirportService(mockRepo, nil, time.Minute)

	ctx := context.Background()
	mockRepo.On("GetByCode", ctx, "XXX").Return(nil, domain.ErrNotFound).Once()

	result, err := service.GetByCode(ctx, "XXX")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	mockRepo.AssertExpectations(t)
}

func TestAirportService_ListHubs(t *testing.T) {
	mockRepo := &MockAirportRepository{}

	service := NewAirportService(mockRepo, nil, time.Minute)

	ctx := context.Background()
	mockRepo.On("List", ctx).Return(testAirports(), nil).Once()

	hubs, err := service.ListHubs(ctx)

	assert.NoError(t, err)
	assert.Len(t, hubs, 2)
	assert.Equal(t, "ATL", hubs[0].Code)
	assert.Equal(t, "JFK", hubs[1].Code)
}

func TestAirportService_FilterByMinGates(t *testing.T) {
	mockRepo := &MockAirportRepository{}

	service := NewAirportService(mockRepo, nil, time.Minute)

	ctx := context.Background()
	mockRepo.On("List", ctx).Return(testAirports(), nil).Once()

	filtered, err := service.FilterByMinGates(ctx, 10)

	assert.NoError(t, err)
	assert.Len(t, filtered, 2)

	_, err = service.FilterByMinGates(ctx, -1)
	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestAirportService_SortByPopulation(t *testing.T) {
	mockRepo := &MockAirportRepository{}

	service := NewAirportService(mockRepo, nil, time.Minute)

	ctx := context.Background()
	mockRepo.On("List", ctx).Return(testAirports(), nil).Once()

	sorted, err := service.SortByPopulation(ctx, true)

	assert.NoError(t, err)
	assert.Equal(t, "JFK", sorted[0].Code)
	assert.Equal(t, "BNA", sorted[len(sorted)-1].Code)
}

func TestAirportService_Route(t *testing.T) {
	mockRepo := &MockAirportRepository{}

	service := NewAirportService(mockRepo, nil, time.Minute)

	ctx := context.Background()
	atl := testAirports()[0]
	jfk := testAirports()[1]

	mockRepo.On("GetByCode", ctx, "ATL").Return(&atl, nil).Once()
	mockRepo.On("GetByCode", ctx, "JFK").Return(&jfk, nil).Once()

	route, err := service.Route(ctx, "atl", "jfk")

	assert.NoError(t, err)
	assert.Equal(t, "ATL", route.Origin.Code)
	assert.Equal(t, "JFK", route.Destination.Code)
	assert.InDelta(t, 750, route.DistanceMiles, 15)
	assert.InDelta(t, route.DistanceMiles*1.60934, route.DistanceKilometers, 0.001)

	mockRepo.AssertExpectations(t)
}

func TestAirportService_Stats(t *testing.T) {
	mockRepo := &MockAirportRepository{}

	service := NewAirportService(mockRepo, nil, time.Minute)

	ctx := context.Background()
	stats := &domain.DatasetStats{TotalAirports: 30, TotalHubs: 4, TotalGates: 230, MaxMetroPopulation: 19500000}

	mockRepo.On("Stats", ctx).Return(stats, nil).Once()

	result, err := service.Stats(ctx)

	assert.NoError(t, err)
	assert.Equal(t, stats, result)

	mockRepo.AssertExpectations(t)
}
