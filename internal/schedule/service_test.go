package schedule

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/duonglna/hoibongcuoinhandao/internal/court"
	"github.com/duonglna/hoibongcuoinhandao/internal/logger"
	"github.com/duonglna/hoibongcuoinhandao/internal/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	logger.Init()
}

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, params CreateParams) (*Schedule, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Schedule), args.Error(1)
}

func (m *MockRepository) GetAll(ctx context.Context) ([]Schedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Schedule), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Schedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Schedule), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int, params CreateParams) (*Schedule, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Schedule), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCourtRepository struct {
	mock.Mock
}

func (m *MockCourtRepository) Create(ctx context.Context, name, address, mapLink string, pricePerHour float64) (*court.Court, error) {
	args := m.Called(ctx, name, address, mapLink, pricePerHour)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*court.Court), args.Error(1)
}

func (m *MockCourtRepository) GetAll(ctx context.Context, onlyActive bool) ([]court.Court, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]court.Court), args.Error(1)
}

func (m *MockCourtRepository) GetByID(ctx context.Context, id int) (*court.Court, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*court.Court), args.Error(1)
}

func (m *MockCourtRepository) Update(ctx context.Context, id int, name, address, mapLink string, pricePerHour float64, active bool) (*court.Court, error) {
	args := m.Called(ctx, id, name, address, mapLink, pricePerHour, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*court.Court), args.Error(1)
}

func (m *MockCourtRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) GetBySchedule(ctx context.Context, scheduleID int) ([]payment.Payment, error) {
	args := m.Called(ctx, scheduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetByMember(ctx context.Context, memberID int) ([]payment.Payment, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]payment.Payment), args.Error(1)
}

func newTestService() (*MockRepository, *MockCourtRepository, *MockPaymentRepository, Service) {
	repo := new(MockRepository)
	courtRepo := new(MockCourtRepository)
	paymentRepo := new(MockPaymentRepository)
	return repo, courtRepo, paymentRepo, NewService(repo, courtRepo, paymentRepo)
}

func TestService_Create_SnapshotsCourtPrice(t *testing.T) {
	repo, courtRepo, _, service := newTestService()

	courtRepo.On("GetByID", mock.Anything, 1).Return(&court.Court{
		ID:           1,
		Name:         "Q7",
		PricePerHour: 120000,
	}, nil)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(p CreateParams) bool {
		// 2 courts * 1.5 hours * 120000/hour
		return p.CourtPrice == 360000 && p.CourtID == 1
	})).Return(&Schedule{ID: 1, CourtPrice: 360000, Status: StatusPending}, nil)

	s, err := service.Create(context.Background(), CreateScheduleRequest{
		CourtID:        1,
		Date:           "2025-03-14",
		StartTime:      "19:00",
		Hours:          1.5,
		NumberOfCourts: 2,
		Participants:   []int{1, 2},
	})

	assert.NoError(t, err)
	assert.Equal(t, 360000.0, s.CourtPrice)
	repo.AssertExpectations(t)
	courtRepo.AssertExpectations(t)
}

func TestService_Create_CourtMissing(t *testing.T) {
	_, courtRepo, _, service := newTestService()

	courtRepo.On("GetByID", mock.Anything, 9).Return(nil, sql.ErrNoRows)

	_, err := service.Create(context.Background(), CreateScheduleRequest{
		CourtID:        9,
		Date:           "2025-03-14",
		StartTime:      "19:00",
		Hours:          2,
		NumberOfCourts: 1,
	})

	assert.ErrorIs(t, err, court.ErrCourtNotFound)
}

func TestService_Create_BadDate(t *testing.T) {
	_, _, _, service := newTestService()

	_, err := service.Create(context.Background(), CreateScheduleRequest{
		CourtID:        1,
		Date:           "14-03-2025",
		StartTime:      "19:00",
		Hours:          2,
		NumberOfCourts: 1,
	})

	assert.ErrorIs(t, err, ErrInvalidDateTime)
}

func TestService_WeekFeed_PendingOnly(t *testing.T) {
	repo, courtRepo, _, service := newTestService()

	futureDate := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	repo.On("GetAll", mock.Anything).Return([]Schedule{
		{ID: 1, CourtID: 1, Date: futureDate, StartTime: "19:00", Hours: 2, NumberOfCourts: 1, Status: StatusPending},
		{ID: 2, CourtID: 1, Date: futureDate, StartTime: "20:00", Hours: 2, NumberOfCourts: 1, Status: StatusDone},
	}, nil)
	courtRepo.On("GetAll", mock.Anything, false).Return([]court.Court{
		{ID: 1, Name: "Q7", PricePerHour: 100000},
	}, nil)

	feed, err := service.WeekFeed(context.Background())

	assert.NoError(t, err)
	assert.Len(t, feed, 1)
	assert.Equal(t, 1, feed[0].ID)
	assert.Equal(t, 200000.0, feed[0].TotalCourtPrice)
}

func TestService_WeekFeed_CourtLookupFailureDegrades(t *testing.T) {
	repo, courtRepo, _, service := newTestService()

	futureDate := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	repo.On("GetAll", mock.Anything).Return([]Schedule{
		{ID: 1, CourtID: 1, Date: futureDate, StartTime: "19:00", Hours: 2, NumberOfCourts: 1, Status: StatusPending},
	}, nil)
	courtRepo.On("GetAll", mock.Anything, false).Return(nil, assert.AnError)

	feed, err := service.WeekFeed(context.Background())

	assert.NoError(t, err)
	assert.Len(t, feed, 1)
	assert.Nil(t, feed[0].Court)
}

func TestService_MemberWeekSchedule_AttachesPayment(t *testing.T) {
	repo, courtRepo, paymentRepo, service := newTestService()

	today := time.Now().Format("2006-01-02")
	repo.On("GetAll", mock.Anything).Return([]Schedule{
		{ID: 1, CourtID: 1, Date: today, StartTime: "23:59", Hours: 2, NumberOfCourts: 1, Status: StatusDone, Participants: []int{5, 6}},
		{ID: 2, CourtID: 1, Date: today, StartTime: "23:58", Hours: 2, NumberOfCourts: 1, Status: StatusPending, Participants: []int{6}},
	}, nil)
	courtRepo.On("GetAll", mock.Anything, false).Return([]court.Court{}, nil)
	paymentRepo.On("GetByMember", mock.Anything, 5).Return([]payment.Payment{
		{ID: 9, ScheduleID: 1, MemberID: 5, CourtShare: 100000},
	}, nil)

	result, err := service.MemberWeekSchedule(context.Background(), 5)

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, 1, result[0].ID)
	assert.NotNil(t, result[0].Payment)
	assert.Equal(t, 100000.0, result[0].Payment.CourtShare)
}
