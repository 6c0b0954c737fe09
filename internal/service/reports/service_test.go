package reports

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type fakeDetailRepo struct {
	details    []*domain.ReservationDetail
	detailsErr error

	revenues    []*domain.ClassRevenue
	revenuesErr error
}

func (f *fakeDetailRepo) List(_ context.Context) ([]*domain.ReservationDetail, error) {
	return f.details, f.detailsErr
}

func (f *fakeDetailRepo) FindByDateAndRoom(_ context.Context, _ types.DateTime, _ string) ([]*domain.ReservationDetail, error) {
	return f.details, f.detailsErr
}

func (f *fakeDetailRepo) ListRevenue(_ context.Context) ([]*domain.ClassRevenue, error) {
	return f.revenues, f.revenuesErr
}

type fakeReservationRepo struct {
	exists    bool
	existsErr error
}

func (f *fakeReservationRepo) Exists(_ context.Context, _ types.DateTime, _ string) (bool, error) {
	return f.exists, f.existsErr
}

type fakeRoomRepo struct {
	err error
}

func (f *fakeRoomRepo) ResolveID(_ context.Context, _ string) (int64, error) {
	return 1, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func dt(t *testing.T, s string) types.DateTime {
	t.Helper()
	parsed, err := types.ParseDateTime(s)
	require.NoError(t, err)
	return parsed
}

func sampleDetail(t *testing.T) *domain.ReservationDetail {
	return &domain.ReservationDetail{
		DateAndTime: dt(t, "2025-07-01 18:00:00"),
		Room:        "Sakura",
		Diner:       "Tanaka",
		Phone:       ptr.Ptr("090-1234-5678"),
		ClassName:   "Premium",
		PartySize:   4,
		Staff:       ptr.Ptr("Aoki"),
		Allergy:     "none",
		Bill:        48000,
	}
}

func TestSearchDetails_TriState(t *testing.T) {
	t.Run("room unknown", func(t *testing.T) {
		svc := NewService(&fakeDetailRepo{}, &fakeReservationRepo{}, &fakeRoomRepo{err: roomRepo.ErrRoomNotFound}, nopLogger{})

		result, err := svc.SearchDetails(context.Background(), dt(t, "2025-07-01 18:00:00"), "Ghost Hall")

		require.NoError(t, err)
		assert.Equal(t, domain.SearchRoomUnknown, result.Outcome)
		assert.Empty(t, result.Details)
	})

	t.Run("empty", func(t *testing.T) {
		svc := NewService(&fakeDetailRepo{}, &fakeReservationRepo{exists: false}, &fakeRoomRepo{}, nopLogger{})

		result, err := svc.SearchDetails(context.Background(), dt(t, "2025-07-01 18:00:00"), "Sakura")

		require.NoError(t, err)
		assert.Equal(t, domain.SearchEmpty, result.Outcome)
		assert.Empty(t, result.Details)
	})

	t.Run("found", func(t *testing.T) {
		repo := &fakeDetailRepo{details: []*domain.ReservationDetail{sampleDetail(t)}}
		svc := NewService(repo, &fakeReservationRepo{exists: true}, &fakeRoomRepo{}, nopLogger{})

		result, err := svc.SearchDetails(context.Background(), dt(t, "2025-07-01 18:00:00"), "Sakura")

		require.NoError(t, err)
		assert.Equal(t, domain.SearchFound, result.Outcome)
		require.Len(t, result.Details, 1)
		assert.Equal(t, "Premium", result.Details[0].ClassName)
		assert.Equal(t, 48000.0, result.Details[0].Bill)
	})
}

func TestSearchDetails_InfraFault(t *testing.T) {
	svc := NewService(&fakeDetailRepo{}, &fakeReservationRepo{existsErr: errors.New("connection refused")}, &fakeRoomRepo{}, nopLogger{})

	_, err := svc.SearchDetails(context.Background(), dt(t, "2025-07-01 18:00:00"), "Sakura")

	assert.ErrorIs(t, err, ErrInternal)
}

func TestListDetails(t *testing.T) {
	repo := &fakeDetailRepo{details: []*domain.ReservationDetail{sampleDetail(t)}}
	svc := NewService(repo, &fakeReservationRepo{}, &fakeRoomRepo{}, nopLogger{})

	resp, err := svc.ListDetails(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "Sakura", resp.Details[0].Room)
}

func TestListRevenue(t *testing.T) {
	repo := &fakeDetailRepo{revenues: []*domain.ClassRevenue{
		{ClassName: "Premium", TotalRevenue: 96000},
		{ClassName: "Standard", TotalRevenue: 30000},
	}}
	svc := NewService(repo, &fakeReservationRepo{}, &fakeRoomRepo{}, nopLogger{})

	resp, err := svc.ListRevenue(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Revenues, 2)
	assert.Equal(t, "Premium", resp.Revenues[0].ClassName)
}
