package reservations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type fakeRoomRepo struct {
	err error
}

func (f *fakeRoomRepo) ResolveID(_ context.Context, _ string) (int64, error) {
	return 1, f.err
}

type fakeReservationRepo struct {
	exists    bool
	existsErr error

	found   []*domain.Reservation
	findErr error

	list    []*domain.Reservation
	listErr error

	deleteErr   error
	deleteCalls int
}

func (f *fakeReservationRepo) Exists(_ context.Context, _ types.DateTime, _ string) (bool, error) {
	return f.exists, f.existsErr
}

func (f *fakeReservationRepo) FindByDateAndRoom(_ context.Context, _ types.DateTime, _ string) ([]*domain.Reservation, error) {
	return f.found, f.findErr
}

func (f *fakeReservationRepo) List(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return f.list, f.listErr
}

func (f *fakeReservationRepo) Delete(_ context.Context, _ types.DateTime, _ string) error {
	f.deleteCalls++
	return f.deleteErr
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

func sampleReservation(t *testing.T) *domain.Reservation {
	return &domain.Reservation{
		DateAndTime: dt(t, "2025-07-01 18:00:00"),
		Room:        "Sakura",
		Diner:       "Tanaka",
		PartySize:   4,
	}
}

// Трёхвариантный поиск: три исхода взаимоисключающие и исчерпывающие

func TestSearch_RoomUnknown(t *testing.T) {
	svc := NewService(&fakeReservationRepo{}, &fakeRoomRepo{err: roomRepo.ErrRoomNotFound}, nopLogger{})

	result, err := svc.Search(context.Background(), dt(t, "2025-07-01 18:00:00"), "Ghost Hall")

	require.NoError(t, err)
	assert.Equal(t, domain.SearchRoomUnknown, result.Outcome)
	assert.Empty(t, result.Reservations)
}

func TestSearch_Empty(t *testing.T) {
	svc := NewService(&fakeReservationRepo{exists: false}, &fakeRoomRepo{}, nopLogger{})

	result, err := svc.Search(context.Background(), dt(t, "2025-07-01 18:00:00"), "Sakura")

	require.NoError(t, err)
	assert.Equal(t, domain.SearchEmpty, result.Outcome)
	assert.Empty(t, result.Reservations)
}

func TestSearch_Found(t *testing.T) {
	repo := &fakeReservationRepo{
		exists: true,
		found:  []*domain.Reservation{sampleReservation(t)},
	}
	svc := NewService(repo, &fakeRoomRepo{}, nopLogger{})

	result, err := svc.Search(context.Background(), dt(t, "2025-07-01 18:00:00"), "Sakura")

	require.NoError(t, err)
	assert.Equal(t, domain.SearchFound, result.Outcome)
	require.Len(t, result.Reservations, 1)
	assert.Equal(t, "2025-07-01 18:00:00", result.Reservations[0].DateAndTime)
	assert.Equal(t, "Tanaka", result.Reservations[0].Diner)
}

func TestSearch_InfraFault(t *testing.T) {
	svc := NewService(&fakeReservationRepo{existsErr: errors.New("connection refused")}, &fakeRoomRepo{}, nopLogger{})

	_, err := svc.Search(context.Background(), dt(t, "2025-07-01 18:00:00"), "Sakura")

	assert.ErrorIs(t, err, ErrInternal)
}

func TestCancel_Success(t *testing.T) {
	repo := &fakeReservationRepo{}
	svc := NewService(repo, &fakeRoomRepo{}, nopLogger{})

	err := svc.Cancel(context.Background(), dt(t, "2025-07-01 18:00:00"), "Sakura")

	require.NoError(t, err)
	assert.Equal(t, 1, repo.deleteCalls)
}

func TestCancel_NotFound(t *testing.T) {
	repo := &fakeReservationRepo{deleteErr: reservationRepo.ErrReservationNotFound}
	svc := NewService(repo, &fakeRoomRepo{}, nopLogger{})

	// Отмена несуществующей брони идемпотентна
	for i := 0; i < 3; i++ {
		err := svc.Cancel(context.Background(), dt(t, "2025-07-01 18:00:00"), "Sakura")
		assert.ErrorIs(t, err, ErrReservationNotFound)
	}
}

func TestCancel_InfraFault(t *testing.T) {
	repo := &fakeReservationRepo{deleteErr: errors.New("connection refused")}
	svc := NewService(repo, &fakeRoomRepo{}, nopLogger{})

	err := svc.Cancel(context.Background(), dt(t, "2025-07-01 18:00:00"), "Sakura")

	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrReservationNotFound)
}

func TestList(t *testing.T) {
	repo := &fakeReservationRepo{list: []*domain.Reservation{sampleReservation(t)}}
	svc := NewService(repo, &fakeRoomRepo{}, nopLogger{})

	resp, err := svc.List(context.Background(), domain.ReservationsFilter{})

	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, "Sakura", resp.Reservations[0].Room)
}
