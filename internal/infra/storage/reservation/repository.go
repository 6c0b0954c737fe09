package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Колонки плоского представления, в том порядке, в котором их ждёт scanReservations
var viewColumns = []string{
	"date_and_time",
	"room",
	"diner",
	"party_size",
}

// Repository репозиторий для работы с бронями
// Брони идентифицируются парой (date_and_time, room); суррогатного ID нет
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create вставляет новую бронь
// Проверки существования и пересечений выполняются выше, в usecase, внутри
// сериализуемой транзакции; нарушение уникального ключа здесь - сбой
func (r *Repository) Create(ctx context.Context, dtime types.DateTime, roomID, dinerID int64, partySize int) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"date_and_time",
			"room_id",
			"diner_id",
			"party_size",
		).
		Values(
			dtime,
			roomID,
			dinerID,
			partySize,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Exists проверяет, есть ли бронь на указанные время и зал
func (r *Repository) Exists(ctx context.Context, dtime types.DateTime, roomName string) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("reservations r").
		Join("rooms rm ON rm.id = r.room_id").
		Where(squirrel.Eq{"r.date_and_time": dtime}).
		Where(squirrel.Eq{"rm.name": roomName}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// List возвращает брони с опциональной фильтрацией по залу и гостю
func (r *Repository) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(viewColumns...).
		From("all_details").
		OrderBy("date_and_time ASC, room ASC")

	if filter.Room != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room": *filter.Room})
	}
	if filter.Diner != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"diner": *filter.Diner})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// FindByDateAndRoom возвращает брони на точное время и зал
func (r *Repository) FindByDateAndRoom(ctx context.Context, dtime types.DateTime, roomName string) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(viewColumns...).
		From("all_details").
		Where(squirrel.Eq{"date_and_time": dtime}).
		Where(squirrel.Eq{"room": roomName}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByDateAndRoom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByDateAndRoom - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// FindByRoomBetween возвращает брони зала в интервале [from, to)
// Используется для построения списка доступных слотов на день
func (r *Repository) FindByRoomBetween(ctx context.Context, roomName string, from, to time.Time) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(viewColumns...).
		From("all_details").
		Where(squirrel.Eq{"room": roomName}).
		Where(squirrel.GtOrEq{"date_and_time": from}).
		Where(squirrel.Lt{"date_and_time": to}).
		OrderBy("date_and_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByRoomBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByRoomBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// Delete удаляет бронь по времени и залу (физическое удаление)
// Модель отмены - cancel + re-add, поэтому история не хранится
func (r *Repository) Delete(ctx context.Context, dtime types.DateTime, roomName string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"date_and_time": dtime}).
		Where(squirrel.Expr("room_id = (SELECT id FROM rooms WHERE name = ?)", roomName)).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// scanReservations сканирует результаты запроса в слайс броней
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation

		err := rows.Scan(
			&res.DateAndTime,
			&res.Room,
			&res.Diner,
			&res.PartySize,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
