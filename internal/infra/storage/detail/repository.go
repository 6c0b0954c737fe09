package detail

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

var detailColumns = []string{
	"date_and_time",
	"room",
	"diner",
	"phone",
	"class_name",
	"party_size",
	"staff",
	"allergy",
	"bill",
}

// Repository репозиторий для работы с отчётными представлениями
// (all_details и total_revenue_by_class)
//
// Запросы пересечений тоже идут через all_details: представление собирается
// из живых броней, поэтому отменённая бронь в него не попадает
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория представлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все строки представления all_details
func (r *Repository) List(ctx context.Context) ([]*domain.ReservationDetail, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(detailColumns...).
		From("all_details").
		OrderBy("date_and_time ASC, room ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanDetails(rows)
}

// FindByDateAndRoom возвращает строки представления на точное время и зал
func (r *Repository) FindByDateAndRoom(ctx context.Context, dtime types.DateTime, roomName string) ([]*domain.ReservationDetail, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(detailColumns...).
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

	return r.scanDetails(rows)
}

// FindRoomOverlaps возвращает брони зала, чьи 90-минутные окна пересекают window
// Полуоткрытый тест: s1 < e2 AND s2 < e1, границы не считаются пересечением
func (r *Repository) FindRoomOverlaps(ctx context.Context, roomName string, window domain.ServiceWindow) ([]*domain.ReservationDetail, error) {
	return r.findOverlaps(ctx, "FindRoomOverlaps", squirrel.Eq{"room": roomName}, window)
}

// FindDinerOverlaps возвращает брони гостя, чьи 90-минутные окна пересекают window
func (r *Repository) FindDinerOverlaps(ctx context.Context, dinerName string, window domain.ServiceWindow) ([]*domain.ReservationDetail, error) {
	return r.findOverlaps(ctx, "FindDinerOverlaps", squirrel.Eq{"diner": dinerName}, window)
}

func (r *Repository) findOverlaps(ctx context.Context, op string, keyCond squirrel.Eq, window domain.ServiceWindow) ([]*domain.ReservationDetail, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	durationMinutes := int(domain.ServiceDuration.Minutes())

	query, args, err := psqlbuilder.Select(detailColumns...).
		From("all_details").
		Where(keyCond).
		Where(squirrel.Lt{"date_and_time": window.End()}).
		Where(squirrel.Expr("date_and_time + make_interval(mins => ?) > ?", durationMinutes, window.Start)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	return r.scanDetails(rows)
}

// ListRevenue возвращает строки представления total_revenue_by_class
func (r *Repository) ListRevenue(ctx context.Context) ([]*domain.ClassRevenue, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("class_name", "total_revenue").
		From("total_revenue_by_class").
		OrderBy("class_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRevenue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRevenue - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	revenues := make([]*domain.ClassRevenue, 0)
	for rows.Next() {
		var rev domain.ClassRevenue
		if err := rows.Scan(&rev.ClassName, &rev.TotalRevenue); err != nil {
			return nil, fmt.Errorf("%w: ListRevenue - scan row: %v", ErrScanRow, err)
		}
		revenues = append(revenues, &rev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRevenue - rows error: %v", ErrScanRow, err)
	}

	return revenues, nil
}

// scanDetails сканирует результаты запроса в слайс строк представления
func (r *Repository) scanDetails(rows *sql.Rows) ([]*domain.ReservationDetail, error) {
	details := make([]*domain.ReservationDetail, 0)

	for rows.Next() {
		var d domain.ReservationDetail

		err := rows.Scan(
			&d.DateAndTime,
			&d.Room,
			&d.Diner,
			&d.Phone,
			&d.ClassName,
			&d.PartySize,
			&d.Staff,
			&d.Allergy,
			&d.Bill,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanDetails - scan row: %v", ErrScanRow, err)
		}

		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanDetails - rows error: %v", ErrScanRow, err)
	}

	return details, nil
}
