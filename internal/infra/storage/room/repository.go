package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

// Repository репозиторий для работы с залами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория залов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ResolveID возвращает ID зала по имени
// Отсутствие зала - ожидаемый результат (ErrRoomNotFound), а не сбой:
// ошибки инфраструктуры оборачиваются отдельными сентинелами
func (r *Repository) ResolveID(ctx context.Context, name string) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("rooms").
		Where(squirrel.Eq{"name": name}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: ResolveID - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrRoomNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: ResolveID - scan room id: %v", ErrScanRow, err)
	}

	return id, nil
}
