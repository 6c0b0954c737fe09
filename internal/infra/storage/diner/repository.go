package diner

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

// Repository репозиторий для работы с гостями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория гостей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ResolveID возвращает ID гостя по имени
// Отсутствие гостя - ожидаемый результат (ErrDinerNotFound), а не сбой
func (r *Repository) ResolveID(ctx context.Context, name string) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("diners").
		Where(squirrel.Eq{"name": name}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: ResolveID - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrDinerNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: ResolveID - scan diner id: %v", ErrScanRow, err)
	}

	return id, nil
}
