package visit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/VetClinic-VisitService/internal/domain"
	"github.com/m04kA/VetClinic-VisitService/pkg/dbmetrics"
	"github.com/m04kA/VetClinic-VisitService/pkg/psqlbuilder"
)

// visitColumns колонки таблицы visits в порядке сканирования
var visitColumns = []string{
	"id",
	"vet_id",
	"pet_id",
	"treatment_room_id",
	"start_date_time",
	"duration_minutes",
	"price",
	"visit_type",
	"operation_type",
	"description",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с визитами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория визитов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый визит
// Если в контексте передана активная транзакция (через context.Value), использует её.
// При создании через usecase бронирования вызывается внутри SERIALIZABLE транзакции,
// чтобы проверка доступности и запись выполнялись атомарно.
func (r *Repository) Create(ctx context.Context, visit *domain.Visit) (*domain.Visit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("visits").
		Columns(
			"vet_id",
			"pet_id",
			"treatment_room_id",
			"start_date_time",
			"duration_minutes",
			"price",
			"visit_type",
			"operation_type",
			"description",
			"status",
		).
		Values(
			visit.VetID,
			visit.PetID,
			visit.TreatmentRoomID,
			visit.StartDateTime,
			visit.DurationMinutes,
			visit.Price,
			visit.VisitType,
			visit.OperationType,
			visit.Description,
			visit.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&visit.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	visit.CreatedAt = createdAt.Time
	visit.UpdatedAt = updatedAt.Time

	return visit, nil
}

// GetByID получает визит по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Visit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(visitColumns...).
		From("visits").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	visit, err := scanVisitRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrVisitNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan visit: %v", ErrScanRow, err)
	}

	return visit, nil
}

// List получает визиты с фильтрацией
// Фильтр по интервалу использует полуоткрытое пересечение [From, To):
// визит попадает в выборку, если start < To и start + duration > From.
// Соприкасающиеся границами интервалы пересечением не считаются.
//
// Внутри транзакции при заданном интервале добавляет FOR UPDATE - так
// usecase создания визита блокирует конкурирующие бронирования на тот же интервал.
func (r *Repository) List(ctx context.Context, filter domain.VisitsFilter) ([]*domain.Visit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(visitColumns...).
		From("visits")

	// Фильтрация по ветеринарам (если указаны)
	if len(filter.VetIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"vet_id": filter.VetIDs})
	}

	// Фильтрация по пересечению с интервалом
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_date_time": *filter.To})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(
			squirrel.Expr("start_date_time + make_interval(mins => duration_minutes) > ?", *filter.From),
		)
	}

	// Отменённые визиты не занимают время, по умолчанию исключаем
	if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.StatusCancelled)})
	}

	selectBuilder = selectBuilder.OrderBy("start_date_time ASC", "vet_id ASC", "id ASC")

	// Блокировка строк для usecase создания визита
	if dbmetrics.IsInTransaction(ctx) && filter.From != nil && filter.To != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
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

	return scanVisits(rows)
}

// Finalize переводит визит в терминальный статус и обновляет описание
// Guard по status = scheduled: при конкурирующей финализации выигрывает
// только одна, вторая получает ErrVisitNotFound от rowsAffected = 0
func (r *Repository) Finalize(ctx context.Context, id int64, status domain.VisitStatus, description *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("visits").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": string(domain.StatusScheduled)})

	if description != nil {
		updateBuilder = updateBuilder.Set("description", *description)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Finalize - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Finalize - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Finalize - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVisitNotFound
	}

	return nil
}

// Delete удаляет визит
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("visits").
		Where(squirrel.Eq{"id": id}).
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
		return ErrVisitNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanVisitRow сканирует одну строку в визит
func scanVisitRow(row rowScanner) (*domain.Visit, error) {
	var visit domain.Visit
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&visit.ID,
		&visit.VetID,
		&visit.PetID,
		&visit.TreatmentRoomID,
		&visit.StartDateTime,
		&visit.DurationMinutes,
		&visit.Price,
		&visit.VisitType,
		&visit.OperationType,
		&visit.Description,
		&visit.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	visit.CreatedAt = createdAt.Time
	visit.UpdatedAt = updatedAt.Time

	return &visit, nil
}

// scanVisits сканирует результаты запроса в слайс визитов
func scanVisits(rows *sql.Rows) ([]*domain.Visit, error) {
	visits := make([]*domain.Visit, 0)

	for rows.Next() {
		visit, err := scanVisitRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanVisits - scan row: %v", ErrScanRow, err)
		}
		visits = append(visits, visit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanVisits - rows error: %v", ErrScanRow, err)
	}

	return visits, nil
}
