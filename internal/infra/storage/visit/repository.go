package visit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/sgasoft/SGA-VisitService/internal/domain"
	"github.com/sgasoft/SGA-VisitService/pkg/dbmetrics"
	"github.com/sgasoft/SGA-VisitService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с визитами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория визитов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый визит
// Если в контексте есть активная транзакция, использует её
// Создание визита всегда должно выполняться в одной транзакции
// с проверкой пересечений расписания агента (см. usecase create_visit)
func (r *Repository) Create(ctx context.Context, v *domain.Visit) (*domain.Visit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("visits").
		Columns(
			"property_id",
			"agent_id",
			"customer_id",
			"slot_id",
			"start_at",
			"end_at",
			"state",
			"notes",
		).
		Values(
			v.PropertyID,
			v.AgentID,
			v.CustomerID,
			v.SlotID,
			v.StartAt,
			v.EndAt,
			v.State,
			v.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return v, nil
}

// GetByID получает визит по ID
// Внутри транзакции блокирует строку (FOR UPDATE) - используется
// back-office операциями перед изменением состояния
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Visit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(visitColumns()...).
		From("visits").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var v domain.Visit
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(scanDest(&v, &createdAt, &updatedAt)...)

	if err == sql.ErrNoRows {
		return nil, ErrVisitNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan visit: %v", ErrScanRow, err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return &v, nil
}

// ListOverlappingByAgent получает визиты агента в указанных состояниях,
// пересекающиеся с интервалом [startAt, endAt)
// Пересечение проверяется полуоткрытым сравнением:
// existing.start_at < endAt AND existing.end_at > startAt
//
// Внутри транзакции блокирует строки (FOR UPDATE) - вместе с
// сериализуемой изоляцией это не дает двум конкурирующим заявкам
// пройти проверку пересечения одновременно
func (r *Repository) ListOverlappingByAgent(
	ctx context.Context,
	agentID int64,
	startAt, endAt time.Time,
	states []domain.VisitState,
) ([]*domain.Visit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	stateStrings := make([]string, len(states))
	for i, s := range states {
		stateStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(visitColumns()...).
		From("visits").
		Where(squirrel.Eq{"agent_id": agentID}).
		Where(squirrel.Eq{"state": stateStrings}).
		Where(squirrel.Lt{"start_at": endAt}).
		Where(squirrel.Gt{"end_at": startAt}).
		OrderBy("start_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlappingByAgent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlappingByAgent - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanVisits(rows)
}

// ListByProperty получает историю визитов недвижимости (сначала новые)
func (r *Repository) ListByProperty(ctx context.Context, propertyID int64) ([]*domain.Visit, error) {
	return r.list(ctx, squirrel.Eq{"property_id": propertyID})
}

// ListByAgent получает визиты агента (сначала новые)
// Опционально фильтрует по состоянию
func (r *Repository) ListByAgent(ctx context.Context, agentID int64, state *domain.VisitState) ([]*domain.Visit, error) {
	where := squirrel.And{squirrel.Eq{"agent_id": agentID}}
	if state != nil {
		where = append(where, squirrel.Eq{"state": *state})
	}
	return r.list(ctx, where)
}

// ListByCustomer получает визиты клиента (сначала новые)
func (r *Repository) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Visit, error) {
	return r.list(ctx, squirrel.Eq{"customer_id": customerID})
}

func (r *Repository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Visit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(visitColumns()...).
		From("visits").
		Where(where).
		OrderBy("start_at DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanVisits(rows)
}

// UpdateStatus обновляет состояние визита
func (r *Repository) UpdateStatus(ctx context.Context, id int64, state domain.VisitState) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("visits").
		Set("state", state).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVisitNotFound
	}

	return nil
}

func visitColumns() []string {
	return []string{
		"id",
		"property_id",
		"agent_id",
		"customer_id",
		"slot_id",
		"start_at",
		"end_at",
		"state",
		"notes",
		"created_at",
		"updated_at",
	}
}

func scanDest(v *domain.Visit, createdAt, updatedAt *sql.NullTime) []interface{} {
	return []interface{}{
		&v.ID,
		&v.PropertyID,
		&v.AgentID,
		&v.CustomerID,
		&v.SlotID,
		&v.StartAt,
		&v.EndAt,
		&v.State,
		&v.Notes,
		createdAt,
		updatedAt,
	}
}

// scanVisits сканирует результаты запроса в слайс визитов
func (r *Repository) scanVisits(rows *sql.Rows) ([]*domain.Visit, error) {
	visits := make([]*domain.Visit, 0)

	for rows.Next() {
		var v domain.Visit
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(scanDest(&v, &createdAt, &updatedAt)...); err != nil {
			return nil, fmt.Errorf("%w: scanVisits - scan row: %v", ErrScanRow, err)
		}

		v.CreatedAt = createdAt.Time
		v.UpdatedAt = updatedAt.Time

		visits = append(visits, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanVisits - rows error: %v", ErrScanRow, err)
	}

	return visits, nil
}
