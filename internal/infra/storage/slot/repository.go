package slot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/sgasoft/SGA-VisitService/internal/domain"
	"github.com/sgasoft/SGA-VisitService/pkg/dbmetrics"
	"github.com/sgasoft/SGA-VisitService/pkg/psqlbuilder"
)

// Repository репозиторий для работы со слотами доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый слот
// Если в контексте есть активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, s *domain.VisitSlot) (*domain.VisitSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("visit_slots").
		Columns(
			"agent_id",
			"property_id",
			"start_at",
			"end_at",
			"state",
		).
		Values(
			s.AgentID,
			s.PropertyID,
			s.StartAt,
			s.EndAt,
			s.State,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает слот по ID
// Внутри транзакции блокирует строку (FOR UPDATE) - используется
// при подтверждении визита для атомарного разбиения слота
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.VisitSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"agent_id",
		"property_id",
		"start_at",
		"end_at",
		"state",
		"created_at",
		"updated_at",
	).
		From("visit_slots").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.VisitSlot
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.AgentID,
		&s.PropertyID,
		&s.StartAt,
		&s.EndAt,
		&s.State,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// ListAvailableByProperty получает доступные слоты недвижимости,
// отсортированные по времени начала (ASC)
// Используется порталом при записи на визит
func (r *Repository) ListAvailableByProperty(ctx context.Context, propertyID int64) ([]*domain.VisitSlot, error) {
	return r.list(ctx, squirrel.And{
		squirrel.Eq{"property_id": propertyID},
		squirrel.Eq{"state": domain.SlotAvailable},
	})
}

// ListByProperty получает все слоты недвижимости независимо от состояния
func (r *Repository) ListByProperty(ctx context.Context, propertyID int64) ([]*domain.VisitSlot, error) {
	return r.list(ctx, squirrel.Eq{"property_id": propertyID})
}

// ListByAgent получает все слоты агента
func (r *Repository) ListByAgent(ctx context.Context, agentID int64) ([]*domain.VisitSlot, error) {
	return r.list(ctx, squirrel.Eq{"agent_id": agentID})
}

func (r *Repository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.VisitSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"agent_id",
		"property_id",
		"start_at",
		"end_at",
		"state",
		"created_at",
		"updated_at",
	).
		From("visit_slots").
		Where(where).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// UpdateState обновляет состояние слота без проверки предыдущего состояния
// Используется для ручного блокирования/разблокирования слота
func (r *Repository) UpdateState(ctx context.Context, id int64, state domain.SlotState) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("visit_slots").
		Set("state", state).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateState - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateState - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateState - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// UpdateStateFrom выполняет compare-and-set перехода состояния:
// обновляет состояние только если текущее входит в список from
// Возвращает ErrStateConflict, если слот уже ушел в другое состояние
// (конкурирующее подтверждение успело раньше)
func (r *Repository) UpdateStateFrom(ctx context.Context, id int64, from []domain.SlotState, to domain.SlotState) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	fromStrings := make([]string, len(from))
	for i, s := range from {
		fromStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Update("visit_slots").
		Set("state", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"state": fromStrings}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStateFrom - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStateFrom - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStateFrom - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStateConflict
	}

	return nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.VisitSlot, error) {
	slots := make([]*domain.VisitSlot, 0)

	for rows.Next() {
		var s domain.VisitSlot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.AgentID,
			&s.PropertyID,
			&s.StartAt,
			&s.EndAt,
			&s.State,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time

		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
