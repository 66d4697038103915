package create_visit

import (
	"time"

	"github.com/sgasoft/SGA-VisitService/pkg/types"
)

// CustomerInput контактные данные анонимного посетителя портала
// ContactService находит или создает контакт по этим данным
type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

// Request модель заявки на визит
// Времена передаются как локальное время суток (HH:MM) в таймзоне
// сессии; usecase сам приводит их к UTC перед хранением и проверками
type Request struct {
	PropertyID int64
	SlotID     int64
	AgentID    int64          // 0 = взять агента из слота
	CustomerID int64          // 0 = анонимная заявка, см. Customer
	Customer   *CustomerInput // обязателен при CustomerID == 0
	Timezone   string         // таймзона сессии, "" = таймзона по умолчанию
	StartTime  types.TimeString
	EndTime    types.TimeString // пусто = предложить начало + 1 час, не выходя за слот
	Notes      *string
}

// Response модель созданного визита
type Response struct {
	ID         int64
	PropertyID int64
	AgentID    int64
	CustomerID int64
	SlotID     int64

	StartAt time.Time // UTC
	EndAt   time.Time // UTC

	// Локальное представление для отображения в сессии пользователя
	LocalDate      string // YYYY-MM-DD
	LocalStartTime types.TimeString
	LocalEndTime   types.TimeString
	Timezone       string

	State string
	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
