package get_available_slots

import (
	"time"

	"github.com/sgasoft/SGA-VisitService/pkg/types"
)

// Request модель запроса доступных слотов недвижимости
type Request struct {
	PropertyID int64
	Timezone   string // таймзона сессии для отображения, "" = по умолчанию
}

// Slot доступный слот в ответе
// UTC-границы дополнены локальным представлением в таймзоне сессии
type Slot struct {
	ID      int64
	AgentID int64
	StartAt time.Time // UTC
	EndAt   time.Time // UTC

	LocalDate      string // YYYY-MM-DD
	LocalStartTime types.TimeString
	LocalEndTime   types.TimeString

	// Label человекочитаемое описание слота для списка на портале,
	// например "Агент 7 - 15/10/2025 10:00 → 12:00"
	Label string
}

// Response список доступных слотов, отсортированных по времени начала
type Response struct {
	PropertyID int64
	Timezone   string
	Slots      []Slot
}
