package domain

import "time"

// SlotState represents the lifecycle state of an availability slot
type SlotState string

const (
	SlotAvailable SlotState = "available"
	SlotReserved  SlotState = "reserved"
	SlotBooked    SlotState = "booked"
	SlotBlocked   SlotState = "blocked"
)

// VisitSlot represents a contiguous block of time during which an agent
// is available to show a property. Instants are stored in UTC.
//
// A booked slot keeps its original bounds and acts as the permanent
// record of the booked span; leftover time is carved off into new
// available slots instead of shrinking the original.
type VisitSlot struct {
	ID         int64
	AgentID    int64
	PropertyID int64
	StartAt    time.Time
	EndAt      time.Time
	State      SlotState

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the slot's own interval invariant
func (s *VisitSlot) Validate() error {
	if !s.EndAt.After(s.StartAt) {
		return ErrSlotEndBeforeStart
	}
	return nil
}

// IsBookable returns true if a visit can still be placed against the slot
func (s *VisitSlot) IsBookable() bool {
	return s.State == SlotAvailable || s.State == SlotReserved
}

// Contains returns true if the [start, end] interval lies entirely
// within the slot's bounds
func (s *VisitSlot) Contains(start, end time.Time) bool {
	return !start.Before(s.StartAt) && !end.After(s.EndAt)
}

// BelongsTo returns true if the slot is owned by the given
// property/agent pair
func (s *VisitSlot) BelongsTo(propertyID, agentID int64) bool {
	return s.PropertyID == propertyID && s.AgentID == agentID
}

// SplitAround computes the leftover availability around a booked
// sub-interval: the part before the visit and the part after it.
// Either part may be nil when the visit touches the matching slot edge.
// The receiver is not modified.
func (s *VisitSlot) SplitAround(visitStart, visitEnd time.Time) (before, after *VisitSlot) {
	if visitStart.After(s.StartAt) {
		before = &VisitSlot{
			AgentID:    s.AgentID,
			PropertyID: s.PropertyID,
			StartAt:    s.StartAt,
			EndAt:      visitStart,
			State:      SlotAvailable,
		}
	}
	if visitEnd.Before(s.EndAt) {
		after = &VisitSlot{
			AgentID:    s.AgentID,
			PropertyID: s.PropertyID,
			StartAt:    visitEnd,
			EndAt:      s.EndAt,
			State:      SlotAvailable,
		}
	}
	return before, after
}
