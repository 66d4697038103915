package domain

import "time"

// VisitState represents the lifecycle state of a visit
type VisitState string

const (
	VisitRequested VisitState = "requested"
	VisitConfirmed VisitState = "confirmed"
	VisitCancelled VisitState = "cancelled"
	VisitDone      VisitState = "done"
)

// Visit represents a customer viewing of a property within a
// sub-interval of an agent's availability slot.
//
// AgentID and PropertyID are copied from the slot at creation time so
// that later edits to the slot cannot silently change a confirmed
// visit's recorded bounds.
type Visit struct {
	ID         int64
	PropertyID int64
	AgentID    int64
	CustomerID int64
	SlotID     int64
	StartAt    time.Time
	EndAt      time.Time
	State      VisitState
	Notes      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlocksAgent returns true if the visit occupies the agent's time for
// the purpose of the overlap rule
func (v *Visit) BlocksAgent() bool {
	return v.State == VisitRequested || v.State == VisitConfirmed || v.State == VisitDone
}

// CanBeConfirmed returns true if the visit may transition to confirmed
func (v *Visit) CanBeConfirmed() bool {
	return v.State == VisitRequested
}

// CanBeCancelled returns true if the visit may transition to cancelled
func (v *Visit) CanBeCancelled() bool {
	return v.State == VisitRequested || v.State == VisitConfirmed
}

// CanBeMarkedDone returns true if the visit may transition to done
func (v *Visit) CanBeMarkedDone() bool {
	return v.State == VisitConfirmed
}

// IsTerminal returns true if no further transitions are allowed
func (v *Visit) IsTerminal() bool {
	return v.State == VisitCancelled || v.State == VisitDone
}

// ReleasedSlot builds the availability slot that cancelling the visit
// gives back to the agent: exactly the visit's own span, no merging
// with adjacent slots.
func (v *Visit) ReleasedSlot() *VisitSlot {
	return &VisitSlot{
		AgentID:    v.AgentID,
		PropertyID: v.PropertyID,
		StartAt:    v.StartAt,
		EndAt:      v.EndAt,
		State:      SlotAvailable,
	}
}
