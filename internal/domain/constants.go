package domain

import "errors"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultVisitDurationMinutes proposed visit length when the caller
// omits an end time; clamped to the slot end
const DefaultVisitDurationMinutes = 60

// MaxNotesLength limit for free-text notes on a visit
const MaxNotesLength = 500

// Domain invariant errors
var (
	// ErrSlotEndBeforeStart slot interval is empty or inverted
	ErrSlotEndBeforeStart = errors.New("slot end must be after start")

	// ErrVisitEndBeforeStart visit interval is empty or inverted
	ErrVisitEndBeforeStart = errors.New("visit end must be after start")
)

// BlockingVisitStates are the visit states that occupy the agent's time
// for the overlap rule
var BlockingVisitStates = []VisitState{
	VisitRequested,
	VisitConfirmed,
	VisitDone,
}

// BookableSlotStates are the slot states a visit can be placed against
var BookableSlotStates = []SlotState{
	SlotAvailable,
	SlotReserved,
}
