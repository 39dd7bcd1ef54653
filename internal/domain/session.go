package domain

import "time"

// ConversationID identifies one chat. Each chat owns at most one Session.
type ConversationID string

type State string

const (
	StateAwaitingDate     State = "awaiting_date"
	StateAwaitingType     State = "awaiting_type"
	StateAwaitingPrice    State = "awaiting_price"
	StateAwaitingLocation State = "awaiting_location"
	StateAwaitingRemarks  State = "awaiting_remarks"
	StateAwaitingMileage  State = "awaiting_mileage"
	StateComplete         State = "complete"
	StateCancelled        State = "cancelled"
)

var stateOrder = []State{
	StateAwaitingDate,
	StateAwaitingType,
	StateAwaitingPrice,
	StateAwaitingLocation,
	StateAwaitingRemarks,
	StateAwaitingMileage,
	StateComplete,
}

var stateFields = map[State]Field{
	StateAwaitingDate:     FieldDate,
	StateAwaitingType:     FieldMaintenanceType,
	StateAwaitingPrice:    FieldPrice,
	StateAwaitingLocation: FieldLocation,
	StateAwaitingRemarks:  FieldRemarks,
	StateAwaitingMileage:  FieldTotalMileage,
}

func (s State) Terminal() bool {
	return s == StateComplete || s == StateCancelled
}

// Field reports which record field an awaiting state collects.
func (s State) Field() (Field, bool) {
	field, ok := stateFields[s]
	return field, ok
}

// Next returns the state that follows s. Terminal and unknown states return themselves.
func (s State) Next() State {
	for i, state := range stateOrder[:len(stateOrder)-1] {
		if state == s {
			return stateOrder[i+1]
		}
	}
	return s
}

type Session struct {
	ConversationID ConversationID
	State          State
	Draft          Draft
	StartedAt      time.Time
}

func NewSession(id ConversationID, now time.Time) Session {
	return Session{
		ConversationID: id,
		State:          StateAwaitingDate,
		StartedAt:      now,
	}
}
