package domain

import "time"

// PendingDeletion binds a delete confirmation prompt to the record it showed.
// Token is the record id and the only value a confirm action may carry.
type PendingDeletion struct {
	Token    RecordID
	Snapshot Record
	IssuedAt time.Time
}
