package model

import "time"

// DueDateLog status constants
const (
	DueDateLogPending  = "pending"
	DueDateLogApproved = "approved"
	DueDateLogRejected = "rejected"
)

// DueDateLog is an extension request for an action's due date. Only an
// approved log rewrites the referenced action's due date; pending and
// rejected logs never touch it.
type DueDateLog struct {
	ID          string    `json:"id"`
	ActionID    string    `json:"action_id"`
	OldDate     time.Time `json:"old_date"`
	NewDate     time.Time `json:"new_date"`
	Reason      string    `json:"reason"`
	RequestedBy string    `json:"requested_by"`
	ApprovedBy  string    `json:"approved_by,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
