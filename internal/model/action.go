package model

import "time"

// Action status constants:
// for_execution -> for_verification -> passed | failed
const (
	ActionStatusForExecution    = "for_execution"
	ActionStatusForVerification = "for_verification"
	ActionStatusPassed          = "passed"
	ActionStatusFailed          = "failed"
)

// Action is a remediation step declared by an auditee against a CAR form.
// OriginalDueDate is fixed at creation; DueDate only moves through an
// approved DueDateLog.
type Action struct {
	ID              string     `json:"id"`
	CARID           string     `json:"car_id"`
	Description     string     `json:"description"`
	Evidence        string     `json:"evidence,omitempty"` // opaque reference, no file storage
	Status          string     `json:"status"`
	AssignedTo      string     `json:"assigned_to"`
	DueDate         time.Time  `json:"due_date"`
	OriginalDueDate time.Time  `json:"original_due_date"`
	CompletedDate   *time.Time `json:"completed_date,omitempty"`
	VerifiedBy      string     `json:"verified_by,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Extended reports whether the action's due date was moved by an approved
// extension request
func (a *Action) Extended() bool {
	return !a.DueDate.Equal(a.OriginalDueDate)
}
