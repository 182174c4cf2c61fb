package model

import "time"

// CARForm finding types
const (
	CARTypeNC  = "NC"  // non-conformity
	CARTypeOFI = "OFI" // opportunity for improvement
)

// CARForm status constants:
// for_response -> for_approval -> for_verification -> passed | failed
const (
	CARStatusForResponse     = "for_response"
	CARStatusForApproval     = "for_approval"
	CARStatusForVerification = "for_verification"
	CARStatusPassed          = "passed"
	CARStatusFailed          = "failed"
)

// CARForm is a corrective action request raised against an audit report
// finding. RootCause and ImmediateCorrection only carry meaning for NC
// findings; OFI records leave them empty.
type CARForm struct {
	ID                  string    `json:"id"`
	ReportID            string    `json:"report_id"`
	Type                string    `json:"type"` // NC or OFI
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	ProcessArea         string    `json:"process_area"`
	Clause              string    `json:"clause"`
	RootCause           string    `json:"root_cause,omitempty"`
	ImmediateCorrection string    `json:"immediate_correction,omitempty"`
	Status              string    `json:"status"`
	AssignedTo          string    `json:"assigned_to"`
	DueDate             time.Time `json:"due_date"`
	CreatedBy           string    `json:"created_by"`
	ApprovedBy          string    `json:"approved_by,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}
