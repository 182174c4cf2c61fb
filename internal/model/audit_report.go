package model

import "time"

// AuditReport status constants: draft -> submitted -> approved
const (
	ReportStatusDraft     = "draft"
	ReportStatusSubmitted = "submitted"
	ReportStatusApproved  = "approved"
)

// AuditReport records the findings of an executed audit plan.
// Invariant: ApprovedBy is set if and only if Status is approved.
type AuditReport struct {
	ID         string    `json:"id"`
	PlanID     string    `json:"plan_id"`
	Title      string    `json:"title"`
	Findings   string    `json:"findings"`
	Status     string    `json:"status"`
	CreatedBy  string    `json:"created_by"`
	ApprovedBy string    `json:"approved_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
