package model

import "time"

// AuditPlan status constants. Transitions are monotonic:
// draft -> sent -> accepted -> completed, no backward path.
const (
	PlanStatusDraft     = "draft"
	PlanStatusSent      = "sent"
	PlanStatusAccepted  = "accepted"
	PlanStatusCompleted = "completed"
)

// AuditPlan describes a scheduled audit engagement
type AuditPlan struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Scope         string    `json:"scope"`
	Criteria      string    `json:"criteria"`
	Objectives    string    `json:"objectives"`
	Auditees      []string  `json:"auditees"` // user ids of the audited parties
	ScheduledDate time.Time `json:"scheduled_date"`
	Status        string    `json:"status"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

// HasAuditee reports whether the given user id is listed on the plan
func (p *AuditPlan) HasAuditee(userID string) bool {
	for _, id := range p.Auditees {
		if id == userID {
			return true
		}
	}
	return false
}
