package model

// Maturity levels derived from the action completion rate
const (
	MaturityInitial    = "Initial"
	MaturityBasic      = "Basic"
	MaturityDeveloping = "Developing"
	MaturityAdvanced   = "Advanced"
)

// Analytics is a derived snapshot over the record collections. It is
// recomputed on every query and never stored as a source of truth.
type Analytics struct {
	TotalNCs         int            `json:"total_ncs"`
	TotalOFIs        int            `json:"total_ofis"`
	CompletedActions int            `json:"completed_actions"`
	OverdueActions   int            `json:"overdue_actions"`
	RepeatedNCs      int            `json:"repeated_ncs"`
	NCsByProcessArea map[string]int `json:"ncs_by_process_area"`
	NCsByClause      map[string]int `json:"ncs_by_clause"`
}

// DashboardStats aggregates the headline numbers shown on every role's
// dashboard
type DashboardStats struct {
	TotalCARs        int `json:"total_cars"`
	NCCount          int `json:"nc_count"`
	OFICount         int `json:"ofi_count"`
	OverdueActions   int `json:"overdue_actions"`
	CompletedActions int `json:"completed_actions"`
	PendingPlans     int `json:"pending_plans"`   // plans still in draft or sent
	CompletionRate   int `json:"completion_rate"` // rounded percentage, 0 when no actions
}

// AuditSummary is the executive overview: maturity plus the major/minor
// non-conformity split
type AuditSummary struct {
	MaturityLevel           string  `json:"maturity_level"`
	CompletionRate          float64 `json:"completion_rate"`
	MajorNCs                int     `json:"major_ncs"`
	MinorNCs                int     `json:"minor_ncs"`
	CompletedActions        int     `json:"completed_actions"`
	OverdueActions          int     `json:"overdue_actions"`
	VerificationSuccessRate string  `json:"verification_success_rate"` // percentage with one decimal
}
