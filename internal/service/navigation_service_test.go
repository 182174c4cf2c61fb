package service

import (
	"testing"

	"cartool/internal/model"
)

func TestMenu(t *testing.T) {
	svc := NewNavigationService()

	tests := []struct {
		role string
		ids  []string
	}{
		{model.RoleLeadAuditor, []string{"dashboard", "audit-plans", "audit-reports", "car-forms", "actions", "timeline", "due-date-logs", "analytics"}},
		{model.RoleAuditor, []string{"dashboard", "audit-reports", "car-forms", "actions", "timeline"}},
		{model.RoleAuditee, []string{"dashboard", "my-actions", "assigned-findings", "timeline"}},
		{model.RoleAPManager, []string{"dashboard", "audit-reports", "car-forms", "analytics", "reports-summary"}},
		{model.RoleExecutive, []string{"dashboard", "reports-summary", "analytics"}},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			menu := svc.Menu(tt.role)
			if len(menu) != len(tt.ids) {
				t.Fatalf("got %d items, want %d", len(menu), len(tt.ids))
			}
			for i, id := range tt.ids {
				if menu[i].ID != id {
					t.Errorf("item %d = %q, want %q", i, menu[i].ID, id)
				}
			}
			if menu[0].ID != InitialView {
				t.Errorf("menu must start at %q, got %q", InitialView, menu[0].ID)
			}
		})
	}
}

func TestMenuUnknownRole(t *testing.T) {
	svc := NewNavigationService()

	menu := svc.Menu("intern")
	if len(menu) != 1 || menu[0].ID != InitialView {
		t.Errorf("unknown role menu = %v, want just the dashboard", menu)
	}
}

func TestMenuLabels(t *testing.T) {
	svc := NewNavigationService()

	// The auditee's timeline and the executive's summary carry their own labels
	auditee := svc.Menu(model.RoleAuditee)
	if got := auditee[len(auditee)-1].Label; got != "My Timeline" {
		t.Errorf("auditee timeline label = %q, want My Timeline", got)
	}
	exec := svc.Menu(model.RoleExecutive)
	if got := exec[1].Label; got != "Executive Summary" {
		t.Errorf("executive summary label = %q, want Executive Summary", got)
	}
}

func TestCanOpen(t *testing.T) {
	svc := NewNavigationService()

	tests := []struct {
		name string
		role string
		view string
		want bool
	}{
		{"lead opens due date logs", model.RoleLeadAuditor, "due-date-logs", true},
		{"lead opens analytics", model.RoleLeadAuditor, "analytics", true},
		{"auditor cannot open analytics", model.RoleAuditor, "analytics", false},
		{"auditor opens timeline", model.RoleAuditor, "timeline", true},
		{"auditee opens own actions", model.RoleAuditee, "my-actions", true},
		{"auditee cannot open due date logs view", model.RoleAuditee, "due-date-logs", false},
		{"executive opens summary", model.RoleExecutive, "reports-summary", true},
		{"executive cannot open audit plans", model.RoleExecutive, "audit-plans", false},
		{"ap_manager opens analytics", model.RoleAPManager, "analytics", true},
		{"unknown view", model.RoleLeadAuditor, "settings", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.CanOpen(tt.role, tt.view); got != tt.want {
				t.Errorf("CanOpen(%q, %q) = %v, want %v", tt.role, tt.view, got, tt.want)
			}
		})
	}
}
