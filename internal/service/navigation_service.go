package service

import (
	"cartool/internal/model"
	"cartool/internal/policy"
)

// InitialView is where every role lands after login
const InitialView = "dashboard"

// MenuItem is one entry in a role's ordered navigation menu
type MenuItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// menusByRole maps each role to its ordered view list. Built once; the
// order is part of the contract with the presentation layer.
var menusByRole = map[string][]MenuItem{
	model.RoleLeadAuditor: {
		{ID: "dashboard", Label: "Dashboard"},
		{ID: "audit-plans", Label: "Audit Plans"},
		{ID: "audit-reports", Label: "Audit Reports"},
		{ID: "car-forms", Label: "CAR Forms"},
		{ID: "actions", Label: "Actions"},
		{ID: "timeline", Label: "Timeline"},
		{ID: "due-date-logs", Label: "Due Date Logs"},
		{ID: "analytics", Label: "Analytics"},
	},
	model.RoleAuditor: {
		{ID: "dashboard", Label: "Dashboard"},
		{ID: "audit-reports", Label: "Audit Reports"},
		{ID: "car-forms", Label: "CAR Forms"},
		{ID: "actions", Label: "Actions"},
		{ID: "timeline", Label: "Timeline"},
	},
	model.RoleAuditee: {
		{ID: "dashboard", Label: "Dashboard"},
		{ID: "my-actions", Label: "My Actions"},
		{ID: "assigned-findings", Label: "Assigned Findings"},
		{ID: "timeline", Label: "My Timeline"},
	},
	model.RoleAPManager: {
		{ID: "dashboard", Label: "Dashboard"},
		{ID: "audit-reports", Label: "Audit Reports"},
		{ID: "car-forms", Label: "CAR Forms"},
		{ID: "analytics", Label: "Analytics"},
		{ID: "reports-summary", Label: "Reports Summary"},
	},
	model.RoleExecutive: {
		{ID: "dashboard", Label: "Dashboard"},
		{ID: "reports-summary", Label: "Executive Summary"},
		{ID: "analytics", Label: "Analytics"},
	},
}

// viewCapabilities maps views to the capability a role must hold before
// the view is offered. Views without an entry are open to any signed-in
// role.
var viewCapabilities = map[string]policy.Capability{
	"analytics":       policy.CapViewAnalytics,
	"reports-summary": policy.CapViewSummary,
	"due-date-logs":   policy.CapViewDueDates,
	"audit-plans":     policy.CapPlanCreate,
}

// NavigationService resolves a role's menu and gates individual views
type NavigationService interface {
	Menu(role string) []MenuItem
	CanOpen(role, viewID string) bool
}

type navigationService struct{}

// NewNavigationService returns a new instance of NavigationService
func NewNavigationService() NavigationService {
	return &navigationService{}
}

// Menu returns the ordered view list for the role. Unknown roles fall back
// to the dashboard alone.
func (s *navigationService) Menu(role string) []MenuItem {
	menu, ok := menusByRole[role]
	if !ok {
		return []MenuItem{{ID: InitialView, Label: "Dashboard"}}
	}
	out := make([]MenuItem, len(menu))
	copy(out, menu)
	return out
}

// CanOpen reports whether the role may open the view: it must appear in
// the role's menu and, for capability-gated views, the capability table
// must allow it
func (s *navigationService) CanOpen(role, viewID string) bool {
	inMenu := false
	for _, item := range s.Menu(role) {
		if item.ID == viewID {
			inMenu = true
			break
		}
	}
	if !inMenu {
		return false
	}
	if c, gated := viewCapabilities[viewID]; gated {
		return policy.Allows(role, c)
	}
	return true
}
