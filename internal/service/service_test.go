package service

import (
	"testing"

	"cartool/internal/model"
	"cartool/internal/policy"
	"cartool/internal/repository"
	"cartool/internal/store"
)

// Viewers matching the seeded demo identities
var (
	leadViewer    = policy.Viewer{ID: "1", Role: model.RoleLeadAuditor}
	auditorViewer = policy.Viewer{ID: "2", Role: model.RoleAuditor}
	auditeeViewer = policy.Viewer{ID: "3", Role: model.RoleAuditee}
	managerViewer = policy.Viewer{ID: "4", Role: model.RoleAPManager}
	execViewer    = policy.Viewer{ID: "5", Role: model.RoleExecutive}
)

type fixture struct {
	store   *store.Store
	users   repository.UserRepository
	plans   repository.PlanRepository
	reports repository.ReportRepository
	cars    repository.CARRepository
	actions repository.ActionRepository
	logs    repository.DueDateLogRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s, err := store.New()
	if err != nil {
		t.Fatalf("seeding store: %v", err)
	}
	return &fixture{
		store:   s,
		users:   repository.NewUserRepository(s),
		plans:   repository.NewPlanRepository(s),
		reports: repository.NewReportRepository(s),
		cars:    repository.NewCARRepository(s),
		actions: repository.NewActionRepository(s),
		logs:    repository.NewDueDateLogRepository(s),
	}
}
