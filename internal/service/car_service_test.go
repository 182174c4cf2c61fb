package service

import (
	"context"
	"testing"

	"cartool/internal/model"
	"cartool/pkg/apperr"
)

func newCARService(f *fixture) CARService {
	return NewCARService(f.cars, f.reports, f.users, nil)
}

func TestCreateCAR(t *testing.T) {
	f := newFixture(t)
	svc := newCARService(f)

	car, err := svc.CreateCAR(context.Background(), auditorViewer, CreateCARRequest{
		ReportID:    "1",
		Type:        model.CARTypeNC,
		Title:       "Unsigned training records",
		Description: "Operator training records missing supervisor sign-off",
		ProcessArea: "Competence",
		Clause:      "7.2",
		RootCause:   "No sign-off step in the onboarding checklist",
		AssignedTo:  "3",
		DueDate:     "2024-04-30",
	})
	if err != nil {
		t.Fatalf("CreateCAR: %v", err)
	}
	if car.Status != model.CARStatusForResponse {
		t.Errorf("status = %q, want for_response", car.Status)
	}
	if car.CreatedBy != "2" {
		t.Errorf("created_by = %q, want 2", car.CreatedBy)
	}
}

func TestCreateCARValidation(t *testing.T) {
	f := newFixture(t)
	svc := newCARService(f)
	ctx := context.Background()

	base := CreateCARRequest{
		ReportID: "1", Type: model.CARTypeOFI, Title: "t", Description: "d",
		ProcessArea: "p", Clause: "9.1", AssignedTo: "3", DueDate: "2024-04-30",
	}

	// Root cause analysis belongs to NCs only
	bad := base
	bad.RootCause = "some cause"
	if _, err := svc.CreateCAR(ctx, auditorViewer, bad); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("OFI with root cause: got %v, want validation error", err)
	}

	bad = base
	bad.AssignedTo = "99"
	if _, err := svc.CreateCAR(ctx, auditorViewer, bad); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("unknown assignee: got %v, want validation error", err)
	}

	bad = base
	bad.ReportID = "99"
	if _, err := svc.CreateCAR(ctx, auditorViewer, bad); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("unknown report: got %v, want not found", err)
	}

	if _, err := svc.CreateCAR(ctx, auditeeViewer, base); apperr.KindOf(err) != apperr.KindPermissionDenied {
		t.Errorf("auditee creating: got %v, want permission denied", err)
	}
}

func TestListCARsScoping(t *testing.T) {
	f := newFixture(t)
	svc := newCARService(f)
	ctx := context.Background()

	all, err := svc.ListCARs(ctx, leadViewer, CARFilter{})
	if err != nil {
		t.Fatalf("ListCARs: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("lead sees %d forms, want 3", len(all))
	}

	// Auditee 3 is assigned forms 1 and 3 only
	mine, err := svc.ListCARs(ctx, auditeeViewer, CARFilter{})
	if err != nil {
		t.Fatalf("ListCARs: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("auditee sees %d forms, want 2", len(mine))
	}
	for _, car := range mine {
		if car.AssignedTo != "3" {
			t.Errorf("auditee saw form %s assigned to %s", car.ID, car.AssignedTo)
		}
	}
}

func TestListCARsFilter(t *testing.T) {
	f := newFixture(t)
	svc := newCARService(f)
	ctx := context.Background()

	ncs, err := svc.ListCARs(ctx, leadViewer, CARFilter{Type: model.CARTypeNC})
	if err != nil {
		t.Fatalf("ListCARs: %v", err)
	}
	if len(ncs) != 2 {
		t.Errorf("NC filter: got %d, want 2", len(ncs))
	}

	passed, err := svc.ListCARs(ctx, leadViewer, CARFilter{Status: model.CARStatusPassed})
	if err != nil {
		t.Fatalf("ListCARs: %v", err)
	}
	if len(passed) != 1 || passed[0].ID != "3" {
		t.Errorf("passed filter: got %v, want just form 3", passed)
	}
}

func TestApproveCAR(t *testing.T) {
	f := newFixture(t)
	svc := newCARService(f)
	ctx := context.Background()

	// Form 2 has no response yet; approval is out of order
	if _, err := svc.ApproveCAR(ctx, leadViewer, "2"); apperr.KindOf(err) != apperr.KindInvalidTransition {
		t.Errorf("for_response form: got %v, want invalid transition", err)
	}

	f.store.CARForms[1].Status = model.CARStatusForApproval
	car, err := svc.ApproveCAR(ctx, leadViewer, "2")
	if err != nil {
		t.Fatalf("ApproveCAR: %v", err)
	}
	if car.Status != model.CARStatusForVerification {
		t.Errorf("status = %q, want for_verification", car.Status)
	}
	if car.ApprovedBy != "1" {
		t.Errorf("approved_by = %q, want 1", car.ApprovedBy)
	}

	// Only the lead auditor approves
	f.store.CARForms[1].Status = model.CARStatusForApproval
	if _, err := svc.ApproveCAR(ctx, auditorViewer, "2"); apperr.KindOf(err) != apperr.KindPermissionDenied {
		t.Errorf("auditor approving: got %v, want permission denied", err)
	}
}

func TestCloseCAR(t *testing.T) {
	f := newFixture(t)
	svc := newCARService(f)
	ctx := context.Background()

	// Form 1 awaits verification
	car, err := svc.CloseCAR(ctx, auditorViewer, "1", true)
	if err != nil {
		t.Fatalf("CloseCAR: %v", err)
	}
	if car.Status != model.CARStatusPassed {
		t.Errorf("status = %q, want passed", car.Status)
	}

	// Closed forms stay closed
	if _, err := svc.CloseCAR(ctx, auditorViewer, "1", false); apperr.KindOf(err) != apperr.KindInvalidTransition {
		t.Errorf("re-close: got %v, want invalid transition", err)
	}

	if _, err := svc.CloseCAR(ctx, execViewer, "1", true); apperr.KindOf(err) != apperr.KindPermissionDenied {
		t.Errorf("executive closing: got %v, want permission denied", err)
	}
}

func TestCloseCARFailed(t *testing.T) {
	f := newFixture(t)
	svc := newCARService(f)

	car, err := svc.CloseCAR(context.Background(), leadViewer, "1", false)
	if err != nil {
		t.Fatalf("CloseCAR: %v", err)
	}
	if car.Status != model.CARStatusFailed {
		t.Errorf("status = %q, want failed", car.Status)
	}
}
