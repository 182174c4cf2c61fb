package service

import (
	"context"
	"testing"
	"time"

	"cartool/internal/model"
	"cartool/internal/policy"
	"cartool/pkg/apperr"
)

func newActionService(f *fixture, now time.Time) ActionService {
	svc := NewActionService(f.actions, f.cars, nil).(*actionService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestDeclareActionAdvancesCAR(t *testing.T) {
	f := newFixture(t)
	svc := newActionService(f, day(2024, time.March, 1))
	ctx := context.Background()

	// A fresh finding awaiting the auditee's response
	f.store.CARForms = append(f.store.CARForms, model.CARForm{
		ID: "10", ReportID: "1", Type: model.CARTypeNC, ProcessArea: "Competence",
		Clause: "7.2", Status: model.CARStatusForResponse, AssignedTo: "3",
	})

	action, err := svc.DeclareAction(ctx, auditeeViewer, DeclareActionRequest{
		CARID:       "10",
		Description: "Add supervisor sign-off to the onboarding checklist",
		DueDate:     "2024-04-15",
	})
	if err != nil {
		t.Fatalf("DeclareAction: %v", err)
	}
	if action.Status != model.ActionStatusForExecution {
		t.Errorf("status = %q, want for_execution", action.Status)
	}
	if !action.DueDate.Equal(action.OriginalDueDate) {
		t.Error("a fresh action's due date must equal its original due date")
	}
	if action.Extended() {
		t.Error("fresh action reported as extended")
	}

	// The first declared response moves the CAR into approval
	car, err := f.cars.GetByID(ctx, "10")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if car.Status != model.CARStatusForApproval {
		t.Errorf("CAR status = %q, want for_approval", car.Status)
	}
}

func TestDeclareActionDenied(t *testing.T) {
	f := newFixture(t)
	svc := newActionService(f, day(2024, time.March, 1))
	ctx := context.Background()

	req := DeclareActionRequest{CARID: "1", Description: "d", DueDate: "2024-04-15"}

	// Form 1 is assigned to auditee 3
	stranger := policy.Viewer{ID: "9", Role: model.RoleAuditee}
	if _, err := svc.DeclareAction(ctx, stranger, req); apperr.KindOf(err) != apperr.KindPermissionDenied {
		t.Errorf("unassigned auditee: got %v, want permission denied", err)
	}
	if _, err := svc.DeclareAction(ctx, auditorViewer, req); apperr.KindOf(err) != apperr.KindPermissionDenied {
		t.Errorf("auditor declaring: got %v, want permission denied", err)
	}

	bad := req
	bad.DueDate = "soon"
	if _, err := svc.DeclareAction(ctx, auditeeViewer, bad); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("malformed due date: got %v, want validation error", err)
	}
}

func TestListActionsScoping(t *testing.T) {
	f := newFixture(t)
	svc := newActionService(f, day(2024, time.March, 1))
	ctx := context.Background()

	all, err := svc.ListActions(ctx, leadViewer)
	if err != nil {
		t.Fatalf("ListActions: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("lead sees %d actions, want 3", len(all))
	}

	mine, err := svc.ListActions(ctx, auditeeViewer)
	if err != nil {
		t.Fatalf("ListActions: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("auditee sees %d actions, want 2", len(mine))
	}
	for _, a := range mine {
		if a.AssignedTo != "3" {
			t.Errorf("auditee saw action %s assigned to %s", a.ID, a.AssignedTo)
		}
	}
}

func TestTimeline(t *testing.T) {
	f := newFixture(t)
	svc := newActionService(f, day(2024, time.March, 1))
	ctx := context.Background()

	actions, err := svc.Timeline(ctx, leadViewer, "")
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	if len(actions) != 3 {
		t.Fatalf("got %d actions, want 3", len(actions))
	}
	for i := 1; i < len(actions); i++ {
		if actions[i].DueDate.Before(actions[i-1].DueDate) {
			t.Errorf("timeline out of order at %d: %v after %v", i, actions[i].DueDate, actions[i-1].DueDate)
		}
	}

	open, err := svc.Timeline(ctx, leadViewer, model.ActionStatusForExecution)
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	if len(open) != 1 || open[0].ID != "2" {
		t.Errorf("for_execution filter: got %v, want just action 2", open)
	}
}

func TestUploadEvidence(t *testing.T) {
	f := newFixture(t)
	now := day(2024, time.March, 20)
	svc := newActionService(f, now)
	ctx := context.Background()

	// Action 2 belongs to user 4; sign in as its owner
	owner := policy.Viewer{ID: "4", Role: model.RoleAuditee}
	action, err := svc.UploadEvidence(ctx, owner, "2", UploadEvidenceRequest{Evidence: "revised-template-v2.docx"})
	if err != nil {
		t.Fatalf("UploadEvidence: %v", err)
	}
	if action.Status != model.ActionStatusForVerification {
		t.Errorf("status = %q, want for_verification", action.Status)
	}
	if action.Evidence != "revised-template-v2.docx" {
		t.Errorf("evidence = %q", action.Evidence)
	}
	if action.CompletedDate == nil || !action.CompletedDate.Equal(now) {
		t.Errorf("completed_date = %v, want %v", action.CompletedDate, now)
	}
}

func TestUploadEvidenceGuards(t *testing.T) {
	f := newFixture(t)
	svc := newActionService(f, day(2024, time.March, 20))
	ctx := context.Background()

	// Action 1 already awaits verification
	_, err := svc.UploadEvidence(ctx, auditeeViewer, "1", UploadEvidenceRequest{Evidence: "x"})
	if apperr.KindOf(err) != apperr.KindInvalidTransition {
		t.Errorf("non-executing action: got %v, want invalid transition", err)
	}

	// Action 2 belongs to user 4, not 3
	_, err = svc.UploadEvidence(ctx, auditeeViewer, "2", UploadEvidenceRequest{Evidence: "x"})
	if apperr.KindOf(err) != apperr.KindPermissionDenied {
		t.Errorf("non-owner: got %v, want permission denied", err)
	}
}

func TestVerifyActionPassed(t *testing.T) {
	f := newFixture(t)
	now := day(2024, time.March, 20)
	svc := newActionService(f, now)

	action, err := svc.VerifyAction(context.Background(), auditorViewer, "1", true)
	if err != nil {
		t.Fatalf("VerifyAction: %v", err)
	}
	if action.Status != model.ActionStatusPassed {
		t.Errorf("status = %q, want passed", action.Status)
	}
	if action.VerifiedBy != "2" {
		t.Errorf("verified_by = %q, want 2", action.VerifiedBy)
	}
	if action.CompletedDate == nil {
		t.Error("passed action must carry a completed date")
	}
}

func TestVerifyActionFailed(t *testing.T) {
	f := newFixture(t)
	svc := newActionService(f, day(2024, time.March, 20))

	action, err := svc.VerifyAction(context.Background(), leadViewer, "1", false)
	if err != nil {
		t.Fatalf("VerifyAction: %v", err)
	}
	if action.Status != model.ActionStatusFailed {
		t.Errorf("status = %q, want failed", action.Status)
	}
}

func TestVerifyActionGuards(t *testing.T) {
	f := newFixture(t)
	svc := newActionService(f, day(2024, time.March, 20))
	ctx := context.Background()

	// Action 2 is still executing
	if _, err := svc.VerifyAction(ctx, auditorViewer, "2", true); apperr.KindOf(err) != apperr.KindInvalidTransition {
		t.Errorf("executing action: got %v, want invalid transition", err)
	}

	if _, err := svc.VerifyAction(ctx, auditeeViewer, "1", true); apperr.KindOf(err) != apperr.KindPermissionDenied {
		t.Errorf("auditee verifying: got %v, want permission denied", err)
	}
}
