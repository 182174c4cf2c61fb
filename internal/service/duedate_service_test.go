package service

import (
	"context"
	"testing"
	"time"

	"cartool/internal/model"
	"cartool/internal/policy"
	"cartool/pkg/apperr"
)

func newDueDateService(f *fixture, now time.Time) DueDateService {
	svc := NewDueDateService(f.logs, f.actions, nil).(*dueDateService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestRequestExtension(t *testing.T) {
	f := newFixture(t)
	svc := newDueDateService(f, day(2024, time.March, 5))

	log, err := svc.RequestExtension(context.Background(), auditeeViewer, RequestExtensionRequest{
		ActionID: "1",
		NewDate:  "2024-04-01",
		Reason:   "Vendor documentation still outstanding",
	})
	if err != nil {
		t.Fatalf("RequestExtension: %v", err)
	}
	if log.Status != model.DueDateLogPending {
		t.Errorf("status = %q, want pending", log.Status)
	}
	// Old date snapshots the action's current due date
	if !log.OldDate.Equal(day(2024, time.March, 15)) {
		t.Errorf("old_date = %v, want 2024-03-15", log.OldDate)
	}

	// The action itself must not move until approval
	action, err := f.actions.GetByID(context.Background(), "1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !action.DueDate.Equal(day(2024, time.March, 15)) {
		t.Errorf("action due date moved to %v before approval", action.DueDate)
	}
}

func TestRequestExtensionValidation(t *testing.T) {
	f := newFixture(t)
	svc := newDueDateService(f, day(2024, time.March, 5))
	ctx := context.Background()

	// Action 1 is due 2024-03-15; the requested date must be later
	_, err := svc.RequestExtension(ctx, auditeeViewer, RequestExtensionRequest{
		ActionID: "1", NewDate: "2024-03-10", Reason: "r",
	})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("earlier date: got %v, want validation error", err)
	}

	_, err = svc.RequestExtension(ctx, auditeeViewer, RequestExtensionRequest{
		ActionID: "1", NewDate: "next week", Reason: "r",
	})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("malformed date: got %v, want validation error", err)
	}

	// Action 2 belongs to user 4
	_, err = svc.RequestExtension(ctx, auditeeViewer, RequestExtensionRequest{
		ActionID: "2", NewDate: "2024-04-15", Reason: "r",
	})
	if apperr.KindOf(err) != apperr.KindPermissionDenied {
		t.Errorf("non-owner: got %v, want permission denied", err)
	}
}

func TestApproveLogMovesDueDate(t *testing.T) {
	f := newFixture(t)
	svc := newDueDateService(f, day(2024, time.March, 5))
	ctx := context.Background()

	// Log 2 is pending for action 2, requested by user 4
	log, err := svc.ApproveLog(ctx, leadViewer, "2")
	if err != nil {
		t.Fatalf("ApproveLog: %v", err)
	}
	if log.Status != model.DueDateLogApproved {
		t.Errorf("status = %q, want approved", log.Status)
	}
	if log.ApprovedBy != "1" {
		t.Errorf("approved_by = %q, want 1", log.ApprovedBy)
	}

	action, err := f.actions.GetByID(ctx, log.ActionID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !action.DueDate.Equal(log.NewDate) {
		t.Errorf("action due date = %v, want %v", action.DueDate, log.NewDate)
	}
}

func TestApproveLogGuards(t *testing.T) {
	f := newFixture(t)
	svc := newDueDateService(f, day(2024, time.March, 5))
	ctx := context.Background()

	// Log 1 was already decided
	if _, err := svc.ApproveLog(ctx, leadViewer, "1"); apperr.KindOf(err) != apperr.KindInvalidTransition {
		t.Errorf("decided log: got %v, want invalid transition", err)
	}

	// Nobody decides their own request, whatever their role
	requester := policy.Viewer{ID: "4", Role: model.RoleLeadAuditor}
	if _, err := svc.ApproveLog(ctx, requester, "2"); apperr.KindOf(err) != apperr.KindPermissionDenied {
		t.Errorf("own request: got %v, want permission denied", err)
	}

	if _, err := svc.ApproveLog(ctx, managerViewer, "2"); apperr.KindOf(err) != apperr.KindPermissionDenied {
		t.Errorf("ap_manager deciding: got %v, want permission denied", err)
	}
}

func TestRejectLogLeavesDueDate(t *testing.T) {
	f := newFixture(t)
	svc := newDueDateService(f, day(2024, time.March, 5))
	ctx := context.Background()

	before, err := f.actions.GetByID(ctx, "2")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	log, err := svc.RejectLog(ctx, leadViewer, "2")
	if err != nil {
		t.Fatalf("RejectLog: %v", err)
	}
	if log.Status != model.DueDateLogRejected {
		t.Errorf("status = %q, want rejected", log.Status)
	}

	after, err := f.actions.GetByID(ctx, "2")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !after.DueDate.Equal(before.DueDate) {
		t.Errorf("rejection moved the due date from %v to %v", before.DueDate, after.DueDate)
	}

	// A rejected log cannot be re-decided
	if _, err := svc.ApproveLog(ctx, leadViewer, "2"); apperr.KindOf(err) != apperr.KindInvalidTransition {
		t.Errorf("re-decide: got %v, want invalid transition", err)
	}
}

func TestListLogsByStatus(t *testing.T) {
	f := newFixture(t)
	svc := newDueDateService(f, day(2024, time.March, 5))
	ctx := context.Background()

	all, err := svc.ListLogs(ctx, "")
	if err != nil {
		t.Fatalf("ListLogs: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d logs, want 2", len(all))
	}

	pending, err := svc.ListLogs(ctx, model.DueDateLogPending)
	if err != nil {
		t.Fatalf("ListLogs: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != "2" {
		t.Errorf("pending filter: got %v, want just log 2", pending)
	}
}
