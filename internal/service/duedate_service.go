package service

import (
	"context"
	"time"

	"cartool/internal/model"
	"cartool/internal/policy"
	"cartool/internal/repository"
	"cartool/internal/websocket"
	"cartool/pkg/apperr"

	"github.com/google/uuid"
)

type RequestExtensionRequest struct {
	ActionID string `json:"action_id" binding:"required"`
	NewDate  string `json:"new_date" binding:"required"` // YYYY-MM-DD
	Reason   string `json:"reason" binding:"required"`
}

// DueDateService owns extension requests. An action's due date only ever
// moves through an approved log; pending and rejected logs leave it
// untouched.
type DueDateService interface {
	RequestExtension(ctx context.Context, v policy.Viewer, req RequestExtensionRequest) (*model.DueDateLog, error)
	ListLogs(ctx context.Context, status string) ([]model.DueDateLog, error)
	ApproveLog(ctx context.Context, v policy.Viewer, id string) (*model.DueDateLog, error)
	RejectLog(ctx context.Context, v policy.Viewer, id string) (*model.DueDateLog, error)
}

type dueDateService struct {
	logs    repository.DueDateLogRepository
	actions repository.ActionRepository
	hub     *websocket.Hub
	now     func() time.Time
}

// NewDueDateService returns a new instance of DueDateService
func NewDueDateService(logs repository.DueDateLogRepository, actions repository.ActionRepository, hub *websocket.Hub) DueDateService {
	return &dueDateService{logs: logs, actions: actions, hub: hub, now: time.Now}
}

func (s *dueDateService) RequestExtension(ctx context.Context, v policy.Viewer, req RequestExtensionRequest) (*model.DueDateLog, error) {
	action, err := s.actions.GetByID(ctx, req.ActionID)
	if err != nil {
		return nil, err
	}
	if err := policy.CanRequestExtension(v, action); err != nil {
		return nil, err
	}

	newDate, err := time.Parse("2006-01-02", req.NewDate)
	if err != nil {
		return nil, apperr.Validation("invalid new_date %q, expected YYYY-MM-DD", req.NewDate)
	}
	if !newDate.After(action.DueDate) {
		return nil, apperr.Validation("new_date must be after the current due date")
	}

	log := &model.DueDateLog{
		ID:          uuid.NewString(),
		ActionID:    action.ID,
		OldDate:     action.DueDate,
		NewDate:     newDate,
		Reason:      req.Reason,
		RequestedBy: v.ID,
		Status:      model.DueDateLogPending,
		CreatedAt:   s.now(),
	}

	if err := s.logs.Create(ctx, log); err != nil {
		return nil, err
	}

	s.hub.Notify("duedate.requested", log.ID, v.ID)
	return log, nil
}

func (s *dueDateService) ListLogs(ctx context.Context, status string) ([]model.DueDateLog, error) {
	return s.logs.ListByStatus(ctx, status)
}

// ApproveLog flips a pending log to approved and rewrites the referenced
// action's due date to the log's new date. This is the only path that
// moves an action's due date.
func (s *dueDateService) ApproveLog(ctx context.Context, v policy.Viewer, id string) (*model.DueDateLog, error) {
	log, err := s.logs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanDecideDueDate(v, log); err != nil {
		return nil, err
	}
	if log.Status != model.DueDateLogPending {
		return nil, apperr.InvalidTransition("due date log %s is already %s", id, log.Status)
	}

	action, err := s.actions.GetByID(ctx, log.ActionID)
	if err != nil {
		return nil, err
	}

	log.Status = model.DueDateLogApproved
	log.ApprovedBy = v.ID
	if err := s.logs.Update(ctx, log); err != nil {
		return nil, err
	}

	action.DueDate = log.NewDate
	if err := s.actions.Update(ctx, action); err != nil {
		return nil, err
	}

	s.hub.Notify("duedate.approved", log.ID, v.ID)
	return log, nil
}

// RejectLog flips a pending log to rejected; the referenced action keeps
// its current due date
func (s *dueDateService) RejectLog(ctx context.Context, v policy.Viewer, id string) (*model.DueDateLog, error) {
	log, err := s.logs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanDecideDueDate(v, log); err != nil {
		return nil, err
	}
	if log.Status != model.DueDateLogPending {
		return nil, apperr.InvalidTransition("due date log %s is already %s", id, log.Status)
	}

	log.Status = model.DueDateLogRejected
	log.ApprovedBy = v.ID
	if err := s.logs.Update(ctx, log); err != nil {
		return nil, err
	}

	s.hub.Notify("duedate.rejected", log.ID, v.ID)
	return log, nil
}
