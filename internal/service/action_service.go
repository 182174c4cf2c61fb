package service

import (
	"context"
	"sort"
	"time"

	"cartool/internal/model"
	"cartool/internal/policy"
	"cartool/internal/repository"
	"cartool/internal/websocket"
	"cartool/pkg/apperr"

	"github.com/google/uuid"
)

type DeclareActionRequest struct {
	CARID       string `json:"car_id" binding:"required"`
	Description string `json:"description" binding:"required"`
	DueDate     string `json:"due_date" binding:"required"` // YYYY-MM-DD
}

type UploadEvidenceRequest struct {
	Evidence string `json:"evidence" binding:"required"` // opaque reference, no file storage
}

type VerifyActionRequest struct {
	Passed bool `json:"passed"`
}

// ActionService owns the remediation action lifecycle:
// for_execution -> for_verification -> passed | failed
type ActionService interface {
	DeclareAction(ctx context.Context, v policy.Viewer, req DeclareActionRequest) (*model.Action, error)
	GetAction(ctx context.Context, id string) (*model.Action, error)
	ListActions(ctx context.Context, v policy.Viewer) ([]model.Action, error)
	Timeline(ctx context.Context, v policy.Viewer, status string) ([]model.Action, error)
	UploadEvidence(ctx context.Context, v policy.Viewer, id string, req UploadEvidenceRequest) (*model.Action, error)
	VerifyAction(ctx context.Context, v policy.Viewer, id string, passed bool) (*model.Action, error)
}

type actionService struct {
	actions repository.ActionRepository
	cars    repository.CARRepository
	hub     *websocket.Hub
	now     func() time.Time
}

// NewActionService returns a new instance of ActionService
func NewActionService(actions repository.ActionRepository, cars repository.CARRepository, hub *websocket.Hub) ActionService {
	return &actionService{actions: actions, cars: cars, hub: hub, now: time.Now}
}

// DeclareAction creates a remediation action against a CAR form assigned to
// the viewer. Declaring the first response moves a for_response CAR into
// for_approval.
func (s *actionService) DeclareAction(ctx context.Context, v policy.Viewer, req DeclareActionRequest) (*model.Action, error) {
	car, err := s.cars.GetByID(ctx, req.CARID)
	if err != nil {
		return nil, err
	}
	if err := policy.CanDeclareAction(v, car); err != nil {
		return nil, err
	}

	due, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return nil, apperr.Validation("invalid due_date %q, expected YYYY-MM-DD", req.DueDate)
	}

	action := &model.Action{
		ID:              uuid.NewString(),
		CARID:           car.ID,
		Description:     req.Description,
		Status:          model.ActionStatusForExecution,
		AssignedTo:      v.ID,
		DueDate:         due,
		OriginalDueDate: due,
		CreatedAt:       s.now(),
	}

	if err := s.actions.Create(ctx, action); err != nil {
		return nil, err
	}

	if car.Status == model.CARStatusForResponse {
		car.Status = model.CARStatusForApproval
		if err := s.cars.Update(ctx, car); err != nil {
			return nil, err
		}
	}

	s.hub.Notify("action.declared", action.ID, v.ID)
	return action, nil
}

func (s *actionService) GetAction(ctx context.Context, id string) (*model.Action, error) {
	return s.actions.GetByID(ctx, id)
}

// ListActions returns the full collection for roles that see everything and
// only the viewer's own actions for auditees
func (s *actionService) ListActions(ctx context.Context, v policy.Viewer) ([]model.Action, error) {
	if policy.SeesAllRecords(v.Role) {
		return s.actions.List(ctx)
	}
	return s.actions.ListByAssignee(ctx, v.ID)
}

// Timeline returns the viewer's visible actions ordered by due date,
// optionally filtered by status
func (s *actionService) Timeline(ctx context.Context, v policy.Viewer, status string) ([]model.Action, error) {
	actions, err := s.ListActions(ctx, v)
	if err != nil {
		return nil, err
	}

	if status != "" {
		filtered := actions[:0]
		for _, a := range actions {
			if a.Status == status {
				filtered = append(filtered, a)
			}
		}
		actions = filtered
	}

	sort.Slice(actions, func(i, j int) bool {
		return actions[i].DueDate.Before(actions[j].DueDate)
	})
	return actions, nil
}

func (s *actionService) UploadEvidence(ctx context.Context, v policy.Viewer, id string, req UploadEvidenceRequest) (*model.Action, error) {
	action, err := s.actions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanUploadEvidence(v, action); err != nil {
		return nil, err
	}
	if action.Status != model.ActionStatusForExecution {
		return nil, apperr.InvalidTransition("action %s is %s, evidence can only be attached during execution", id, action.Status)
	}

	completed := s.now()
	action.Evidence = req.Evidence
	action.CompletedDate = &completed
	action.Status = model.ActionStatusForVerification
	if err := s.actions.Update(ctx, action); err != nil {
		return nil, err
	}

	s.hub.Notify("action.evidence", action.ID, v.ID)
	return action, nil
}

func (s *actionService) VerifyAction(ctx context.Context, v policy.Viewer, id string, passed bool) (*model.Action, error) {
	if err := policy.Require(v, policy.CapActionVerify); err != nil {
		return nil, err
	}

	action, err := s.actions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if action.Status != model.ActionStatusForVerification {
		return nil, apperr.InvalidTransition("action %s is %s, only for_verification actions can be verified", id, action.Status)
	}

	action.VerifiedBy = v.ID
	if passed {
		action.Status = model.ActionStatusPassed
		if action.CompletedDate == nil {
			completed := s.now()
			action.CompletedDate = &completed
		}
	} else {
		action.Status = model.ActionStatusFailed
	}
	if err := s.actions.Update(ctx, action); err != nil {
		return nil, err
	}

	s.hub.Notify("action.verified", action.ID, v.ID)
	return action, nil
}
