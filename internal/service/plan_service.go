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

type CreatePlanRequest struct {
	Title         string   `json:"title" binding:"required"`
	Scope         string   `json:"scope" binding:"required"`
	Criteria      string   `json:"criteria" binding:"required"`
	Objectives    string   `json:"objectives" binding:"required"`
	Auditees      []string `json:"auditees" binding:"required,min=1"`
	ScheduledDate string   `json:"scheduled_date" binding:"required"` // YYYY-MM-DD
}

// PlanService owns the audit plan lifecycle:
// draft -> sent -> accepted -> completed
type PlanService interface {
	CreatePlan(ctx context.Context, v policy.Viewer, req CreatePlanRequest) (*model.AuditPlan, error)
	GetPlan(ctx context.Context, id string) (*model.AuditPlan, error)
	ListPlans(ctx context.Context) ([]model.AuditPlan, error)
	SendPlan(ctx context.Context, v policy.Viewer, id string) (*model.AuditPlan, error)
	AcceptPlan(ctx context.Context, v policy.Viewer, id string) (*model.AuditPlan, error)
	CompletePlan(ctx context.Context, v policy.Viewer, id string) (*model.AuditPlan, error)
}

type planService struct {
	plans repository.PlanRepository
	users repository.UserRepository
	hub   *websocket.Hub
}

// NewPlanService returns a new instance of PlanService
func NewPlanService(plans repository.PlanRepository, users repository.UserRepository, hub *websocket.Hub) PlanService {
	return &planService{plans: plans, users: users, hub: hub}
}

func (s *planService) CreatePlan(ctx context.Context, v policy.Viewer, req CreatePlanRequest) (*model.AuditPlan, error) {
	if err := policy.Require(v, policy.CapPlanCreate); err != nil {
		return nil, err
	}

	scheduled, err := time.Parse("2006-01-02", req.ScheduledDate)
	if err != nil {
		return nil, apperr.Validation("invalid scheduled_date %q, expected YYYY-MM-DD", req.ScheduledDate)
	}

	// Every auditee on the plan must resolve to a known identity
	for _, id := range req.Auditees {
		if _, err := s.users.GetByID(ctx, id); err != nil {
			return nil, apperr.Validation("unknown auditee id %s", id)
		}
	}

	plan := &model.AuditPlan{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Scope:         req.Scope,
		Criteria:      req.Criteria,
		Objectives:    req.Objectives,
		Auditees:      req.Auditees,
		ScheduledDate: scheduled,
		Status:        model.PlanStatusDraft,
		CreatedBy:     v.ID,
		CreatedAt:     time.Now(),
	}

	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, err
	}

	s.hub.Notify("plan.created", plan.ID, v.ID)
	return plan, nil
}

func (s *planService) GetPlan(ctx context.Context, id string) (*model.AuditPlan, error) {
	return s.plans.GetByID(ctx, id)
}

func (s *planService) ListPlans(ctx context.Context) ([]model.AuditPlan, error) {
	return s.plans.List(ctx)
}

func (s *planService) SendPlan(ctx context.Context, v policy.Viewer, id string) (*model.AuditPlan, error) {
	if err := policy.Require(v, policy.CapPlanSend); err != nil {
		return nil, err
	}

	plan, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan.Status != model.PlanStatusDraft {
		return nil, apperr.InvalidTransition("plan %s is %s, only draft plans can be sent", id, plan.Status)
	}

	plan.Status = model.PlanStatusSent
	if err := s.plans.Update(ctx, plan); err != nil {
		return nil, err
	}

	s.hub.Notify("plan.sent", plan.ID, v.ID)
	return plan, nil
}

func (s *planService) AcceptPlan(ctx context.Context, v policy.Viewer, id string) (*model.AuditPlan, error) {
	plan, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanAcceptPlan(v, plan); err != nil {
		return nil, err
	}
	if plan.Status != model.PlanStatusSent {
		return nil, apperr.InvalidTransition("plan %s is %s, only sent plans can be accepted", id, plan.Status)
	}

	plan.Status = model.PlanStatusAccepted
	if err := s.plans.Update(ctx, plan); err != nil {
		return nil, err
	}

	s.hub.Notify("plan.accepted", plan.ID, v.ID)
	return plan, nil
}

func (s *planService) CompletePlan(ctx context.Context, v policy.Viewer, id string) (*model.AuditPlan, error) {
	if err := policy.Require(v, policy.CapPlanComplete); err != nil {
		return nil, err
	}

	plan, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan.Status != model.PlanStatusAccepted {
		return nil, apperr.InvalidTransition("plan %s is %s, only accepted plans can be completed", id, plan.Status)
	}

	plan.Status = model.PlanStatusCompleted
	if err := s.plans.Update(ctx, plan); err != nil {
		return nil, err
	}

	s.hub.Notify("plan.completed", plan.ID, v.ID)
	return plan, nil
}
