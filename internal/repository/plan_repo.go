package repository

import (
	"context"

	"cartool/internal/model"
	"cartool/internal/store"
	"cartool/pkg/apperr"
)

// PlanRepository defines the interface for data access of AuditPlan entities
type PlanRepository interface {
	Create(ctx context.Context, plan *model.AuditPlan) error
	GetByID(ctx context.Context, id string) (*model.AuditPlan, error)
	List(ctx context.Context) ([]model.AuditPlan, error)
	Update(ctx context.Context, plan *model.AuditPlan) error
}

type planRepository struct {
	store *store.Store
}

// NewPlanRepository returns a new instance of PlanRepository
func NewPlanRepository(s *store.Store) PlanRepository {
	return &planRepository{store: s}
}

func (r *planRepository) Create(ctx context.Context, plan *model.AuditPlan) error {
	r.store.Lock()
	defer r.store.Unlock()
	r.store.AuditPlans = append(r.store.AuditPlans, *plan)
	return nil
}

func (r *planRepository) GetByID(ctx context.Context, id string) (*model.AuditPlan, error) {
	r.store.RLock()
	defer r.store.RUnlock()
	for i := range r.store.AuditPlans {
		if r.store.AuditPlans[i].ID == id {
			p := r.store.AuditPlans[i]
			return &p, nil
		}
	}
	return nil, apperr.NotFound("audit plan %s not found", id)
}

func (r *planRepository) List(ctx context.Context) ([]model.AuditPlan, error) {
	r.store.RLock()
	defer r.store.RUnlock()
	plans := make([]model.AuditPlan, len(r.store.AuditPlans))
	copy(plans, r.store.AuditPlans)
	return plans, nil
}

func (r *planRepository) Update(ctx context.Context, plan *model.AuditPlan) error {
	r.store.Lock()
	defer r.store.Unlock()
	for i := range r.store.AuditPlans {
		if r.store.AuditPlans[i].ID == plan.ID {
			r.store.AuditPlans[i] = *plan
			return nil
		}
	}
	return apperr.NotFound("audit plan %s not found", plan.ID)
}
