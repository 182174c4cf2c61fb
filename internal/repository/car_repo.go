package repository

import (
	"context"

	"cartool/internal/model"
	"cartool/internal/store"
	"cartool/pkg/apperr"
)

// CARRepository defines the interface for data access of CARForm entities
type CARRepository interface {
	Create(ctx context.Context, car *model.CARForm) error
	GetByID(ctx context.Context, id string) (*model.CARForm, error)
	List(ctx context.Context) ([]model.CARForm, error)
	ListByAssignee(ctx context.Context, userID string) ([]model.CARForm, error)
	Update(ctx context.Context, car *model.CARForm) error
}

type carRepository struct {
	store *store.Store
}

// NewCARRepository returns a new instance of CARRepository
func NewCARRepository(s *store.Store) CARRepository {
	return &carRepository{store: s}
}

func (r *carRepository) Create(ctx context.Context, car *model.CARForm) error {
	r.store.Lock()
	defer r.store.Unlock()
	r.store.CARForms = append(r.store.CARForms, *car)
	return nil
}

func (r *carRepository) GetByID(ctx context.Context, id string) (*model.CARForm, error) {
	r.store.RLock()
	defer r.store.RUnlock()
	for i := range r.store.CARForms {
		if r.store.CARForms[i].ID == id {
			c := r.store.CARForms[i]
			return &c, nil
		}
	}
	return nil, apperr.NotFound("CAR form %s not found", id)
}

func (r *carRepository) List(ctx context.Context) ([]model.CARForm, error) {
	r.store.RLock()
	defer r.store.RUnlock()
	forms := make([]model.CARForm, len(r.store.CARForms))
	copy(forms, r.store.CARForms)
	return forms, nil
}

func (r *carRepository) ListByAssignee(ctx context.Context, userID string) ([]model.CARForm, error) {
	r.store.RLock()
	defer r.store.RUnlock()
	var forms []model.CARForm
	for _, c := range r.store.CARForms {
		if c.AssignedTo == userID {
			forms = append(forms, c)
		}
	}
	return forms, nil
}

func (r *carRepository) Update(ctx context.Context, car *model.CARForm) error {
	r.store.Lock()
	defer r.store.Unlock()
	for i := range r.store.CARForms {
		if r.store.CARForms[i].ID == car.ID {
			r.store.CARForms[i] = *car
			return nil
		}
	}
	return apperr.NotFound("CAR form %s not found", car.ID)
}
