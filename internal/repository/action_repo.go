package repository

import (
	"context"

	"cartool/internal/model"
	"cartool/internal/store"
	"cartool/pkg/apperr"
)

// ActionRepository defines the interface for data access of Action entities
type ActionRepository interface {
	Create(ctx context.Context, action *model.Action) error
	GetByID(ctx context.Context, id string) (*model.Action, error)
	List(ctx context.Context) ([]model.Action, error)
	ListByAssignee(ctx context.Context, userID string) ([]model.Action, error)
	Update(ctx context.Context, action *model.Action) error
}

type actionRepository struct {
	store *store.Store
}

// NewActionRepository returns a new instance of ActionRepository
func NewActionRepository(s *store.Store) ActionRepository {
	return &actionRepository{store: s}
}

func (r *actionRepository) Create(ctx context.Context, action *model.Action) error {
	r.store.Lock()
	defer r.store.Unlock()
	r.store.Actions = append(r.store.Actions, *action)
	return nil
}

func (r *actionRepository) GetByID(ctx context.Context, id string) (*model.Action, error) {
	r.store.RLock()
	defer r.store.RUnlock()
	for i := range r.store.Actions {
		if r.store.Actions[i].ID == id {
			a := r.store.Actions[i]
			return &a, nil
		}
	}
	return nil, apperr.NotFound("action %s not found", id)
}

func (r *actionRepository) List(ctx context.Context) ([]model.Action, error) {
	r.store.RLock()
	defer r.store.RUnlock()
	actions := make([]model.Action, len(r.store.Actions))
	copy(actions, r.store.Actions)
	return actions, nil
}

func (r *actionRepository) ListByAssignee(ctx context.Context, userID string) ([]model.Action, error) {
	r.store.RLock()
	defer r.store.RUnlock()
	var actions []model.Action
	for _, a := range r.store.Actions {
		if a.AssignedTo == userID {
			actions = append(actions, a)
		}
	}
	return actions, nil
}

func (r *actionRepository) Update(ctx context.Context, action *model.Action) error {
	r.store.Lock()
	defer r.store.Unlock()
	for i := range r.store.Actions {
		if r.store.Actions[i].ID == action.ID {
			r.store.Actions[i] = *action
			return nil
		}
	}
	return apperr.NotFound("action %s not found", action.ID)
}
