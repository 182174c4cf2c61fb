package repository

import (
	"context"

	"cartool/internal/model"
	"cartool/internal/store"
	"cartool/pkg/apperr"
)

// UserRepository defines the interface for data access of User entities.
// The identity list is closed, so there is no create or delete.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type userRepository struct {
	store *store.Store
}

// NewUserRepository returns a new instance of UserRepository
func NewUserRepository(s *store.Store) UserRepository {
	return &userRepository{store: s}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	r.store.RLock()
	defer r.store.RUnlock()
	for i := range r.store.Users {
		if r.store.Users[i].ID == id {
			u := r.store.Users[i]
			return &u, nil
		}
	}
	return nil, apperr.NotFound("user %s not found", id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.store.RLock()
	defer r.store.RUnlock()
	for i := range r.store.Users {
		if r.store.Users[i].Email == email {
			u := r.store.Users[i]
			return &u, nil
		}
	}
	return nil, apperr.NotFound("no user with email %s", email)
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	r.store.RLock()
	defer r.store.RUnlock()
	users := make([]model.User, len(r.store.Users))
	copy(users, r.store.Users)
	return users, nil
}
