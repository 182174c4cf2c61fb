package repository

import (
	"context"

	"cartool/internal/model"
	"cartool/internal/store"
	"cartool/pkg/apperr"
)

// DueDateLogRepository defines the interface for data access of DueDateLog entities
type DueDateLogRepository interface {
	Create(ctx context.Context, log *model.DueDateLog) error
	GetByID(ctx context.Context, id string) (*model.DueDateLog, error)
	List(ctx context.Context) ([]model.DueDateLog, error)
	ListByStatus(ctx context.Context, status string) ([]model.DueDateLog, error)
	Update(ctx context.Context, log *model.DueDateLog) error
}

type dueDateLogRepository struct {
	store *store.Store
}

// NewDueDateLogRepository returns a new instance of DueDateLogRepository
func NewDueDateLogRepository(s *store.Store) DueDateLogRepository {
	return &dueDateLogRepository{store: s}
}

func (r *dueDateLogRepository) Create(ctx context.Context, log *model.DueDateLog) error {
	r.store.Lock()
	defer r.store.Unlock()
	r.store.DueDateLogs = append(r.store.DueDateLogs, *log)
	return nil
}

func (r *dueDateLogRepository) GetByID(ctx context.Context, id string) (*model.DueDateLog, error) {
	r.store.RLock()
	defer r.store.RUnlock()
	for i := range r.store.DueDateLogs {
		if r.store.DueDateLogs[i].ID == id {
			l := r.store.DueDateLogs[i]
			return &l, nil
		}
	}
	return nil, apperr.NotFound("due date log %s not found", id)
}

func (r *dueDateLogRepository) List(ctx context.Context) ([]model.DueDateLog, error) {
	r.store.RLock()
	defer r.store.RUnlock()
	logs := make([]model.DueDateLog, len(r.store.DueDateLogs))
	copy(logs, r.store.DueDateLogs)
	return logs, nil
}

func (r *dueDateLogRepository) ListByStatus(ctx context.Context, status string) ([]model.DueDateLog, error) {
	r.store.RLock()
	defer r.store.RUnlock()
	var logs []model.DueDateLog
	for _, l := range r.store.DueDateLogs {
		if status == "" || l.Status == status {
			logs = append(logs, l)
		}
	}
	return logs, nil
}

func (r *dueDateLogRepository) Update(ctx context.Context, log *model.DueDateLog) error {
	r.store.Lock()
	defer r.store.Unlock()
	for i := range r.store.DueDateLogs {
		if r.store.DueDateLogs[i].ID == log.ID {
			r.store.DueDateLogs[i] = *log
			return nil
		}
	}
	return apperr.NotFound("due date log %s not found", log.ID)
}
