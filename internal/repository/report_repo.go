package repository

import (
	"context"

	"cartool/internal/model"
	"cartool/internal/store"
	"cartool/pkg/apperr"
)

// ReportRepository defines the interface for data access of AuditReport entities
type ReportRepository interface {
	Create(ctx context.Context, report *model.AuditReport) error
	GetByID(ctx context.Context, id string) (*model.AuditReport, error)
	List(ctx context.Context) ([]model.AuditReport, error)
	Update(ctx context.Context, report *model.AuditReport) error
}

type reportRepository struct {
	store *store.Store
}

// NewReportRepository returns a new instance of ReportRepository
func NewReportRepository(s *store.Store) ReportRepository {
	return &reportRepository{store: s}
}

func (r *reportRepository) Create(ctx context.Context, report *model.AuditReport) error {
	r.store.Lock()
	defer r.store.Unlock()
	r.store.AuditReports = append(r.store.AuditReports, *report)
	return nil
}

func (r *reportRepository) GetByID(ctx context.Context, id string) (*model.AuditReport, error) {
	r.store.RLock()
	defer r.store.RUnlock()
	for i := range r.store.AuditReports {
		if r.store.AuditReports[i].ID == id {
			rep := r.store.AuditReports[i]
			return &rep, nil
		}
	}
	return nil, apperr.NotFound("audit report %s not found", id)
}

func (r *reportRepository) List(ctx context.Context) ([]model.AuditReport, error) {
	r.store.RLock()
	defer r.store.RUnlock()
	reports := make([]model.AuditReport, len(r.store.AuditReports))
	copy(reports, r.store.AuditReports)
	return reports, nil
}

func (r *reportRepository) Update(ctx context.Context, report *model.AuditReport) error {
	r.store.Lock()
	defer r.store.Unlock()
	for i := range r.store.AuditReports {
		if r.store.AuditReports[i].ID == report.ID {
			r.store.AuditReports[i] = *report
			return nil
		}
	}
	return apperr.NotFound("audit report %s not found", report.ID)
}
