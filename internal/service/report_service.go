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

type CreateReportRequest struct {
	PlanID   string `json:"plan_id" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Findings string `json:"findings" binding:"required"`
}

// ReportService owns the audit report lifecycle:
// draft -> submitted -> approved
type ReportService interface {
	CreateReport(ctx context.Context, v policy.Viewer, req CreateReportRequest) (*model.AuditReport, error)
	GetReport(ctx context.Context, id string) (*model.AuditReport, error)
	ListReports(ctx context.Context) ([]model.AuditReport, error)
	SubmitReport(ctx context.Context, v policy.Viewer, id string) (*model.AuditReport, error)
	ApproveReport(ctx context.Context, v policy.Viewer, id string) (*model.AuditReport, error)
}

type reportService struct {
	reports repository.ReportRepository
	plans   repository.PlanRepository
	hub     *websocket.Hub
}

// NewReportService returns a new instance of ReportService
func NewReportService(reports repository.ReportRepository, plans repository.PlanRepository, hub *websocket.Hub) ReportService {
	return &reportService{reports: reports, plans: plans, hub: hub}
}

func (s *reportService) CreateReport(ctx context.Context, v policy.Viewer, req CreateReportRequest) (*model.AuditReport, error) {
	if err := policy.Require(v, policy.CapReportCreate); err != nil {
		return nil, err
	}

	plan, err := s.plans.GetByID(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}
	// Reports are only written against plans the auditees have accepted
	if plan.Status != model.PlanStatusAccepted && plan.Status != model.PlanStatusCompleted {
		return nil, apperr.InvalidTransition("plan %s is %s, reports require an accepted or completed plan", plan.ID, plan.Status)
	}

	report := &model.AuditReport{
		ID:        uuid.NewString(),
		PlanID:    req.PlanID,
		Title:     req.Title,
		Findings:  req.Findings,
		Status:    model.ReportStatusDraft,
		CreatedBy: v.ID,
		CreatedAt: time.Now(),
	}

	if err := s.reports.Create(ctx, report); err != nil {
		return nil, err
	}

	s.hub.Notify("report.created", report.ID, v.ID)
	return report, nil
}

func (s *reportService) GetReport(ctx context.Context, id string) (*model.AuditReport, error) {
	return s.reports.GetByID(ctx, id)
}

func (s *reportService) ListReports(ctx context.Context) ([]model.AuditReport, error) {
	return s.reports.List(ctx)
}

func (s *reportService) SubmitReport(ctx context.Context, v policy.Viewer, id string) (*model.AuditReport, error) {
	if err := policy.Require(v, policy.CapReportSubmit); err != nil {
		return nil, err
	}

	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if report.Status != model.ReportStatusDraft {
		return nil, apperr.InvalidTransition("report %s is %s, only draft reports can be submitted", id, report.Status)
	}

	report.Status = model.ReportStatusSubmitted
	if err := s.reports.Update(ctx, report); err != nil {
		return nil, err
	}

	s.hub.Notify("report.submitted", report.ID, v.ID)
	return report, nil
}

func (s *reportService) ApproveReport(ctx context.Context, v policy.Viewer, id string) (*model.AuditReport, error) {
	if err := policy.Require(v, policy.CapReportApprove); err != nil {
		return nil, err
	}

	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if report.Status != model.ReportStatusSubmitted {
		return nil, apperr.InvalidTransition("report %s is %s, only submitted reports can be approved", id, report.Status)
	}

	// ApprovedBy is set exactly when the status flips to approved
	report.Status = model.ReportStatusApproved
	report.ApprovedBy = v.ID
	if err := s.reports.Update(ctx, report); err != nil {
		return nil, err
	}

	s.hub.Notify("report.approved", report.ID, v.ID)
	return report, nil
}
