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

type CreateCARRequest struct {
	ReportID            string `json:"report_id" binding:"required"`
	Type                string `json:"type" binding:"required,oneof=NC OFI"`
	Title               string `json:"title" binding:"required"`
	Description         string `json:"description" binding:"required"`
	ProcessArea         string `json:"process_area" binding:"required"`
	Clause              string `json:"clause" binding:"required"`
	RootCause           string `json:"root_cause"`
	ImmediateCorrection string `json:"immediate_correction"`
	AssignedTo          string `json:"assigned_to" binding:"required"`
	DueDate             string `json:"due_date" binding:"required"` // YYYY-MM-DD
}

type CARFilter struct {
	Type   string // NC, OFI or empty for all
	Status string // workflow status or empty for all
}

// CARService owns the corrective action request lifecycle:
// for_response -> for_approval -> for_verification -> passed | failed
type CARService interface {
	CreateCAR(ctx context.Context, v policy.Viewer, req CreateCARRequest) (*model.CARForm, error)
	GetCAR(ctx context.Context, id string) (*model.CARForm, error)
	ListCARs(ctx context.Context, v policy.Viewer, filter CARFilter) ([]model.CARForm, error)
	ApproveCAR(ctx context.Context, v policy.Viewer, id string) (*model.CARForm, error)
	CloseCAR(ctx context.Context, v policy.Viewer, id string, passed bool) (*model.CARForm, error)
}

type carService struct {
	cars    repository.CARRepository
	reports repository.ReportRepository
	users   repository.UserRepository
	hub     *websocket.Hub
}

// NewCARService returns a new instance of CARService
func NewCARService(cars repository.CARRepository, reports repository.ReportRepository, users repository.UserRepository, hub *websocket.Hub) CARService {
	return &carService{cars: cars, reports: reports, users: users, hub: hub}
}

func (s *carService) CreateCAR(ctx context.Context, v policy.Viewer, req CreateCARRequest) (*model.CARForm, error) {
	if err := policy.Require(v, policy.CapCARCreate); err != nil {
		return nil, err
	}

	if _, err := s.reports.GetByID(ctx, req.ReportID); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, req.AssignedTo); err != nil {
		return nil, apperr.Validation("unknown assignee id %s", req.AssignedTo)
	}

	due, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return nil, apperr.Validation("invalid due_date %q, expected YYYY-MM-DD", req.DueDate)
	}

	// Root cause analysis belongs to non-conformities only
	if req.Type == model.CARTypeOFI && (req.RootCause != "" || req.ImmediateCorrection != "") {
		return nil, apperr.Validation("root_cause and immediate_correction only apply to NC findings")
	}

	car := &model.CARForm{
		ID:                  uuid.NewString(),
		ReportID:            req.ReportID,
		Type:                req.Type,
		Title:               req.Title,
		Description:         req.Description,
		ProcessArea:         req.ProcessArea,
		Clause:              req.Clause,
		RootCause:           req.RootCause,
		ImmediateCorrection: req.ImmediateCorrection,
		Status:              model.CARStatusForResponse,
		AssignedTo:          req.AssignedTo,
		DueDate:             due,
		CreatedBy:           v.ID,
		CreatedAt:           time.Now(),
	}

	if err := s.cars.Create(ctx, car); err != nil {
		return nil, err
	}

	s.hub.Notify("car.created", car.ID, v.ID)
	return car, nil
}

func (s *carService) GetCAR(ctx context.Context, id string) (*model.CARForm, error) {
	return s.cars.GetByID(ctx, id)
}

// ListCARs returns the full collection for roles that see everything and
// only the viewer's assigned forms for auditees
func (s *carService) ListCARs(ctx context.Context, v policy.Viewer, filter CARFilter) ([]model.CARForm, error) {
	var (
		forms []model.CARForm
		err   error
	)
	if policy.SeesAllRecords(v.Role) {
		forms, err = s.cars.List(ctx)
	} else {
		forms, err = s.cars.ListByAssignee(ctx, v.ID)
	}
	if err != nil {
		return nil, err
	}

	filtered := make([]model.CARForm, 0, len(forms))
	for _, f := range forms {
		if filter.Type != "" && f.Type != filter.Type {
			continue
		}
		if filter.Status != "" && f.Status != filter.Status {
			continue
		}
		filtered = append(filtered, f)
	}
	return filtered, nil
}

func (s *carService) ApproveCAR(ctx context.Context, v policy.Viewer, id string) (*model.CARForm, error) {
	if err := policy.Require(v, policy.CapCARApprove); err != nil {
		return nil, err
	}

	car, err := s.cars.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if car.Status != model.CARStatusForApproval {
		return nil, apperr.InvalidTransition("CAR form %s is %s, only for_approval forms can be approved", id, car.Status)
	}

	car.Status = model.CARStatusForVerification
	car.ApprovedBy = v.ID
	if err := s.cars.Update(ctx, car); err != nil {
		return nil, err
	}

	s.hub.Notify("car.approved", car.ID, v.ID)
	return car, nil
}

func (s *carService) CloseCAR(ctx context.Context, v policy.Viewer, id string, passed bool) (*model.CARForm, error) {
	if err := policy.Require(v, policy.CapCARClose); err != nil {
		return nil, err
	}

	car, err := s.cars.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if car.Status != model.CARStatusForVerification {
		return nil, apperr.InvalidTransition("CAR form %s is %s, only for_verification forms can be closed", id, car.Status)
	}

	if passed {
		car.Status = model.CARStatusPassed
	} else {
		car.Status = model.CARStatusFailed
	}
	if err := s.cars.Update(ctx, car); err != nil {
		return nil, err
	}

	s.hub.Notify("car.closed", car.ID, v.ID)
	return car, nil
}
