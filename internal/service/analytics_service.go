package service

import (
	"context"
	"math"
	"strings"
	"time"

	"cartool/internal/model"
	"cartool/internal/repository"

	"github.com/shopspring/decimal"
)

// IsOverdue reports whether an action is past due. A passed action is
// never overdue, regardless of its due date.
func IsOverdue(a model.Action, now time.Time) bool {
	return a.Status != model.ActionStatusPassed && now.After(a.DueDate)
}

// CompletionRate returns the share of passed actions as a percentage in
// [0,100]; an empty collection yields 0
func CompletionRate(actions []model.Action) float64 {
	if len(actions) == 0 {
		return 0
	}
	completed := 0
	for _, a := range actions {
		if a.Status == model.ActionStatusPassed {
			completed++
		}
	}
	return float64(completed) / float64(len(actions)) * 100
}

// MaturityLevel maps a completion rate onto the maturity scale. Thresholds
// are evaluated high to low and do not overlap.
func MaturityLevel(completionRate float64) string {
	switch {
	case completionRate >= 90:
		return model.MaturityAdvanced
	case completionRate >= 70:
		return model.MaturityDeveloping
	case completionRate >= 50:
		return model.MaturityBasic
	default:
		return model.MaturityInitial
	}
}

// IsMajorNC classifies a non-conformity by its clause: clause 7 findings
// (support processes) count as major, everything else as minor
func IsMajorNC(car model.CARForm) bool {
	return car.Type == model.CARTypeNC && strings.HasPrefix(car.Clause, "7.")
}

// AnalyticsService computes read-only aggregates over the record
// collections. Every number is re-derived on query; nothing here is ever
// stored back.
type AnalyticsService interface {
	Snapshot(ctx context.Context) (*model.Analytics, error)
	Dashboard(ctx context.Context) (*model.DashboardStats, error)
	Summary(ctx context.Context) (*model.AuditSummary, error)
}

type analyticsService struct {
	cars    repository.CARRepository
	actions repository.ActionRepository
	plans   repository.PlanRepository
	now     func() time.Time
}

// NewAnalyticsService returns a new instance of AnalyticsService
func NewAnalyticsService(cars repository.CARRepository, actions repository.ActionRepository, plans repository.PlanRepository) AnalyticsService {
	return &analyticsService{cars: cars, actions: actions, plans: plans, now: time.Now}
}

// Snapshot builds the full analytics projection: NC/OFI totals, action
// completion and overdue counts, repeated findings and the NC groupings
// by process area and clause
func (s *analyticsService) Snapshot(ctx context.Context) (*model.Analytics, error) {
	cars, err := s.cars.List(ctx)
	if err != nil {
		return nil, err
	}
	actions, err := s.actions.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	a := &model.Analytics{
		NCsByProcessArea: make(map[string]int),
		NCsByClause:      make(map[string]int),
	}

	for _, car := range cars {
		switch car.Type {
		case model.CARTypeNC:
			a.TotalNCs++
			a.NCsByProcessArea[car.ProcessArea]++
			a.NCsByClause[car.Clause]++
		case model.CARTypeOFI:
			a.TotalOFIs++
		}
	}

	// A finding is "repeated" when its clause already carries an earlier NC:
	// each clause with n occurrences contributes n-1 repeats
	for _, count := range a.NCsByClause {
		if count > 1 {
			a.RepeatedNCs += count - 1
		}
	}

	for _, action := range actions {
		if action.Status == model.ActionStatusPassed {
			a.CompletedActions++
		}
		if IsOverdue(action, now) {
			a.OverdueActions++
		}
	}

	return a, nil
}

// Dashboard computes the headline numbers every role's landing view shows
func (s *analyticsService) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	cars, err := s.cars.List(ctx)
	if err != nil {
		return nil, err
	}
	actions, err := s.actions.List(ctx)
	if err != nil {
		return nil, err
	}
	plans, err := s.plans.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	stats := &model.DashboardStats{TotalCARs: len(cars)}

	for _, car := range cars {
		if car.Type == model.CARTypeNC {
			stats.NCCount++
		} else {
			stats.OFICount++
		}
	}
	for _, action := range actions {
		if action.Status == model.ActionStatusPassed {
			stats.CompletedActions++
		}
		if IsOverdue(action, now) {
			stats.OverdueActions++
		}
	}
	for _, plan := range plans {
		if plan.Status == model.PlanStatusDraft || plan.Status == model.PlanStatusSent {
			stats.PendingPlans++
		}
	}
	stats.CompletionRate = int(math.Round(CompletionRate(actions)))

	return stats, nil
}

// Summary computes the executive overview: maturity level from the
// completion rate plus the major/minor non-conformity split
func (s *analyticsService) Summary(ctx context.Context) (*model.AuditSummary, error) {
	cars, err := s.cars.List(ctx)
	if err != nil {
		return nil, err
	}
	actions, err := s.actions.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rate := CompletionRate(actions)
	summary := &model.AuditSummary{
		MaturityLevel:  MaturityLevel(rate),
		CompletionRate: rate,
	}

	for _, car := range cars {
		if car.Type != model.CARTypeNC {
			continue
		}
		if IsMajorNC(car) {
			summary.MajorNCs++
		} else {
			summary.MinorNCs++
		}
	}
	for _, action := range actions {
		if action.Status == model.ActionStatusPassed {
			summary.CompletedActions++
		}
		if IsOverdue(action, now) {
			summary.OverdueActions++
		}
	}

	// Success rate over resolved-or-overdue work, guarded against an empty
	// denominator
	denominator := summary.CompletedActions + summary.OverdueActions
	if denominator == 0 {
		denominator = 1
	}
	summary.VerificationSuccessRate = decimal.NewFromInt(int64(summary.CompletedActions)).
		Div(decimal.NewFromInt(int64(denominator))).
		Mul(decimal.NewFromInt(100)).
		StringFixed(1)

	return summary, nil
}
