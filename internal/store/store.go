package store

import (
	"sync"

	"cartool/internal/model"
)

// Store holds the in-memory record collections for the whole process.
// There is no persistence layer: records live for the lifetime of the
// process and are only ever appended or transitioned, never deleted.
// The embedded RWMutex guards every collection; repositories take the
// lock around each access.
type Store struct {
	sync.RWMutex

	Users        []model.User
	AuditPlans   []model.AuditPlan
	AuditReports []model.AuditReport
	CARForms     []model.CARForm
	Actions      []model.Action
	DueDateLogs  []model.DueDateLog
}

// New returns a store seeded with the demo dataset
func New() (*Store, error) {
	s := &Store{}
	if err := s.seed(); err != nil {
		return nil, err
	}
	return s, nil
}
