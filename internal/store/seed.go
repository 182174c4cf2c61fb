package store

import (
	"fmt"
	"time"

	"cartool/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// DemoPassphrase is the single shared passphrase for every demo identity
const DemoPassphrase = "demo123"

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// seed loads the demo dataset: five fixed identities plus a small set of
// plans, reports, findings, actions and extension requests that exercise
// every workflow state
func (s *Store) seed() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassphrase), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo passphrase: %w", err)
	}
	pw := string(hash)

	s.Users = []model.User{
		{ID: "1", Email: "lead.auditor@company.com", Name: "Sarah Johnson", Role: model.RoleLeadAuditor, Department: "Quality Assurance", Password: pw},
		{ID: "2", Email: "auditor@company.com", Name: "Mike Chen", Role: model.RoleAuditor, Department: "Internal Audit", Password: pw},
		{ID: "3", Email: "auditee@company.com", Name: "Emma Wilson", Role: model.RoleAuditee, Department: "Operations", Password: pw},
		{ID: "4", Email: "ap.manager@company.com", Name: "Robert Davis", Role: model.RoleAPManager, Department: "Management", Password: pw},
		{ID: "5", Email: "executive@company.com", Name: "Lisa Anderson", Role: model.RoleExecutive, Department: "Executive", Password: pw},
	}

	s.AuditPlans = []model.AuditPlan{
		{
			ID:            "1",
			Title:         "ISO 9001:2015 Quality Management System Audit",
			Scope:         "Document Control, Management Review, Internal Audit Process",
			Criteria:      "ISO 9001:2015 clauses 7.5, 9.2, 9.3",
			Objectives:    "Verify compliance with QMS requirements and effectiveness of processes",
			Auditees:      []string{"3", "4"},
			ScheduledDate: date(2024, time.February, 15),
			Status:        model.PlanStatusAccepted,
			CreatedBy:     "1",
			CreatedAt:     date(2024, time.January, 10),
		},
		{
			ID:            "2",
			Title:         "Environmental Management System Audit",
			Scope:         "Waste Management, Energy Consumption, Environmental Monitoring",
			Criteria:      "ISO 14001:2015 clauses 8.1, 9.1, 10.2",
			Objectives:    "Assess environmental performance and compliance",
			Auditees:      []string{"3"},
			ScheduledDate: date(2024, time.March, 1),
			Status:        model.PlanStatusSent,
			CreatedBy:     "1",
			CreatedAt:     date(2024, time.January, 20),
		},
	}

	s.AuditReports = []model.AuditReport{
		{
			ID:         "1",
			PlanID:     "1",
			Title:      "ISO 9001:2015 QMS Audit Report - February 2024",
			Findings:   "Two non-conformities identified in document control and one OFI in management review process",
			Status:     model.ReportStatusApproved,
			CreatedBy:  "2",
			ApprovedBy: "4",
			CreatedAt:  date(2024, time.February, 16),
		},
	}

	s.CARForms = []model.CARForm{
		{
			ID:                  "1",
			ReportID:            "1",
			Type:                model.CARTypeNC,
			Title:               "Outdated Quality Manual Version in Use",
			Description:         "Quality Manual Rev 3.1 found in production area while Rev 3.3 is current",
			ProcessArea:         "Document Control",
			Clause:              "7.5.3",
			RootCause:           "Lack of controlled distribution process for updated documents",
			ImmediateCorrection: "Replaced outdated manual with current version",
			Status:              model.CARStatusForVerification,
			AssignedTo:          "3",
			DueDate:             date(2024, time.March, 15),
			CreatedBy:           "2",
			ApprovedBy:          "1",
			CreatedAt:           date(2024, time.February, 17),
		},
		{
			ID:          "2",
			ReportID:    "1",
			Type:        model.CARTypeOFI,
			Title:       "Management Review Meeting Minutes Enhancement",
			Description: "Include more detailed action items and responsibility assignments",
			ProcessArea: "Management Review",
			Clause:      "9.3.3",
			Status:      model.CARStatusForResponse,
			AssignedTo:  "4",
			DueDate:     date(2024, time.March, 30),
			CreatedBy:   "2",
			CreatedAt:   date(2024, time.February, 17),
		},
		{
			ID:          "3",
			ReportID:    "1",
			Type:        model.CARTypeNC,
			Title:       "Missing Calibration Records",
			Description: "Temperature monitoring equipment lacks calibration certificates",
			ProcessArea: "Monitoring and Measurement",
			Clause:      "7.1.5",
			RootCause:   "Calibration schedule not properly maintained",
			Status:      model.CARStatusPassed,
			AssignedTo:  "3",
			DueDate:     date(2024, time.February, 28),
			CreatedBy:   "1",
			ApprovedBy:  "1",
			CreatedAt:   date(2024, time.February, 17),
		},
	}

	completed := date(2024, time.February, 25)
	s.Actions = []model.Action{
		{
			ID:              "1",
			CARID:           "1",
			Description:     "Implement controlled document distribution matrix and update procedure",
			Status:          model.ActionStatusForVerification,
			AssignedTo:      "3",
			DueDate:         date(2024, time.March, 15),
			OriginalDueDate: date(2024, time.March, 10),
			CreatedAt:       date(2024, time.February, 18),
		},
		{
			ID:              "2",
			CARID:           "2",
			Description:     "Revise management review template to include detailed action items section",
			Status:          model.ActionStatusForExecution,
			AssignedTo:      "4",
			DueDate:         date(2024, time.March, 30),
			OriginalDueDate: date(2024, time.March, 30),
			CreatedAt:       date(2024, time.February, 18),
		},
		{
			ID:              "3",
			CARID:           "3",
			Description:     "Establish calibration tracking system and schedule",
			Status:          model.ActionStatusPassed,
			AssignedTo:      "3",
			DueDate:         date(2024, time.February, 28),
			OriginalDueDate: date(2024, time.February, 28),
			CompletedDate:   &completed,
			VerifiedBy:      "2",
			CreatedAt:       date(2024, time.February, 18),
		},
	}

	s.DueDateLogs = []model.DueDateLog{
		{
			ID:          "1",
			ActionID:    "1",
			OldDate:     date(2024, time.March, 10),
			NewDate:     date(2024, time.March, 15),
			Reason:      "Additional time needed for stakeholder consultation",
			RequestedBy: "3",
			ApprovedBy:  "1",
			Status:      model.DueDateLogApproved,
			CreatedAt:   date(2024, time.February, 25),
		},
		{
			ID:          "2",
			ActionID:    "2",
			OldDate:     date(2024, time.March, 20),
			NewDate:     date(2024, time.March, 30),
			Reason:      "Waiting for input from senior management",
			RequestedBy: "4",
			Status:      model.DueDateLogPending,
			CreatedAt:   date(2024, time.March, 1),
		},
	}

	return nil
}
