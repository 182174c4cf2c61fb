// Package policy decides whether a viewer may perform an operation on a
// record. Everything here is pure and side-effect free: the capability
// table is built once, and contextual checks only read the records they
// are handed.
package policy

import (
	"cartool/internal/model"
	"cartool/pkg/apperr"
)

// Capability identifies a gated operation
type Capability string

const (
	CapPlanCreate     Capability = "plan.create"
	CapPlanSend       Capability = "plan.send"
	CapPlanAccept     Capability = "plan.accept"
	CapPlanComplete   Capability = "plan.complete"
	CapReportCreate   Capability = "report.create"
	CapReportSubmit   Capability = "report.submit"
	CapReportApprove  Capability = "report.approve"
	CapCARCreate      Capability = "car.create"
	CapCARApprove     Capability = "car.approve"
	CapCARClose       Capability = "car.close"
	CapActionDeclare  Capability = "action.declare"
	CapActionEvidence Capability = "action.evidence"
	CapActionVerify   Capability = "action.verify"
	CapDueDateRequest Capability = "duedate.request"
	CapDueDateDecide  Capability = "duedate.decide"
	CapViewAnalytics  Capability = "view.analytics"
	CapViewSummary    Capability = "view.summary"
	CapViewDueDates   Capability = "view.duedates"
)

// Viewer is the identity a policy decision is made for
type Viewer struct {
	ID   string
	Role string
}

// capabilityRoles is the closed capability table: which roles may attempt
// which operation. Contextual constraints (ownership, referenced-record
// status) are checked separately by the Can* helpers and the services.
var capabilityRoles = map[Capability][]string{
	CapPlanCreate:     {model.RoleLeadAuditor},
	CapPlanSend:       {model.RoleLeadAuditor},
	CapPlanAccept:     {model.RoleAuditee},
	CapPlanComplete:   {model.RoleLeadAuditor},
	CapReportCreate:   {model.RoleLeadAuditor, model.RoleAuditor},
	CapReportSubmit:   {model.RoleLeadAuditor, model.RoleAuditor},
	CapReportApprove:  {model.RoleAPManager},
	CapCARCreate:      {model.RoleLeadAuditor, model.RoleAuditor},
	CapCARApprove:     {model.RoleLeadAuditor},
	CapCARClose:       {model.RoleAuditor, model.RoleLeadAuditor},
	CapActionDeclare:  {model.RoleAuditee},
	CapActionEvidence: {model.RoleAuditee},
	CapActionVerify:   {model.RoleAuditor, model.RoleLeadAuditor},
	CapDueDateRequest: {model.RoleAuditee},
	CapDueDateDecide:  {model.RoleLeadAuditor},
	CapViewAnalytics:  {model.RoleLeadAuditor, model.RoleAPManager, model.RoleExecutive},
	CapViewSummary:    {model.RoleLeadAuditor, model.RoleAPManager, model.RoleExecutive},
	CapViewDueDates:   {model.RoleLeadAuditor, model.RoleAuditee},
}

// Allows reports whether the role may attempt the capability at all
func Allows(role string, c Capability) bool {
	for _, r := range capabilityRoles[c] {
		if r == role {
			return true
		}
	}
	return false
}

// Require returns PermissionDenied unless the viewer's role holds the
// capability
func Require(v Viewer, c Capability) error {
	if !Allows(v.Role, c) {
		return apperr.PermissionDenied("role %s may not perform %s", v.Role, c)
	}
	return nil
}

// SeesAllRecords reports whether the role views the full CAR form and
// action lists. Auditees only ever see records assigned to them.
func SeesAllRecords(role string) bool {
	switch role {
	case model.RoleLeadAuditor, model.RoleAuditor, model.RoleAPManager, model.RoleExecutive:
		return true
	}
	return false
}

// CanDeclareAction checks that the viewer is the auditee the CAR form is
// assigned to
func CanDeclareAction(v Viewer, car *model.CARForm) error {
	if err := Require(v, CapActionDeclare); err != nil {
		return err
	}
	if car.AssignedTo != v.ID {
		return apperr.PermissionDenied("CAR form %s is not assigned to you", car.ID)
	}
	return nil
}

// CanUploadEvidence checks ownership of the action; the execution-state
// constraint is enforced by the service transition guard
func CanUploadEvidence(v Viewer, a *model.Action) error {
	if err := Require(v, CapActionEvidence); err != nil {
		return err
	}
	if a.AssignedTo != v.ID {
		return apperr.PermissionDenied("action %s is not assigned to you", a.ID)
	}
	return nil
}

// CanRequestExtension checks that the viewer owns the action
func CanRequestExtension(v Viewer, a *model.Action) error {
	if err := Require(v, CapDueDateRequest); err != nil {
		return err
	}
	if a.AssignedTo != v.ID {
		return apperr.PermissionDenied("action %s is not assigned to you", a.ID)
	}
	return nil
}

// CanDecideDueDate checks the approver role and forbids deciding one's own
// extension request
func CanDecideDueDate(v Viewer, log *model.DueDateLog) error {
	if err := Require(v, CapDueDateDecide); err != nil {
		return err
	}
	if log.RequestedBy == v.ID {
		return apperr.PermissionDenied("cannot decide your own extension request")
	}
	return nil
}

// CanAcceptPlan checks that the viewer is listed as an auditee on the plan
func CanAcceptPlan(v Viewer, p *model.AuditPlan) error {
	if err := Require(v, CapPlanAccept); err != nil {
		return err
	}
	if !p.HasAuditee(v.ID) {
		return apperr.PermissionDenied("plan %s is not addressed to you", p.ID)
	}
	return nil
}
