package model

// Role constants, the closed set of roles the capability table knows about
const (
	RoleLeadAuditor = "lead_auditor"
	RoleAuditor     = "auditor"
	RoleAuditee     = "auditee"
	RoleAPManager   = "ap_manager"
	RoleExecutive   = "executive"
)

// User represents a demo identity. The identity list is closed: users are
// seeded at startup and never created or deleted at runtime.
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"` // lead_auditor, auditor, auditee, ap_manager, executive
	Department string `json:"department,omitempty"`
	Password   string `json:"-"` // bcrypt hash of the shared demo passphrase
}

// ValidRole reports whether role belongs to the closed role set
func ValidRole(role string) bool {
	switch role {
	case RoleLeadAuditor, RoleAuditor, RoleAuditee, RoleAPManager, RoleExecutive:
		return true
	}
	return false
}
