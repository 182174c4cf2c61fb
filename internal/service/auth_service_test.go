package service

import (
	"context"
	"testing"

	"cartool/internal/model"
	"cartool/internal/store"
)

func TestLogin(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.users)

	res, err := svc.Login(context.Background(), LoginRequest{
		Email:    "lead.auditor@company.com",
		Password: store.DemoPassphrase,
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token == "" {
		t.Error("expected a session token")
	}
	if res.User.ID != "1" || res.User.Role != model.RoleLeadAuditor {
		t.Errorf("user = %s/%s, want 1/%s", res.User.ID, res.User.Role, model.RoleLeadAuditor)
	}
	if res.User.Name != "Sarah Johnson" {
		t.Errorf("name = %q, want Sarah Johnson", res.User.Name)
	}
}

func TestLoginEveryDemoIdentity(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.users)

	emails := map[string]string{
		"lead.auditor@company.com": model.RoleLeadAuditor,
		"auditor@company.com":      model.RoleAuditor,
		"auditee@company.com":      model.RoleAuditee,
		"ap.manager@company.com":   model.RoleAPManager,
		"executive@company.com":    model.RoleExecutive,
	}

	for email, role := range emails {
		res, err := svc.Login(context.Background(), LoginRequest{Email: email, Password: store.DemoPassphrase})
		if err != nil {
			t.Errorf("Login(%s): %v", email, err)
			continue
		}
		if res.User.Role != role {
			t.Errorf("Login(%s) role = %q, want %q", email, res.User.Role, role)
		}
	}
}

func TestLoginFailure(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.users)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@company.com", store.DemoPassphrase},
		{"wrong passphrase", "lead.auditor@company.com", "letmein"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), LoginRequest{Email: tt.email, Password: tt.password})
			if err == nil {
				t.Fatal("expected login to fail")
			}
			// The message must not reveal which part was wrong
			if err.Error() != "invalid email or password" {
				t.Errorf("error = %q, want the generic failure message", err.Error())
			}
		})
	}
}

func TestGetUser(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.users)

	user, err := svc.GetUser(context.Background(), "3")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if user.Email != "auditee@company.com" || user.Role != model.RoleAuditee {
		t.Errorf("user = %s/%s, want auditee@company.com/%s", user.Email, user.Role, model.RoleAuditee)
	}

	if _, err := svc.GetUser(context.Background(), "99"); err == nil {
		t.Error("expected unknown user to fail")
	}
}
