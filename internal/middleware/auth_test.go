package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cartool/internal/model"
	"cartool/internal/policy"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, sub, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": role,
	})
	signed, err := token.SignedString(GetJWTSecret())
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func newGuardedRouter(guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/guarded", guard, func(c *gin.Context) {
		v := Viewer(c)
		c.JSON(http.StatusOK, gin.H{"id": v.ID, "role": v.Role})
	})
	return router
}

func TestRequireRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	router := newGuardedRouter(RequireRole(model.RoleLeadAuditor, model.RoleAuditor))

	tests := []struct {
		name       string
		authorize  func(r *http.Request)
		wantStatus int
	}{
		{
			"missing token",
			func(r *http.Request) {},
			http.StatusUnauthorized,
		},
		{
			"malformed header",
			func(r *http.Request) { r.Header.Set("Authorization", "token abc") },
			http.StatusUnauthorized,
		},
		{
			"garbage token",
			func(r *http.Request) { r.Header.Set("Authorization", "Bearer not-a-jwt") },
			http.StatusUnauthorized,
		},
		{
			"allowed role via bearer header",
			func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+signToken(t, "2", model.RoleAuditor)) },
			http.StatusOK,
		},
		{
			"allowed role via session cookie",
			func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "access_token", Value: signToken(t, "1", model.RoleLeadAuditor)})
			},
			http.StatusOK,
		},
		{
			"role outside the allow list",
			func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+signToken(t, "3", model.RoleAuditee)) },
			http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			tt.authorize(req)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireCapability(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	router := newGuardedRouter(RequireCapability(policy.CapViewAnalytics))

	tests := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{"executive holds the capability", model.RoleExecutive, http.StatusOK},
		{"ap_manager holds the capability", model.RoleAPManager, http.StatusOK},
		{"auditor does not", model.RoleAuditor, http.StatusForbidden},
		{"auditee does not", model.RoleAuditee, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, "5", tt.role))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestViewerFromClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	router := newGuardedRouter(RequireRole(model.RoleLeadAuditor))

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "1", model.RoleLeadAuditor))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if body != `{"id":"1","role":"lead_auditor"}` {
		t.Errorf("body = %s", body)
	}
}
