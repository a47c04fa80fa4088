package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tidify/models"
	"tidify/utils"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubUserRepo struct {
	users map[string]*models.User
	err   error
}

func (s *stubUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for name, u := range s.users {
		if strings.EqualFold(name, username) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) GetAll(_ context.Context) ([]models.User, error) {
	return nil, nil
}

func (s *stubUserRepo) Create(_ context.Context, _ *models.User) error {
	return errors.New("not implemented")
}

func (s *stubUserRepo) Update(_ context.Context, _ *models.User) error {
	return errors.New("not implemented")
}

func (s *stubUserRepo) Count(_ context.Context) (int, error) {
	return len(s.users), nil
}

func newAuthRouter(repo *stubUserRepo) *gin.Engine {
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(repo), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"username": c.GetString("username"),
			"role":     c.GetString("role"),
		})
	})
	return r
}

func get(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// issueSession returns a token and a repo whose user row carries its hash,
// the state a real login leaves behind.
func issueSession(t *testing.T, username, role string) (string, *stubUserRepo) {
	t.Helper()
	token, err := utils.GenerateToken(username, role, time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	repo := &stubUserRepo{users: map[string]*models.User{
		username: {Username: username, Role: role, TokenHash: utils.HashToken(token)},
	}}
	return token, repo
}

func TestJWTAuthMiddlewareAcceptsValidSession(t *testing.T) {
	token, repo := issueSession(t, "ravi", models.RoleWorker)

	w := get(t, newAuthRouter(repo), "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, `"username":"ravi"`) || !strings.Contains(body, `"role":"worker"`) {
		t.Fatalf("expected identity in context, got %s", body)
	}
}

func TestJWTAuthMiddlewareUsesStoredRole(t *testing.T) {
	// The role claim inside the token is advisory; the user row decides.
	token, repo := issueSession(t, "ravi", models.RoleWorker)
	repo.users["ravi"].Role = models.RoleAdmin

	w := get(t, newAuthRouter(repo), "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"role":"admin"`) {
		t.Fatalf("expected the stored role to win, got %s", w.Body.String())
	}
}

func TestJWTAuthMiddlewareRejections(t *testing.T) {
	validToken, repo := issueSession(t, "ravi", models.RoleWorker)

	otherToken, err := utils.GenerateToken("ravi", models.RoleWorker, 2*time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	expiredToken, err := utils.GenerateToken("ravi", models.RoleWorker, -time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	tests := []struct {
		name    string
		header  string
		repo    *stubUserRepo
		wantMsg string
	}{
		{
			name:    "missing header",
			header:  "",
			repo:    repo,
			wantMsg: "Insufficient authorization",
		},
		{
			name:    "wrong scheme",
			header:  "token " + validToken,
			repo:    repo,
			wantMsg: "Insufficient authorization",
		},
		{
			name:    "empty token",
			header:  "Bearer ",
			repo:    repo,
			wantMsg: "Insufficient authorization",
		},
		{
			name:    "garbage token",
			header:  "Bearer not-a-jwt",
			repo:    repo,
			wantMsg: "Invalid or expired token",
		},
		{
			name:    "expired token",
			header:  "Bearer " + expiredToken,
			repo:    repo,
			wantMsg: "Invalid or expired token",
		},
		{
			name:    "token from a superseded login",
			header:  "Bearer " + otherToken,
			repo:    repo,
			wantMsg: "Token mismatch",
		},
		{
			name:   "revoked session",
			header: "Bearer " + validToken,
			repo: &stubUserRepo{users: map[string]*models.User{
				"ravi": {Username: "ravi", Role: models.RoleWorker, TokenHash: ""},
			}},
			wantMsg: "Token mismatch",
		},
		{
			name:    "unknown user",
			header:  "Bearer " + validToken,
			repo:    &stubUserRepo{users: map[string]*models.User{}},
			wantMsg: "Authentication error",
		},
		{
			name:    "datastore failure",
			header:  "Bearer " + validToken,
			repo:    &stubUserRepo{err: errors.New("unreachable")},
			wantMsg: "Authentication error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, newAuthRouter(tt.repo), tt.header)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected status 401, got %d: %s", w.Code, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tt.wantMsg) {
				t.Fatalf("expected message %q, got %s", tt.wantMsg, w.Body.String())
			}
		})
	}
}

func TestRequireRoles(t *testing.T) {
	newRouter := func(role string) *gin.Engine {
		r := gin.New()
		r.GET("/admin",
			func(c *gin.Context) {
				if role != "" {
					c.Set("role", role)
				}
			},
			RequireRoles(models.RoleAdmin),
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)
		return r
	}

	tests := []struct {
		name     string
		role     string
		wantCode int
	}{
		{name: "allowed role", role: models.RoleAdmin, wantCode: http.StatusOK},
		{name: "other role", role: models.RoleCustomer, wantCode: http.StatusForbidden},
		{name: "no session role", role: "", wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			w := httptest.NewRecorder()
			newRouter(tt.role).ServeHTTP(w, req)
			if w.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, w.Code)
			}
		})
	}
}

func TestRequireRolesAcceptsAnyListedRole(t *testing.T) {
	r := gin.New()
	r.GET("/profile",
		func(c *gin.Context) { c.Set("role", models.RoleAdmin) },
		RequireRoles(models.RoleWorker, models.RoleAdmin),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}
