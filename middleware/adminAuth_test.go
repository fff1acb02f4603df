package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"classadmin/config"
	"classadmin/utils"

	"github.com/gin-gonic/gin"
)

func newGuardedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig.AdminJWTSecret = "test-secret"

	r := gin.New()
	r.GET("/guarded", JWTAuthAdminMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"adminID": c.GetString("adminID")})
	})
	return r
}

func TestJWTAuthAdminMiddlewareAcceptsMintedToken(t *testing.T) {
	r := newGuardedRouter(t)

	token, err := utils.GenerateAdminToken("admin-1", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAdminToken() failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "admin-1") {
		t.Errorf("response does not carry the admin ID: %s", w.Body.String())
	}
}

func TestJWTAuthAdminMiddlewareRejects(t *testing.T) {
	r := newGuardedRouter(t)

	expired, err := utils.GenerateAdminToken("admin-1", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateAdminToken() failed: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "no bearer prefix", header: "Token abc"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
		{name: "expired token", header: "Bearer " + expired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
			}
		})
	}
}
