package middleware

import (
	"bloom_daily_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(handlers...)
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, util.GetUserEmailFromContext(c))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func TestIdentityHeaderAndFallback(t *testing.T) {
	id := NewIdentity("user@example.com")
	r := newEngine(id.Middleware())

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"fallback", "", "user@example.com"},
		{"header", "other@example.com", "other@example.com"},
		{"blank header", "   ", "user@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set(util.UserEmailHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK || w.Body.String() != tt.want {
				t.Errorf("got %d %q, want 200 %q", w.Code, w.Body.String(), tt.want)
			}
		})
	}
}

func TestIdentityDefaultSwap(t *testing.T) {
	id := NewIdentity("user@example.com")
	r := newEngine(id.Middleware())

	id.SetDefaultEmail("new@example.com")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	if w.Body.String() != "new@example.com" {
		t.Errorf("identity = %q, want new@example.com", w.Body.String())
	}
}

func TestIdentityRejectsWithoutDefault(t *testing.T) {
	r := newEngine(NewIdentity("").Middleware())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID(), RequestLogger())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	if got := w.Header().Get(util.RequestIDHeader); len(got) != 36 {
		t.Errorf("generated request id = %q", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(util.RequestIDHeader, "req-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(util.RequestIDHeader); got != "req-123" {
		t.Errorf("request id = %q, want req-123", got)
	}
}

func TestRecovery(t *testing.T) {
	r := newEngine(RequestID(), Recovery())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
