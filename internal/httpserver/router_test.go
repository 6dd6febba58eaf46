package httpserver

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestSessionMiddlewareIssuesCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessionMiddleware())
	router.GET("/test", func(c *gin.Context) {
		if sessionID(c) == "" {
			t.Fatalf("expected session id in context")
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	cookie := rec.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, sessionCookie+"=") {
		t.Fatalf("expected session cookie to be set, got %q", cookie)
	}
}

func TestSessionMiddlewareKeepsExistingCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessionMiddleware())

	var got string
	router.GET("/test", func(c *gin.Context) {
		got = sessionID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "existing-session"})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if got != "existing-session" {
		t.Fatalf("expected existing session id, got %q", got)
	}
	if cookie := rec.Header().Get("Set-Cookie"); strings.Contains(cookie, sessionCookie) {
		t.Fatalf("expected no new cookie, got %q", cookie)
	}
}

func TestHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(testLogger(), nil, Deps{}, []string{"http://localhost:3000"})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestReadyzWithoutDB(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(testLogger(), nil, Deps{}, []string{"http://localhost:3000"})

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
}
