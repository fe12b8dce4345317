package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/juandiegoarchila/Cocina-Casera-Movil-sub000/internal/auth"

	"github.com/gin-gonic/gin"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := NewRouter(Handlers{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestOrdersRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := NewRouter(Handlers{})

	req := httptest.NewRequest(http.MethodGet, "/orders/orders", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestSettlementRequiresAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	r := NewRouter(Handlers{})

	token, err := auth.GenerateToken("w-1", "mesera@example.com", auth.RoleWaiter)
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/payments/caja", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", w.Code)
	}
}
