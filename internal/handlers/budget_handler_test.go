package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"finmate/internal/models"
	"finmate/internal/services"
	"finmate/internal/testutil"
)

// setupBudgetRouter builds a router with a fresh database and a fake auth
// middleware injecting the test user's ID.
func setupBudgetRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
	user := testutil.CreateTestUser(t, db)

	handler := NewBudgetHandler(services.NewBudgetService(db))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userID", user.ID)
	})
	router.GET("/budgets", handler.GetCeilings)
	router.PUT("/budgets/:category", handler.SetCeiling)
	router.GET("/budgets/:category", handler.GetCeiling)
	router.DELETE("/budgets/:category", handler.DeleteCeiling)
	return router
}

func TestBudgetHandler_SetCeiling(t *testing.T) {
	router := setupBudgetRouter(t)

	t.Run("sets_ceiling", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/budgets/Food", strings.NewReader(`{"amount": 500000}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var ceiling models.BudgetCeiling
		testutil.AssertNoError(t, json.Unmarshal(w.Body.Bytes(), &ceiling))
		if ceiling.Amount != 500000 || ceiling.Category != models.CategoryFood {
			t.Errorf("unexpected ceiling %+v", ceiling)
		}
	})

	t.Run("rejects_unknown_category", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/budgets/Cryptocurrency", strings.NewReader(`{"amount": 500000}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rejects_zero_amount", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/budgets/Food", strings.NewReader(`{"amount": 0}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_GetCeilings(t *testing.T) {
	router := setupBudgetRouter(t)

	for _, category := range []string{"Housing", "Food"} {
		req := httptest.NewRequest(http.MethodPut, "/budgets/"+category, strings.NewReader(`{"amount": 100000}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/budgets", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var ceilings []models.BudgetCeiling
	testutil.AssertNoError(t, json.Unmarshal(w.Body.Bytes(), &ceilings))
	if len(ceilings) != 2 {
		t.Fatalf("expected 2 ceilings, got %d", len(ceilings))
	}
	if ceilings[0].Category != models.CategoryHousing {
		t.Errorf("expected Housing first, got %s", ceilings[0].Category)
	}
}

func TestBudgetHandler_DeleteCeiling(t *testing.T) {
	router := setupBudgetRouter(t)

	t.Run("not_found_when_unconfigured", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/budgets/Travel", nil))

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("deletes_configured_ceiling", func(t *testing.T) {
		put := httptest.NewRequest(http.MethodPut, "/budgets/Travel", strings.NewReader(`{"amount": 100000}`))
		put.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(httptest.NewRecorder(), put)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/budgets/Travel", nil))

		if w.Code != http.StatusNoContent {
			t.Errorf("expected 204, got %d: %s", w.Code, w.Body.String())
		}
	})
}
