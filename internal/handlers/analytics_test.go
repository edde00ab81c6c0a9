package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory_control/internal/models"
	"inventory_control/internal/service"
)

func TestAnalyticsHandler(t *testing.T) {
	auth := &mockAuth{parseClaims: &service.Claims{UserID: 3}}
	an := &mockAnalytics{snap: service.Snapshot{
		TotalProducts:        2,
		MostStockedProduct:   &models.Product{ID: 1, Name: "Bolts", Quantity: 900},
		MostExpensiveProduct: &models.Product{ID: 2, Name: "Lathe", Price: 4999.5},
	}}
	r := newTestRouter(&service.Service{Authorization: auth, Analytics: an})

	// 401 without token
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/analytics", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth, got %d", w.Code)
	}

	// 200 with extremes
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/analytics", nil)
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("analytics status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		MostStocked   *models.Product `json:"mostStockedProduct"`
		MostExpensive *models.Product `json:"mostExpensiveProduct"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.MostStocked == nil || out.MostStocked.Quantity != 900 {
		t.Fatalf("unexpected mostStockedProduct: %+v", out.MostStocked)
	}
	if out.MostExpensive == nil || out.MostExpensive.Price != 4999.5 {
		t.Fatalf("unexpected mostExpensiveProduct: %+v", out.MostExpensive)
	}
}

func TestAnalyticsHandler_EmptyCatalog(t *testing.T) {
	auth := &mockAuth{parseClaims: &service.Claims{UserID: 3}}
	an := &mockAnalytics{snap: service.Snapshot{}}
	r := newTestRouter(&service.Service{Authorization: auth, Analytics: an})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/analytics", nil)
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out["mostStockedProduct"] != nil || out["mostExpensiveProduct"] != nil {
		t.Fatalf("expected null extremes, got %v", out)
	}
}
