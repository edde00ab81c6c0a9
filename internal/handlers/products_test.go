package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory_control/internal/models"
	"inventory_control/internal/service"
)

func doJSON(t *testing.T, r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	for k, vv := range authHeader(token) {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	return w
}

func TestProductHandlers_AddProduct(t *testing.T) {
	auth := &mockAuth{parseClaims: &service.Claims{Username: "alice", UserID: 7}}
	cat := &mockCatalog{createRes: service.CreateResult{ID: 11}}
	s := &service.Service{Authorization: auth, Catalog: cat}
	r := newTestRouter(s)

	// no token → 401, catalog untouched
	w := doJSON(t, r, http.MethodPost, "/products", `{}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth, got %d", w.Code)
	}
	if cat.createCalls != 0 {
		t.Fatalf("catalog called without auth")
	}

	// create → 201 with id, caller id forwarded
	body := `{"name":"Widget","type":"tool","sku":"W-1","description":"d","quantity":5,"price":9.99}`
	w = doJSON(t, r, http.MethodPost, "/products", body, "valid")
	if w.Code != http.StatusCreated {
		t.Fatalf("add status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Message string `json:"message"`
		Product struct {
			ID int `json:"id"`
		} `json:"product"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Product.ID != 11 {
		t.Fatalf("expected product id 11, got %d", out.Product.ID)
	}
	if out.Message != "Product added successfully" {
		t.Fatalf("unexpected message %q", out.Message)
	}
	if cat.lastUserID != 7 {
		t.Fatalf("expected owner id 7, got %d", cat.lastUserID)
	}
	if cat.lastInput.Quantity == nil || *cat.lastInput.Quantity != 5 {
		t.Fatalf("quantity not forwarded: %+v", cat.lastInput.Quantity)
	}

	// merge → 201 with merge message
	cat.createRes = service.CreateResult{ID: 11, Merged: true}
	w = doJSON(t, r, http.MethodPost, "/products", body, "valid")
	if w.Code != http.StatusCreated {
		t.Fatalf("merge status=%d, body=%s", w.Code, w.Body.String())
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Message != "Product quantity updated successfully" {
		t.Fatalf("unexpected merge message %q", out.Message)
	}
}

func TestProductHandlers_AddProduct_Errors(t *testing.T) {
	auth := &mockAuth{parseClaims: &service.Claims{UserID: 7}}
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "validation error",
			err:      &service.ValidationError{Message: "SKU is required"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "sku bound to different name",
			err:      &service.SKUConflictError{SKU: "W-1", ExistingName: "Widget"},
			wantCode: http.StatusConflict,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cat := &mockCatalog{createErr: tc.err}
			r := newTestRouter(&service.Service{Authorization: auth, Catalog: cat})

			w := doJSON(t, r, http.MethodPost, "/products", `{"name":"x"}`, "valid")
			if w.Code != tc.wantCode {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.wantCode, w.Body.String())
			}
		})
	}
}

func TestProductHandlers_List(t *testing.T) {
	auth := &mockAuth{parseClaims: &service.Claims{UserID: 7}}
	cat := &mockCatalog{listPage: service.ProductPage{
		Products: []models.Product{{ID: 2, Name: "B", SKU: "B-1"}, {ID: 1, Name: "A", SKU: "A-1"}},
		Pagination: models.Pagination{
			CurrentPage: 1, TotalPages: 3, TotalProducts: 25,
			ItemsPerPage: 10, HasNextPage: true, HasPreviousPage: false,
		},
	}}
	// EventLog is wired too: both it and Catalog expose a List method, and the
	// handler must reach the catalog one.
	r := newTestRouter(&service.Service{Authorization: auth, Catalog: cat, EventLog: &mockEventLog{}})

	w := doJSON(t, r, http.MethodGet, "/products?page=1", "", "valid")
	if w.Code != http.StatusOK {
		t.Fatalf("list status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Products   []models.Product  `json:"products"`
		Pagination models.Pagination `json:"pagination"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out.Products) != 2 || out.Products[0].ID != 2 {
		t.Fatalf("unexpected products: %+v", out.Products)
	}
	if !out.Pagination.HasNextPage || out.Pagination.HasPreviousPage || out.Pagination.TotalPages != 3 {
		t.Fatalf("unexpected pagination: %+v", out.Pagination)
	}
	if cat.lastListedPage != 1 {
		t.Fatalf("expected page 1 forwarded, got %d", cat.lastListedPage)
	}

	// non-numeric page falls back to 1
	w = doJSON(t, r, http.MethodGet, "/products?page=abc", "", "valid")
	if w.Code != http.StatusOK || cat.lastListedPage != 1 {
		t.Fatalf("expected fallback to page 1, got page=%d status=%d", cat.lastListedPage, w.Code)
	}
}

func TestProductHandlers_UpdateQuantity(t *testing.T) {
	auth := &mockAuth{parseClaims: &service.Claims{UserID: 7}}

	t.Run("success replaces quantity", func(t *testing.T) {
		cat := &mockCatalog{}
		r := newTestRouter(&service.Service{Authorization: auth, Catalog: cat})

		w := doJSON(t, r, http.MethodPut, "/products/5/quantity", `{"quantity":12}`, "valid")
		if w.Code != http.StatusCreated {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		if cat.lastSetID != 5 || cat.lastSetQty != 12 {
			t.Fatalf("unexpected call: id=%d qty=%d", cat.lastSetID, cat.lastSetQty)
		}
		var out struct {
			ProductID int `json:"productId"`
			Quantity  int `json:"quantity"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &out)
		if out.ProductID != 5 || out.Quantity != 12 {
			t.Fatalf("unexpected body: %+v", out)
		}
	})

	t.Run("missing quantity", func(t *testing.T) {
		cat := &mockCatalog{}
		r := newTestRouter(&service.Service{Authorization: auth, Catalog: cat})

		w := doJSON(t, r, http.MethodPut, "/products/5/quantity", `{}`, "valid")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if cat.setCalls != 0 {
			t.Fatalf("catalog called despite invalid body")
		}
	})

	t.Run("non-numeric product id", func(t *testing.T) {
		cat := &mockCatalog{}
		r := newTestRouter(&service.Service{Authorization: auth, Catalog: cat})

		w := doJSON(t, r, http.MethodPut, "/products/abc/quantity", `{"quantity":1}`, "valid")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		cat := &mockCatalog{setQuantityErr: service.ErrProductNotFound}
		r := newTestRouter(&service.Service{Authorization: auth, Catalog: cat})

		w := doJSON(t, r, http.MethodPut, "/products/99/quantity", `{"quantity":1}`, "valid")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d (body=%s)", w.Code, w.Body.String())
		}
	})
}
