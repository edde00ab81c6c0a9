package handlers

import (
	"context"
	"net/http"

	"inventory_control/internal/models"
	"inventory_control/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpUser    *models.User
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseClaims   *service.Claims
	parseErr      error

	lastSignUpUsername string
	lastSignUpEmail    string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(ctx context.Context, username, email, password string) (*models.User, error) {
	m.lastSignUpUsername = username
	m.lastSignUpEmail = email
	m.lastSignUpPassword = password
	return m.signUpUser, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (*service.Claims, error) {
	m.lastParseToken = token
	if m.parseErr != nil {
		return nil, m.parseErr
	}
	if m.parseClaims != nil {
		return m.parseClaims, nil
	}
	return &service.Claims{}, nil
}

type mockCatalog struct {
	createRes      service.CreateResult
	createErr      error
	setQuantityErr error
	listPage       service.ProductPage
	listErr        error

	lastInput      service.ProductInput
	lastUserID     int
	lastSetID      int
	lastSetQty     int
	lastListedPage int
	createCalls    int
	setCalls       int
}

func (m *mockCatalog) CreateOrMerge(ctx context.Context, in service.ProductInput, userID int) (service.CreateResult, error) {
	m.createCalls++
	m.lastInput = in
	m.lastUserID = userID
	return m.createRes, m.createErr
}
func (m *mockCatalog) SetQuantity(ctx context.Context, id, quantity int) error {
	m.setCalls++
	m.lastSetID = id
	m.lastSetQty = quantity
	return m.setQuantityErr
}
func (m *mockCatalog) List(ctx context.Context, page int) (service.ProductPage, error) {
	m.lastListedPage = page
	return m.listPage, m.listErr
}

type mockAnalytics struct {
	snap service.Snapshot
	err  error
}

func (m *mockAnalytics) Snapshot(ctx context.Context) (service.Snapshot, error) {
	return m.snap, m.err
}

type mockEventLog struct {
	resp     []models.InventoryEvent
	err      error
	lastFrom string
	lastTo   string
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.InventoryEvent, error) {
	m.lastFrom = ""
	if !f.From.IsZero() {
		m.lastFrom = f.From.String()
	}
	m.lastTo = ""
	if !f.To.IsZero() {
		m.lastTo = f.To.String()
	}
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
