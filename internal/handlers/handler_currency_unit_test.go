package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/currexo/currency_catalog_app/internal/apperrors"
	"github.com/currexo/currency_catalog_app/internal/core/domain"
	portssvc "github.com/currexo/currency_catalog_app/internal/core/ports/services"
	"github.com/currexo/currency_catalog_app/internal/dto"
	"github.com/currexo/currency_catalog_app/internal/handlers"
	"github.com/currexo/currency_catalog_app/internal/platform/config"
	"github.com/currexo/currency_catalog_app/internal/platform/validation"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// --- Mock CatalogService ---
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetUnitByCode(ctx context.Context, code string) (*domain.CatalogEntry, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogEntry), args.Error(1)
}

func (m *MockCatalogService) ListUnits(ctx context.Context) ([]domain.CatalogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogEntry), args.Error(1)
}

func (m *MockCatalogService) UpsertUnit(ctx context.Context, req dto.UpsertCurrencyUnitRequest, creatorUserID string) (*domain.CatalogEntry, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogEntry), args.Error(1)
}

func (m *MockCatalogService) SeedCatalog(ctx context.Context, creatorUserID string) error {
	args := m.Called(ctx, creatorUserID)
	return args.Error(0)
}

var _ portssvc.CatalogSvcFacade = (*MockCatalogService)(nil)

// --- Mock ConversionService ---
type MockConversionService struct {
	mock.Mock
}

func (m *MockConversionService) Convert(ctx context.Context, req dto.ConvertRequest) (*dto.ConvertResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConvertResult), args.Error(1)
}

var _ portssvc.ConversionSvc = (*MockConversionService)(nil)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCatalog    *MockCatalogService
	mockConversion *MockConversionService
	cfg            *config.Config
}

func (suite *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(validation.RegisterValidators())
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.mockCatalog = new(MockCatalogService)
	suite.mockConversion = new(MockConversionService)
	suite.cfg = &config.Config{JWTSecret: "test-secret", IsProduction: true}

	services := &portssvc.ServiceContainer{
		Catalog:    suite.mockCatalog,
		Conversion: suite.mockConversion,
	}

	rate, err := limiter.NewRateFromFormatted("1000-S")
	suite.Require().NoError(err)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.cfg, services, limiter.New(memory.NewStore(), rate))
}

func (suite *HandlerTestSuite) adminToken() string {
	claims := jwt.RegisteredClaims{
		Subject:   "admin-user",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.cfg.JWTSecret))
	suite.Require().NoError(err)
	return token
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestListUnits_Success() {
	entries := []domain.CatalogEntry{
		{Code: domain.CodeAMD, Symbol: "֏", Coefficient: 0.00209872},
		{Code: domain.CodeUSD, Symbol: "$", Coefficient: 1},
	}
	suite.mockCatalog.On("ListUnits", mock.Anything).Return(entries, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/units", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var got []dto.CurrencyUnitResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got, 2)
	suite.Equal("AMD", got[0].Code)
	suite.mockCatalog.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetUnit_Success() {
	entry := &domain.CatalogEntry{Code: domain.CodeEUR, Symbol: "€", Coefficient: 1.123349}
	suite.mockCatalog.On("GetUnitByCode", mock.Anything, "EUR").Return(entry, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/units/EUR", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.CurrencyUnitResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal("EUR", got.Code)
	suite.Equal("€", got.Symbol)
	suite.Equal(1.123349, got.Coefficient)
	suite.mockCatalog.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetUnit_NotFound() {
	suite.mockCatalog.On("GetUnitByCode", mock.Anything, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/units/XXX", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockCatalog.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetUnit_BadLength() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/units/EURO", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCatalog.AssertNotCalled(suite.T(), "GetUnitByCode")
}

func (suite *HandlerTestSuite) TestConvert_Success() {
	req := dto.ConvertRequest{FromCode: "AMD", ToCode: "USD", Amount: 500}
	result := &dto.ConvertResult{FromCode: "AMD", ToCode: "USD", Amount: 500, Converted: 1.04936, Formatted: "1.04936"}
	suite.mockConversion.On("Convert", mock.Anything, req).Return(result, nil).Once()

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/api/v1/convert", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.ConvertResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(*result, got)
	suite.mockConversion.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestConvert_ValidationError() {
	req := dto.ConvertRequest{FromCode: "XXX", ToCode: "USD", Amount: 1}
	suite.mockConversion.On("Convert", mock.Anything, req).Return(nil, apperrors.ErrValidation).Once()

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/api/v1/convert", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockConversion.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestConvert_BindingRejectsLowercase() {
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/api/v1/convert", bytes.NewReader([]byte(`{"fromCode":"usd","toCode":"EUR","amount":1}`)))
	httpReq.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockConversion.AssertNotCalled(suite.T(), "Convert")
}

func (suite *HandlerTestSuite) TestUpsertUnit_RequiresAuth() {
	body := []byte(`{"code":"EUR","symbol":"€","coefficient":1.2}`)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/api/v1/admin/units", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockCatalog.AssertNotCalled(suite.T(), "UpsertUnit")
}

func (suite *HandlerTestSuite) TestUpsertUnit_Success() {
	req := dto.UpsertCurrencyUnitRequest{Code: "EUR", Symbol: "€", Coefficient: 1.2}
	entry := &domain.CatalogEntry{Code: domain.CodeEUR, Symbol: "€", Coefficient: 1.2}
	suite.mockCatalog.On("UpsertUnit", mock.Anything, req, "admin-user").Return(entry, nil).Once()

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/api/v1/admin/units", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+suite.adminToken())
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusCreated, w.Code)
	var got dto.CurrencyUnitResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal("EUR", got.Code)
	suite.Equal(1.2, got.Coefficient)
	suite.mockCatalog.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestUpsertUnit_BindingRejectsUnknownCode() {
	body := []byte(`{"code":"XXX","symbol":"?","coefficient":1}`)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/api/v1/admin/units", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+suite.adminToken())
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCatalog.AssertNotCalled(suite.T(), "UpsertUnit")
}

func (suite *HandlerTestSuite) TestHealth() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

// --- Run Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
