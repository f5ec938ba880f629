package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sentrydesk/internal/domain"
	"sentrydesk/internal/handler"
	"sentrydesk/internal/service"
	"sentrydesk/mocks"
)

func TestAuthHandler_Login_Success(t *testing.T) {
	mockSvc := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockSvc)

	pair := &service.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(15 * time.Minute),
	}
	mockSvc.On("Login", mock.Anything, mock.AnythingOfType("service.LoginInput")).Return(pair, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/v1/auth/login", gin.H{
		"tenant_slug": "northgate",
		"email":       "guard@northgate.example",
		"password":    "password123",
	})

	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockSvc := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockSvc)

	mockSvc.On("Login", mock.Anything, mock.AnythingOfType("service.LoginInput")).
		Return(nil, domain.ErrInvalidCredentials)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/v1/auth/login", gin.H{
		"tenant_slug": "northgate",
		"email":       "guard@northgate.example",
		"password":    "wrong-password",
	})

	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)
}

func TestAuthHandler_Login_ShortPassword(t *testing.T) {
	mockSvc := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/v1/auth/login", gin.H{
		"tenant_slug": "northgate",
		"email":       "guard@northgate.example",
		"password":    "short",
	})

	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestAuthHandler_Me_ReturnsIdentity(t *testing.T) {
	h := handler.NewAuthHandler(new(mocks.MockAuthService))

	tenantID := uuid.New()
	userID := uuid.New()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	setAuthContext(c, tenantID, userID, "member")

	h.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), tenantID.String())
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestAuthHandler_Me_NoAuthContext(t *testing.T) {
	h := handler.NewAuthHandler(new(mocks.MockAuthService))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.Me(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_RefreshToken_Success(t *testing.T) {
	mockSvc := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockSvc)

	pair := &service.TokenPair{
		AccessToken:  "fresh-access-token",
		RefreshToken: "fresh-refresh-token",
		ExpiresAt:    time.Now().Add(15 * time.Minute),
	}
	mockSvc.On("RefreshToken", mock.Anything, "old-refresh-token").Return(pair, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/api/v1/auth/refresh", gin.H{
		"refresh_token": "old-refresh-token",
	})

	h.RefreshToken(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}
