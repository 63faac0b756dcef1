package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-fieldtrack/internal/auth"
	autherrors "go-fieldtrack/internal/auth/errors"
	authMock "go-fieldtrack/internal/auth/mock"
	"go-fieldtrack/internal/domain"
	"go-fieldtrack/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *authMock.MockService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)

	withCaller := func(c *gin.Context) {
		c.Set(middleware.ContextUserID, "user-1")
		c.Set(middleware.ContextRole, domain.RoleEmployee)
		c.Next()
	}

	r := gin.New()
	r.POST("/login", handler.Login)
	r.GET("/me", withCaller, handler.Me)
	r.POST("/refresh", withCaller, handler.Refresh)
	r.POST("/logout", withCaller, handler.Logout)
	return r, mockService
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var res map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, svc := setupAuthRouter(t)
		svc.EXPECT().
			Login(gomock.Any(), "rahul@unolo.com", "password123").
			Return(auth.LoginResponse{Token: "jwt", User: auth.UserResponse{ID: "user-1", Email: "rahul@unolo.com", Role: "employee"}}, nil)

		body, _ := json.Marshal(auth.LoginRequest{Email: "rahul@unolo.com", Password: "password123"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].(map[string]any)
		assert.Equal(t, "jwt", data["token"])
		assert.Equal(t, "employee", data["user"].(map[string]any)["role"])
	})

	t.Run("missing password", func(t *testing.T) {
		r, _ := setupAuthRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"email":"rahul@unolo.com"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		errBody := decode(t, w)["error"].(map[string]any)
		assert.Equal(t, "Email and password required", errBody["message"])
	})

	t.Run("invalid credentials", func(t *testing.T) {
		r, svc := setupAuthRouter(t)
		svc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(auth.LoginResponse{}, autherrors.ErrInvalidCredentials)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"email":"a@b.c","password":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", decode(t, w)["error"].(map[string]any)["message"])
	})
}

func TestHandler_MeRefreshLogout(t *testing.T) {
	t.Run("me", func(t *testing.T) {
		r, svc := setupAuthRouter(t)
		svc.EXPECT().GetMe(gomock.Any(), "user-1").Return(auth.UserResponse{ID: "user-1", Name: "Rahul Kumar"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Rahul Kumar", decode(t, w)["data"].(map[string]any)["name"])
	})

	t.Run("me user gone", func(t *testing.T) {
		r, svc := setupAuthRouter(t)
		svc.EXPECT().GetMe(gomock.Any(), "user-1").Return(auth.UserResponse{}, autherrors.ErrUserNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("refresh", func(t *testing.T) {
		r, svc := setupAuthRouter(t)
		svc.EXPECT().Refresh(gomock.Any(), "user-1").Return(auth.TokenResponse{Token: "new-jwt"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/refresh", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "new-jwt", decode(t, w)["data"].(map[string]any)["token"])
	})

	t.Run("logout", func(t *testing.T) {
		r, _ := setupAuthRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Logged out successfully", decode(t, w)["data"].(map[string]any)["message"])
	})
}
