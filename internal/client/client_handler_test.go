package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-fieldtrack/internal/client"
	clienterrors "go-fieldtrack/internal/client/errors"
	clientMock "go-fieldtrack/internal/client/mock"
	"go-fieldtrack/internal/domain"
	"go-fieldtrack/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_GetAssigned(t *testing.T) {
	gin.SetMode(gin.TestMode)
	caller := domain.Caller{UserID: "emp-1", Role: domain.RoleEmployee}

	setup := func(t *testing.T) (*gin.Engine, *clientMock.MockService) {
		svc := clientMock.NewMockService(gomock.NewController(t))
		h := client.NewHandler(svc)
		r := gin.New()
		r.GET("/checkin/clients", func(c *gin.Context) {
			c.Set(middleware.ContextUserID, caller.UserID)
			c.Set(middleware.ContextRole, caller.Role)
		}, h.GetAssigned)
		return r, svc
	}

	t.Run("success", func(t *testing.T) {
		r, svc := setup(t)
		svc.EXPECT().GetAssigned(gomock.Any(), caller).Return([]client.ClientResponse{{ID: "c1", Name: "ABC Corp"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/checkin/clients", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Ok   bool                    `json:"ok"`
			Data []client.ClientResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Ok)
		assert.Equal(t, "ABC Corp", body.Data[0].Name)
	})

	t.Run("forbidden", func(t *testing.T) {
		r, svc := setup(t)
		svc.EXPECT().GetAssigned(gomock.Any(), caller).Return(nil, clienterrors.ErrEmployeeOnly)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/checkin/clients", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
