package checkin_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-fieldtrack/internal/checkin"
	checkinerrors "go-fieldtrack/internal/checkin/errors"
	checkinMock "go-fieldtrack/internal/checkin/mock"
	"go-fieldtrack/internal/domain"
	"go-fieldtrack/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

func newCheckinRouter(t *testing.T, caller domain.Caller) (*gin.Engine, *checkinMock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := checkinMock.NewMockService(gomock.NewController(t))
	h := checkin.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, caller.UserID)
		c.Set(middleware.ContextRole, caller.Role)
	})
	r.POST("/checkin", h.CheckIn)
	r.PUT("/checkin/checkout", h.Checkout)
	r.GET("/checkin/active", h.GetActive)
	r.GET("/checkin/history", h.GetHistory)
	return r, svc
}

func TestHandler_CheckIn(t *testing.T) {
	employee := domain.Caller{UserID: uuid.NewString(), Role: domain.RoleEmployee}
	clientID := uuid.NewString()

	t.Run("created", func(t *testing.T) {
		r, svc := newCheckinRouter(t, employee)
		svc.EXPECT().
			CheckIn(gomock.Any(), employee, gomock.Any()).
			DoAndReturn(func(_ any, _ domain.Caller, req checkin.CheckinRequest) (checkin.CheckinResponse, error) {
				assert.Equal(t, clientID, req.ClientID)
				require.NotNil(t, req.Latitude)
				assert.Equal(t, 28.4946, *req.Latitude)
				return checkin.CheckinResponse{
					ID:                 "ck-1",
					Message:            checkin.MessageCheckedIn,
					DistanceFromClient: "0.00",
				}, nil
			})

		body := `{"client_id":"` + clientID + `","latitude":28.4946,"longitude":77.0887}`
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/checkin", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var data checkin.CheckinResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "0.00", data.DistanceFromClient)
		assert.False(t, data.FarFromClient)
	})

	t.Run("malformed body", func(t *testing.T) {
		r, _ := newCheckinRouter(t, employee)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/checkin", strings.NewReader(`{"latitude":"north"`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, checkinerrors.ErrLocationRequired.Message, env.Error.Message)
	})

	t.Run("manager with malformed body is forbidden", func(t *testing.T) {
		r, _ := newCheckinRouter(t, domain.Caller{UserID: uuid.NewString(), Role: domain.RoleManager})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/checkin", strings.NewReader(`not json`)))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("service errors map to status", func(t *testing.T) {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{"not assigned", checkinerrors.ErrNotAssigned, http.StatusForbidden},
			{"client not found", checkinerrors.ErrClientNotFound, http.StatusNotFound},
			{"coordinates missing", checkinerrors.ErrClientCoordinatesMissing, http.StatusBadRequest},
			{"already checked in", checkinerrors.ErrAlreadyCheckedIn, http.StatusConflict},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				r, svc := newCheckinRouter(t, employee)
				svc.EXPECT().CheckIn(gomock.Any(), employee, gomock.Any()).Return(checkin.CheckinResponse{}, tc.err)

				body := `{"client_id":"` + clientID + `","latitude":1,"longitude":2}`
				w := httptest.NewRecorder()
				r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/checkin", strings.NewReader(body)))

				assert.Equal(t, tc.status, w.Code)
				env := decodeEnvelope(t, w.Body.Bytes())
				assert.False(t, env.Ok)
			})
		}
	})
}

func TestHandler_Checkout(t *testing.T) {
	employee := domain.Caller{UserID: uuid.NewString(), Role: domain.RoleEmployee}

	t.Run("success", func(t *testing.T) {
		r, svc := newCheckinRouter(t, employee)
		svc.EXPECT().Checkout(gomock.Any(), employee).Return(checkin.CheckoutResponse{ID: "ck-1", Message: checkin.MessageCheckedOut}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/checkin/checkout", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("nothing to close", func(t *testing.T) {
		r, svc := newCheckinRouter(t, employee)
		svc.EXPECT().Checkout(gomock.Any(), employee).Return(checkin.CheckoutResponse{}, checkinerrors.ErrNoActiveCheckin)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/checkin/checkout", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "No active check-in found", env.Error.Message)
	})
}

func TestHandler_GetActive(t *testing.T) {
	employee := domain.Caller{UserID: uuid.NewString(), Role: domain.RoleEmployee}

	t.Run("no session is null data", func(t *testing.T) {
		r, svc := newCheckinRouter(t, employee)
		svc.EXPECT().GetActive(gomock.Any(), employee).Return(nil, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/checkin/active", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		assert.Equal(t, "null", string(env.Data))
	})

	t.Run("session", func(t *testing.T) {
		r, svc := newCheckinRouter(t, employee)
		svc.EXPECT().GetActive(gomock.Any(), employee).Return(&checkin.SessionResponse{ID: "ck-1", ClientName: "ABC Corp"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/checkin/active", nil))

		env := decodeEnvelope(t, w.Body.Bytes())
		var data checkin.SessionResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "ABC Corp", data.ClientName)
	})
}

func TestHandler_GetHistory(t *testing.T) {
	employee := domain.Caller{UserID: uuid.NewString(), Role: domain.RoleEmployee}

	t.Run("passes query", func(t *testing.T) {
		r, svc := newCheckinRouter(t, employee)
		svc.EXPECT().
			GetHistory(gomock.Any(), employee, checkin.HistoryQuery{StartDate: "2024-03-01", EndDate: "2024-03-02"}).
			Return([]checkin.SessionResponse{{ID: "ck-1"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/checkin/history?start_date=2024-03-01&end_date=2024-03-02", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid date", func(t *testing.T) {
		r, svc := newCheckinRouter(t, employee)
		svc.EXPECT().GetHistory(gomock.Any(), employee, gomock.Any()).Return(nil, checkinerrors.ErrInvalidDateRange)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/checkin/history?start_date=yesterday", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
