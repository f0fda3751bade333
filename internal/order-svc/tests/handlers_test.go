package tests

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"quickbite/auth"
	httpapi "quickbite/internal/order-svc/api/http"
	"quickbite/internal/order-svc/domain"
	"quickbite/internal/order-svc/mocks"
	"quickbite/internal/order-svc/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter(mockSvc *mocks.OrderServiceInterface) *mux.Router {
	handler := httpapi.NewHandler(mockSvc)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func bearer(t *testing.T, userID int, role auth.Role) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, "user@example.com", role)
	assert.NoError(t, err)
	return "Bearer " + token
}

func TestHandler_createOrder(t *testing.T) {
	mockSvc := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(mockSvc)

	tests := []struct {
		name         string
		payload      string
		authHeader   string
		prepareMocks func()
		expectedCode int
	}{
		{
			name:       "success",
			payload:    `{"restaurant_id":10,"delivery_address":"1 Main St","items":[{"menu_item_id":1,"quantity":2}]}`,
			authHeader: bearer(t, 42, auth.RoleCustomer),
			prepareMocks: func() {
				mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
				mockSvc.On("QRLink", mock.Anything).Return("/api/orders/1/qrcode").Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			authHeader:   bearer(t, 42, auth.RoleCustomer),
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing_token",
			payload:      `{}`,
			authHeader:   "",
			prepareMocks: func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "wrong_role",
			payload:      `{}`,
			authHeader:   bearer(t, 42, auth.RoleAgent),
			prepareMocks: func() {},
			expectedCode: http.StatusForbidden,
		},
		{
			name:       "restaurant_offline",
			payload:    `{"restaurant_id":11,"items":[{"menu_item_id":1,"quantity":1}]}`,
			authHeader: bearer(t, 42, auth.RoleCustomer),
			prepareMocks: func() {
				mockSvc.On("Create", mock.Anything, mock.Anything).
					Return(service.ErrRestaurantOffline).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("POST", "/api/orders", bytes.NewBufferString(testCase.payload))
			if testCase.authHeader != "" {
				req.Header.Set("Authorization", testCase.authHeader)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_updateStatus(t *testing.T) {
	mockSvc := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(mockSvc)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:    "confirm_pending_order",
			payload: `{"status":"confirmed"}`,
			prepareMocks: func() {
				mockSvc.On("Transition", mock.Anything, 5, 7, domain.StatusConfirmed).
					Return(&domain.Order{ID: 5, Status: domain.StatusConfirmed}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"status":"confirmed"`,
		},
		{
			name:    "invalid_transition",
			payload: `{"status":"pending"}`,
			prepareMocks: func() {
				mockSvc.On("Transition", mock.Anything, 5, 7, domain.StatusPending).
					Return(nil, &domain.InvalidTransitionError{From: domain.StatusConfirmed, To: domain.StatusPending}).Once()
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `"success":false`,
		},
		{
			name:    "concurrent_conflict",
			payload: `{"status":"confirmed"}`,
			prepareMocks: func() {
				mockSvc.On("Transition", mock.Anything, 5, 7, domain.StatusConfirmed).
					Return(nil, service.ErrTransitionLost).Once()
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:    "foreign_restaurant_order",
			payload: `{"status":"confirmed"}`,
			prepareMocks: func() {
				mockSvc.On("Transition", mock.Anything, 5, 7, domain.StatusConfirmed).
					Return(nil, service.ErrNotRestaurantOrder).Once()
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "missing_status",
			payload:      `{}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("PUT", "/api/orders/5/status", bytes.NewBufferString(testCase.payload))
			req.Header.Set("Authorization", bearer(t, 7, auth.RoleRestaurant))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_cancelOrder(t *testing.T) {
	mockSvc := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(mockSvc)

	mockSvc.On("Cancel", mock.Anything, 5, 42).
		Return(nil, service.ErrNotOrderOwner).Once()

	req := httptest.NewRequest("PUT", "/api/orders/5/cancel", nil)
	req.Header.Set("Authorization", bearer(t, 42, auth.RoleCustomer))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestHandler_getOrderNotFound(t *testing.T) {
	mockSvc := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(mockSvc)

	mockSvc.On("Get", mock.Anything, 404).Return(nil, service.ErrOrderNotFound).Once()

	req := httptest.NewRequest("GET", "/api/orders/404", nil)
	req.Header.Set("Authorization", bearer(t, 42, auth.RoleCustomer))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
