package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"quickbite/auth"
	httpapi "quickbite/internal/user-svc/api/http"
	"quickbite/internal/user-svc/domain"
	"quickbite/internal/user-svc/mocks"
	"quickbite/internal/user-svc/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter(mockSvc *mocks.UserServiceInterface) *mux.Router {
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

func TestHandler_register(t *testing.T) {
	mockSvc := mocks.NewUserServiceInterface(t)
	router := setupTestRouter(mockSvc)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
	}{
		{
			name:    "success",
			payload: `{"name":"Alice","email":"alice@example.com","password":"secret"}`,
			prepareMocks: func() {
				mockSvc.On("Register", mock.Anything, mock.Anything, "secret").
					Return("token-123", nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:    "duplicate_email_is_409",
			payload: `{"name":"Alice","email":"alice@example.com","password":"secret"}`,
			prepareMocks: func() {
				mockSvc.On("Register", mock.Anything, mock.Anything, "secret").
					Return("", service.ErrEmailTaken).Once()
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "invalid_json",
			payload:      `nope`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)

			if testCase.expectedCode == http.StatusCreated {
				var body struct {
					Success bool `json:"success"`
					Data    struct {
						Token string `json:"token"`
					} `json:"data"`
				}
				assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				assert.Equal(t, "token-123", body.Data.Token)
			}
		})
	}
}

func TestHandler_login(t *testing.T) {
	mockSvc := mocks.NewUserServiceInterface(t)
	router := setupTestRouter(mockSvc)

	t.Run("bad_credentials_is_401", func(t *testing.T) {
		mockSvc.On("Login", mock.Anything, "bob@example.com", "wrong").
			Return("", nil, service.ErrInvalidCredentials).Once()

		req := httptest.NewRequest("POST", "/api/auth/login",
			bytes.NewBufferString(`{"email":"bob@example.com","password":"wrong"}`))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Login", mock.Anything, "bob@example.com", "hunter2").
			Return("token-456", &domain.User{ID: 4, Name: "Bob"}, nil).Once()

		req := httptest.NewRequest("POST", "/api/auth/login",
			bytes.NewBufferString(`{"email":"bob@example.com","password":"hunter2"}`))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestHandler_profile(t *testing.T) {
	mockSvc := mocks.NewUserServiceInterface(t)
	router := setupTestRouter(mockSvc)

	t.Run("requires_token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/auth/profile", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("returns_own_profile", func(t *testing.T) {
		mockSvc.On("Profile", mock.Anything, 4).
			Return(&domain.User{ID: 4, Name: "Bob"}, nil).Once()

		req := httptest.NewRequest("GET", "/api/auth/profile", nil)
		req.Header.Set("Authorization", bearer(t, 4, auth.RoleCustomer))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("update_targets_token_subject", func(t *testing.T) {
		mockSvc.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.ID == 4 && u.Name == "Bobby"
		})).Return(nil).Once()

		req := httptest.NewRequest("PUT", "/api/auth/profile",
			bytes.NewBufferString(`{"name":"Bobby","phone":"555-0101"}`))
		req.Header.Set("Authorization", bearer(t, 4, auth.RoleCustomer))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
