package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/sessioning"
	sessionMocks "github.com/vfg2006/sales-dashboard-api/internal/usecases/sessioning/mocks"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestLoginHandler(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name           string
		body           string
		setup          func(session *sessionMocks.MockSessionStore)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Sucesso",
			body: `{"email":"user@loja.com","password":"secret"}`,
			setup: func(session *sessionMocks.MockSessionStore) {
				session.EXPECT().Login(gomock.Any(), "user@loja.com", "secret").Return(&domain.Session{
					Token: "token-abc",
					User:  &domain.User{Email: "user@loja.com"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"token":"token-abc"`,
		},
		{
			name: "Credenciais inválidas",
			body: `{"email":"user@loja.com","password":"errada"}`,
			setup: func(session *sessionMocks.MockSessionStore) {
				session.EXPECT().Login(gomock.Any(), "user@loja.com", "errada").
					Return(nil, sessioning.NewSessionError(sessioning.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Credenciais inválidas"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"code":"AUTH_001"`,
		},
		{
			name:           "Corpo malformado",
			body:           `{email`,
			setup:          func(session *sessionMocks.MockSessionStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"code":"VAL_001"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			session := sessionMocks.NewMockSessionStore(ctrl)
			tt.setup(session)

			req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			Login(session).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestRegisterHandler_Conflict(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := sessionMocks.NewMockSessionStore(ctrl)
	session.EXPECT().Register(gomock.Any(), "user@loja.com", "secret").
		Return(nil, sessioning.NewSessionError(sessioning.ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado"))

	req := httptest.NewRequest(http.MethodPost, "/v1/register", strings.NewReader(`{"email":"user@loja.com","password":"secret"}`))
	rec := httptest.NewRecorder()

	Register(session).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"AUTH_004"`)
}

func TestGetMe_ExpiredSession(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := sessionMocks.NewMockSessionStore(ctrl)
	session.EXPECT().Me(gomock.Any()).
		Return(nil, sessioning.NewSessionError(sessioning.ErrSessionExpired, apiErrors.ErrExpiredSession, "Sessão expirada"))

	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	rec := httptest.NewRecorder()

	GetMe(session).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"AUTH_003"`)
}
