package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	sessionMocks "github.com/vfg2006/sales-dashboard-api/internal/usecases/sessioning/mocks"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		authenticated  bool
		expectedStatus int
	}{
		{
			name:           "Login é liberado sem sessão",
			path:           "/v1/login",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Cadastro é liberado sem sessão",
			path:           "/v1/register",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Healthcheck é liberado sem sessão",
			path:           "/healthcheck",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Rota protegida sem sessão é barrada",
			path:           "/v1/dashboard",
			authenticated:  false,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Rota protegida com sessão passa",
			path:           "/v1/dashboard",
			authenticated:  true,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			session := sessionMocks.NewMockSessionStore(ctrl)
			session.EXPECT().IsAuthenticated().Return(tt.authenticated).AnyTimes()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			AuthMiddleware(session)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
