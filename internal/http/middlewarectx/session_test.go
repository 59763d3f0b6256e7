package middlewarectx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/neuroscan/admin-panel/internal/models"
	"github.com/neuroscan/admin-panel/internal/session"
)

type SessionsMock struct{ mock.Mock }

func (m *SessionsMock) Get(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestSessionMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		cookie         *http.Cookie
		setupMock      func(m *SessionsMock)
		expectedStatus int
		expectedBody   string
		wantUserID     int64
	}{
		{
			name:           "no cookie",
			cookie:         nil,
			setupMock:      func(_ *SessionsMock) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Unauthorized"}`,
		},
		{
			name:   "stale token",
			cookie: &http.Cookie{Name: SessionCookie, Value: "stale"},
			setupMock: func(m *SessionsMock) {
				m.On("Get", mock.Anything, "stale").Return(nil, session.ErrNotFound).Once()
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Unauthorized"}`,
		},
		{
			name:   "valid session puts user id into context",
			cookie: &http.Cookie{Name: SessionCookie, Value: "good"},
			setupMock: func(m *SessionsMock) {
				m.On("Get", mock.Anything, "good").
					Return(&models.Session{UserID: 7}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			wantUserID:     7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := new(SessionsMock)
			tt.setupMock(sessions)

			var gotUserID int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = r.Context().Value(UserID).(int64)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()

			SessionMiddleware(sessions, newNoopLogger())(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
			if tt.wantUserID != 0 {
				assert.Equal(t, tt.wantUserID, gotUserID)
			}
			sessions.AssertExpectations(t)
		})
	}
}

func TestPageSessionMiddleware_RedirectsAnonymous(t *testing.T) {
	sessions := new(SessionsMock)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/panel", nil)
	w := httptest.NewRecorder()

	PageSessionMiddleware(sessions, newNoopLogger())(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestPageSessionMiddleware_PassesAuthenticated(t *testing.T) {
	sessions := new(SessionsMock)
	sessions.On("Get", mock.Anything, "good").
		Return(&models.Session{UserID: 3}, nil).Once()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/panel", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "good"})
	w := httptest.NewRecorder()

	PageSessionMiddleware(sessions, newNoopLogger())(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
	sessions.AssertExpectations(t)
}
