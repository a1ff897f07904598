package http

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister(t *testing.T) {
	form := models.RegisterRequest{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "pw1",
		ConfirmPassword: "pw1",
	}

	tests := []struct {
		name       string
		setup      func(m serviceMocks)
		wantStatus int
		wantMsg    string
		wantFields map[string]string
	}{
		{
			name: "created",
			setup: func(m serviceMocks) {
				m.auth.EXPECT().Register(gomock.Any(), form).Return(testAlice, nil)
			},
			wantStatus: http.StatusCreated,
			wantMsg:    app.MsgAccountCreated,
		},
		{
			name: "username taken",
			setup: func(m serviceMocks) {
				err := validators.NewFieldError(validators.FieldUsername, service.ErrUsernameTaken)
				m.auth.EXPECT().Register(gomock.Any(), form).Return(models.User{}, err)
			},
			wantStatus: http.StatusConflict,
			wantMsg:    app.MsgInvalidForm,
			wantFields: map[string]string{validators.FieldUsername: service.ErrUsernameTaken.Error()},
		},
		{
			name: "confirm mismatch",
			setup: func(m serviceMocks) {
				err := validators.NewFieldError(validators.FieldConfirmPassword, validators.ErrPasswordMatch)
				m.auth.EXPECT().Register(gomock.Any(), form).Return(models.User{}, err)
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidForm,
			wantFields: map[string]string{validators.FieldConfirmPassword: validators.ErrPasswordMatch.Error()},
		},
		{
			name: "storage failure",
			setup: func(m serviceMocks) {
				m.auth.EXPECT().Register(gomock.Any(), form).Return(models.User{}, fmt.Errorf("db is down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t, nil)
			tt.setup(m)

			rr := serve(h, newRequest(t, http.MethodPost, "/register", form, ""))

			assert.Equal(t, tt.wantStatus, rr.Code)
			msg := decodeMessage(t, rr)
			assert.Equal(t, tt.wantMsg, msg.Message)
			assert.Equal(t, tt.wantFields, msg.Fields)
		})
	}
}

func TestRegister_InvalidJSON(t *testing.T) {
	h, _ := newMockedHandler(t, nil)

	req := newRequest(t, http.MethodPost, "/register", nil, "")
	req.Body = http.NoBody

	rr := serve(h, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, ErrInvalidJSON.Error(), decodeMessage(t, rr).Message)
}

func TestRegister_AuthenticatedIsRedirected(t *testing.T) {
	h, _ := newMockedHandler(t, testSessions)

	rr := serve(h, newRequest(t, http.MethodPost, "/register", models.RegisterRequest{}, "alice-token"))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_SetsSessionCookie(t *testing.T) {
	form := models.LoginRequest{Email: "alice@example.com", Password: "pw1"}
	h, m := newMockedHandler(t, nil)

	m.auth.EXPECT().VerifyCredentials(gomock.Any(), form).Return(testAlice, nil)
	m.session.EXPECT().Issue(gomock.Any(), testAlice, false).Return(models.Session{Token: "signed", UserID: testAlice.ID}, nil)

	rr := serve(h, newRequest(t, http.MethodPost, "/login?next=/account", form, ""))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"message": "You have been logged in!",
		"user": {"id":1,"username":"alice","email":"alice@example.com","image_file":"default.jpg","created_at":"0001-01-01T00:00:00Z"},
		"redirect": "/account"
	}`, rr.Body.String())

	cookie := findCookie(rr.Result().Cookies(), sessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Expires.IsZero(), "a session that is not remembered has no expiry")
}

func TestLogin_RememberMakesCookiePersistent(t *testing.T) {
	form := models.LoginRequest{Email: "alice@example.com", Password: "pw1", Remember: true}
	expires := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	h, m := newMockedHandler(t, nil)

	m.auth.EXPECT().VerifyCredentials(gomock.Any(), form).Return(testAlice, nil)
	m.session.EXPECT().Issue(gomock.Any(), testAlice, true).
		Return(models.Session{Token: "signed", UserID: testAlice.ID, Remember: true, ExpiresAt: expires}, nil)

	rr := serve(h, newRequest(t, http.MethodPost, "/login", form, ""))

	require.Equal(t, http.StatusOK, rr.Code)
	cookie := findCookie(rr.Result().Cookies(), sessionCookieName)
	require.NotNil(t, cookie)
	assert.True(t, expires.Equal(cookie.Expires))
}

func TestLogin_UnsafeNextFallsBackToHome(t *testing.T) {
	form := models.LoginRequest{Email: "alice@example.com", Password: "pw1"}
	h, m := newMockedHandler(t, nil)

	m.auth.EXPECT().VerifyCredentials(gomock.Any(), form).Return(testAlice, nil)
	m.session.EXPECT().Issue(gomock.Any(), testAlice, false).Return(models.Session{Token: "signed"}, nil)

	rr := serve(h, newRequest(t, http.MethodPost, "/login?next=https://evil.example/", form, ""))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"redirect":"/"`)
}

func TestLogin_BadCredentials(t *testing.T) {
	form := models.LoginRequest{Email: "alice@example.com", Password: "wrong"}
	h, m := newMockedHandler(t, nil)

	m.auth.EXPECT().VerifyCredentials(gomock.Any(), form).Return(models.User{}, service.ErrInvalidCredentials)

	rr := serve(h, newRequest(t, http.MethodPost, "/login", form, ""))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, service.ErrInvalidCredentials.Error(), decodeMessage(t, rr).Message)
	assert.Nil(t, findCookie(rr.Result().Cookies(), sessionCookieName))
}

func TestLogin_IssueFails(t *testing.T) {
	form := models.LoginRequest{Email: "alice@example.com", Password: "pw1"}
	h, m := newMockedHandler(t, nil)

	m.auth.EXPECT().VerifyCredentials(gomock.Any(), form).Return(testAlice, nil)
	m.session.EXPECT().Issue(gomock.Any(), testAlice, false).Return(models.Session{}, service.ErrTokenCreationFailed)

	rr := serve(h, newRequest(t, http.MethodPost, "/login", form, ""))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Nil(t, findCookie(rr.Result().Cookies(), sessionCookieName))
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout_ExpiresCookie(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		t.Run(method, func(t *testing.T) {
			h, _ := newMockedHandler(t, testSessions)

			rr := serve(h, newRequest(t, method, "/logout", nil, "alice-token"))

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, app.MsgLoggedOut, decodeMessage(t, rr).Message)

			cookie := findCookie(rr.Result().Cookies(), sessionCookieName)
			require.NotNil(t, cookie)
			assert.Empty(t, cookie.Value)
			assert.Equal(t, -1, cookie.MaxAge)
		})
	}
}

func TestLogout_Anonymous(t *testing.T) {
	h, _ := newMockedHandler(t, nil)

	rr := serve(h, newRequest(t, http.MethodGet, "/logout", nil, ""))

	assert.Equal(t, http.StatusOK, rr.Code)
}
