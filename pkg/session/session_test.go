package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akmurmu82/library-management-app/pkg/session"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newManager(t *testing.T, opts ...session.Option) *session.Manager {
	t.Helper()
	m, err := session.NewManager(session.Config{
		Secret:       testSecret,
		TTL:          7 * 24 * time.Hour,
		CookieName:   "token",
		CookieSecure: true,
	}, opts...)
	require.NoError(t, err)
	return m
}

func TestNewManager_WeakSecret(t *testing.T) {
	for _, secret := range []string{"", "your-secret-key"} {
		_, err := session.NewManager(session.Config{Secret: secret})
		require.ErrorIs(t, err, session.ErrWeakSecret)
	}
}

func TestManager_IssueVerify(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := newManager(t, session.WithClock(func() time.Time { return now }))

	token, expiresAt, err := m.Issue("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, now.Add(7*24*time.Hour), expiresAt)

	userID, err := m.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)
}

func TestManager_Verify_Expired(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := issuedAt
	m := newManager(t, session.WithClock(func() time.Time { return clock }))

	token, _, err := m.Issue("user-1")
	require.NoError(t, err)

	clock = issuedAt.Add(7*24*time.Hour - time.Minute)
	_, err = m.Verify(token)
	require.NoError(t, err)

	clock = issuedAt.Add(7*24*time.Hour + time.Minute)
	_, err = m.Verify(token)
	require.ErrorIs(t, err, session.ErrInvalidToken)
}

func TestManager_Verify_Rejects(t *testing.T) {
	m := newManager(t)
	other, err := session.NewManager(session.Config{Secret: "ffffffffffffffffffffffffffffffff"})
	require.NoError(t, err)
	foreign, _, err := other.Issue("user-1")
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, session.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "books-library"},
		UserID:           "user-1",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, session.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "books-library",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "user-1",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, session.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "books-library",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "user-1",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "empty", token: "", wantErr: session.ErrNoToken},
		{name: "garbage", token: "not-a-jwt", wantErr: session.ErrInvalidToken},
		{name: "wrong secret", token: foreign, wantErr: session.ErrInvalidToken},
		{name: "no expiry", token: noExp, wantErr: session.ErrInvalidToken},
		{name: "alg none", token: noneAlg, wantErr: session.ErrInvalidToken},
		{name: "other hmac alg", token: hs512, wantErr: session.ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Verify(tt.token)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestManager_TokenFromRequest(t *testing.T) {
	m := newManager(t)

	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	_, err := m.TokenFromRequest(r)
	require.ErrorIs(t, err, session.ErrNoToken)

	r.Header.Set(session.AuthorizationHeader, "Bearer header-token")
	token, err := m.TokenFromRequest(r)
	require.NoError(t, err)
	require.Equal(t, "header-token", token)

	r.AddCookie(&http.Cookie{Name: "token", Value: "cookie-token"})
	token, err = m.TokenFromRequest(r)
	require.NoError(t, err)
	require.Equal(t, "cookie-token", token)
}

func TestManager_Cookies(t *testing.T) {
	m := newManager(t)
	expiresAt := time.Now().Add(time.Hour)

	c := m.Cookie("tkn", expiresAt)
	require.Equal(t, "token", c.Name)
	require.Equal(t, "tkn", c.Value)
	require.True(t, c.HttpOnly)
	require.True(t, c.Secure)
	require.Equal(t, http.SameSiteNoneMode, c.SameSite)
	require.Equal(t, 7*24*60*60, c.MaxAge)

	cleared := m.ClearCookie()
	require.Equal(t, "token", cleared.Name)
	require.Empty(t, cleared.Value)
	require.Equal(t, -1, cleared.MaxAge)
	require.True(t, cleared.HttpOnly)
}
