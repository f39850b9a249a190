package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	AuthorizationHeader = "Authorization"
	bearer              = "Bearer "

	issuer        = "books-library"
	minSecretSize = 32
)

var (
	ErrNoToken      = errors.New("no token provided")
	ErrInvalidToken = errors.New("invalid token")
	ErrWeakSecret   = errors.New("session secret must be at least 32 bytes")
)

type Config struct {
	Secret       string        `envconfig:"JWT_SECRET" json:"-"`
	TTL          time.Duration `envconfig:"SESSION_TTL" default:"168h"`
	CookieName   string        `envconfig:"SESSION_COOKIE" default:"token"`
	CookieSecure bool          `envconfig:"SESSION_COOKIE_SECURE" default:"true"`
}

type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
}

// Manager issues and verifies signed session tokens and builds the cookie
// that carries them.
type Manager struct {
	secret []byte
	cfg    Config
	now    func() time.Time
}

type Option func(*Manager)

// WithClock replaces time.Now, used for both issuing and verifying.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

func NewManager(cfg Config, opts ...Option) (*Manager, error) {
	if len(cfg.Secret) < minSecretSize {
		return nil, ErrWeakSecret
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 7 * 24 * time.Hour
	}
	if cfg.CookieName == "" {
		cfg.CookieName = "token"
	}
	m := &Manager{
		secret: []byte(cfg.Secret),
		cfg:    cfg,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *Manager) Issue(userID string) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.cfg.TTL)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: userID,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign token")
	}
	return token, expiresAt, nil
}

// Verify checks signature, issuer and expiry and returns the user id the
// token was issued for.
func (m *Manager) Verify(tokenStr string) (string, error) {
	if tokenStr == "" {
		return "", ErrNoToken
	}
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}

// TokenFromRequest reads the session cookie, falling back to a bearer
// Authorization header.
func (m *Manager) TokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(m.cfg.CookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}
	authorization := r.Header.Get(AuthorizationHeader)
	if strings.HasPrefix(authorization, bearer) {
		if token := strings.TrimPrefix(authorization, bearer); token != "" {
			return token, nil
		}
	}
	return "", ErrNoToken
}

func (m *Manager) Cookie(token string, expiresAt time.Time) *http.Cookie {
	c := m.baseCookie()
	c.Value = token
	c.Expires = expiresAt
	c.MaxAge = int(m.cfg.TTL.Seconds())
	return c
}

// ClearCookie expires the session cookie. Tokens are stateless, so a copy
// held elsewhere stays valid until it expires.
func (m *Manager) ClearCookie() *http.Cookie {
	c := m.baseCookie()
	c.Expires = time.Unix(0, 0)
	c.MaxAge = -1
	return c
}

func (m *Manager) baseCookie() *http.Cookie {
	sameSite := http.SameSiteNoneMode
	if !m.cfg.CookieSecure {
		// browsers drop SameSite=None cookies without Secure
		sameSite = http.SameSiteLaxMode
	}
	return &http.Cookie{
		Name:     m.cfg.CookieName,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.cfg.CookieSecure,
		SameSite: sameSite,
	}
}
