package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const CookieName = "admin_session"

// Session is the admin session state carried through request handling.
type Session struct {
	ID            string
	Authenticated bool
}

type sessionClaims struct {
	Authenticated bool `json:"authenticated"`
	jwt.RegisteredClaims
}

// Tokens signs and reads the session cookie. Tokens carry no expiry: the
// flag lives as long as the browser keeps the cookie.
type Tokens struct {
	secret []byte
}

func NewTokens(secret []byte) *Tokens {
	return &Tokens{secret: secret}
}

// Issue creates a new authenticated session and its signed token.
func (t *Tokens) Issue() (Session, string, error) {
	sess := Session{ID: uuid.NewString(), Authenticated: true}
	claims := &sessionClaims{
		Authenticated: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:     sess.ID,
			Issuer: "orders-admin",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return Session{}, "", err
	}
	return sess, token, nil
}

// Parse reads a session token. Anything that does not verify yields an
// unauthenticated session and an error.
func (t *Tokens) Parse(token string) (Session, error) {
	if token == "" {
		return Session{}, errors.New("empty session token")
	}
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return Session{}, errors.New("invalid session token")
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || claims.ID == "" {
		return Session{}, errors.New("invalid session claims")
	}
	return Session{ID: claims.ID, Authenticated: claims.Authenticated}, nil
}
