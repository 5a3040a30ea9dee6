// Package session keeps the visitor session in a signed cookie.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

const CookieName = "taskmanager_session"

type claims struct {
	UserID  uint64         `json:"uid,omitempty"`
	Flashes []domain.Flash `json:"flashes,omitempty"`
	jwt.RegisteredClaims
}

// CookieStore signs the session as an HS256 JWT.
type CookieStore struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

var _ ports.SessionStore = (*CookieStore)(nil)

func NewCookieStore(secret string, ttl time.Duration, secure bool) *CookieStore {
	return &CookieStore{
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
		now:    time.Now,
	}
}

func (s *CookieStore) Load(r *http.Request) (*domain.Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return &domain.Session{}, nil
	}

	var c claims
	token, err := jwt.ParseWithClaims(
		cookie.Value,
		&c,
		func(token *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return &domain.Session{}, fmt.Errorf("parse session cookie: %w", err)
	}
	if !token.Valid {
		return &domain.Session{}, errors.New("session cookie is not valid")
	}

	return &domain.Session{UserID: c.UserID, Flashes: c.Flashes}, nil
}

func (s *CookieStore) Save(w http.ResponseWriter, session *domain.Session) error {
	if !session.Authenticated() && len(session.Flashes) == 0 {
		http.SetCookie(w, s.cookie("", -1, time.Unix(0, 0)))
		return nil
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID:  session.UserID,
		Flashes: session.Flashes,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("sign session cookie: %w", err)
	}

	http.SetCookie(w, s.cookie(signed, int(s.ttl.Seconds()), expiresAt))
	return nil
}

func (s *CookieStore) cookie(value string, maxAge int, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
