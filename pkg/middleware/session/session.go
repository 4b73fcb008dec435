package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/hotel_ordering/pkg/logging"
	"github.com/Skotchmaster/hotel_ordering/pkg/tokens"
)

const (
	CookieName = "sessionToken"
	ContextKey = "session_id"
)

type Middleware struct {
	Secret []byte
	TTL    time.Duration
	Secure bool
}

func New(secret []byte, ttl time.Duration) *Middleware {
	return &Middleware{
		Secret: secret,
		TTL:    ttl,
	}
}

// Require resolves the visitor's session from the cookie, minting a new
// session when the cookie is missing, tampered with or expired.
func (m *Middleware) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if ck, err := c.Cookie(CookieName); err == nil && ck.Value != "" {
			id, err := tokens.SessionIDFromToken(ck.Value, m.Secret)
			if err == nil {
				c.Set(ContextKey, id.String())
				return next(c)
			}
			logging.FromContext(c.Request().Context()).Info("session_renewed", "reason", err.Error())
		}

		id := uuid.New()
		if err := m.issue(c, id); err != nil {
			logging.FromContext(c.Request().Context()).Error("session_issue_error", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot start session")
		}
		c.Set(ContextKey, id.String())
		return next(c)
	}
}

func (m *Middleware) issue(c echo.Context, id uuid.UUID) error {
	exp := time.Now().Add(m.TTL)

	token, err := tokens.NewSessionToken(id, m.Secret, exp)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func ID(c echo.Context) (uuid.UUID, error) {
	s, ok := c.Get(ContextKey).(string)
	if !ok || s == "" {
		return uuid.Nil, errors.New("no session")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errors.New("no session")
	}
	return id, nil
}
