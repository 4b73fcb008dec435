package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/hotel_ordering/pkg/tokens"
)

var testSecret = []byte("test-session-secret")

func newEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	mw := New(testSecret, time.Hour)
	e.GET("/whoami", func(c echo.Context) error {
		id, err := ID(c)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		return c.String(http.StatusOK, id.String())
	}, mw.Require)
	return e
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == CookieName {
			return ck
		}
	}
	return nil
}

func TestRequire_MintsSessionWithoutCookie(t *testing.T) {
	t.Parallel()

	e := newEcho(t)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	ck := sessionCookie(rec)
	require.NotNil(t, ck)
	assert.True(t, ck.HttpOnly)

	id, err := tokens.SessionIDFromToken(ck.Value, testSecret)
	require.NoError(t, err)
	assert.Equal(t, id.String(), rec.Body.String())
}

func TestRequire_ReusesValidCookie(t *testing.T) {
	t.Parallel()

	e := newEcho(t)
	id := uuid.New()
	token, err := tokens.NewSessionToken(id, testSecret, time.Now().Add(time.Hour))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id.String(), rec.Body.String())
	assert.Nil(t, sessionCookie(rec), "a valid session must not be reissued")
}

func TestRequire_ReplacesBadCookie(t *testing.T) {
	t.Parallel()

	expired, err := tokens.NewSessionToken(uuid.New(), testSecret, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	tests := []struct {
		name  string
		value string
	}{
		{name: "garbage", value: "garbage"},
		{name: "expired", value: expired},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newEcho(t)
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			req.AddCookie(&http.Cookie{Name: CookieName, Value: tt.value})
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			ck := sessionCookie(rec)
			require.NotNil(t, ck)
			assert.NotEqual(t, tt.value, ck.Value)
		})
	}
}

func TestID_WithoutMiddleware(t *testing.T) {
	t.Parallel()

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	id, err := ID(c)
	require.Error(t, err)
	assert.Equal(t, uuid.Nil, id)
}
