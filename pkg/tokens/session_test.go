package tokens

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-session-secret")

func TestSessionToken_RoundTrip(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	exp := time.Now().Add(time.Hour).UTC()

	token, err := NewSessionToken(id, testSecret, exp)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := SessionClaimsFromToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, exp, claims.ExpiresAt.Time, time.Second)

	got, err := SessionIDFromToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestSessionToken_Rejections(t *testing.T) {
	t.Parallel()

	valid, err := NewSessionToken(uuid.New(), testSecret, time.Now().Add(time.Hour))
	require.NoError(t, err)

	expired, err := NewSessionToken(uuid.New(), testSecret, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	foreignIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		Issuer:    "someone-else",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(testSecret)
	require.NoError(t, err)

	notUUID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "room-205",
		Issuer:    sessionIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(testSecret)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret []byte
	}{
		{name: "garbage", token: "not-a-jwt", secret: testSecret},
		{name: "wrong secret", token: valid, secret: []byte("other")},
		{name: "expired", token: expired, secret: testSecret},
		{name: "foreign issuer", token: foreignIssuer, secret: testSecret},
		{name: "subject not a uuid", token: notUUID, secret: testSecret},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, err := SessionIDFromToken(tt.token, tt.secret)
			require.Error(t, err)
			assert.Equal(t, uuid.Nil, id)
		})
	}
}

func TestSessionToken_ExpiredIsReportedAsExpired(t *testing.T) {
	t.Parallel()

	expired, err := NewSessionToken(uuid.New(), testSecret, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = SessionClaimsFromToken(expired, testSecret)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}
