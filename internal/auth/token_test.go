package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zha7nea/callcenter/internal/model"
)

func newTestIssuer() *TokenIssuer {
	return NewTokenIssuer(TokenConfig{
		Secret: []byte("test-secret"),
		Issuer: "callcenter",
		TTL:    15 * time.Minute,
	})
}

func TestTokenIssuer_IssueVerify(t *testing.T) {
	issuer := newTestIssuer()

	token, err := issuer.Issue("admin", model.RoleAdmin)
	require.NoError(t, err)

	id, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", id.Username)
	assert.Equal(t, model.RoleAdmin, id.Role)
	assert.NotEmpty(t, id.TokenID)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), id.ExpiresAt, 2*time.Second)

	other, err := issuer.Issue("admin", model.RoleAdmin)
	require.NoError(t, err)
	otherID, err := issuer.Verify(other)
	require.NoError(t, err)
	assert.NotEqual(t, id.TokenID, otherID.TokenID)
}

func TestTokenIssuer_Verify(t *testing.T) {
	t.Run("expired", func(t *testing.T) {
		issuer := newTestIssuer()
		issuer.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, err := issuer.Issue("bob", model.RoleUser)
		require.NoError(t, err)

		issuer.now = time.Now
		_, err = issuer.Verify(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := newTestIssuer().Issue("bob", model.RoleUser)
		require.NoError(t, err)

		other := NewTokenIssuer(TokenConfig{Secret: []byte("other"), Issuer: "callcenter", TTL: time.Minute})
		_, err = other.Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := newTestIssuer().Issue("bob", model.RoleUser)
		require.NoError(t, err)

		other := NewTokenIssuer(TokenConfig{Secret: []byte("test-secret"), Issuer: "someone-else", TTL: time.Minute})
		_, err = other.Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := newTestIssuer().Verify("not.a.token")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("unsupported algorithm", func(t *testing.T) {
		claims := accessClaims{
			Role: "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        "x",
				Subject:   "admin",
				Issuer:    "callcenter",
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = newTestIssuer().Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("unknown role", func(t *testing.T) {
		claims := accessClaims{
			Role: "root",
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        "x",
				Subject:   "admin",
				Issuer:    "callcenter",
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = newTestIssuer().Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}
