package security

import (
	"testing"
	"time"

	"coursehub/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasherWithCost(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.NoError(t, h.Compare(hash, "s3cret"))
	assert.Error(t, h.Compare(hash, "wrong"))
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	u := &domain.User{ID: uuid.New(), Email: "a@x.com", Username: "a"}

	tok, err := m.Generate(u)
	require.NoError(t, err)

	id, err := m.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)
}

func TestTokenExpired(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	issued := time.Now().Add(-2 * time.Hour)
	m.now = func() time.Time { return issued }

	tok, err := m.Generate(&domain.User{ID: uuid.New()})
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Validate(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenWrongSecret(t *testing.T) {
	tok, err := NewTokenManager("one", time.Hour).Generate(&domain.User{ID: uuid.New()})
	require.NoError(t, err)

	_, err = NewTokenManager("two", time.Hour).Validate(tok)
	assert.Error(t, err)
}

func TestTokenManagerRefusesEmptySecret(t *testing.T) {
	m := NewTokenManager("", time.Hour)
	u := &domain.User{ID: uuid.New()}

	_, err := m.Generate(u)
	assert.ErrorIs(t, err, ErrMissingSecret)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: u.ID.String()}).SignedString([]byte{})
	require.NoError(t, err)
	_, err = m.Validate(forged)
	assert.ErrorIs(t, err, ErrMissingSecret)
}
