package cache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cookieName = "coursehub.sid"

func saveSession(t *testing.T, store *SessionStore, values map[string]string) *http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	s, err := store.Get(req, cookieName)
	require.NoError(t, err)
	assert.True(t, s.IsNew)
	for k, v := range values {
		s.Values[k] = v
	}
	require.NoError(t, s.Save(req, rec))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestSessionStoreRoundTrip(t *testing.T) {
	backend := NewMemorySessionBackend()
	store := NewSessionStore(backend, "secret", time.Hour, false)
	cookie := saveSession(t, store, map[string]string{"userId": "u-1"})
	assert.True(t, cookie.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	s, err := store.Get(req, cookieName)
	require.NoError(t, err)
	assert.False(t, s.IsNew)
	assert.Equal(t, "u-1", s.Values["userId"])
}

func TestSessionStoreRejectsForeignSignature(t *testing.T) {
	backend := NewMemorySessionBackend()
	cookie := saveSession(t, NewSessionStore(backend, "one", time.Hour, false), map[string]string{"userId": "u-1"})

	other := NewSessionStore(backend, "two", time.Hour, false)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	s, err := other.Get(req, cookieName)
	require.NoError(t, err)
	assert.True(t, s.IsNew)
	assert.Empty(t, s.Values)
}

func TestSessionStoreDeleteOnNegativeMaxAge(t *testing.T) {
	backend := NewMemorySessionBackend()
	store := NewSessionStore(backend, "secret", time.Hour, false)
	cookie := saveSession(t, store, map[string]string{"userId": "u-1"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	s, err := store.Get(req, cookieName)
	require.NoError(t, err)
	id := s.ID

	s.Options.MaxAge = -1
	require.NoError(t, s.Save(req, rec))

	_, err = backend.Get(context.Background(), id)
	assert.ErrorIs(t, err, ErrSessionMissing)
}

func TestMemoryBackendExpires(t *testing.T) {
	b := NewMemorySessionBackend()
	now := time.Now()
	b.now = func() time.Time { return now }
	require.NoError(t, b.Set(context.Background(), "id", []byte("x"), time.Minute))

	b.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, err := b.Get(context.Background(), "id")
	assert.ErrorIs(t, err, ErrSessionMissing)
}
