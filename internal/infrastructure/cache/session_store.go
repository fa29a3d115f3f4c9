package cache

import (
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

// SessionStore is a gorilla/sessions Store that keeps values server side and
// only puts a signed session id into the cookie.
type SessionStore struct {
	backend    SessionBackend
	codecs     []securecookie.Codec
	serializer securecookie.GobEncoder
	defaultTTL time.Duration

	Options *sessions.Options
}

func NewSessionStore(backend SessionBackend, secret string, ttl time.Duration, secure bool) *SessionStore {
	codecs := securecookie.CodecsFromPairs([]byte(secret))
	for _, c := range codecs {
		if sc, ok := c.(*securecookie.SecureCookie); ok {
			sc.MaxAge(int(ttl.Seconds()))
		}
	}
	return &SessionStore{
		backend:    backend,
		codecs:     codecs,
		defaultTTL: ttl,
		Options: &sessions.Options{
			Path:     "/",
			MaxAge:   int(ttl.Seconds()),
			HttpOnly: true,
			Secure:   secure,
			SameSite: sameSite(secure),
		},
	}
}

// The frontend lives on another origin, so secure deployments need
// SameSite=None for the browser to send the cookie at all.
func sameSite(secure bool) http.SameSite {
	if secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

func (s *SessionStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New returns the stored session for the request cookie, or a fresh one when
// the cookie is absent, tampered with or expired.
func (s *SessionStore) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := *s.Options
	session.Options = &opts
	session.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return session, nil
	}
	var id string
	if err := securecookie.DecodeMulti(name, c.Value, &id, s.codecs...); err != nil {
		return session, nil
	}

	data, err := s.backend.Get(r.Context(), id)
	if errors.Is(err, ErrSessionMissing) {
		return session, nil
	}
	if err != nil {
		return session, err
	}
	if err := s.serializer.Deserialize(data, &session.Values); err != nil {
		return session, err
	}
	session.ID = id
	session.IsNew = false
	return session, nil
}

// Renew drops the stored copy of session and clears its id, so the next Save
// issues a fresh id while keeping the values.
func (s *SessionStore) Renew(r *http.Request, session *sessions.Session) error {
	if session.ID != "" {
		if err := s.backend.Delete(r.Context(), session.ID); err != nil {
			return err
		}
	}
	session.ID = ""
	return nil
}

// Save persists the session. A negative MaxAge deletes it and clears the cookie.
func (s *SessionStore) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	if session.Options.MaxAge < 0 {
		if session.ID != "" {
			if err := s.backend.Delete(r.Context(), session.ID); err != nil {
				return err
			}
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = base64.RawURLEncoding.EncodeToString(securecookie.GenerateRandomKey(32))
	}
	data, err := s.serializer.Serialize(session.Values)
	if err != nil {
		return err
	}
	ttl := time.Duration(session.Options.MaxAge) * time.Second
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	if err := s.backend.Set(r.Context(), session.ID, data, ttl); err != nil {
		return err
	}

	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.codecs...)
	if err != nil {
		return err
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))
	return nil
}
