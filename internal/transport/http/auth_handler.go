package handlers

import (
	"encoding/base64"
	"errors"
	"net/http"
	"net/url"

	"coursehub/internal/application/usecase"
	"coursehub/internal/domain"
	"coursehub/internal/infrastructure/logger"
	"coursehub/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

const oauthStateKey = "oauthState"

type AuthHandler struct {
	log         *logger.Logger
	auth        *usecase.AuthUseCase
	store       sessions.Store
	frontendURL string
}

func NewAuthHandler(log *logger.Logger, auth *usecase.AuthUseCase, store sessions.Store, frontendURL string) *AuthHandler {
	return &AuthHandler{log: log.With("handler", "auth"), auth: auth, store: store, frontendURL: frontendURL}
}

type signupReq struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginReq struct {
	EmailOrUsername string `json:"emailOrUsername" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "All fields are required.")
		return
	}

	user, err := h.auth.Signup(c.Request.Context(), usecase.SignupInput{
		Email:    req.Email,
		Username: req.Username,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully!", "userId": user.ID})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Email/Username and password are required.")
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.EmailOrUsername, req.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	h.startSession(c, user)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful!",
		"token":   token,
		"user":    gin.H{"id": user.ID, "email": user.Email, "username": user.Username},
	})
}

type sessionRenewer interface {
	Renew(r *http.Request, s *sessions.Session) error
}

// startSession binds a freshly issued session id to user. A failing session
// backend only costs the cookie: the bearer token still works.
func (h *AuthHandler) startSession(c *gin.Context, user *domain.User) {
	s, err := h.store.Get(c.Request, middleware.SessionName)
	if err != nil {
		h.log.Warn("session load failed", "error", err)
	}
	if rn, ok := h.store.(sessionRenewer); ok {
		if err := rn.Renew(c.Request, s); err != nil {
			h.log.Warn("session renew failed", "error", err)
		}
	}
	s.ID = ""
	s.Values[middleware.SessionUserKey] = user.ID.String()
	s.Values["username"] = user.Username
	s.Values["email"] = user.Email
	delete(s.Values, oauthStateKey)
	if err := s.Save(c.Request, c.Writer); err != nil {
		h.log.Warn("session save failed", "user_id", user.ID, "error", err)
	}
}

func (h *AuthHandler) Logout(c *gin.Context) {
	s, err := h.store.Get(c.Request, middleware.SessionName)
	if err == nil {
		s.Options.MaxAge = -1
		err = s.Save(c.Request, c.Writer)
	}
	if err != nil {
		h.log.Error("logout failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Logout failed.", "code": "internal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully."})
}

func (h *AuthHandler) GoogleRedirect(c *gin.Context) {
	state := base64.RawURLEncoding.EncodeToString(securecookie.GenerateRandomKey(24))

	s, err := h.store.Get(c.Request, middleware.SessionName)
	if err != nil {
		h.log.Warn("session load failed", "error", err)
	}
	s.Values[oauthStateKey] = state
	if err := s.Save(c.Request, c.Writer); err != nil {
		h.log.Error("oauth state not saved", "error", err)
		h.redirectFailure(c)
		return
	}
	c.Redirect(http.StatusFound, h.auth.GoogleAuthURL(state))
}

// GoogleCallback answers the browser with redirects only, except for a
// request without a code.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		badRequest(c, "Authorization code is required")
		return
	}

	s, err := h.store.Get(c.Request, middleware.SessionName)
	if err != nil {
		h.log.Warn("session load failed", "error", err)
	}
	expected, _ := s.Values[oauthStateKey].(string)
	if expected == "" || expected != c.Query("state") {
		h.log.Warn("oauth state mismatch")
		h.redirectFailure(c)
		return
	}

	user, token, err := h.auth.GoogleLogin(c.Request.Context(), code)
	if err != nil {
		if !errors.Is(err, domain.ErrUpstream) {
			h.log.Error("google login failed", "error", err)
		} else {
			h.log.Warn("google login rejected", "error", err)
		}
		h.redirectFailure(c)
		return
	}
	h.startSession(c, user)

	c.Redirect(http.StatusFound, h.frontendURL+"/landing-page?token="+url.QueryEscape(token))
}

func (h *AuthHandler) redirectFailure(c *gin.Context) {
	c.Redirect(http.StatusFound, h.frontendURL+"/login-error?message="+url.QueryEscape("Authentication failed"))
}

// Protected reports who the caller is authenticated as.
func (h *AuthHandler) Protected(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"message": "You are authenticated",
		"user":    gin.H{"id": user.ID, "email": user.Email, "username": user.Username},
	})
}
