package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"coursehub/internal/domain"
	"coursehub/internal/infrastructure/logger"
	"coursehub/internal/infrastructure/oauth"
	"coursehub/internal/infrastructure/repository"
	"coursehub/internal/infrastructure/security"

	"github.com/google/uuid"
)

// OAuthProvider is the identity provider behind /auth/google.
type OAuthProvider interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth.Identity, error)
}

type AuthUseCase struct {
	log          *logger.Logger
	userRepo     *repository.UserRepository
	hasher       *security.PasswordHasher
	tokenManager *security.TokenManager
	google       OAuthProvider
	suffix       func() string
}

func NewAuthUseCase(
	log *logger.Logger,
	ur *repository.UserRepository,
	h *security.PasswordHasher,
	tm *security.TokenManager,
	google OAuthProvider,
) *AuthUseCase {
	return &AuthUseCase{
		log:          log.With("service", "AuthUseCase"),
		userRepo:     ur,
		hasher:       h,
		tokenManager: tm,
		google:       google,
		suffix:       func() string { return randomSuffix(5) },
	}
}

type SignupInput struct {
	Email    string
	Username string
	Phone    string
	Password string
}

func (uc *AuthUseCase) Signup(ctx context.Context, in SignupInput) (*domain.User, error) {
	if in.Email == "" || in.Username == "" || in.Phone == "" || in.Password == "" {
		return nil, domain.NewError(domain.ErrBadRequest, "All fields are required.")
	}

	exists, err := uc.userRepo.ExistsByEmailOrUsername(ctx, in.Email, in.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:       uuid.New(),
		Email:    in.Email,
		Username: in.Username,
		Phone:    in.Phone,
		Password: hash,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	uc.log.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login checks credentials and returns the user with a fresh bearer token.
func (uc *AuthUseCase) Login(ctx context.Context, emailOrUsername, password string) (*domain.User, string, error) {
	if emailOrUsername == "" || password == "" {
		return nil, "", domain.NewError(domain.ErrBadRequest, "Email/Username and password are required.")
	}

	user, err := uc.userRepo.GetByLogin(ctx, emailOrUsername)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !user.HasPassword() {
		return nil, "", domain.ErrOAuthOnlyAccount
	}
	if err := uc.hasher.Compare(user.Password, password); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := uc.tokenManager.Generate(user)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return user, token, nil
}

func (uc *AuthUseCase) GoogleAuthURL(state string) string {
	return uc.google.AuthURL(state)
}

// GoogleLogin exchanges an authorization code, then finds or provisions the
// account for the verified email.
func (uc *AuthUseCase) GoogleLogin(ctx context.Context, code string) (*domain.User, string, error) {
	if code == "" {
		return nil, "", domain.NewError(domain.ErrBadRequest, "Authorization code is required")
	}
	identity, err := uc.google.Exchange(ctx, code)
	if err != nil {
		return nil, "", domain.WrapError(domain.ErrUpstream, "Authentication failed", err)
	}

	user, err := uc.userRepo.GetByEmail(ctx, identity.Email)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		user, err = uc.provisionOAuthUser(ctx, identity)
		if err != nil {
			return nil, "", err
		}
	case err != nil:
		return nil, "", err
	case user.OAuthProvider == "":
		user.OAuthProvider = domain.OAuthProviderGoogle
		if user.FullName == "" {
			user.FullName = identity.Name
		}
		if user.ProfilePic == "" {
			user.ProfilePic = identity.Picture
		}
		if err := uc.userRepo.Save(ctx, user); err != nil {
			return nil, "", err
		}
	}

	token, err := uc.tokenManager.Generate(user)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return user, token, nil
}

func (uc *AuthUseCase) provisionOAuthUser(ctx context.Context, identity *oauth.Identity) (*domain.User, error) {
	local := identity.Email
	if i := strings.Index(local, "@"); i >= 0 {
		local = local[:i]
	}
	fullName := identity.Name
	if fullName == "" {
		fullName = strings.TrimSpace(identity.GivenName + " " + identity.FamilyName)
	}

	var err error
	// the random suffix may collide with an existing username
	for attempt := 0; attempt < 3; attempt++ {
		user := &domain.User{
			ID:            uuid.New(),
			Email:         identity.Email,
			Username:      local + "_" + uc.suffix(),
			FullName:      fullName,
			ProfilePic:    identity.Picture,
			OAuthProvider: domain.OAuthProviderGoogle,
		}
		err = uc.userRepo.Create(ctx, user)
		if err == nil {
			uc.log.Info("oauth user provisioned", "user_id", user.ID, "provider", user.OAuthProvider)
			return user, nil
		}
		if !errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, err
		}
	}
	return nil, err
}

// Resolve finds the acting user from either credential form. The session
// wins when both are present.
func (uc *AuthUseCase) Resolve(ctx context.Context, sessionUserID, bearer string) (*domain.User, error) {
	if sessionUserID != "" {
		if id, err := uuid.Parse(sessionUserID); err == nil {
			user, err := uc.userRepo.GetByID(ctx, id)
			if err == nil {
				return user, nil
			}
			if !errors.Is(err, domain.ErrUserNotFound) {
				return nil, err
			}
		}
	}

	if bearer != "" {
		id, err := uc.tokenManager.Validate(bearer)
		if err != nil {
			return nil, domain.ErrNotAuthenticated
		}
		user, err := uc.userRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, domain.ErrNotAuthenticated
			}
			return nil, err
		}
		return user, nil
	}

	return nil, domain.ErrNotAuthenticated
}
