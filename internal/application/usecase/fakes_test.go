package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"coursehub/internal/infrastructure/logger"
	"coursehub/internal/infrastructure/oauth"
	"coursehub/internal/infrastructure/repository"
	"coursehub/internal/infrastructure/repository/testutil"
	"coursehub/internal/infrastructure/security"
	"coursehub/internal/infrastructure/storage"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeBlobStore struct {
	UploadFn func(ctx context.Context, category storage.Category, key, contentType string, body io.Reader) (string, error)

	category storage.Category
	key      string
	data     []byte
}

func (f *fakeBlobStore) Upload(ctx context.Context, category storage.Category, key, contentType string, body io.Reader) (string, error) {
	f.category, f.key = category, key
	f.data, _ = io.ReadAll(body)
	if f.UploadFn != nil {
		return f.UploadFn(ctx, category, key, contentType, body)
	}
	return "https://storage.googleapis.com/bucket/" + key, nil
}

type fakeOAuthProvider struct {
	AuthURLFn  func(state string) string
	ExchangeFn func(ctx context.Context, code string) (*oauth.Identity, error)
}

func (f *fakeOAuthProvider) AuthURL(state string) string {
	return f.AuthURLFn(state)
}

func (f *fakeOAuthProvider) Exchange(ctx context.Context, code string) (*oauth.Identity, error) {
	return f.ExchangeFn(ctx, code)
}

func newAuthUseCase(t *testing.T, db *gorm.DB, google OAuthProvider) *AuthUseCase {
	t.Helper()
	return NewAuthUseCase(
		logger.Nop(),
		repository.NewUserRepository(db),
		security.NewPasswordHasherWithCost(bcrypt.MinCost),
		security.NewTokenManager("test-secret", time.Hour),
		google,
	)
}

func newCheckoutUseCase(db *gorm.DB) *CheckoutUseCase {
	return NewCheckoutUseCase(
		logger.Nop(),
		repository.NewTransactor(db),
		repository.NewCounterRepository(db),
		repository.NewOrderRepository(db),
		repository.NewProgressRepository(db),
	)
}

var testDB = testutil.DB
