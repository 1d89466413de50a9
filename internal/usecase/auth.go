package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/itlabs/orderflow/internal/domain/errors"
	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/domain/repository"
	"github.com/itlabs/orderflow/internal/pkg/auth"
	"github.com/itlabs/orderflow/internal/pkg/ratelimit"
)

// AuthUseCase handles staff registration, login and token verification.
type AuthUseCase struct {
	users      repository.UserRepository
	hasher     auth.PasswordHasher
	tokens     auth.Strategy
	limiter    *ratelimit.Limiter
	rateLimit  int
	rateWindow time.Duration
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(
	users repository.UserRepository,
	hasher auth.PasswordHasher,
	tokens auth.Strategy,
	limiter *ratelimit.Limiter,
	rateLimit int,
	rateWindow time.Duration,
) *AuthUseCase {
	return &AuthUseCase{
		users:      users,
		hasher:     hasher,
		tokens:     tokens,
		limiter:    limiter,
		rateLimit:  rateLimit,
		rateWindow: rateWindow,
	}
}

// Register creates a staff user and returns it with a fresh token.
func (u *AuthUseCase) Register(ctx context.Context, email, name, password string, role model.Role) (*model.User, string, error) {
	if !role.Valid() {
		role = model.RoleEmployee
	}
	email = normalizeEmail(email)

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := u.users.Create(ctx, email, name, hash, role)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// Authenticate verifies credentials and returns the user with a fresh token.
// Attempts are rate limited per email; failed and successful attempts both
// count against the window.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = normalizeEmail(email)

	if res := u.limiter.Check("login:"+email, u.rateLimit, u.rateWindow); !res.Allowed {
		return nil, "", fmt.Errorf("%w: retry in %s", domainErrors.ErrRateLimited, res.RetryAfter.Round(time.Second))
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// ParseToken returns the user id a staff token was issued for.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	return u.tokens.ParseToken(token)
}

// GetByID fetches one staff user.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
