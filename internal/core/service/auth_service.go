package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/asset-management/internal/core/domain"
	"github.com/99minutos/asset-management/internal/core/ports"
	"github.com/99minutos/asset-management/pkg/password"
)

// AuthService implements registration, login and token authentication.
type AuthService struct {
	accounts ports.AccountRepository
	verifier *CredentialVerifier
	hasher   password.Hasher
	codec    *TokenCodec
	logger   zerolog.Logger
	now      func() time.Time
}

func NewAuthService(
	accounts ports.AccountRepository,
	hasher password.Hasher,
	codec *TokenCodec,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		accounts: accounts,
		verifier: NewCredentialVerifier(accounts, hasher, logger),
		hasher:   hasher,
		codec:    codec,
		logger:   logger,
		now:      time.Now,
	}
}

// Register creates an account holding the default role. The email is stored
// as given apart from surrounding whitespace.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, domain.Invalid("Email and password are required")
	}

	exists, err := s.accounts.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateEmail
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	user, err := s.accounts.Save(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Roles:        domain.NewRoleSet(domain.DefaultRole),
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("account registered")
	return user, nil
}

// Login verifies the credentials and issues a token carrying the account's
// current roles.
func (s *AuthService) Login(ctx context.Context, email, plain string) (*ports.LoginResult, error) {
	user, err := s.verifier.Check(ctx, strings.TrimSpace(email), plain)
	if err != nil {
		return nil, err
	}

	token, exp, err := s.codec.Issue(user.Email, user.ID, user.Roles, s.now())
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.logger.Debug().Int64("user_id", user.ID).Time("expires_at", exp).Msg("token issued")
	return &ports.LoginResult{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		Roles:     user.Roles.Names(),
		ExpiresAt: exp,
	}, nil
}

// Authenticate decodes token into the identity it was issued for.
func (s *AuthService) Authenticate(token string) (*domain.Identity, error) {
	return s.codec.DecodeAt(token, s.now())
}
