package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/99minutos/asset-management/internal/core/domain"
	"github.com/99minutos/asset-management/internal/core/ports"
	"github.com/99minutos/asset-management/pkg/password"
)

// CredentialVerifier checks email/password pairs against stored hashes.
type CredentialVerifier struct {
	accounts ports.AccountRepository
	hasher   password.Hasher
	logger   zerolog.Logger

	dummyOnce sync.Once
	dummyHash string
}

func NewCredentialVerifier(accounts ports.AccountRepository, hasher password.Hasher, logger zerolog.Logger) *CredentialVerifier {
	return &CredentialVerifier{accounts: accounts, hasher: hasher, logger: logger}
}

// Verify reports whether password belongs to email. An unknown email is a
// plain false, the same as a wrong password.
func (v *CredentialVerifier) Verify(ctx context.Context, email, password string) (bool, error) {
	_, err := v.Check(ctx, email, password)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrInvalidCredentials):
		return false, nil
	default:
		return false, err
	}
}

// Check returns the account owning the credentials, or
// domain.ErrInvalidCredentials without saying which half was wrong.
func (v *CredentialVerifier) Check(ctx context.Context, email, plain string) (*domain.User, error) {
	if email == "" || plain == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := v.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Burn a comparison so unknown emails take as long as known ones.
			_, _ = password.Verify(v.dummy(), plain)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := password.Verify(user.PasswordHash, plain)
	if err != nil {
		v.logger.Warn().Err(err).Int64("user_id", user.ID).Msg("stored password hash unreadable")
		return nil, domain.ErrInvalidCredentials
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (v *CredentialVerifier) dummy() string {
	v.dummyOnce.Do(func() {
		h, err := v.hasher.Hash("not-a-real-password")
		if err == nil {
			v.dummyHash = h
		}
	})
	return v.dummyHash
}
