package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/99minutos/asset-management/internal/core/domain"
	"github.com/99minutos/asset-management/internal/core/ports"
)

// UserService manages role membership. Changes show up in tokens issued at
// the next login; tokens already out keep their roles until they expire.
type UserService struct {
	accounts ports.AccountRepository
	logger   zerolog.Logger
}

func NewUserService(accounts ports.AccountRepository, logger zerolog.Logger) *UserService {
	return &UserService{accounts: accounts, logger: logger}
}

func (s *UserService) GrantRole(ctx context.Context, userID int64, role string) (*domain.User, error) {
	role = strings.ToUpper(strings.TrimSpace(role))
	if _, err := s.accounts.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.accounts.AddRole(ctx, userID, role); err != nil {
		return nil, fmt.Errorf("grant role: %w", err)
	}
	s.logger.Info().Int64("user_id", userID).Str("role", role).Msg("role granted")
	return s.accounts.FindByID(ctx, userID)
}

func (s *UserService) RevokeRole(ctx context.Context, userID int64, role string) (*domain.User, error) {
	role = strings.ToUpper(strings.TrimSpace(role))
	if _, err := s.accounts.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.accounts.RemoveRole(ctx, userID, role); err != nil {
		return nil, fmt.Errorf("revoke role: %w", err)
	}
	s.logger.Info().Int64("user_id", userID).Str("role", role).Msg("role revoked")
	return s.accounts.FindByID(ctx, userID)
}
