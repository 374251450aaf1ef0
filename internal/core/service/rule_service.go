package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/asset-management/internal/core/domain"
	"github.com/99minutos/asset-management/internal/core/ports"
)

type RuleService struct {
	repo   ports.RuleRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewRuleService(repo ports.RuleRepository, logger zerolog.Logger) *RuleService {
	return &RuleService{repo: repo, logger: logger, now: time.Now}
}

func (s *RuleService) CreateRule(ctx context.Context, input ports.CreateRuleInput) (*domain.DepreciationRule, error) {
	r := &domain.DepreciationRule{
		Name:            strings.TrimSpace(input.Name),
		Method:          domain.DepreciationMethod(strings.ToUpper(strings.TrimSpace(input.Method))),
		UsefulLifeYears: input.UsefulLifeYears,
		SalvageValue:    input.SalvageValue,
		CreatedAt:       s.now().UTC(),
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, r)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("rule_id", created.ID).Str("method", string(created.Method)).Msg("depreciation rule created")
	return created, nil
}

func (s *RuleService) ListRules(ctx context.Context) ([]*domain.DepreciationRule, error) {
	return s.repo.List(ctx)
}
