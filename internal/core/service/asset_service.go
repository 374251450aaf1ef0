package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/asset-management/internal/core/domain"
	"github.com/99minutos/asset-management/internal/core/ports"
)

type AssetService struct {
	assets  ports.AssetRepository
	vendors ports.VendorRepository
	rules   ports.RuleRepository
	audit   ports.AuditPublisher
	logger  zerolog.Logger
	now     func() time.Time
}

func NewAssetService(
	assets ports.AssetRepository,
	vendors ports.VendorRepository,
	rules ports.RuleRepository,
	audit ports.AuditPublisher,
	logger zerolog.Logger,
) *AssetService {
	return &AssetService{
		assets:  assets,
		vendors: vendors,
		rules:   rules,
		audit:   orNop(audit),
		logger:  logger,
		now:     time.Now,
	}
}

// CreateAsset registers an asset bought from a vendor under a depreciation
// rule. New assets always start ACTIVE.
func (s *AssetService) CreateAsset(ctx context.Context, input ports.CreateAssetInput) (*domain.Asset, error) {
	if _, err := s.vendors.FindByID(ctx, input.VendorID); err != nil {
		return nil, err
	}
	if _, err := s.rules.FindByID(ctx, input.RuleID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	a := &domain.Asset{
		Tag:          strings.TrimSpace(input.Tag),
		Name:         strings.TrimSpace(input.Name),
		PurchaseDate: input.PurchaseDate,
		PurchaseCost: input.PurchaseCost,
		Status:       domain.AssetActive,
		VendorID:     input.VendorID,
		RuleID:       input.RuleID,
		CreatedAt:    now,
	}
	if a.PurchaseDate.IsZero() {
		a.PurchaseDate = now
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.assets.ExistsByTag(ctx, a.Tag)
	if err != nil {
		return nil, fmt.Errorf("create asset: %w", err)
	}
	if taken {
		return nil, domain.ErrDuplicateAssetTag
	}

	created, err := s.assets.Create(ctx, a)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("asset_id", created.ID).Str("asset_tag", created.Tag).Msg("asset created")
	s.audit.Enqueue(auditEvent(domain.AuditAssetCreated, created.ID, input.Actor, now, map[string]any{
		"assetTag":     created.Tag,
		"vendorId":     created.VendorID,
		"ruleId":       created.RuleID,
		"purchaseCost": created.PurchaseCost,
	}))
	return created, nil
}

// GetAsset returns the asset and its book value as of today.
func (s *AssetService) GetAsset(ctx context.Context, id int64) (*ports.AssetDetail, error) {
	a, err := s.assets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rule, err := s.rules.FindByID(ctx, a.RuleID)
	if err != nil {
		return nil, err
	}
	return &ports.AssetDetail{
		Asset:     a,
		Rule:      rule,
		BookValue: rule.BookValue(a.PurchaseCost, a.PurchaseDate, s.now()),
	}, nil
}

func (s *AssetService) ListAssets(ctx context.Context) ([]*domain.Asset, error) {
	return s.assets.List(ctx)
}

func (s *AssetService) ListAssetsByStatus(ctx context.Context, status string) ([]*domain.Asset, error) {
	st, err := domain.ParseAssetStatus(status)
	if err != nil {
		return nil, err
	}
	return s.assets.ListByStatus(ctx, st)
}
