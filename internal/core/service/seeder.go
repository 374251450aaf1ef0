package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/asset-management/internal/core/domain"
	"github.com/99minutos/asset-management/internal/core/ports"
	"github.com/99minutos/asset-management/pkg/password"
)

// SeedOptions controls startup data. Every step is skipped when its data
// already exists, so seeding on each boot is safe.
type SeedOptions struct {
	AdminEmail    string
	AdminPassword string
	DemoData      bool
}

// Seeder creates the bootstrap administrator and optional demo records.
type Seeder struct {
	accounts ports.AccountRepository
	vendors  ports.VendorRepository
	rules    ports.RuleRepository
	assets   ports.AssetRepository
	hasher   password.Hasher
	logger   zerolog.Logger
	now      func() time.Time
}

func NewSeeder(
	accounts ports.AccountRepository,
	vendors ports.VendorRepository,
	rules ports.RuleRepository,
	assets ports.AssetRepository,
	hasher password.Hasher,
	logger zerolog.Logger,
) *Seeder {
	return &Seeder{
		accounts: accounts,
		vendors:  vendors,
		rules:    rules,
		assets:   assets,
		hasher:   hasher,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *Seeder) Seed(ctx context.Context, opts SeedOptions) error {
	if opts.AdminEmail != "" && opts.AdminPassword != "" {
		if err := s.seedAdmin(ctx, opts.AdminEmail, opts.AdminPassword); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}
	if opts.DemoData {
		if err := s.seedDemo(ctx); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
	}
	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context, email, plain string) error {
	exists, err := s.accounts.ExistsByEmail(ctx, email)
	if err != nil || exists {
		return err
	}
	hash, err := s.hasher.Hash(plain)
	if err != nil {
		return err
	}
	u, err := s.accounts.Save(ctx, &domain.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hash,
		Roles:        domain.NewRoleSet(domain.RoleAdmin, domain.RoleUser),
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", u.ID).Msg("bootstrap administrator created")
	return nil
}

const (
	demoVendorName = "StaticVendor"
	demoRuleName   = "StaticRule"
	demoAssetTag   = "INTEG-TAG-001"
)

func (s *Seeder) seedDemo(ctx context.Context) error {
	now := s.now().UTC()

	vendor, err := s.vendors.FindByName(ctx, demoVendorName)
	if errors.Is(err, domain.ErrVendorNotFound) {
		vendor, err = s.vendors.Create(ctx, &domain.Vendor{
			Name:         demoVendorName,
			ContactEmail: "static@example.com",
			Phone:        "0000000000",
			CreatedAt:    now,
		})
	}
	if err != nil {
		return err
	}

	rule, err := s.rules.FindByName(ctx, demoRuleName)
	if errors.Is(err, domain.ErrRuleNotFound) {
		rule, err = s.rules.Create(ctx, &domain.DepreciationRule{
			Name:            demoRuleName,
			Method:          domain.MethodStraightLine,
			UsefulLifeYears: 5,
			SalvageValue:    0,
			CreatedAt:       now,
		})
	}
	if err != nil {
		return err
	}

	taken, err := s.assets.ExistsByTag(ctx, demoAssetTag)
	if err != nil || taken {
		return err
	}
	_, err = s.assets.Create(ctx, &domain.Asset{
		Tag:          demoAssetTag,
		Name:         "ExistingAsset",
		PurchaseDate: now,
		PurchaseCost: 1000,
		Status:       domain.AssetActive,
		VendorID:     vendor.ID,
		RuleID:       rule.ID,
		CreatedAt:    now,
	})
	if err != nil {
		return err
	}
	s.logger.Info().Msg("demo data seeded")
	return nil
}
