package ports

import (
	"context"

	"github.com/99minutos/asset-management/internal/core/domain"
)

type VendorRepository interface {
	Create(ctx context.Context, v *domain.Vendor) (*domain.Vendor, error)
	FindByID(ctx context.Context, id int64) (*domain.Vendor, error)
	FindByName(ctx context.Context, name string) (*domain.Vendor, error)
	List(ctx context.Context) ([]*domain.Vendor, error)
}

type RuleRepository interface {
	Create(ctx context.Context, r *domain.DepreciationRule) (*domain.DepreciationRule, error)
	FindByID(ctx context.Context, id int64) (*domain.DepreciationRule, error)
	FindByName(ctx context.Context, name string) (*domain.DepreciationRule, error)
	List(ctx context.Context) ([]*domain.DepreciationRule, error)
}

type CreateVendorInput struct {
	Name         string
	ContactEmail string
	Phone        string
}

type VendorService interface {
	CreateVendor(ctx context.Context, input CreateVendorInput) (*domain.Vendor, error)
	GetVendor(ctx context.Context, id int64) (*domain.Vendor, error)
	ListVendors(ctx context.Context) ([]*domain.Vendor, error)
}

type CreateRuleInput struct {
	Name            string
	Method          string
	UsefulLifeYears int
	SalvageValue    float64
}

type RuleService interface {
	CreateRule(ctx context.Context, input CreateRuleInput) (*domain.DepreciationRule, error)
	ListRules(ctx context.Context) ([]*domain.DepreciationRule, error)
}
