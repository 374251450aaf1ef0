package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/asset-management/internal/core/domain"
	"github.com/99minutos/asset-management/internal/core/ports"
)

type VendorService struct {
	repo   ports.VendorRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewVendorService(repo ports.VendorRepository, logger zerolog.Logger) *VendorService {
	return &VendorService{repo: repo, logger: logger, now: time.Now}
}

// CreateVendor validates and stores a vendor. Names are unique.
func (s *VendorService) CreateVendor(ctx context.Context, input ports.CreateVendorInput) (*domain.Vendor, error) {
	v := &domain.Vendor{
		Name:         strings.TrimSpace(input.Name),
		ContactEmail: strings.TrimSpace(input.ContactEmail),
		Phone:        strings.TrimSpace(input.Phone),
		CreatedAt:    s.now().UTC(),
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByName(ctx, v.Name); err == nil {
		return nil, domain.ErrDuplicateVendor
	} else if !errors.Is(err, domain.ErrVendorNotFound) {
		return nil, err
	}

	created, err := s.repo.Create(ctx, v)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("vendor_id", created.ID).Str("vendor_name", created.Name).Msg("vendor created")
	return created, nil
}

func (s *VendorService) GetVendor(ctx context.Context, id int64) (*domain.Vendor, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *VendorService) ListVendors(ctx context.Context) ([]*domain.Vendor, error) {
	return s.repo.List(ctx)
}
