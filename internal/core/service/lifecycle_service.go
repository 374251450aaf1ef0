package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/asset-management/internal/core/domain"
	"github.com/99minutos/asset-management/internal/core/ports"
)

type LifecycleService struct {
	events ports.LifecycleRepository
	assets ports.AssetRepository
	audit  ports.AuditPublisher
	logger zerolog.Logger
	now    func() time.Time
}

func NewLifecycleService(
	events ports.LifecycleRepository,
	assets ports.AssetRepository,
	audit ports.AuditPublisher,
	logger zerolog.Logger,
) *LifecycleService {
	return &LifecycleService{events: events, assets: assets, audit: orNop(audit), logger: logger, now: time.Now}
}

func (s *LifecycleService) LogEvent(ctx context.Context, input ports.LogEventInput) (*domain.LifecycleEvent, error) {
	if _, err := s.assets.FindByID(ctx, input.AssetID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	e := &domain.LifecycleEvent{
		AssetID:     input.AssetID,
		Type:        strings.TrimSpace(input.Type),
		Description: strings.TrimSpace(input.Description),
		EventDate:   input.EventDate,
		LoggedAt:    now,
	}
	if err := e.Validate(now); err != nil {
		return nil, err
	}

	created, err := s.events.Create(ctx, e)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("asset_id", created.AssetID).Str("event_type", created.Type).Msg("lifecycle event logged")
	s.audit.Enqueue(auditEvent(domain.AuditLifecycleLogged, created.AssetID, input.Actor, now, map[string]any{
		"eventId":   created.ID,
		"eventType": created.Type,
		"eventDate": created.EventDate.UTC().Format(time.RFC3339),
	}))
	return created, nil
}

// ListEvents returns the asset's history, newest event date first.
func (s *LifecycleService) ListEvents(ctx context.Context, assetID int64) ([]*domain.LifecycleEvent, error) {
	if _, err := s.assets.FindByID(ctx, assetID); err != nil {
		return nil, err
	}
	return s.events.ListByAsset(ctx, assetID)
}
