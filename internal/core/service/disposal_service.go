package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/asset-management/internal/core/domain"
	"github.com/99minutos/asset-management/internal/core/ports"
)

type DisposalService struct {
	disposals   ports.DisposalRepository
	assets      ports.AssetRepository
	accounts    ports.AccountRepository
	idempotency ports.IdempotencyStore
	audit       ports.AuditPublisher
	logger      zerolog.Logger
	now         func() time.Time
}

// NewDisposalService wires the disposal use cases. idempotency may be nil, in
// which case Idempotency-Key headers are ignored.
func NewDisposalService(
	disposals ports.DisposalRepository,
	assets ports.AssetRepository,
	accounts ports.AccountRepository,
	idempotency ports.IdempotencyStore,
	audit ports.AuditPublisher,
	logger zerolog.Logger,
) *DisposalService {
	return &DisposalService{
		disposals:   disposals,
		assets:      assets,
		accounts:    accounts,
		idempotency: idempotency,
		audit:       orNop(audit),
		logger:      logger,
		now:         time.Now,
	}
}

// RequestDisposal files a pending disposal. A repeated idempotency key from the
// same actor returns the disposal created by the first request; reusing it for
// another asset, or while the first request is still running, is a conflict.
func (s *DisposalService) RequestDisposal(ctx context.Context, input ports.RequestDisposalInput) (*ports.DisposalResult, error) {
	key := s.scopedKey(input)
	if key != "" {
		reserved, err := s.idempotency.Reserve(ctx, key)
		switch {
		case err != nil:
			s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency reserve failed, processing anyway")
			key = ""
		case !reserved:
			existing, err := s.replay(ctx, key, input.AssetID)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return &ports.DisposalResult{Disposal: existing, AlreadyExisted: true}, nil
			}
			key = ""
		}
	}

	created, err := s.create(ctx, input)
	if err != nil {
		if key != "" {
			if relErr := s.idempotency.Release(ctx, key); relErr != nil {
				s.logger.Warn().Err(relErr).Str("idempotency_key", key).Msg("failed to release idempotency key")
			}
		}
		return nil, err
	}

	if key != "" {
		if err := s.idempotency.Complete(ctx, key, created.ID); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("failed to store idempotency key")
		}
	}

	s.logger.Info().Int64("disposal_id", created.ID).Int64("asset_id", created.AssetID).Msg("disposal requested")
	s.audit.Enqueue(auditEvent(domain.AuditDisposalRequested, created.AssetID, input.Actor, created.CreatedAt, map[string]any{
		"disposalId":     created.ID,
		"disposalMethod": created.Method,
		"disposalValue":  created.Value,
	}))
	return &ports.DisposalResult{Disposal: created}, nil
}

func (s *DisposalService) create(ctx context.Context, input ports.RequestDisposalInput) (*domain.Disposal, error) {
	if _, err := s.assets.FindByID(ctx, input.AssetID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	d := &domain.Disposal{
		AssetID:   input.AssetID,
		Method:    strings.TrimSpace(input.Method),
		Value:     input.Value,
		Date:      input.Date,
		CreatedAt: now,
	}
	if d.Date.IsZero() {
		d.Date = now
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return s.disposals.Create(ctx, d)
}

// scopedKey namespaces the client key by actor so two users never share a
// replay. It is empty when idempotency does not apply.
func (s *DisposalService) scopedKey(input ports.RequestDisposalInput) string {
	if input.IdempotencyKey == "" || s.idempotency == nil {
		return ""
	}
	var actorID int64
	if input.Actor != nil {
		actorID = input.Actor.UserID
	}
	return strconv.FormatInt(actorID, 10) + ":" + input.IdempotencyKey
}

// replay resolves a key that is already held. A nil disposal with a nil error
// means the entry vanished and the request should be processed normally.
func (s *DisposalService) replay(ctx context.Context, key string, assetID int64) (*domain.Disposal, error) {
	id, ok, err := s.idempotency.Lookup(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed, processing anyway")
		return nil, nil
	}
	if !ok {
		return nil, nil
	}
	if id == 0 {
		return nil, domain.ErrIdempotencyInFlight
	}
	existing, err := s.disposals.FindByID(ctx, id)
	if err != nil {
		return nil, nil
	}
	if existing.AssetID != assetID {
		return nil, domain.ErrIdempotencyKeyReused
	}
	s.logger.Info().Str("idempotency_key", key).Int64("disposal_id", existing.ID).Msg("idempotent replay")
	return existing, nil
}

// ApproveDisposal signs off a pending disposal on behalf of approver, who must
// hold the ADMIN role. The asset is marked DISPOSED in the same transaction.
func (s *DisposalService) ApproveDisposal(ctx context.Context, disposalID int64, approver *domain.Identity) (*domain.Disposal, error) {
	if !domain.Authorize(approver, domain.RoleAdmin) {
		return nil, domain.ErrUnauthorized
	}
	if _, err := s.accounts.FindByID(ctx, approver.UserID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	now := s.now().UTC()
	approved, err := s.disposals.Approve(ctx, disposalID, approver.UserID, now)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("disposal_id", approved.ID).Int64("approved_by", approver.UserID).Msg("disposal approved")
	s.audit.Enqueue(auditEvent(domain.AuditDisposalApproved, approved.AssetID, approver, now, map[string]any{
		"disposalId":    approved.ID,
		"disposalValue": approved.Value,
	}))
	return approved, nil
}

// ListDisposals returns every disposal, or only those approved by approvedBy
// when it is non-zero.
func (s *DisposalService) ListDisposals(ctx context.Context, approvedBy int64) ([]*domain.Disposal, error) {
	if approvedBy != 0 {
		return s.disposals.ListByApprover(ctx, approvedBy)
	}
	return s.disposals.List(ctx)
}
