package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/99minutos/asset-management/internal/core/domain"
	"github.com/99minutos/asset-management/internal/core/ports"
)

// NopAuditPublisher drops every event.
type NopAuditPublisher struct{}

func (NopAuditPublisher) Enqueue(domain.AuditEvent) {}

func auditEvent(t domain.AuditEventType, assetID int64, actor *domain.Identity, at time.Time, payload map[string]any) domain.AuditEvent {
	ev := domain.AuditEvent{
		ID:         uuid.NewString(),
		Type:       t,
		AssetID:    assetID,
		Payload:    payload,
		OccurredAt: at.UTC(),
	}
	if actor != nil {
		ev.ActorID = actor.UserID
		ev.ActorEmail = actor.Email
	}
	return ev
}

func orNop(p ports.AuditPublisher) ports.AuditPublisher {
	if p == nil {
		return NopAuditPublisher{}
	}
	return p
}
