package domain

import "time"

// AuditEventType names what happened. It doubles as the message routing key.
type AuditEventType string

const (
	AuditAssetCreated      AuditEventType = "asset.created"
	AuditLifecycleLogged   AuditEventType = "lifecycle.logged"
	AuditDisposalRequested AuditEventType = "disposal.requested"
	AuditDisposalApproved  AuditEventType = "disposal.approved"
)

// AuditEvent is an append-only record of a state change on an asset.
type AuditEvent struct {
	ID         string         `json:"id" bson:"event_id"`
	Type       AuditEventType `json:"type" bson:"type"`
	AssetID    int64          `json:"assetId" bson:"asset_id"`
	ActorID    int64          `json:"actorId,omitempty" bson:"actor_id,omitempty"`
	ActorEmail string         `json:"actorEmail,omitempty" bson:"actor_email,omitempty"`
	Payload    map[string]any `json:"payload,omitempty" bson:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurredAt" bson:"occurred_at"`
}
