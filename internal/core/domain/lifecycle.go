package domain

import (
	"strings"
	"time"
)

// LifecycleEvent records something that happened to an asset, such as a
// repair or a transfer.
type LifecycleEvent struct {
	ID          int64
	AssetID     int64
	Type        string
	Description string
	EventDate   time.Time
	LoggedAt    time.Time
}

// Validate checks the event against now. Events may be back-dated but not
// future-dated.
func (e *LifecycleEvent) Validate(now time.Time) error {
	if strings.TrimSpace(e.Type) == "" {
		return Invalid("Event type is required")
	}
	if strings.TrimSpace(e.Description) == "" {
		return Invalid("Event description cannot be empty")
	}
	if e.EventDate.IsZero() {
		return Invalid("Event date is required")
	}
	if e.EventDate.After(now) {
		return Invalid("Event date cannot be in the future")
	}
	return nil
}
