package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/asset-management/internal/core/domain"
	"github.com/99minutos/asset-management/internal/core/ports"
)

func newLifecycleFixture(t *testing.T) (*LifecycleService, *stubLifecycleRepo, *recordingAudit) {
	t.Helper()
	assets := &stubAssetRepo{}
	_, _ = assets.Create(context.Background(), &domain.Asset{Tag: "T-1", Name: "Laptop", Status: domain.AssetActive})
	events := &stubLifecycleRepo{}
	audit := &recordingAudit{}
	svc := NewLifecycleService(events, assets, audit, zerolog.Nop())
	svc.now = fixedClock(t0)
	return svc, events, audit
}

func TestLifecycleService_LogEvent(t *testing.T) {
	svc, _, audit := newLifecycleFixture(t)

	e, err := svc.LogEvent(context.Background(), ports.LogEventInput{
		AssetID:     1,
		Type:        "REPAIR",
		Description: "screen replaced",
		EventDate:   t0.Add(-48 * time.Hour),
		Actor:       &domain.Identity{UserID: 2, Email: "u@x.com"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.LoggedAt.Equal(t0) {
		t.Fatalf("loggedAt should be now, got %v", e.LoggedAt)
	}
	if got := audit.types(); len(got) != 1 || got[0] != domain.AuditLifecycleLogged {
		t.Fatalf("unexpected audit events: %v", got)
	}
	if audit.events[0].ActorID != 2 {
		t.Fatalf("actor not recorded: %+v", audit.events[0])
	}
}

func TestLifecycleService_LogEvent_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		input   ports.LogEventInput
		wantErr error
		wantMsg string
	}{
		{
			name:    "unknown asset",
			input:   ports.LogEventInput{AssetID: 99, Type: "REPAIR", Description: "x", EventDate: t0},
			wantErr: domain.ErrAssetNotFound,
		},
		{
			name:    "future date",
			input:   ports.LogEventInput{AssetID: 1, Type: "REPAIR", Description: "x", EventDate: t0.Add(time.Hour)},
			wantErr: domain.ErrInvalidInput,
			wantMsg: "Event date cannot be in the future",
		},
		{
			name:    "blank description",
			input:   ports.LogEventInput{AssetID: 1, Type: "REPAIR", Description: "  ", EventDate: t0},
			wantErr: domain.ErrInvalidInput,
			wantMsg: "Event description cannot be empty",
		},
		{
			name:    "missing type",
			input:   ports.LogEventInput{AssetID: 1, Description: "x", EventDate: t0},
			wantErr: domain.ErrInvalidInput,
			wantMsg: "Event type is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, events, audit := newLifecycleFixture(t)
			_, err := svc.LogEvent(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantMsg != "" && err.Error() != tt.wantMsg {
				t.Fatalf("expected %q, got %q", tt.wantMsg, err.Error())
			}
			if len(events.events) != 0 || len(audit.events) != 0 {
				t.Fatalf("rejected event must not be stored or audited")
			}
		})
	}
}

func TestLifecycleService_ListEvents_NewestFirst(t *testing.T) {
	svc, _, _ := newLifecycleFixture(t)
	ctx := context.Background()

	for _, d := range []time.Duration{72, 24, 48} {
		if _, err := svc.LogEvent(ctx, ports.LogEventInput{
			AssetID: 1, Type: "CHECK", Description: "ok", EventDate: t0.Add(-d * time.Hour),
		}); err != nil {
			t.Fatalf("log event: %v", err)
		}
	}

	events, err := svc.ListEvents(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].EventDate.After(events[i-1].EventDate) {
			t.Fatalf("events not ordered newest first: %v then %v", events[i-1].EventDate, events[i].EventDate)
		}
	}

	if _, err := svc.ListEvents(ctx, 99); !errors.Is(err, domain.ErrAssetNotFound) {
		t.Fatalf("expected ErrAssetNotFound, got %v", err)
	}
}
