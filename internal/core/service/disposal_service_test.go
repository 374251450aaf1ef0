package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/asset-management/internal/core/domain"
	"github.com/99minutos/asset-management/internal/core/ports"
)

type disposalFixture struct {
	accounts  *stubAccountRepo
	assets    *stubAssetRepo
	disposals *stubDisposalRepo
	audit     *recordingAudit
	idem      *stubIdempotency
	svc       *DisposalService
	admin     *domain.Identity
}

func newDisposalFixture(t *testing.T) *disposalFixture {
	t.Helper()
	f := &disposalFixture{
		accounts: newStubAccountRepo(),
		assets:   &stubAssetRepo{},
		audit:    &recordingAudit{},
	}
	f.disposals = &stubDisposalRepo{assets: f.assets}
	_, _ = f.assets.Create(context.Background(), &domain.Asset{Tag: "T1", Name: "Printer", PurchaseCost: 200, Status: domain.AssetActive})
	_, _ = f.assets.Create(context.Background(), &domain.Asset{Tag: "T2", Name: "Scanner", PurchaseCost: 80, Status: domain.AssetActive})

	admin, _ := f.accounts.Save(context.Background(), &domain.User{
		Email: "admin@example.com", Roles: domain.NewRoleSet(domain.RoleAdmin, domain.RoleUser),
	})
	f.admin = &domain.Identity{Subject: admin.Email, UserID: admin.ID, Email: admin.Email, Roles: admin.Roles}

	f.idem = &stubIdempotency{keys: map[string]int64{}}
	f.svc = NewDisposalService(f.disposals, f.assets, f.accounts, f.idem, f.audit, zerolog.Nop())
	f.svc.now = fixedClock(t0)
	return f
}

func TestDisposalService_RequestAndApprove(t *testing.T) {
	f := newDisposalFixture(t)

	res, err := f.svc.RequestDisposal(context.Background(), ports.RequestDisposalInput{
		AssetID: 1, Method: "SCRAP", Value: 0, Date: t0,
	})
	if err != nil {
		t.Fatalf("RequestDisposal: %v", err)
	}
	if res.AlreadyExisted || res.Disposal.Approved() {
		t.Fatalf("expected fresh pending disposal, got %+v", res)
	}

	approved, err := f.svc.ApproveDisposal(context.Background(), res.Disposal.ID, f.admin)
	if err != nil {
		t.Fatalf("ApproveDisposal: %v", err)
	}
	if approved.ApprovedBy == nil || *approved.ApprovedBy != f.admin.UserID {
		t.Fatalf("expected approvedBy=%d, got %v", f.admin.UserID, approved.ApprovedBy)
	}
	asset, _ := f.assets.FindByID(context.Background(), 1)
	if asset.Status != domain.AssetDisposed {
		t.Fatalf("expected asset DISPOSED, got %s", asset.Status)
	}

	want := []domain.AuditEventType{domain.AuditDisposalRequested, domain.AuditDisposalApproved}
	got := f.audit.types()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("unexpected audit trail %v", got)
	}

	if _, err := f.svc.ApproveDisposal(context.Background(), res.Disposal.ID, f.admin); !errors.Is(err, domain.ErrDisposalAlreadyApproved) {
		t.Fatalf("expected ErrDisposalAlreadyApproved, got %v", err)
	}

	byAdmin, _ := f.svc.ListDisposals(context.Background(), f.admin.UserID)
	if len(byAdmin) != 1 {
		t.Fatalf("expected one disposal approved by admin, got %d", len(byAdmin))
	}
}

func TestDisposalService_ApproveRequiresAdmin(t *testing.T) {
	f := newDisposalFixture(t)
	res, _ := f.svc.RequestDisposal(context.Background(), ports.RequestDisposalInput{AssetID: 1, Value: 1})

	user := &domain.Identity{Subject: "u@x.com", UserID: f.admin.UserID, Roles: domain.NewRoleSet(domain.RoleUser)}
	for name, id := range map[string]*domain.Identity{"nil": nil, "plain user": user} {
		if _, err := f.svc.ApproveDisposal(context.Background(), res.Disposal.ID, id); !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("%s: expected ErrUnauthorized, got %v", name, err)
		}
	}

	ghost := &domain.Identity{Subject: "gone@x.com", UserID: 999, Roles: domain.NewRoleSet(domain.RoleAdmin)}
	if _, err := f.svc.ApproveDisposal(context.Background(), res.Disposal.ID, ghost); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("deleted admin: expected ErrUnauthorized, got %v", err)
	}
}

func TestDisposalService_Rejections(t *testing.T) {
	f := newDisposalFixture(t)

	if _, err := f.svc.RequestDisposal(context.Background(), ports.RequestDisposalInput{AssetID: 42, Value: 1}); !errors.Is(err, domain.ErrAssetNotFound) {
		t.Fatalf("expected ErrAssetNotFound, got %v", err)
	}
	if _, err := f.svc.RequestDisposal(context.Background(), ports.RequestDisposalInput{AssetID: 1, Value: -1}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := f.svc.ApproveDisposal(context.Background(), 77, f.admin); !errors.Is(err, domain.ErrDisposalNotFound) {
		t.Fatalf("expected ErrDisposalNotFound, got %v", err)
	}
}

func TestDisposalService_IdempotentReplay(t *testing.T) {
	f := newDisposalFixture(t)
	in := ports.RequestDisposalInput{AssetID: 1, Value: 5, IdempotencyKey: "req-1", Actor: f.admin}

	first, err := f.svc.RequestDisposal(context.Background(), in)
	if err != nil {
		t.Fatalf("first request: %v", err)
	}
	second, err := f.svc.RequestDisposal(context.Background(), in)
	if err != nil {
		t.Fatalf("replayed request: %v", err)
	}
	if !second.AlreadyExisted || second.Disposal.ID != first.Disposal.ID {
		t.Fatalf("expected replay of disposal %d, got %+v", first.Disposal.ID, second)
	}
	if all, _ := f.svc.ListDisposals(context.Background(), 0); len(all) != 1 {
		t.Fatalf("expected a single stored disposal, got %d", len(all))
	}
	if got := f.audit.types(); len(got) != 1 {
		t.Fatalf("replay must not emit another audit event, got %v", got)
	}
}

func TestDisposalService_IdempotencyKeyOtherAsset(t *testing.T) {
	f := newDisposalFixture(t)
	ctx := context.Background()

	if _, err := f.svc.RequestDisposal(ctx, ports.RequestDisposalInput{AssetID: 1, Value: 5, IdempotencyKey: "k", Actor: f.admin}); err != nil {
		t.Fatalf("first request: %v", err)
	}
	res, err := f.svc.RequestDisposal(ctx, ports.RequestDisposalInput{AssetID: 2, Value: 5, IdempotencyKey: "k", Actor: f.admin})
	if !errors.Is(err, domain.ErrIdempotencyKeyReused) || !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrIdempotencyKeyReused, got res=%+v err=%v", res, err)
	}
	if all, _ := f.svc.ListDisposals(ctx, 0); len(all) != 1 {
		t.Fatalf("expected a single stored disposal, got %d", len(all))
	}
}

func TestDisposalService_IdempotencyKeyScopedByActor(t *testing.T) {
	f := newDisposalFixture(t)
	ctx := context.Background()
	other := &domain.Identity{Subject: "u@x.com", UserID: 55, Roles: domain.NewRoleSet(domain.RoleUser)}

	first, err := f.svc.RequestDisposal(ctx, ports.RequestDisposalInput{AssetID: 1, Value: 5, IdempotencyKey: "k", Actor: f.admin})
	if err != nil {
		t.Fatalf("first request: %v", err)
	}
	second, err := f.svc.RequestDisposal(ctx, ports.RequestDisposalInput{AssetID: 1, Value: 5, IdempotencyKey: "k", Actor: other})
	if err != nil {
		t.Fatalf("other actor: %v", err)
	}
	if second.AlreadyExisted || second.Disposal.ID == first.Disposal.ID {
		t.Fatalf("other actor must get its own disposal, got %+v", second)
	}
}

func TestDisposalService_IdempotencyKeyReleasedOnFailure(t *testing.T) {
	f := newDisposalFixture(t)
	ctx := context.Background()
	in := ports.RequestDisposalInput{AssetID: 1, Value: -1, IdempotencyKey: "k", Actor: f.admin}

	if _, err := f.svc.RequestDisposal(ctx, in); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, held, _ := f.idem.Lookup(ctx, "1:k"); held {
		t.Fatal("failed request left the key reserved")
	}

	in.Value = 3
	res, err := f.svc.RequestDisposal(ctx, in)
	if err != nil || res.AlreadyExisted {
		t.Fatalf("retry after failure: res=%+v err=%v", res, err)
	}
}

func TestDisposalService_IdempotencyKeyInFlight(t *testing.T) {
	f := newDisposalFixture(t)
	ctx := context.Background()
	if ok, _ := f.idem.Reserve(ctx, "1:k"); !ok {
		t.Fatal("reserve")
	}

	_, err := f.svc.RequestDisposal(ctx, ports.RequestDisposalInput{AssetID: 1, Value: 5, IdempotencyKey: "k", Actor: f.admin})
	if !errors.Is(err, domain.ErrIdempotencyInFlight) {
		t.Fatalf("expected ErrIdempotencyInFlight, got %v", err)
	}
}

func TestDisposalService_ConcurrentSameKey(t *testing.T) {
	f := newDisposalFixture(t)
	in := ports.RequestDisposalInput{AssetID: 1, Value: 5, IdempotencyKey: "k", Actor: f.admin}

	const workers = 16
	var (
		wg      sync.WaitGroup
		start   = make(chan struct{})
		results = make([]*ports.DisposalResult, workers)
		errs    = make([]error, workers)
	)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i], errs[i] = f.svc.RequestDisposal(context.Background(), in)
		}()
	}
	close(start)
	wg.Wait()

	all, _ := f.svc.ListDisposals(context.Background(), 0)
	if len(all) != 1 {
		t.Fatalf("expected exactly one disposal, got %d", len(all))
	}
	fresh := 0
	for i := range workers {
		switch {
		case errs[i] != nil:
			if !errors.Is(errs[i], domain.ErrIdempotencyInFlight) {
				t.Fatalf("worker %d: unexpected error %v", i, errs[i])
			}
		case results[i].Disposal.ID != all[0].ID:
			t.Fatalf("worker %d: got disposal %d, want %d", i, results[i].Disposal.ID, all[0].ID)
		case !results[i].AlreadyExisted:
			fresh++
		}
	}
	if fresh != 1 {
		t.Fatalf("expected one fresh creation, got %d", fresh)
	}
}

func TestLifecycleService_LogAndList(t *testing.T) {
	assets := &stubAssetRepo{}
	_, _ = assets.Create(context.Background(), &domain.Asset{Tag: "T", Name: "N", PurchaseCost: 1})
	audit := &recordingAudit{}
	svc := NewLifecycleService(&stubLifecycleRepo{}, assets, audit, zerolog.Nop())
	svc.now = fixedClock(t0)

	for i, d := range []time.Time{t0.AddDate(0, 0, -10), t0.AddDate(0, 0, -1), t0.AddDate(0, 0, -5)} {
		_, err := svc.LogEvent(context.Background(), ports.LogEventInput{
			AssetID: 1, Type: "REPAIR", Description: "fixed", EventDate: d,
		})
		if err != nil {
			t.Fatalf("LogEvent %d: %v", i, err)
		}
	}

	events, err := svc.ListEvents(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	for i := 1; i < len(events); i++ {
		if events[i].EventDate.After(events[i-1].EventDate) {
			t.Fatalf("events not ordered newest first: %v then %v", events[i-1].EventDate, events[i].EventDate)
		}
	}
	if len(audit.types()) != 3 {
		t.Fatalf("expected 3 audit events, got %d", len(audit.types()))
	}
}

func TestLifecycleService_Rejections(t *testing.T) {
	assets := &stubAssetRepo{}
	_, _ = assets.Create(context.Background(), &domain.Asset{Tag: "T", Name: "N", PurchaseCost: 1})
	svc := NewLifecycleService(&stubLifecycleRepo{}, assets, nil, zerolog.Nop())
	svc.now = fixedClock(t0)

	cases := map[string]ports.LogEventInput{
		"future date":       {AssetID: 1, Type: "X", Description: "d", EventDate: t0.Add(time.Minute)},
		"blank description": {AssetID: 1, Type: "X", Description: "  ", EventDate: t0},
		"missing type":      {AssetID: 1, Description: "d", EventDate: t0},
	}
	for name, in := range cases {
		if _, err := svc.LogEvent(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
	if _, err := svc.LogEvent(context.Background(), ports.LogEventInput{AssetID: 5, Type: "X", Description: "d", EventDate: t0}); !errors.Is(err, domain.ErrAssetNotFound) {
		t.Fatalf("expected ErrAssetNotFound, got %v", err)
	}
}
