package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/99minutos/asset-management/internal/core/domain"
)

type stubAccountRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*domain.User
	err    error
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Roles = domain.NewRoleSet(u.Roles.Names()...)
	return &clone
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAccountRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubAccountRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if err == domain.ErrUserNotFound {
		return false, nil
	}
	return err == nil, err
}

func (r *stubAccountRepo) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	r.nextID++
	saved := cloneUser(user)
	saved.ID = r.nextID
	r.users[saved.ID] = saved
	return cloneUser(saved), nil
}

func (r *stubAccountRepo) AddRole(_ context.Context, userID int64, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if role != domain.RoleAdmin && role != domain.RoleUser {
		return domain.ErrRoleNotFound
	}
	u := r.users[userID]
	u.Roles = u.Roles.With(role)
	return nil
}

func (r *stubAccountRepo) RemoveRole(_ context.Context, userID int64, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if role != domain.RoleAdmin && role != domain.RoleUser {
		return domain.ErrRoleNotFound
	}
	u := r.users[userID]
	u.Roles = u.Roles.Without(role)
	return nil
}

type stubVendorRepo struct {
	vendors []*domain.Vendor
}

func (r *stubVendorRepo) Create(_ context.Context, v *domain.Vendor) (*domain.Vendor, error) {
	c := *v
	c.ID = int64(len(r.vendors) + 1)
	r.vendors = append(r.vendors, &c)
	return &c, nil
}

func (r *stubVendorRepo) FindByID(_ context.Context, id int64) (*domain.Vendor, error) {
	for _, v := range r.vendors {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, domain.ErrVendorNotFound
}

func (r *stubVendorRepo) FindByName(_ context.Context, name string) (*domain.Vendor, error) {
	for _, v := range r.vendors {
		if v.Name == name {
			return v, nil
		}
	}
	return nil, domain.ErrVendorNotFound
}

func (r *stubVendorRepo) List(context.Context) ([]*domain.Vendor, error) {
	return r.vendors, nil
}

type stubRuleRepo struct {
	rules []*domain.DepreciationRule
}

func (r *stubRuleRepo) Create(_ context.Context, rule *domain.DepreciationRule) (*domain.DepreciationRule, error) {
	c := *rule
	c.ID = int64(len(r.rules) + 1)
	r.rules = append(r.rules, &c)
	return &c, nil
}

func (r *stubRuleRepo) FindByID(_ context.Context, id int64) (*domain.DepreciationRule, error) {
	for _, rule := range r.rules {
		if rule.ID == id {
			return rule, nil
		}
	}
	return nil, domain.ErrRuleNotFound
}

func (r *stubRuleRepo) FindByName(_ context.Context, name string) (*domain.DepreciationRule, error) {
	for _, rule := range r.rules {
		if rule.Name == name {
			return rule, nil
		}
	}
	return nil, domain.ErrRuleNotFound
}

func (r *stubRuleRepo) List(context.Context) ([]*domain.DepreciationRule, error) {
	return r.rules, nil
}

type stubAssetRepo struct {
	assets []*domain.Asset
}

func (r *stubAssetRepo) Create(_ context.Context, a *domain.Asset) (*domain.Asset, error) {
	c := *a
	c.ID = int64(len(r.assets) + 1)
	r.assets = append(r.assets, &c)
	return &c, nil
}

func (r *stubAssetRepo) FindByID(_ context.Context, id int64) (*domain.Asset, error) {
	for _, a := range r.assets {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domain.ErrAssetNotFound
}

func (r *stubAssetRepo) FindByTag(_ context.Context, tag string) (*domain.Asset, error) {
	for _, a := range r.assets {
		if a.Tag == tag {
			return a, nil
		}
	}
	return nil, domain.ErrAssetNotFound
}

func (r *stubAssetRepo) ExistsByTag(ctx context.Context, tag string) (bool, error) {
	_, err := r.FindByTag(ctx, tag)
	return err == nil, nil
}

func (r *stubAssetRepo) List(context.Context) ([]*domain.Asset, error) {
	return r.assets, nil
}

func (r *stubAssetRepo) ListByStatus(_ context.Context, status domain.AssetStatus) ([]*domain.Asset, error) {
	var out []*domain.Asset
	for _, a := range r.assets {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

type stubLifecycleRepo struct {
	events []*domain.LifecycleEvent
}

func (r *stubLifecycleRepo) Create(_ context.Context, e *domain.LifecycleEvent) (*domain.LifecycleEvent, error) {
	c := *e
	c.ID = int64(len(r.events) + 1)
	r.events = append(r.events, &c)
	return &c, nil
}

func (r *stubLifecycleRepo) ListByAsset(_ context.Context, assetID int64) ([]*domain.LifecycleEvent, error) {
	var out []*domain.LifecycleEvent
	for _, e := range r.events {
		if e.AssetID == assetID {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b *domain.LifecycleEvent) int { return b.EventDate.Compare(a.EventDate) })
	return out, nil
}

type stubDisposalRepo struct {
	mu        sync.Mutex
	assets    *stubAssetRepo
	disposals []*domain.Disposal
}

func (r *stubDisposalRepo) Create(_ context.Context, d *domain.Disposal) (*domain.Disposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *d
	c.ID = int64(len(r.disposals) + 1)
	r.disposals = append(r.disposals, &c)
	return &c, nil
}

func (r *stubDisposalRepo) FindByID(_ context.Context, id int64) (*domain.Disposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.disposals {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, domain.ErrDisposalNotFound
}

func (r *stubDisposalRepo) List(context.Context) ([]*domain.Disposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.disposals), nil
}

func (r *stubDisposalRepo) ListByApprover(_ context.Context, userID int64) ([]*domain.Disposal, error) {
	var out []*domain.Disposal
	for _, d := range r.disposals {
		if d.ApprovedBy != nil && *d.ApprovedBy == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *stubDisposalRepo) Approve(ctx context.Context, disposalID, approverID int64, at time.Time) (*domain.Disposal, error) {
	d, err := r.FindByID(ctx, disposalID)
	if err != nil {
		return nil, err
	}
	if d.Approved() {
		return nil, domain.ErrDisposalAlreadyApproved
	}
	d.ApprovedBy = &approverID
	d.ApprovedAt = &at
	a, err := r.assets.FindByID(ctx, d.AssetID)
	if err != nil {
		return nil, err
	}
	a.Status = domain.AssetDisposed
	return d, nil
}

type recordingAudit struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (r *recordingAudit) Enqueue(e domain.AuditEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingAudit) types() []domain.AuditEventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditEventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

// stubIdempotency stores 0 for a reserved key until it is completed.
type stubIdempotency struct {
	mu   sync.Mutex
	keys map[string]int64
}

func (s *stubIdempotency) Reserve(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.keys[key]; ok {
		return false, nil
	}
	s.keys[key] = 0
	return true, nil
}

func (s *stubIdempotency) Lookup(_ context.Context, key string) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.keys[key]
	return id, ok, nil
}

func (s *stubIdempotency) Complete(_ context.Context, key string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[key] = id
	return nil
}

func (s *stubIdempotency) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, key)
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
