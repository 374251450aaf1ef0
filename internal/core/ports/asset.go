package ports

import (
	"context"
	"time"

	"github.com/99minutos/asset-management/internal/core/domain"
)

type AssetRepository interface {
	Create(ctx context.Context, a *domain.Asset) (*domain.Asset, error)
	FindByID(ctx context.Context, id int64) (*domain.Asset, error)
	FindByTag(ctx context.Context, tag string) (*domain.Asset, error)
	ExistsByTag(ctx context.Context, tag string) (bool, error)
	List(ctx context.Context) ([]*domain.Asset, error)
	ListByStatus(ctx context.Context, status domain.AssetStatus) ([]*domain.Asset, error)
}

type LifecycleRepository interface {
	Create(ctx context.Context, e *domain.LifecycleEvent) (*domain.LifecycleEvent, error)
	// ListByAsset returns events newest first by event date.
	ListByAsset(ctx context.Context, assetID int64) ([]*domain.LifecycleEvent, error)
}

type DisposalRepository interface {
	Create(ctx context.Context, d *domain.Disposal) (*domain.Disposal, error)
	FindByID(ctx context.Context, id int64) (*domain.Disposal, error)
	List(ctx context.Context) ([]*domain.Disposal, error)
	ListByApprover(ctx context.Context, userID int64) ([]*domain.Disposal, error)
	// Approve marks the disposal approved and the asset disposed atomically.
	Approve(ctx context.Context, disposalID, approverID int64, at time.Time) (*domain.Disposal, error)
}

type CreateAssetInput struct {
	VendorID     int64
	RuleID       int64
	Tag          string
	Name         string
	PurchaseDate time.Time
	PurchaseCost float64
	Actor        *domain.Identity
}

// AssetDetail is an asset with its current book value.
type AssetDetail struct {
	Asset     *domain.Asset
	Rule      *domain.DepreciationRule
	BookValue float64
}

type AssetService interface {
	CreateAsset(ctx context.Context, input CreateAssetInput) (*domain.Asset, error)
	GetAsset(ctx context.Context, id int64) (*AssetDetail, error)
	ListAssets(ctx context.Context) ([]*domain.Asset, error)
	ListAssetsByStatus(ctx context.Context, status string) ([]*domain.Asset, error)
}

type LogEventInput struct {
	AssetID     int64
	Type        string
	Description string
	EventDate   time.Time
	Actor       *domain.Identity
}

type LifecycleService interface {
	LogEvent(ctx context.Context, input LogEventInput) (*domain.LifecycleEvent, error)
	ListEvents(ctx context.Context, assetID int64) ([]*domain.LifecycleEvent, error)
}

type RequestDisposalInput struct {
	AssetID        int64
	Method         string
	Value          float64
	Date           time.Time
	IdempotencyKey string
	Actor          *domain.Identity
}

// DisposalResult reports whether the request replayed an earlier one.
type DisposalResult struct {
	Disposal       *domain.Disposal
	AlreadyExisted bool
}

type DisposalService interface {
	RequestDisposal(ctx context.Context, input RequestDisposalInput) (*DisposalResult, error)
	ApproveDisposal(ctx context.Context, disposalID int64, approver *domain.Identity) (*domain.Disposal, error)
	ListDisposals(ctx context.Context, approvedBy int64) ([]*domain.Disposal, error)
}
