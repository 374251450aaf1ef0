package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/99minutos/asset-management/internal/core/domain"
)

// AssetRepository stores assets.
type AssetRepository struct {
	db DBTX
}

func NewAssetRepository(db DBTX) *AssetRepository {
	return &AssetRepository{db: db}
}

const selectAsset = `SELECT id, asset_tag, asset_name, purchase_date, purchase_cost, status,
	vendor_id, depreciation_rule_id, created_at FROM assets`

func scanAsset(row scanner) (*domain.Asset, error) {
	a := &domain.Asset{}
	var status string
	err := row.Scan(&a.ID, &a.Tag, &a.Name, &a.PurchaseDate, &a.PurchaseCost, &status,
		&a.VendorID, &a.RuleID, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	a.Status = domain.AssetStatus(status)
	return a, nil
}

func (r *AssetRepository) Create(ctx context.Context, a *domain.Asset) (*domain.Asset, error) {
	created := *a
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO assets (asset_tag, asset_name, purchase_date, purchase_cost, status,
		                     vendor_id, depreciation_rule_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		a.Tag, a.Name, a.PurchaseDate, a.PurchaseCost, string(a.Status), a.VendorID, a.RuleID, a.CreatedAt,
	).Scan(&created.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateAssetTag
		}
		return nil, dbErr(err, nil)
	}
	return &created, nil
}

func (r *AssetRepository) FindByID(ctx context.Context, id int64) (*domain.Asset, error) {
	a, err := scanAsset(r.db.QueryRowContext(ctx, selectAsset+` WHERE id = $1`, id))
	if err != nil {
		return nil, dbErr(err, domain.ErrAssetNotFound)
	}
	return a, nil
}

func (r *AssetRepository) FindByTag(ctx context.Context, tag string) (*domain.Asset, error) {
	a, err := scanAsset(r.db.QueryRowContext(ctx, selectAsset+` WHERE asset_tag = $1`, tag))
	if err != nil {
		return nil, dbErr(err, domain.ErrAssetNotFound)
	}
	return a, nil
}

func (r *AssetRepository) ExistsByTag(ctx context.Context, tag string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM assets WHERE asset_tag = $1)`, tag).Scan(&exists)
	if err != nil {
		return false, dbErr(err, nil)
	}
	return exists, nil
}

func (r *AssetRepository) List(ctx context.Context) ([]*domain.Asset, error) {
	rows, err := r.db.QueryContext(ctx, selectAsset+` ORDER BY id`)
	if err != nil {
		return nil, dbErr(err, nil)
	}
	return collect(rows, scanAsset)
}

func (r *AssetRepository) ListByStatus(ctx context.Context, status domain.AssetStatus) ([]*domain.Asset, error) {
	rows, err := r.db.QueryContext(ctx, selectAsset+` WHERE status = $1 ORDER BY id`, string(status))
	if err != nil {
		return nil, dbErr(err, nil)
	}
	return collect(rows, scanAsset)
}

// LifecycleRepository stores asset lifecycle events.
type LifecycleRepository struct {
	db DBTX
}

func NewLifecycleRepository(db DBTX) *LifecycleRepository {
	return &LifecycleRepository{db: db}
}

func scanLifecycleEvent(row scanner) (*domain.LifecycleEvent, error) {
	e := &domain.LifecycleEvent{}
	if err := row.Scan(&e.ID, &e.AssetID, &e.Type, &e.Description, &e.EventDate, &e.LoggedAt); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *LifecycleRepository) Create(ctx context.Context, e *domain.LifecycleEvent) (*domain.LifecycleEvent, error) {
	created := *e
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO asset_lifecycle_events (asset_id, event_type, event_description, event_date, logged_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		e.AssetID, e.Type, e.Description, e.EventDate, e.LoggedAt,
	).Scan(&created.ID)
	if err != nil {
		return nil, dbErr(err, nil)
	}
	return &created, nil
}

func (r *LifecycleRepository) ListByAsset(ctx context.Context, assetID int64) ([]*domain.LifecycleEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, asset_id, event_type, event_description, event_date, logged_at
		 FROM asset_lifecycle_events
		 WHERE asset_id = $1
		 ORDER BY event_date DESC, id DESC`, assetID)
	if err != nil {
		return nil, dbErr(err, nil)
	}
	return collect(rows, scanLifecycleEvent)
}

// DisposalRepository stores disposal requests and performs approval.
type DisposalRepository struct {
	db *sql.DB
}

func NewDisposalRepository(db *sql.DB) *DisposalRepository {
	return &DisposalRepository{db: db}
}

const selectDisposal = `SELECT id, asset_id, disposal_method, disposal_value, disposal_date,
	approved_by, approved_at, created_at FROM asset_disposals`

func scanDisposal(row scanner) (*domain.Disposal, error) {
	d := &domain.Disposal{}
	var (
		approvedBy sql.NullInt64
		approvedAt sql.NullTime
	)
	err := row.Scan(&d.ID, &d.AssetID, &d.Method, &d.Value, &d.Date, &approvedBy, &approvedAt, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	if approvedBy.Valid {
		d.ApprovedBy = &approvedBy.Int64
	}
	if approvedAt.Valid {
		d.ApprovedAt = &approvedAt.Time
	}
	return d, nil
}

func (r *DisposalRepository) Create(ctx context.Context, d *domain.Disposal) (*domain.Disposal, error) {
	created := *d
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO asset_disposals (asset_id, disposal_method, disposal_value, disposal_date, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		d.AssetID, d.Method, d.Value, d.Date, d.CreatedAt,
	).Scan(&created.ID)
	if err != nil {
		return nil, dbErr(err, nil)
	}
	return &created, nil
}

func (r *DisposalRepository) FindByID(ctx context.Context, id int64) (*domain.Disposal, error) {
	d, err := scanDisposal(r.db.QueryRowContext(ctx, selectDisposal+` WHERE id = $1`, id))
	if err != nil {
		return nil, dbErr(err, domain.ErrDisposalNotFound)
	}
	return d, nil
}

func (r *DisposalRepository) List(ctx context.Context) ([]*domain.Disposal, error) {
	rows, err := r.db.QueryContext(ctx, selectDisposal+` ORDER BY id`)
	if err != nil {
		return nil, dbErr(err, nil)
	}
	return collect(rows, scanDisposal)
}

func (r *DisposalRepository) ListByApprover(ctx context.Context, userID int64) ([]*domain.Disposal, error) {
	rows, err := r.db.QueryContext(ctx, selectDisposal+` WHERE approved_by = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, dbErr(err, nil)
	}
	return collect(rows, scanDisposal)
}

// Approve locks the disposal row, stamps the approver and retires the asset.
func (r *DisposalRepository) Approve(ctx context.Context, disposalID, approverID int64, at time.Time) (*domain.Disposal, error) {
	var approved *domain.Disposal
	err := WithTx(ctx, r.db, func(ctx context.Context, tx DBTX) error {
		d, err := scanDisposal(tx.QueryRowContext(ctx, selectDisposal+` WHERE id = $1 FOR UPDATE`, disposalID))
		if err != nil {
			return dbErr(err, domain.ErrDisposalNotFound)
		}
		if d.Approved() {
			return domain.ErrDisposalAlreadyApproved
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE asset_disposals SET approved_by = $1, approved_at = $2 WHERE id = $3`,
			approverID, at, disposalID); err != nil {
			return dbErr(err, nil)
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE assets SET status = $1 WHERE id = $2`,
			string(domain.AssetDisposed), d.AssetID); err != nil {
			return dbErr(err, nil)
		}

		d.ApprovedBy = &approverID
		d.ApprovedAt = &at
		approved = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return approved, nil
}
