package postgres

import (
	"context"
	"database/sql"

	"github.com/99minutos/asset-management/internal/core/domain"
)

// VendorRepository stores vendors.
type VendorRepository struct {
	db DBTX
}

func NewVendorRepository(db DBTX) *VendorRepository {
	return &VendorRepository{db: db}
}

const selectVendor = `SELECT id, vendor_name, contact_email, phone, created_at FROM vendors`

func scanVendor(row scanner) (*domain.Vendor, error) {
	v := &domain.Vendor{}
	if err := row.Scan(&v.ID, &v.Name, &v.ContactEmail, &v.Phone, &v.CreatedAt); err != nil {
		return nil, err
	}
	return v, nil
}

func (r *VendorRepository) Create(ctx context.Context, v *domain.Vendor) (*domain.Vendor, error) {
	created := *v
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO vendors (vendor_name, contact_email, phone, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		v.Name, v.ContactEmail, v.Phone, v.CreatedAt,
	).Scan(&created.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateVendor
		}
		return nil, dbErr(err, nil)
	}
	return &created, nil
}

func (r *VendorRepository) FindByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	v, err := scanVendor(r.db.QueryRowContext(ctx, selectVendor+` WHERE id = $1`, id))
	if err != nil {
		return nil, dbErr(err, domain.ErrVendorNotFound)
	}
	return v, nil
}

func (r *VendorRepository) FindByName(ctx context.Context, name string) (*domain.Vendor, error) {
	v, err := scanVendor(r.db.QueryRowContext(ctx, selectVendor+` WHERE vendor_name = $1`, name))
	if err != nil {
		return nil, dbErr(err, domain.ErrVendorNotFound)
	}
	return v, nil
}

func (r *VendorRepository) List(ctx context.Context) ([]*domain.Vendor, error) {
	rows, err := r.db.QueryContext(ctx, selectVendor+` ORDER BY id`)
	if err != nil {
		return nil, dbErr(err, nil)
	}
	return collect(rows, scanVendor)
}

// RuleRepository stores depreciation rules.
type RuleRepository struct {
	db DBTX
}

func NewRuleRepository(db DBTX) *RuleRepository {
	return &RuleRepository{db: db}
}

const selectRule = `SELECT id, rule_name, method, useful_life_years, salvage_value, created_at FROM depreciation_rules`

func scanRule(row scanner) (*domain.DepreciationRule, error) {
	r := &domain.DepreciationRule{}
	var method string
	if err := row.Scan(&r.ID, &r.Name, &method, &r.UsefulLifeYears, &r.SalvageValue, &r.CreatedAt); err != nil {
		return nil, err
	}
	r.Method = domain.DepreciationMethod(method)
	return r, nil
}

func (r *RuleRepository) Create(ctx context.Context, rule *domain.DepreciationRule) (*domain.DepreciationRule, error) {
	created := *rule
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO depreciation_rules (rule_name, method, useful_life_years, salvage_value, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		rule.Name, string(rule.Method), rule.UsefulLifeYears, rule.SalvageValue, rule.CreatedAt,
	).Scan(&created.ID)
	if err != nil {
		return nil, dbErr(err, nil)
	}
	return &created, nil
}

func (r *RuleRepository) FindByID(ctx context.Context, id int64) (*domain.DepreciationRule, error) {
	rule, err := scanRule(r.db.QueryRowContext(ctx, selectRule+` WHERE id = $1`, id))
	if err != nil {
		return nil, dbErr(err, domain.ErrRuleNotFound)
	}
	return rule, nil
}

// FindByName returns the oldest rule with the given name.
func (r *RuleRepository) FindByName(ctx context.Context, name string) (*domain.DepreciationRule, error) {
	rule, err := scanRule(r.db.QueryRowContext(ctx, selectRule+` WHERE rule_name = $1 ORDER BY id LIMIT 1`, name))
	if err != nil {
		return nil, dbErr(err, domain.ErrRuleNotFound)
	}
	return rule, nil
}

func (r *RuleRepository) List(ctx context.Context) ([]*domain.DepreciationRule, error) {
	rows, err := r.db.QueryContext(ctx, selectRule+` ORDER BY id`)
	if err != nil {
		return nil, dbErr(err, nil)
	}
	return collect(rows, scanRule)
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// collect drains rows through scan and closes them.
func collect[T any](rows *sql.Rows, scan func(scanner) (*T, error)) ([]*T, error) {
	defer rows.Close()
	out := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, dbErr(err, nil)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, dbErr(err, nil)
	}
	return out, nil
}
