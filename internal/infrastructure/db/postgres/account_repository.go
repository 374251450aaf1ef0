package postgres

import (
	"context"
	"database/sql"

	"github.com/99minutos/asset-management/internal/core/domain"
)

// AccountRepository stores users and their role links.
type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

const selectUser = `SELECT id, name, email, password_hash, created_at FROM users`

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, selectUser+` WHERE email = $1`, email)
}

func (r *AccountRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, selectUser+` WHERE id = $1`, id)
}

func (r *AccountRepository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	u := &domain.User{}
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, dbErr(err, domain.ErrUserNotFound)
	}

	roles, err := r.roles(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	u.Roles = roles
	return u, nil
}

func (r *AccountRepository) roles(ctx context.Context, userID int64) (domain.RoleSet, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT r.name FROM roles r
		 JOIN user_roles ur ON ur.role_id = r.id
		 WHERE ur.user_id = $1`, userID)
	if err != nil {
		return domain.RoleSet{}, dbErr(err, nil)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return domain.RoleSet{}, dbErr(err, nil)
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return domain.RoleSet{}, dbErr(err, nil)
	}
	return domain.NewRoleSet(names...), nil
}

func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, dbErr(err, nil)
	}
	return exists, nil
}

// Save inserts the user and its roles in one transaction.
func (r *AccountRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	saved := *user
	err := WithTx(ctx, r.db, func(ctx context.Context, tx DBTX) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO users (name, email, password_hash, created_at)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			user.Name, user.Email, user.PasswordHash, user.CreatedAt,
		).Scan(&saved.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicateEmail
			}
			return dbErr(err, nil)
		}

		for _, role := range user.Roles.Names() {
			if err := linkRole(ctx, tx, saved.ID, role); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *AccountRepository) AddRole(ctx context.Context, userID int64, role string) error {
	return linkRole(ctx, r.db, userID, role)
}

func (r *AccountRepository) RemoveRole(ctx context.Context, userID int64, role string) error {
	roleID, err := roleID(ctx, r.db, role)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM user_roles WHERE user_id = $1 AND role_id = $2`, userID, roleID); err != nil {
		return dbErr(err, nil)
	}
	return nil
}

func roleID(ctx context.Context, q DBTX, name string) (int64, error) {
	var id int64
	if err := q.QueryRowContext(ctx, `SELECT id FROM roles WHERE name = $1`, name).Scan(&id); err != nil {
		return 0, dbErr(err, domain.ErrRoleNotFound)
	}
	return id, nil
}

// linkRole is idempotent: linking a role twice leaves a single row.
func linkRole(ctx context.Context, q DBTX, userID int64, role string) error {
	id, err := roleID(ctx, q, role)
	if err != nil {
		return err
	}
	if _, err := q.ExecContext(ctx,
		`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, role_id) DO NOTHING`, userID, id); err != nil {
		return dbErr(err, nil)
	}
	return nil
}
