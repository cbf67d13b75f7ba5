package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms-backend/internal/apperr"
	"hrms-backend/internal/models"
)

// AdminCredentialRepository persists admin login records.
type AdminCredentialRepository struct {
	pool *pgxpool.Pool
}

func NewAdminCredentialRepository(pool *pgxpool.Pool) *AdminCredentialRepository {
	return &AdminCredentialRepository{pool: pool}
}

const adminCredentialColumns = `id, admin_id, name, email, password_hash, role, created_at, updated_at`

func scanAdminCredential(row pgx.Row) (*models.AdminCredential, error) {
	var c models.AdminCredential
	err := row.Scan(&c.ID, &c.AdminID, &c.Name, &c.Email, &c.PasswordHash,
		&c.Role, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan admin credential: %w", err)
	}
	return &c, nil
}

func (r *AdminCredentialRepository) Create(ctx context.Context, c *models.AdminCredential) (*models.AdminCredential, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO admin_credentials (admin_id, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+adminCredentialColumns,
		c.AdminID, c.Name, c.Email, c.PasswordHash, c.Role)
	cred, err := scanAdminCredential(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.ErrConflict
		}
		return nil, err
	}
	return cred, nil
}

func (r *AdminCredentialRepository) GetByAdminID(ctx context.Context, adminID string) (*models.AdminCredential, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+adminCredentialColumns+`
		FROM admin_credentials
		WHERE admin_id = $1`, adminID)
	return scanAdminCredential(row)
}

func (r *AdminCredentialRepository) ExistsByAdminIDOrEmail(ctx context.Context, adminID, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM admin_credentials WHERE admin_id = $1 OR email = $2
		)`, adminID, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check admin credential existence: %w", err)
	}
	return exists, nil
}
