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

// CentreCredentialRepository persists centre login records.
type CentreCredentialRepository struct {
	pool *pgxpool.Pool
}

func NewCentreCredentialRepository(pool *pgxpool.Pool) *CentreCredentialRepository {
	return &CentreCredentialRepository{pool: pool}
}

const centreCredentialColumns = `id, username, email, password_hash, centre_name, centre_code, role, created_at, updated_at`

func scanCentreCredential(row pgx.Row) (*models.CentreCredential, error) {
	var c models.CentreCredential
	err := row.Scan(&c.ID, &c.Username, &c.Email, &c.PasswordHash, &c.CentreName,
		&c.CentreCode, &c.Role, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan centre credential: %w", err)
	}
	return &c, nil
}

func (r *CentreCredentialRepository) Create(ctx context.Context, c *models.CentreCredential) (*models.CentreCredential, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO centre_credentials (username, email, password_hash, centre_name, centre_code, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+centreCredentialColumns,
		c.Username, c.Email, c.PasswordHash, c.CentreName, c.CentreCode, c.Role)
	cred, err := scanCentreCredential(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.ErrConflict
		}
		return nil, err
	}
	return cred, nil
}

func (r *CentreCredentialRepository) GetByUsername(ctx context.Context, username string) (*models.CentreCredential, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+centreCredentialColumns+`
		FROM centre_credentials
		WHERE username = $1`, username)
	return scanCentreCredential(row)
}

func (r *CentreCredentialRepository) GetByCentreCode(ctx context.Context, centreCode string) (*models.CentreCredential, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+centreCredentialColumns+`
		FROM centre_credentials
		WHERE centre_code = $1`, centreCode)
	return scanCentreCredential(row)
}

func (r *CentreCredentialRepository) ExistsByUsernameEmailOrCode(ctx context.Context, username, email, centreCode string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM centre_credentials WHERE username = $1 OR email = $2 OR centre_code = $3
		)`, username, email, centreCode).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check centre credential existence: %w", err)
	}
	return exists, nil
}

// ListAll returns every registered centre (admin dashboard view).
func (r *CentreCredentialRepository) ListAll(ctx context.Context) ([]models.CentreCredential, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+centreCredentialColumns+`
		FROM centre_credentials
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list centres: %w", err)
	}
	defer rows.Close()

	centres := []models.CentreCredential{}
	for rows.Next() {
		c, err := scanCentreCredential(rows)
		if err != nil {
			return nil, err
		}
		centres = append(centres, *c)
	}
	return centres, rows.Err()
}

func (r *CentreCredentialRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE centre_credentials
		SET password_hash = $2, updated_at = CURRENT_TIMESTAMP
		WHERE username = $1`, username, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update centre password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
