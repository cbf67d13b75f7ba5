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

// EmployeeCredentialRepository persists employee login records.
type EmployeeCredentialRepository struct {
	pool *pgxpool.Pool
}

func NewEmployeeCredentialRepository(pool *pgxpool.Pool) *EmployeeCredentialRepository {
	return &EmployeeCredentialRepository{pool: pool}
}

const employeeCredentialColumns = `id, employee_id, email, password_hash, first_name, last_name, center_code, role, status, created_at, updated_at`

func scanEmployeeCredential(row pgx.Row) (*models.EmployeeCredential, error) {
	var c models.EmployeeCredential
	err := row.Scan(&c.ID, &c.EmployeeID, &c.Email, &c.PasswordHash, &c.FirstName,
		&c.LastName, &c.CenterCode, &c.Role, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan employee credential: %w", err)
	}
	return &c, nil
}

func (r *EmployeeCredentialRepository) Create(ctx context.Context, c *models.EmployeeCredential) (*models.EmployeeCredential, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO employee_credentials (employee_id, email, password_hash, first_name, last_name, center_code, role, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+employeeCredentialColumns,
		c.EmployeeID, c.Email, c.PasswordHash, c.FirstName, c.LastName, c.CenterCode, c.Role, c.Status)
	cred, err := scanEmployeeCredential(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.ErrConflict
		}
		return nil, err
	}
	return cred, nil
}

func (r *EmployeeCredentialRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*models.EmployeeCredential, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+employeeCredentialColumns+`
		FROM employee_credentials
		WHERE employee_id = $1`, employeeID)
	return scanEmployeeCredential(row)
}

func (r *EmployeeCredentialRepository) GetByEmail(ctx context.Context, email string) (*models.EmployeeCredential, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+employeeCredentialColumns+`
		FROM employee_credentials
		WHERE email = $1`, email)
	return scanEmployeeCredential(row)
}

// ExistsByEmployeeIDOrEmail reports whether either unique key is taken.
func (r *EmployeeCredentialRepository) ExistsByEmployeeIDOrEmail(ctx context.Context, employeeID, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM employee_credentials WHERE employee_id = $1 OR email = $2
		)`, employeeID, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee credential existence: %w", err)
	}
	return exists, nil
}

func (r *EmployeeCredentialRepository) UpdatePassword(ctx context.Context, employeeID, passwordHash string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE employee_credentials
		SET password_hash = $2, updated_at = CURRENT_TIMESTAMP
		WHERE employee_id = $1`, employeeID, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update employee password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// UpdateCenterCode propagates the record's centre assignment onto the
// credential. Missing credentials are ignored (legacy records).
func (r *EmployeeCredentialRepository) UpdateCenterCode(ctx context.Context, employeeID, centerCode string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE employee_credentials
		SET center_code = $2, updated_at = CURRENT_TIMESTAMP
		WHERE employee_id = $1`, employeeID, centerCode)
	if err != nil {
		return fmt.Errorf("failed to update employee centre code: %w", err)
	}
	return nil
}

func (r *EmployeeCredentialRepository) UpdateStatus(ctx context.Context, employeeID, status string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE employee_credentials
		SET status = $2, updated_at = CURRENT_TIMESTAMP
		WHERE employee_id = $1`, employeeID, status)
	if err != nil {
		return fmt.Errorf("failed to update employee status: %w", err)
	}
	return nil
}
