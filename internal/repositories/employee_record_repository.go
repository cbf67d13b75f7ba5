package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms-backend/internal/apperr"
	"hrms-backend/internal/models"
)

// EmployeeRecordRepository persists onboarding/profile records. The
// documents and emergency contact lists are stored as JSONB.
type EmployeeRecordRepository struct {
	pool *pgxpool.Pool
}

func NewEmployeeRecordRepository(pool *pgxpool.Pool) *EmployeeRecordRepository {
	return &EmployeeRecordRepository{pool: pool}
}

const employeeRecordColumns = `id, employee_id, username, first_name, last_name, email, phone,
	date_of_birth, gender, address, designation, department, joining_date, center_code,
	documents, emergency_contacts, status, validation_note, created_at, updated_at`

func scanEmployeeRecord(row pgx.Row) (*models.EmployeeRecord, error) {
	var rec models.EmployeeRecord
	var documents, contacts []byte
	err := row.Scan(&rec.ID, &rec.EmployeeID, &rec.Username, &rec.FirstName, &rec.LastName,
		&rec.Email, &rec.Phone, &rec.DateOfBirth, &rec.Gender, &rec.Address,
		&rec.Designation, &rec.Department, &rec.JoiningDate, &rec.CenterCode,
		&documents, &contacts, &rec.Status, &rec.ValidationNote, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan employee record: %w", err)
	}
	if err := json.Unmarshal(documents, &rec.Documents); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}
	if err := json.Unmarshal(contacts, &rec.EmergencyContacts); err != nil {
		return nil, fmt.Errorf("failed to decode emergency contacts: %w", err)
	}
	return &rec, nil
}

func marshalRecordLists(rec *models.EmployeeRecord) ([]byte, []byte, error) {
	if rec.Documents == nil {
		rec.Documents = []models.Document{}
	}
	if rec.EmergencyContacts == nil {
		rec.EmergencyContacts = []models.EmergencyContact{}
	}
	documents, err := json.Marshal(rec.Documents)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode documents: %w", err)
	}
	contacts, err := json.Marshal(rec.EmergencyContacts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode emergency contacts: %w", err)
	}
	return documents, contacts, nil
}

// GetByEmployeeID looks a record up by employee id, falling back to the
// legacy username key for records created before ids were issued.
func (r *EmployeeRecordRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*models.EmployeeRecord, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+employeeRecordColumns+`
		FROM employee_records
		WHERE employee_id = $1 OR (employee_id = '' AND username = $1)`, employeeID)
	return scanEmployeeRecord(row)
}

func (r *EmployeeRecordRepository) ListAll(ctx context.Context) ([]models.EmployeeRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+employeeRecordColumns+`
		FROM employee_records
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee records: %w", err)
	}
	defer rows.Close()

	records := []models.EmployeeRecord{}
	for rows.Next() {
		rec, err := scanEmployeeRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func (r *EmployeeRecordRepository) ListByCenterCode(ctx context.Context, centerCode string) ([]models.EmployeeRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+employeeRecordColumns+`
		FROM employee_records
		WHERE center_code = $1
		ORDER BY created_at DESC`, centerCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee records by centre: %w", err)
	}
	defer rows.Close()

	records := []models.EmployeeRecord{}
	for rows.Next() {
		rec, err := scanEmployeeRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// Upsert inserts the record or replaces the existing row with the same
// employee id (or legacy username key).
func (r *EmployeeRecordRepository) Upsert(ctx context.Context, rec *models.EmployeeRecord) (*models.EmployeeRecord, error) {
	documents, contacts, err := marshalRecordLists(rec)
	if err != nil {
		return nil, err
	}

	existing, err := r.GetByEmployeeID(ctx, recordKey(rec))
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		row := r.pool.QueryRow(ctx, `
			UPDATE employee_records SET
				employee_id = $2, username = $3, first_name = $4, last_name = $5,
				email = $6, phone = $7, date_of_birth = $8, gender = $9, address = $10,
				designation = $11, department = $12, joining_date = $13, center_code = $14,
				documents = $15, emergency_contacts = $16, status = $17, validation_note = $18,
				updated_at = CURRENT_TIMESTAMP
			WHERE id = $1
			RETURNING `+employeeRecordColumns,
			existing.ID, rec.EmployeeID, rec.Username, rec.FirstName, rec.LastName,
			rec.Email, rec.Phone, rec.DateOfBirth, rec.Gender, rec.Address,
			rec.Designation, rec.Department, rec.JoiningDate, rec.CenterCode,
			documents, contacts, rec.Status, rec.ValidationNote)
		return scanEmployeeRecord(row)
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO employee_records (employee_id, username, first_name, last_name, email, phone,
			date_of_birth, gender, address, designation, department, joining_date, center_code,
			documents, emergency_contacts, status, validation_note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING `+employeeRecordColumns,
		rec.EmployeeID, rec.Username, rec.FirstName, rec.LastName, rec.Email, rec.Phone,
		rec.DateOfBirth, rec.Gender, rec.Address, rec.Designation, rec.Department,
		rec.JoiningDate, rec.CenterCode, documents, contacts, rec.Status, rec.ValidationNote)
	return scanEmployeeRecord(row)
}

func recordKey(rec *models.EmployeeRecord) string {
	if rec.EmployeeID != "" {
		return rec.EmployeeID
	}
	return rec.Username
}

func (r *EmployeeRecordRepository) UpdateStatus(ctx context.Context, employeeID, status, validationNote string) (*models.EmployeeRecord, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE employee_records
		SET status = $2, validation_note = $3, updated_at = CURRENT_TIMESTAMP
		WHERE employee_id = $1 OR (employee_id = '' AND username = $1)
		RETURNING `+employeeRecordColumns, employeeID, status, validationNote)
	return scanEmployeeRecord(row)
}

// DeleteWithCredential removes the record and its credential in one
// transaction so a half-deleted employee cannot remain.
func (r *EmployeeRecordRepository) DeleteWithCredential(ctx context.Context, employeeID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin delete transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		DELETE FROM employee_records
		WHERE employee_id = $1 OR (employee_id = '' AND username = $1)`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}

	// The credential may not exist for legacy records; that is fine.
	if _, err := tx.Exec(ctx, `
		DELETE FROM employee_credentials WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete employee credential: %w", err)
	}

	return tx.Commit(ctx)
}
