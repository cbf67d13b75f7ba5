package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"hrms-backend/internal/models"
)

// AttendanceRepository is the append-only attendance ledger.
type AttendanceRepository struct {
	pool *pgxpool.Pool
}

func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

// Insert always appends a new row; repeated saves for the same employee
// and day produce separate ledger entries.
func (r *AttendanceRepository) Insert(ctx context.Context, e *models.AttendanceEvent) (*models.AttendanceEvent, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO attendance_events (employee_id, date, check_in, check_out, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, employee_id, date, check_in, check_out, status, created_at`,
		e.EmployeeID, e.Date, e.CheckIn, e.CheckOut, e.Status)

	var out models.AttendanceEvent
	err := row.Scan(&out.ID, &out.EmployeeID, &out.Date, &out.CheckIn, &out.CheckOut, &out.Status, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert attendance event: %w", err)
	}
	return &out, nil
}

// ListAll returns the entire ledger, unfiltered.
func (r *AttendanceRepository) ListAll(ctx context.Context) ([]models.AttendanceEvent, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, employee_id, date, check_in, check_out, status, created_at
		FROM attendance_events
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}
	defer rows.Close()

	events := []models.AttendanceEvent{}
	for rows.Next() {
		var e models.AttendanceEvent
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Date, &e.CheckIn, &e.CheckOut, &e.Status, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// ListByEmployee returns the employee's ledger, newest first.
func (r *AttendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]models.AttendanceEvent, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, employee_id, date, check_in, check_out, status, created_at
		FROM attendance_events
		WHERE employee_id = $1
		ORDER BY created_at DESC`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}
	defer rows.Close()

	events := []models.AttendanceEvent{}
	for rows.Next() {
		var e models.AttendanceEvent
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Date, &e.CheckIn, &e.CheckOut, &e.Status, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
