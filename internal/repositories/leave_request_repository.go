package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"hrms-backend/internal/models"
)

// LeaveRequestRepository stores leave submissions.
type LeaveRequestRepository struct {
	pool *pgxpool.Pool
}

func NewLeaveRequestRepository(pool *pgxpool.Pool) *LeaveRequestRepository {
	return &LeaveRequestRepository{pool: pool}
}

func (r *LeaveRequestRepository) Insert(ctx context.Context, lr *models.LeaveRequest) (*models.LeaveRequest, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO leave_requests (name, employee_id, leave_type, start_date, end_date, reason, message_to_manager)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, employee_id, leave_type, start_date, end_date, reason, message_to_manager, created_at`,
		lr.Name, lr.EmployeeID, lr.LeaveType, lr.StartDate, lr.EndDate, lr.Reason, lr.MessageToManager)

	var out models.LeaveRequest
	err := row.Scan(&out.ID, &out.Name, &out.EmployeeID, &out.LeaveType, &out.StartDate,
		&out.EndDate, &out.Reason, &out.MessageToManager, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert leave request: %w", err)
	}
	return &out, nil
}

// ListAll returns every leave request, newest first.
func (r *LeaveRequestRepository) ListAll(ctx context.Context) ([]models.LeaveRequest, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, employee_id, leave_type, start_date, end_date, reason, message_to_manager, created_at
		FROM leave_requests
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests := []models.LeaveRequest{}
	for rows.Next() {
		var lr models.LeaveRequest
		if err := rows.Scan(&lr.ID, &lr.Name, &lr.EmployeeID, &lr.LeaveType, &lr.StartDate,
			&lr.EndDate, &lr.Reason, &lr.MessageToManager, &lr.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

// ListByEmployee returns the employee's leave history, newest first.
func (r *LeaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]models.LeaveRequest, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, employee_id, leave_type, start_date, end_date, reason, message_to_manager, created_at
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests := []models.LeaveRequest{}
	for rows.Next() {
		var lr models.LeaveRequest
		if err := rows.Scan(&lr.ID, &lr.Name, &lr.EmployeeID, &lr.LeaveType, &lr.StartDate,
			&lr.EndDate, &lr.Reason, &lr.MessageToManager, &lr.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}
