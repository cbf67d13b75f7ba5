package services

import (
	"context"
	"log"

	"hrms-backend/internal/apperr"
	"hrms-backend/internal/models"
)

// LeaveStore is the leave request persistence surface.
type LeaveStore interface {
	Insert(ctx context.Context, lr *models.LeaveRequest) (*models.LeaveRequest, error)
	ListAll(ctx context.Context) ([]models.LeaveRequest, error)
}

// LeaveService records leave submissions for manager review.
type LeaveService struct {
	store LeaveStore
}

func NewLeaveService(store LeaveStore) *LeaveService {
	return &LeaveService{store: store}
}

// Submit persists a leave request.
func (s *LeaveService) Submit(ctx context.Context, lr *models.LeaveRequest) (*models.LeaveRequest, error) {
	if lr.EmployeeID == "" {
		return nil, apperr.NewValidation("employeeId is required")
	}
	if lr.LeaveType == "" || lr.StartDate == "" || lr.EndDate == "" {
		return nil, apperr.NewValidation("leaveType, startDate and endDate are required")
	}

	saved, err := s.store.Insert(ctx, lr)
	if err != nil {
		return nil, err
	}
	log.Printf("[Leave] %s requested %s leave %s to %s", lr.EmployeeID, lr.LeaveType, lr.StartDate, lr.EndDate)
	return saved, nil
}

// List returns every leave request for review.
func (s *LeaveService) List(ctx context.Context) ([]models.LeaveRequest, error) {
	return s.store.ListAll(ctx)
}
