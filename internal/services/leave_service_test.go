package services

import (
	"context"
	"errors"
	"testing"

	"hrms-backend/internal/apperr"
	"hrms-backend/internal/models"
)

func TestLeaveSubmit(t *testing.T) {
	store := &mockLeaves{}
	svc := NewLeaveService(store)

	saved, err := svc.Submit(context.Background(), &models.LeaveRequest{
		Name:             "Asha Rao",
		EmployeeID:       "EMP1",
		LeaveType:        "Sick",
		StartDate:        "2025-02-03",
		EndDate:          "2025-02-05",
		Reason:           "Flu",
		MessageToManager: "Handover done",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if saved.ID == 0 {
		t.Fatal("submitted request was not persisted")
	}

	requests, _ := svc.List(context.Background())
	if len(requests) != 1 || requests[0].LeaveType != "Sick" {
		t.Fatalf("list = %+v", requests)
	}
}

func TestLeaveSubmitValidation(t *testing.T) {
	svc := NewLeaveService(&mockLeaves{})

	tests := []models.LeaveRequest{
		{LeaveType: "Sick", StartDate: "2025-02-03", EndDate: "2025-02-05"}, // no employee
		{EmployeeID: "EMP1", StartDate: "2025-02-03", EndDate: "2025-02-05"},
		{EmployeeID: "EMP1", LeaveType: "Sick", EndDate: "2025-02-05"},
		{EmployeeID: "EMP1", LeaveType: "Sick", StartDate: "2025-02-03"},
	}
	for i, req := range tests {
		_, err := svc.Submit(context.Background(), &req)
		var ve *apperr.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("case %d: got %v, want validation error", i, err)
		}
	}
}
