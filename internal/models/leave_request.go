package models

import "time"

// LeaveRequest is a leave submission forwarded to the centre manager.
type LeaveRequest struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	EmployeeID       string    `json:"employeeId"`
	LeaveType        string    `json:"leaveType"`
	StartDate        string    `json:"startDate"`
	EndDate          string    `json:"endDate"`
	Reason           string    `json:"reason"`
	MessageToManager string    `json:"messageToManager,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
