package models

import "time"

// Document is an uploaded onboarding document reference (object-store key).
type Document struct {
	Type string `json:"type"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Key  string `json:"key"`
}

// EmergencyContact is one entry of the record's emergency contact list.
type EmergencyContact struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Phone    string `json:"phone"`
}

// EmployeeRecord holds the onboarding/profile data for an employee,
// keyed by employeeId (or username for legacy records). It is distinct
// from the credential record and the two are validated against each
// other at write time.
type EmployeeRecord struct {
	ID                int                `json:"id"`
	EmployeeID        string             `json:"employeeId"`
	Username          string             `json:"username,omitempty"`
	FirstName         string             `json:"firstName"`
	LastName          string             `json:"lastName"`
	Email             string             `json:"email"`
	Phone             string             `json:"phone"`
	DateOfBirth       string             `json:"dateOfBirth"`
	Gender            string             `json:"gender"`
	Address           string             `json:"address"`
	Designation       string             `json:"designation"`
	Department        string             `json:"department"`
	JoiningDate       string             `json:"joiningDate"`
	CenterCode        string             `json:"centerCode"`
	Documents         []Document         `json:"documents"`
	EmergencyContacts []EmergencyContact `json:"emergencyContact"`
	Status            string             `json:"status"`
	ValidationNote    string             `json:"validationNote,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// UpdateStatusRequest sets the review outcome for a record.
type UpdateStatusRequest struct {
	Status         string `json:"status"`
	ValidationNote string `json:"validationNote,omitempty"`
}

// OnboardingStatusResponse reports whether a profile record exists yet.
type OnboardingStatusResponse struct {
	Onboarded bool `json:"onboarded"`
}
