package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"hrms-backend/internal/apperr"
	"hrms-backend/internal/models"
)

// mockEmployeeCredentials is an in-memory EmployeeCredentialStore.
type mockEmployeeCredentials struct {
	byID   map[string]*models.EmployeeCredential
	nextID int
}

func newMockEmployeeCredentials() *mockEmployeeCredentials {
	return &mockEmployeeCredentials{byID: make(map[string]*models.EmployeeCredential)}
}

func (m *mockEmployeeCredentials) Create(_ context.Context, c *models.EmployeeCredential) (*models.EmployeeCredential, error) {
	m.nextID++
	cp := *c
	cp.ID = m.nextID
	m.byID[c.EmployeeID] = &cp
	return &cp, nil
}

func (m *mockEmployeeCredentials) GetByEmployeeID(_ context.Context, employeeID string) (*models.EmployeeCredential, error) {
	c, ok := m.byID[employeeID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockEmployeeCredentials) ExistsByEmployeeIDOrEmail(_ context.Context, employeeID, email string) (bool, error) {
	if _, ok := m.byID[employeeID]; ok {
		return true, nil
	}
	for _, c := range m.byID {
		if c.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockEmployeeCredentials) UpdatePassword(_ context.Context, employeeID, passwordHash string) error {
	c, ok := m.byID[employeeID]
	if !ok {
		return apperr.ErrNotFound
	}
	c.PasswordHash = passwordHash
	return nil
}

func (m *mockEmployeeCredentials) UpdateStatus(_ context.Context, employeeID, status string) error {
	c, ok := m.byID[employeeID]
	if !ok {
		return apperr.ErrNotFound
	}
	c.Status = status
	return nil
}

func (m *mockEmployeeCredentials) UpdateCenterCode(_ context.Context, employeeID, centerCode string) error {
	c, ok := m.byID[employeeID]
	if !ok {
		return nil
	}
	c.CenterCode = centerCode
	return nil
}

// mockCentreCredentials is an in-memory CentreCredentialStore.
type mockCentreCredentials struct {
	byUsername map[string]*models.CentreCredential
	nextID     int
}

func newMockCentreCredentials() *mockCentreCredentials {
	return &mockCentreCredentials{byUsername: make(map[string]*models.CentreCredential)}
}

func (m *mockCentreCredentials) Create(_ context.Context, c *models.CentreCredential) (*models.CentreCredential, error) {
	m.nextID++
	cp := *c
	cp.ID = m.nextID
	m.byUsername[c.Username] = &cp
	return &cp, nil
}

func (m *mockCentreCredentials) GetByUsername(_ context.Context, username string) (*models.CentreCredential, error) {
	c, ok := m.byUsername[username]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockCentreCredentials) GetByCentreCode(_ context.Context, centreCode string) (*models.CentreCredential, error) {
	for _, c := range m.byUsername {
		if c.CentreCode == centreCode {
			cp := *c
			return &cp, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (m *mockCentreCredentials) ExistsByUsernameEmailOrCode(_ context.Context, username, email, centreCode string) (bool, error) {
	if _, ok := m.byUsername[username]; ok {
		return true, nil
	}
	for _, c := range m.byUsername {
		if c.Email == email || c.CentreCode == centreCode {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockCentreCredentials) ListAll(_ context.Context) ([]models.CentreCredential, error) {
	out := []models.CentreCredential{}
	for _, c := range m.byUsername {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockCentreCredentials) UpdatePassword(_ context.Context, username, passwordHash string) error {
	c, ok := m.byUsername[username]
	if !ok {
		return apperr.ErrNotFound
	}
	c.PasswordHash = passwordHash
	return nil
}

// mockAdminCredentials is an in-memory AdminCredentialStore.
type mockAdminCredentials struct {
	byID   map[string]*models.AdminCredential
	nextID int
}

func newMockAdminCredentials() *mockAdminCredentials {
	return &mockAdminCredentials{byID: make(map[string]*models.AdminCredential)}
}

func (m *mockAdminCredentials) Create(_ context.Context, c *models.AdminCredential) (*models.AdminCredential, error) {
	m.nextID++
	cp := *c
	cp.ID = m.nextID
	m.byID[c.AdminID] = &cp
	return &cp, nil
}

func (m *mockAdminCredentials) GetByAdminID(_ context.Context, adminID string) (*models.AdminCredential, error) {
	c, ok := m.byID[adminID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockAdminCredentials) ExistsByAdminIDOrEmail(_ context.Context, adminID, email string) (bool, error) {
	if _, ok := m.byID[adminID]; ok {
		return true, nil
	}
	for _, c := range m.byID {
		if c.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// mockRecords is an in-memory EmployeeRecordStore.
type mockRecords struct {
	byKey map[string]*models.EmployeeRecord
}

func newMockRecords() *mockRecords {
	return &mockRecords{byKey: make(map[string]*models.EmployeeRecord)}
}

func (m *mockRecords) key(rec *models.EmployeeRecord) string {
	if rec.EmployeeID != "" {
		return rec.EmployeeID
	}
	return rec.Username
}

func (m *mockRecords) GetByEmployeeID(_ context.Context, employeeID string) (*models.EmployeeRecord, error) {
	rec, ok := m.byKey[employeeID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (m *mockRecords) ListAll(_ context.Context) ([]models.EmployeeRecord, error) {
	out := []models.EmployeeRecord{}
	for _, rec := range m.byKey {
		out = append(out, *rec)
	}
	return out, nil
}

func (m *mockRecords) Upsert(_ context.Context, rec *models.EmployeeRecord) (*models.EmployeeRecord, error) {
	cp := *rec
	m.byKey[m.key(rec)] = &cp
	return &cp, nil
}

func (m *mockRecords) UpdateStatus(_ context.Context, employeeID, status, validationNote string) (*models.EmployeeRecord, error) {
	rec, ok := m.byKey[employeeID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	rec.Status = status
	rec.ValidationNote = validationNote
	cp := *rec
	return &cp, nil
}

func (m *mockRecords) DeleteWithCredential(_ context.Context, employeeID string) error {
	if _, ok := m.byKey[employeeID]; !ok {
		return apperr.ErrNotFound
	}
	delete(m.byKey, employeeID)
	return nil
}

// memoryCodeStore is a deterministic in-memory CodeStore.
type memoryCodeStore struct {
	mu    sync.Mutex
	codes map[string]string
}

func newMemoryCodeStore() *memoryCodeStore {
	return &memoryCodeStore{codes: make(map[string]string)}
}

func (m *memoryCodeStore) SetWithTTL(_ context.Context, key, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes[key] = value
	return nil
}

func (m *memoryCodeStore) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.codes[key]
	return v, ok
}

func (m *memoryCodeStore) Delete(_ context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.codes, key)
}

// captureMailer records the last code handed to it.
type captureMailer struct {
	recipient string
	code      string
}

func (m *captureMailer) SendResetCode(_ context.Context, recipient, code string) error {
	m.recipient = recipient
	m.code = code
	return nil
}

// mockPhotoLister returns fixed keys or an error.
type mockPhotoLister struct {
	keys []string
	err  error
}

func (m *mockPhotoLister) ListPhotoKeys(_ context.Context) ([]string, error) {
	return m.keys, m.err
}

// mockComparer maps stored keys to similarities; unknown keys error.
type mockComparer struct {
	similarities map[string]float64
	failing      map[string]bool
	compared     []string
}

func (m *mockComparer) Compare(_ context.Context, storedKey string, _ []byte) (float64, error) {
	m.compared = append(m.compared, storedKey)
	if m.failing[storedKey] {
		return 0, errors.New("compare failed")
	}
	return m.similarities[storedKey], nil
}

// mockLedger records inserts.
type mockLedger struct {
	events []models.AttendanceEvent
}

func (m *mockLedger) Insert(_ context.Context, e *models.AttendanceEvent) (*models.AttendanceEvent, error) {
	cp := *e
	cp.ID = len(m.events) + 1
	m.events = append(m.events, cp)
	return &cp, nil
}

func (m *mockLedger) ListAll(_ context.Context) ([]models.AttendanceEvent, error) {
	return append([]models.AttendanceEvent{}, m.events...), nil
}

// mockLeaves records leave submissions.
type mockLeaves struct {
	requests []models.LeaveRequest
}

func (m *mockLeaves) Insert(_ context.Context, lr *models.LeaveRequest) (*models.LeaveRequest, error) {
	cp := *lr
	cp.ID = len(m.requests) + 1
	m.requests = append(m.requests, cp)
	return &cp, nil
}

func (m *mockLeaves) ListAll(_ context.Context) ([]models.LeaveRequest, error) {
	return append([]models.LeaveRequest{}, m.requests...), nil
}
