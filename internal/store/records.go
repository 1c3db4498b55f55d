package store

import (
	"encoding/json" // Record file encoding
	"errors"        // Error inspection
	"fmt"           // Error wrapping
	"os"            // File access

	"user_ledger/internal/domain" // Domain models
)

// userRecord is the on-disk shape of one user. Balance and history live in the ledger files.
type userRecord struct {
	UserID   int    `json:"user_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RecordStore persists user identity fields as a single JSON array file
type RecordStore struct {
	path string // Path of the users file
}

// NewRecordStore returns a store backed by the file at path
func NewRecordStore(path string) *RecordStore {
	return &RecordStore{path: path}
}

// Path returns the backing file path
func (s *RecordStore) Path() string {
	return s.path
}

// Load reads every user from the file. A missing file means no users yet.
func (s *RecordStore) Load() ([]domain.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.User{}, nil // No data yet
		}
		return nil, fmt.Errorf("read users file: %w", err)
	}
	var records []userRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode users file: %w", err)
	}
	users := make([]domain.User, 0, len(records))
	for _, r := range records {
		users = append(users, domain.User{
			ID:       r.UserID,
			Name:     r.Name,
			Email:    r.Email,
			Password: r.Password,
		})
	}
	return users, nil
}

// Save overwrites the file with the identity fields of users, in order
func (s *RecordStore) Save(users []domain.User) error {
	records := make([]userRecord, 0, len(users))
	for _, u := range users {
		records = append(records, userRecord{UserID: u.ID, Name: u.Name, Email: u.Email, Password: u.Password})
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode users file: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write users file: %w", err)
	}
	return nil
}

// NextID returns max(ids)+1, or 1 when users is empty
func NextID(users []domain.User) int {
	next := 1
	for _, u := range users {
		if u.ID >= next {
			next = u.ID + 1
		}
	}
	return next
}
