package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client represents an agency client that ledger entries and recurring
// templates can link to.
type Client struct {
	ID        uuid.UUID
	Name      string
	Company   string
	Email     string
	Phone     string
	RFC       string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewClient creates a new Client entity with a fresh ID.
func NewClient(name, company, email, phone, rfc string, now time.Time) *Client {
	return &Client{
		ID:        uuid.New(),
		Name:      name,
		Company:   company,
		Email:     email,
		Phone:     phone,
		RFC:       rfc,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
