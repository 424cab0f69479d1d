// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cohetebrands/backoffice/internal/domain/entity"
)

// TransactionFilter defines filter options for listing ledger entries.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
	Category  *entity.Category
	ClientID  *uuid.UUID
	IsPaid    *bool
}

// TransactionRepository defines the interface for ledger persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, newest first.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// FindByDateRange retrieves transactions with a date inside [start, end],
	// oldest first. Used by the financial aggregator.
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Transaction, error)

	// Update updates an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete hard-deletes a transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}
