// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/cohetebrands/backoffice/internal/application/adapter"
)

// systemClock reads the real system clock in UTC.
type systemClock struct{}

// NewSystemClock creates a Clock backed by the system clock.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

// Now returns the current UTC time.
func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
