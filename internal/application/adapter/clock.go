package adapter

import "time"

// Clock supplies the current instant to scheduling and aggregation logic.
// Use cases never read the system clock directly so tests can pin time.
type Clock interface {
	Now() time.Time
}
