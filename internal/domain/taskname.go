package domain

import "time"

// TaskName is a deduplicated task description, used for autocomplete.
type TaskName struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
