package entity

import (
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle state of a todo. Input is accepted case-insensitively
// and normalized to upper-case before it reaches the persistence layer.
type Status string

const (
	StatusNotStarted Status = "NOTSTARTED"
	StatusOngoing    Status = "ONGOING"
	StatusCompleted  Status = "COMPLETED"
)

// AllStatuses returns the full set of valid status values, in declaration order.
func AllStatuses() []Status {
	return []Status{StatusNotStarted, StatusOngoing, StatusCompleted}
}

// ParseStatus normalizes raw input to a canonical Status. It reports false
// when the value is outside the enumeration.
func ParseStatus(raw string) (Status, bool) {
	status := Status(strings.ToUpper(raw))
	for _, valid := range AllStatuses() {
		if status == valid {
			return status, true
		}
	}

	return "", false
}

// StatusEnumDescription renders the valid set for validation error messages.
func StatusEnumDescription() string {
	return fmt.Sprintf("%v", AllStatuses())
}

// Todo is a task record. Every todo is owned by exactly one user; the
// ownership relation is fixed at creation time.
type Todo struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	UserID      int64     `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
