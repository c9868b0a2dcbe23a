package model

import "time"

// Job statuses.
const (
	JobStatusActive    = "active"
	JobStatusOnHold    = "on_hold"
	JobStatusCompleted = "completed"
)

var validJobStatuses = map[string]bool{
	JobStatusActive:    true,
	JobStatusOnHold:    true,
	JobStatusCompleted: true,
}

// ValidJobStatus reports whether s is a known job status.
func ValidJobStatus(s string) bool {
	return validJobStatuses[s]
}

// Job is a work site / project the business runs documents and todos against.
type Job struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"business_id"`
	Name        string    `json:"name"`
	SiteAddress string    `json:"site_address"`
	ClientID    *string   `json:"client_id,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// JobPayload is the create request body for a job.
type JobPayload struct {
	Name        string  `json:"name"`
	SiteAddress string  `json:"site_address"`
	ClientID    *string `json:"client_id"`
	Status      string  `json:"status"`
}
