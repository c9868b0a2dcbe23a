package model

import (
	"strings"
	"time"
)

// Safety record statuses.
const (
	SafetyStatusDraft     = "draft"
	SafetyStatusSubmitted = "submitted"
)

// NormalizeSafetyStatus maps free-form status input to a valid status.
// "drafted" is a legacy spelling still present in older rows.
func NormalizeSafetyStatus(input string) string {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case SafetyStatusSubmitted:
		return SafetyStatusSubmitted
	case SafetyStatusDraft, "drafted":
		return SafetyStatusDraft
	default:
		return SafetyStatusDraft
	}
}

// SafetyRecord is a site safety entry (toolbox talk, SWMS) tied to a job.
type SafetyRecord struct {
	ID         string     `json:"id"`
	BusinessID string     `json:"business_id"`
	JobID      string     `json:"job_id"`
	CreatedBy  string     `json:"created_by"`
	Title      string     `json:"title"`
	Site       string     `json:"site"`
	Notes      *string    `json:"notes,omitempty"`
	Status     string     `json:"status"`
	OccurredOn string     `json:"occurred_on"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// SafetyRecordPayload is the create/update request body for a safety record.
type SafetyRecordPayload struct {
	Title      string  `json:"title"`
	Site       string  `json:"site"`
	Notes      *string `json:"notes"`
	Status     string  `json:"status"`
	OccurredOn string  `json:"occurred_on"`
}
