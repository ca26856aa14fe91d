package domain

import (
	"errors"
	"time"
)

var ErrJobNotFound = errors.New("job not found")
var ErrDuplicateJobURL = errors.New("a job with this URL already exists")

// Job is a posting attached to a company. The URL is globally unique; a
// duplicate insert surfaces ErrDuplicateJobURL, never a silent overwrite.
type Job struct {
	ID          int64      `json:"id"`
	CompanyID   int64      `json:"company_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	Salary      string     `json:"salary,omitempty"`
	URL         string     `json:"url"`
	PostedAt    time.Time  `json:"posted_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`

	// Company is populated on reads for convenience; nil on bare rows.
	Company *Company `json:"company,omitempty"`
}
