package domain

import (
	"errors"
	"time"
)

var ErrDuplicateApplication = errors.New("already applied to this job with this email")

// Application is a candidate's submission for a job. At most one application
// exists per (job, applicant email) pair, case-insensitive on the email.
type Application struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	LinkedIn    string    `json:"linkedin,omitempty"`
	GitHub      string    `json:"github,omitempty"`
	Portfolio   string    `json:"portfolio,omitempty"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	ResumeURL   string    `json:"resume_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
