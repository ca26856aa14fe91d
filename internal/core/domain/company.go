package domain

import (
	"errors"
	"time"
)

var ErrCompanyNotFound = errors.New("company not found")

// Company owns zero or more jobs. Names are unique case-insensitively; the
// repository upsert guarantees one row per distinct name.
type Company struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Logo      string    `json:"logo,omitempty"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}
