package ports

import (
	"context"

	"github.com/vizerhq/jobboard/internal/core/domain"
)

// ProfileView is the read model for GET profile.
type ProfileView struct {
	Name       string `json:"name,omitempty"`
	Age        string `json:"age,omitempty"`
	Location   string `json:"location,omitempty"`
	Gender     string `json:"gender,omitempty"`
	Skills     string `json:"skills,omitempty"`
	Education  string `json:"education,omitempty"`
	Experience string `json:"experience,omitempty"`
	Interests  string `json:"interests,omitempty"`
	Bio        string `json:"bio,omitempty"`
}

// UserService defines profile read/update use cases for the authenticated
// account.
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*ProfileView, error)
	UpdateProfile(ctx context.Context, userID int64, update ProfileUpdate) (*domain.PublicUser, error)
}
