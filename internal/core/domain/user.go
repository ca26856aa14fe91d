package domain

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrIdentifierTaken = errors.New("email or username already in use")
var ErrUserNotFound = errors.New("user not found")
var ErrMissingFields = errors.New("missing required fields")

// User is the full account record, including the password hash. It never
// crosses the HTTP boundary — handlers only ever see PublicUser.
type User struct {
	ID           int64
	Email        string
	Username     string
	FullName     string
	PasswordHash string
	Profile      Profile
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile holds the free-form fields a user maintains about themselves.
type Profile struct {
	Age        string `json:"age,omitempty"`
	Location   string `json:"location,omitempty"`
	Gender     string `json:"gender,omitempty"`
	Skills     string `json:"skills,omitempty"`
	Education  string `json:"education,omitempty"`
	Experience string `json:"experience,omitempty"`
	Interests  string `json:"interests,omitempty"`
	Bio        string `json:"bio,omitempty"`
}

// PublicUser is the safe projection of a User: everything a client may see.
type PublicUser struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username,omitempty"`
	FullName  string    `json:"full_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Public strips the password hash and internal-only fields.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}
	return &PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
	}
}
