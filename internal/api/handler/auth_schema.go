package handler

import "github.com/vizerhq/jobboard/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type checkIdentifierRequest struct {
	Identifier string `json:"identifier" validate:"required"`
}

type checkIdentifierResponse struct {
	Exists bool   `json:"exists"`
	Type   string `json:"type"`
}

type registerRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Username string `json:"username"  validate:"required,min=2"`
	FullName string `json:"full_name" validate:"required"`
	Password string `json:"password"  validate:"required,min=8"`
}

type loginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

// authResponse carries the token twice over the wire: once here and once in
// the session cookie. Both must encode the same token and expiry.
type authResponse struct {
	Message string             `json:"message"`
	Token   string             `json:"token"`
	User    *domain.PublicUser `json:"user"`
}
