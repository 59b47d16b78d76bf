package dto

import (
	"time"

	"github.com/revlo/revlo_ledger/internal/core/domain"
)

// CreateAPITokenRequest represents the request body for creating a new API token
type CreateAPITokenRequest struct {
	// Name is a user-defined name for the token (3-100 characters)
	Name string `json:"name" binding:"required,min=3,max=100" example:"Telegram expense bot"`
	// ExpiresIn is the duration in seconds after which the token will expire (optional)
	ExpiresIn *int64 `json:"expiresIn,omitempty" binding:"omitempty,min=60" example:"2592000"`
}

// ExpiresInDuration converts ExpiresIn to a duration.
func (r CreateAPITokenRequest) ExpiresInDuration() *time.Duration {
	if r.ExpiresIn == nil {
		return nil
	}
	d := time.Duration(*r.ExpiresIn) * time.Second
	return &d
}

// APITokenResponse represents an API token in the API responses
type APITokenResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// CreateAPITokenResponse is returned once, when the plaintext token is still known.
type CreateAPITokenResponse struct {
	Token   string           `json:"token"`
	Details APITokenResponse `json:"details"`
}

// ToAPITokenResponse converts a domain.APIToken to its DTO. The hash never leaves the service.
func ToAPITokenResponse(t domain.APIToken) APITokenResponse {
	return APITokenResponse{
		ID:         t.ID,
		Name:       t.Name,
		LastUsedAt: t.LastUsedAt,
		ExpiresAt:  t.ExpiresAt,
		CreatedAt:  t.CreatedAt,
	}
}

// ToAPITokenResponseList converts a slice of tokens.
func ToAPITokenResponseList(tokens []domain.APIToken) []APITokenResponse {
	resp := make([]APITokenResponse, len(tokens))
	for i, t := range tokens {
		resp[i] = ToAPITokenResponse(t)
	}
	return resp
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"account not found"`
	Code  string `json:"code" example:"NOT_FOUND"`
}
