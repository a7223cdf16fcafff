package upstream

import (
	"context"
	"net/http"

	"github.com/kaan/campora/internal/app/models"
)

// LoginRequest carries credentials forwarded verbatim to the upstream.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the upstream's successful login payload: the bearer
// token plus the account and its role list.
type LoginResponse struct {
	Token string            `json:"token"`
	User  models.User       `json:"user"`
	Roles []models.UserRole `json:"roles"`
}

// Login exchanges credentials for a token. No refresh flow exists; an
// expired token means logging in again.
func (c *Client) Login(ctx context.Context, in LoginRequest) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.do(ctx, "", http.MethodPost, "/auth/login", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
