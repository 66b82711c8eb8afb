package api

import (
	"context"

	"github.com/anunciabr/anuncia/internal/client/models"
)

// Credentials carries the session material returned by login/register.
type Credentials struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// RegisterRequest is the registration payload. Type defaults to "user" on
// the backend when empty; "admin" cannot be self-assigned.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Type     string `json:"type,omitempty"`
}

// Login exchanges credentials for a token and the account record.
func (c *Client) Login(ctx context.Context, email, password string) (*Credentials, error) {
	body := map[string]string{"email": email, "password": password}
	var creds Credentials
	if err := c.post(ctx, "/auth/login", body, &creds, false); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Register creates an account and logs it in.
func (c *Client) Register(ctx context.Context, req *RegisterRequest) (*Credentials, error) {
	var creds Credentials
	if err := c.post(ctx, "/auth/register", req, &creds, false); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Profile fetches the authenticated account. Used by session hydration to
// revalidate a persisted token.
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.get(ctx, "/auth/profile", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile edits the authenticated account and returns the new record.
func (c *Client) UpdateProfile(ctx context.Context, u *models.User) (*models.User, error) {
	var updated models.User
	if err := c.put(ctx, "/auth/profile", u, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
