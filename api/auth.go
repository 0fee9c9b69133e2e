package api

import (
	"context"
	"net/http"
)

// Register creates a new account. A successful response carries the user
// record and a fresh token pair.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthPayload, error) {
	var out AuthPayload
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/register/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthPayload, error) {
	var out AuthPayload
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout notifies the server that the given refresh token should be
// blacklisted. Callers treat this as best-effort; local teardown must not
// depend on it succeeding.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	body := map[string]string{"refresh": refreshToken}
	return c.do(ctx, http.MethodPost, "/api/v1/auth/logout/", body, nil)
}

// SelectRole commits the one-time role choice. The server rejects changes
// after the first selection. The legacy CREATOR alias is normalized before
// it reaches the wire.
func (c *Client) SelectRole(ctx context.Context, role Role) (*UserPayload, error) {
	body := map[string]Role{"role": NormalizeRole(role)}
	var out UserPayload
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/role/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me fetches the current account record for the bearer token in use.
func (c *Client) Me(ctx context.Context) (*UserPayload, error) {
	var out UserPayload
	if err := c.do(ctx, http.MethodGet, "/api/v1/auth/me/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestPasswordReset asks the server to email a reset link. The server
// answers success even for unknown addresses, so callers learn nothing
// about account existence.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) (*MessagePayload, error) {
	body := map[string]string{"email": email}
	var out MessagePayload
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/password/reset/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConfirmPasswordReset completes a reset flow with the uid and token from
// the emailed link.
func (c *Client) ConfirmPasswordReset(ctx context.Context, uid, token, password, passwordConfirm string) (*MessagePayload, error) {
	body := map[string]string{
		"uid":              uid,
		"token":            token,
		"password":         password,
		"password_confirm": passwordConfirm,
	}
	var out MessagePayload
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/password/reset/confirm/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword rotates the password of the authenticated account.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword, newPasswordConfirm string) (*MessagePayload, error) {
	body := map[string]string{
		"old_password":         oldPassword,
		"new_password":         newPassword,
		"new_password_confirm": newPasswordConfirm,
	}
	var out MessagePayload
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/password/change/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAccount removes the authenticated account (GDPR erasure).
func (c *Client) DeleteAccount(ctx context.Context) (*MessagePayload, error) {
	var out MessagePayload
	if err := c.do(ctx, http.MethodDelete, "/api/v1/auth/delete/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
