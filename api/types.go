package api

// Role is the account capability tag selected once after registration. It
// gates which views and routes a visitor can reach.
type Role string

const (
	// RoleBrand marks an account that publishes campaigns.
	RoleBrand Role = "BRAND"
	// RoleInfluencer is the canonical wire label for creator accounts.
	RoleInfluencer Role = "INFLUENCER"
	// RoleCreator is a legacy alias for [RoleInfluencer] still emitted by
	// some server responses. NormalizeRole folds it away.
	RoleCreator Role = "CREATOR"
)

// NormalizeRole maps the legacy CREATOR label onto the canonical
// INFLUENCER label. Every other value, including the empty "no role yet"
// value, passes through unchanged.
func NormalizeRole(r Role) Role {
	if r == RoleCreator {
		return RoleInfluencer
	}
	return r
}

// User is the account record returned inside auth envelopes. Role is empty
// until the visitor completes role selection.
type User struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Role            Role   `json:"role"`
	IsEmailVerified bool   `json:"is_email_verified"`
	GDPRConsent     bool   `json:"gdpr_consent"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// HasRole reports whether the account has completed role selection.
func (u *User) HasRole() bool {
	return u != nil && u.Role != ""
}

// TokenPair holds the opaque bearer credentials issued by the server.
// Both fields are present together or absent together; sessiongate never
// clears one without the other outside of a full teardown.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RegisterRequest is the input for [Client.Register].
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	GDPRConsent     bool   `json:"gdpr_consent"`
}

// LoginRequest is the input for [Client.Login].
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthPayload is the data section of register and login envelopes.
type AuthPayload struct {
	User   User      `json:"user"`
	Tokens TokenPair `json:"tokens"`
}

// UserPayload is the data section of role-selection and /auth/me envelopes.
type UserPayload struct {
	User    User   `json:"user"`
	Message string `json:"message,omitempty"`
}

// MessagePayload is the data section of password-flow and deletion
// envelopes, which carry only a human-readable confirmation.
type MessagePayload struct {
	Message string `json:"message"`
}
