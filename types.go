package sessiongate

import "github.com/nexcollab/sessiongate/api"

// Role is the account capability tag. See [api.Role].
type Role = api.Role

const (
	// RoleBrand marks an account that publishes campaigns.
	RoleBrand = api.RoleBrand
	// RoleInfluencer is the canonical creator-side label.
	RoleInfluencer = api.RoleInfluencer
	// RoleCreator is the legacy alias for [RoleInfluencer].
	RoleCreator = api.RoleCreator
)

// User is the account record mirrored between the gateway and the
// persisted store. See [api.User].
type User = api.User

// TokenPair holds the opaque bearer credentials. See [api.TokenPair].
type TokenPair = api.TokenPair

// NormalizeRole folds the legacy CREATOR label onto INFLUENCER.
func NormalizeRole(r Role) Role {
	return api.NormalizeRole(r)
}

// Snapshot is the derived, read-only view of the current identity state
// consumed by the navigation guard and by views. It is a value copy; the
// gateway's own state cannot be mutated through it.
type Snapshot struct {
	User          *User
	Authenticated bool
	Loading       bool
	Err           string
}

// HasRole reports whether the snapshot's user completed role selection.
func (s Snapshot) HasRole() bool {
	return s.User.HasRole()
}

// RouteMeta is the static requirement descriptor attached to a route.
// All flags default to false; a zero RouteMeta is a public route.
type RouteMeta struct {
	RequiresAuth   bool
	RequiresGuest  bool
	RequiresRole   bool
	RequiresNoRole bool
}

// Verdict is the guard's decision for one navigation: either Allow, or a
// redirect to the given path.
type Verdict struct {
	Allow    bool
	Redirect string
}
