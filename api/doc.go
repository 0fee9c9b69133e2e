// Package api is the typed REST boundary of sessiongate. It speaks the
// marketplace API's uniform envelope ({status, data, errors}) and exposes
// one method per endpoint: the auth surface consumed by the session gateway
// plus the thin campaign, template, and application CRUD wrappers.
//
// The package performs no persistence and holds no session state. Any
// non-"success" envelope status, regardless of HTTP status code, is
// surfaced as [*Error] with the server's errors array flattened into
// messages; transport and decode failures surface as plain errors.
package api
