// Package sessiongate is the session/authorization gateway of a Go client
// for a two-sided creator marketplace: it tracks whether a visitor is
// authenticated and which role they hold, persists that identity across
// restarts, and admits or redirects every navigation through a pure guard
// decision.
//
// The package is the public surface. It exposes [Gateway], [Builder],
// [Config], the guard ([Decide], [RouteMeta], [Verdict]), and value types.
// The REST boundary lives in the api subpackage, persistence in store, and
// host integration for net/http in middleware.
//
// # Trust model
//
// Tokens are opaque bearer credentials issued by the server; the gateway
// never verifies them cryptographically. A persisted access token is
// trusted on presence and only re-validated by an explicit
// [Gateway.FetchCurrentUser].
//
// # Concurrency
//
// Gateway methods are safe for concurrent use, but two racing identity
// mutations are not fenced: the later-resolving call's update wins. Hosts
// that need request ordering must serialize their own mutating calls.
package sessiongate
