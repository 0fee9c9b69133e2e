// Package store holds the persisted half of a session: the token pair and
// the cached user record, keyed by the same three slots the browser client
// kept in localStorage. A missing slot always means "not signed in", never
// an error.
//
// Two implementations are provided: [RedisStore] for shared or surviving
// persistence and [MemoryStore] for embedded and test use. Both are safe
// for concurrent use.
package store
