// Package storage is the client's persistence adapter.
//
// A Storage routes every key to one of two engines: the standard namespace,
// used for preferences, and the secure namespace, whose values are sealed with
// AES-GCM before they reach disk. Routing is decided solely by IsSecureKey, so
// callers never pick a namespace themselves.
//
// Read operations never fail: a missing key or an engine error yields the
// caller's fallback (engine errors are logged). Write and delete operations
// return their errors, since losing a write silently is worse than reporting it.
package storage
