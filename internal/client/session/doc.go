// Package session holds the Session State Store: the single source of truth
// for who is signed in.
//
// A Store coordinates the remote Authenticator with the persisted session in
// the secure storage namespace. Every change is committed as a whole new
// State and delivered synchronously to subscribers in commit order. The only
// intermediate state subscribers can observe is the IsLoading toggle around
// an operation.
//
// Operations never return errors. They report success as a bool and put a
// human-readable message into State.Error.
package session
