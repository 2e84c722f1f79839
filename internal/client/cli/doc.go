// Package cli provides the interactive authshell client.
//
// It wires configuration, the on-device session storage, the remote
// authenticator (mock or gRPC), the session store and the route guard into a
// small REPL. The REPL stands in for a UI: it keeps a current location that
// the guard moves around, renders loading and error changes of the session,
// and exposes every session operation as a command.
//
// Key features:
//   - Sign in, register, sign out, password reset
//   - Navigation between auth, main and standalone locations
//   - Theme and biometric preferences
//   - Online/offline reporting when talking to a server
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
