// Package client contains the client side of the remote authenticator.
//
// # Overview
//
//  1. A transport-agnostic contract (Authenticator) for the four calls the
//     session store needs: Login, Register, Logout and ForgotPassword.
//  2. MockAuthenticator, an in-process stand-in with an artificial delay that
//     accepts only the admin/password pair. It is the default for local runs
//     and the deterministic double for tests.
//  3. GRPCClient, which talks to the authenticator server, injects the access
//     token through a unary interceptor and maps gRPC status codes to sentinel
//     errors.
//
// # Error Handling
//
// Callers match conditions with errors.Is: ErrInvalidCredentials,
// ErrUnauthorized, ErrUnavailable and ErrRejected. Error messages are meant
// to be shown to the user verbatim.
//
// All operations accept context.Context and honor cancellation.
package client
