// Package common contains shared constants and sentinel errors used across
// authshell components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// MinUsernameLength is the shortest username accepted at registration.
const MinUsernameLength = 3
