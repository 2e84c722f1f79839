package storage

// Well-known keys. The first four live in the secure namespace.
const (
	KeyAuthToken        = "auth_token"
	KeyRefreshToken     = "refresh_token"
	KeyUserData         = "user_data"
	KeyBiometricEnabled = "biometric_enabled"

	KeyThemeMode = "theme_mode"
)

// saltKey holds the salt of the secure-namespace key. It is internal to the
// adapter and hidden from AllKeys.
const saltKey = "__secure_salt"

var secureKeys = map[string]struct{}{
	KeyAuthToken:        {},
	KeyRefreshToken:     {},
	KeyUserData:         {},
	KeyBiometricEnabled: {},
}

// IsSecureKey reports whether key is stored in the secure namespace.
func IsSecureKey(key string) bool {
	_, ok := secureKeys[key]
	return ok
}
