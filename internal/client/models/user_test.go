package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Valid(t *testing.T) {
	var nilUser *User
	assert.False(t, nilUser.Valid())
	assert.False(t, (&User{ID: "1"}).Valid())
	assert.False(t, (&User{Username: "admin"}).Valid())
	assert.False(t, (&User{ID: " ", Username: "admin"}).Valid())
	assert.True(t, (&User{ID: "1", Username: "admin"}).Valid())
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Admin User", (&User{Username: "admin", FirstName: "Admin", LastName: "User"}).DisplayName())
	assert.Equal(t, "Ann", (&User{Username: "ann1", FirstName: "Ann"}).DisplayName())
	assert.Equal(t, "admin", (&User{Username: "admin"}).DisplayName())
}

func TestUser_JSONFieldNames(t *testing.T) {
	b, err := json.Marshal(User{ID: "1", Username: "admin", FirstName: "Admin", IsEmailVerified: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","username":"admin","firstName":"Admin","isEmailVerified":true}`, string(b))
}

func TestThemeMode_Valid(t *testing.T) {
	for _, m := range []ThemeMode{ThemeLight, ThemeDark, ThemeSystem} {
		assert.True(t, m.Valid(), m)
	}
	assert.False(t, ThemeMode("sepia").Valid())
	assert.False(t, ThemeMode("").Valid())
}
