package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoredUser_StripDropsPassword(t *testing.T) {
	u := StoredUser{
		SessionUser: SessionUser{ID: "demo-admin", Username: "admin", Role: RoleAdmin},
		Password:    "admin123",
	}

	stored, err := json.Marshal(u)
	require.NoError(t, err)
	assert.Contains(t, string(stored), `"password":"admin123"`)
	assert.Contains(t, string(stored), `"username":"admin"`)

	session, err := json.Marshal(u.Strip())
	require.NoError(t, err)
	assert.NotContains(t, string(session), "password")
	assert.NotContains(t, string(session), "admin123")
}

func TestSessionUser_IsAdmin(t *testing.T) {
	var nobody *SessionUser
	assert.False(t, nobody.IsAdmin())
	assert.False(t, (&SessionUser{Role: RoleUser}).IsAdmin())
	assert.True(t, (&SessionUser{Role: RoleAdmin}).IsAdmin())
}
