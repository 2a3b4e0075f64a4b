package auth

import (
	"testing"

	"budgetbook/internal/ledgererr"
	"budgetbook/internal/logging"
	"budgetbook/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthenticator(t *testing.T) (*Authenticator, *store.Store) {
	t.Helper()
	log := logging.NewLogrusAdapter("error", "text")
	s, err := store.New(t.TempDir(), log)
	require.NoError(t, err)
	a, err := New(s, log)
	require.NoError(t, err)
	return a, s
}

func TestHashPasswordIsDeterministicPerSalt(t *testing.T) {
	salt, err := MakeSalt()
	require.NoError(t, err)

	first, err := HashPassword("secret", salt)
	require.NoError(t, err)
	second, err := HashPassword("secret", salt)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := HashPassword("different", salt)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestMakeSaltIsUnique(t *testing.T) {
	first, err := MakeSalt()
	require.NoError(t, err)
	second, err := MakeSalt()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestRegisterAndLogin(t *testing.T) {
	a, s := newTestAuthenticator(t)

	user, err := a.Register("alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "secret", user.PasswordHash)
	assert.True(t, s.UserExists("alice"))

	loaded, err := a.Login("alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", loaded.Username)
	assert.NotNil(t, loaded.Ledger)
}

func TestRegisterValidation(t *testing.T) {
	a, _ := newTestAuthenticator(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "pw"},
		{"username with space", "bad name", "pw"},
		{"username with symbols", "кириллица", "pw"},
		{"empty password", "bob", ""},
		{"password with space", "bob", "p w"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Register(tt.username, tt.password)
			var invalid *ledgererr.InvalidCredentialsError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	a, _ := newTestAuthenticator(t)
	_, err := a.Register("alice", "secret")
	require.NoError(t, err)

	_, err = a.Register("alice", "other")
	var invalid *ledgererr.InvalidCredentialsError
	assert.ErrorAs(t, err, &invalid)
}

func TestLoginFailures(t *testing.T) {
	a, _ := newTestAuthenticator(t)
	_, err := a.Register("alice", "secret")
	require.NoError(t, err)

	var invalid *ledgererr.InvalidCredentialsError
	_, err = a.Login("alice", "wrong")
	assert.ErrorAs(t, err, &invalid)

	_, err = a.Login("nobody", "secret")
	assert.ErrorAs(t, err, &invalid)
}

func TestCredentialsSurviveRestart(t *testing.T) {
	log := logging.NewLogrusAdapter("error", "text")
	base := t.TempDir()

	s, err := store.New(base, log)
	require.NoError(t, err)
	a, err := New(s, log)
	require.NoError(t, err)
	_, err = a.Register("alice", "secret")
	require.NoError(t, err)

	// A fresh authenticator over the same directory sees the user.
	restarted, err := New(s, log)
	require.NoError(t, err)
	assert.True(t, restarted.UserExists("alice"))
	_, err = restarted.Login("alice", "secret")
	assert.NoError(t, err)
}
