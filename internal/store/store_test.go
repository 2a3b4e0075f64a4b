package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"budgetbook/internal/logging"
	"budgetbook/internal/models"
	"budgetbook/internal/operations"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), logging.NewLogrusAdapter("error", "text"))
	require.NoError(t, err)
	return s
}

func TestNewCreatesDirectoryLayout(t *testing.T) {
	base := t.TempDir()
	_, err := New(base, logging.NewLogrusAdapter("error", "text"))
	require.NoError(t, err)

	for _, dir := range []string{walletsDirName, snapshotsDirName, reportsDirName} {
		info, err := os.Stat(filepath.Join(base, dir))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestSaveAndLoadUserRoundTrip(t *testing.T) {
	s := newTestStore(t)
	user := models.NewUser("alice", "hash", "salt")
	require.NoError(t, operations.AddIncome(user.Ledger, decimal.NewFromInt(100), "pay", time.Now()))
	user.Ledger.Limits["food"] = decimal.NewFromInt(50)

	require.NoError(t, s.SaveUser(user))
	assert.True(t, s.UserExists("alice"))

	loaded, err := s.LoadUser("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", loaded.Username)
	assert.Equal(t, "hash", loaded.PasswordHash)
	assert.Equal(t, "salt", loaded.Salt)
	assert.Equal(t, "100", loaded.Ledger.TotalIncome().String())
	assert.Equal(t, "50", loaded.Ledger.Limits["food"].String())
}

func TestLoadUserMissingFile(t *testing.T) {
	s := newTestStore(t)
	_, err := s.LoadUser("nobody")
	assert.Error(t, err)
}

func TestCredentialsScanSkipsBrokenFiles(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveUser(models.NewUser("alice", "hash-a", "salt-a")))
	require.NoError(t, s.SaveUser(models.NewUser("bob", "hash-b", "salt-b")))

	// A leftover empty file from an interrupted run must not block the scan.
	broken := filepath.Join(s.walletsDir(), "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(""), 0600))

	credentials, err := s.Credentials()
	require.NoError(t, err)

	assert.Len(t, credentials, 2)
	assert.Equal(t, "hash-a", credentials["alice"].PasswordHash)
	assert.Equal(t, "salt-b", credentials["bob"].Salt)
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	s := newTestStore(t)

	path, err := s.SaveSnapshot("alice_whole-ledger", `{"operations":[],"limits":{}}`)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path) || path != "")

	contents, err := s.LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, `{"operations":[],"limits":{}}`, contents)
}

func TestLoadSnapshotMissingPath(t *testing.T) {
	s := newTestStore(t)
	_, err := s.LoadSnapshot(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSaveReport(t *testing.T) {
	s := newTestStore(t)

	path, err := s.SaveReport("alice_operations", ".csv", "Id,Amount\n")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Id,Amount\n", string(data))
}
