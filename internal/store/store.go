// Package store provides functionality for storing and retrieving
// application data: per-user wallet files, exported snapshots and saved
// analytics reports, all under one base data directory.
//
// The store assumes at most one writer per user file at a time. Nothing here
// locks files: two processes transferring money to the same recipient
// concurrently can lose one of the writes.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"budgetbook/internal/logging"
	"budgetbook/internal/models"
)

const (
	walletsDirName     = "userdata_wallets"
	snapshotsDirName   = "userdata_snapshots"
	reportsDirName     = "analytics_reports"
	dataFileExt        = ".json"
	thresholdsFileName = "notification_thresholds.yaml"
)

// Credential is the authentication material read back from a user file.
type Credential struct {
	PasswordHash string
	Salt         string
}

// Store manages the on-disk layout of application data.
type Store struct {
	baseDir string
	log     logging.Logger
}

// New creates a store rooted at baseDir and ensures the directory layout
// exists.
func New(baseDir string, log logging.Logger) (*Store, error) {
	s := &Store{baseDir: baseDir, log: log}
	for _, dir := range []string{baseDir, s.walletsDir(), s.snapshotsDir(), s.reportsDir()} {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("could not create data directory %s: %w", dir, err)
		}
	}
	return s, nil
}

func (s *Store) walletsDir() string   { return filepath.Join(s.baseDir, walletsDirName) }
func (s *Store) snapshotsDir() string { return filepath.Join(s.baseDir, snapshotsDirName) }
func (s *Store) reportsDir() string   { return filepath.Join(s.baseDir, reportsDirName) }

// ThresholdsFile returns the path of the optional notification thresholds
// override file. The file is user-maintained; the store never writes it.
func (s *Store) ThresholdsFile() string {
	return filepath.Join(s.baseDir, thresholdsFileName)
}

// UserFile returns the path of the wallet file for a username.
func (s *Store) UserFile(username string) string {
	return filepath.Join(s.walletsDir(), username+dataFileExt)
}

// UserExists reports whether a wallet file exists for the username.
func (s *Store) UserExists(username string) bool {
	_, err := os.Stat(s.UserFile(username))
	return err == nil
}

// SaveUser writes the user record, ledger included, to its wallet file.
func (s *Store) SaveUser(user *models.User) error {
	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("could not serialize data for user %s: %w", user.Username, err)
	}
	path := s.UserFile(user.Username)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("could not save data for user %s: %w", user.Username, err)
	}
	s.log.Debug("saved user data", logging.Field{Key: logging.FieldUser, Value: user.Username},
		logging.Field{Key: logging.FieldFile, Value: path})
	return nil
}

// LoadUser reads a user record back from its wallet file.
func (s *Store) LoadUser(username string) (*models.User, error) {
	data, err := os.ReadFile(s.UserFile(username))
	if err != nil {
		return nil, fmt.Errorf("could not read data for user %s: %w", username, err)
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("could not parse data for user %s: %w", username, err)
	}
	if user.Ledger == nil {
		user.Ledger = models.NewLedger()
	}
	if user.Ledger.Limits == nil {
		user.Ledger.Limits = models.NewLedger().Limits
	}
	return &user, nil
}

// Credentials scans the wallet files and returns the authentication
// material per username. Unparseable files are skipped with a warning; they
// can be left behind by an interrupted run and should not block everyone
// else from logging in.
func (s *Store) Credentials() (map[string]Credential, error) {
	entries, err := os.ReadDir(s.walletsDir())
	if err != nil {
		return nil, fmt.Errorf("could not read the wallets directory: %w", err)
	}

	credentials := map[string]Credential{}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != dataFileExt {
			continue
		}
		path := filepath.Join(s.walletsDir(), entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read user file %s: %w", path, err)
		}
		var probe struct {
			Username     string `json:"username"`
			PasswordHash string `json:"password"`
			Salt         string `json:"salt"`
		}
		if err := json.Unmarshal(data, &probe); err != nil || probe.Username == "" {
			s.log.Warn("skipping unparseable user file, it may be a leftover of an interrupted run",
				logging.Field{Key: logging.FieldFile, Value: path})
			continue
		}
		credentials[probe.Username] = Credential{PasswordHash: probe.PasswordHash, Salt: probe.Salt}
	}
	return credentials, nil
}

// SaveSnapshot writes snapshot contents under the snapshots directory and
// returns the written path.
func (s *Store) SaveSnapshot(name, contents string) (string, error) {
	path := filepath.Join(s.snapshotsDir(), name+dataFileExt)
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		return "", fmt.Errorf("could not save snapshot to %s: %w", path, err)
	}
	s.log.Info("snapshot saved", logging.Field{Key: logging.FieldFile, Value: path})
	return path, nil
}

// LoadSnapshot reads snapshot contents from an arbitrary path.
func (s *Store) LoadSnapshot(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read snapshot file %s: %w", path, err)
	}
	return string(data), nil
}

// SaveReport writes a report file under the reports directory and returns
// the written path. The extension must include the leading dot.
func (s *Store) SaveReport(name, extension, contents string) (string, error) {
	path := filepath.Join(s.reportsDir(), name+extension)
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		return "", fmt.Errorf("could not save report to %s: %w", path, err)
	}
	s.log.Info("report saved", logging.Field{Key: logging.FieldFile, Value: path})
	return path, nil
}
