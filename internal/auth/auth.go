// Package auth implements registration and login against the wallet store.
// The loaded credential set lives on the Authenticator value owned by the
// session, not in package state, so multiple authenticators (and tests) can
// coexist in one process.
package auth

import (
	"regexp"
	"strings"

	"budgetbook/internal/ledgererr"
	"budgetbook/internal/logging"
	"budgetbook/internal/models"
	"budgetbook/internal/store"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// Authenticator validates credentials against the users known to a store.
type Authenticator struct {
	store       *store.Store
	credentials map[string]store.Credential
	log         logging.Logger
}

// New loads the registered credentials from the store.
func New(s *store.Store, log logging.Logger) (*Authenticator, error) {
	credentials, err := s.Credentials()
	if err != nil {
		return nil, err
	}
	log.Debug("loaded registered credentials", logging.Field{Key: logging.FieldCount, Value: len(credentials)})
	return &Authenticator{store: s, credentials: credentials, log: log}, nil
}

// UserExists reports whether a username is registered.
func (a *Authenticator) UserExists(username string) bool {
	_, ok := a.credentials[username]
	return ok
}

// Register validates the new credentials, creates the user with an empty
// ledger and persists it. Usernames are limited to latin letters and digits;
// passwords must be non-blank and free of spaces.
func (a *Authenticator) Register(username, password string) (*models.User, error) {
	if strings.TrimSpace(username) == "" || !usernamePattern.MatchString(username) {
		return nil, &ledgererr.InvalidCredentialsError{
			Reason: "username must be at least one character, latin letters and digits only, no spaces",
		}
	}
	if a.UserExists(username) {
		return nil, &ledgererr.InvalidCredentialsError{Reason: "user '" + username + "' already exists"}
	}
	if strings.TrimSpace(password) == "" || strings.Contains(password, " ") {
		return nil, &ledgererr.InvalidCredentialsError{
			Reason: "password must be at least one character and contain no spaces",
		}
	}

	salt, err := MakeSalt()
	if err != nil {
		return nil, err
	}
	hash, err := HashPassword(password, salt)
	if err != nil {
		return nil, err
	}

	user := models.NewUser(username, hash, salt)
	if err := a.store.SaveUser(user); err != nil {
		return nil, err
	}
	a.credentials[username] = store.Credential{PasswordHash: hash, Salt: salt}
	a.log.Info("registered new user", logging.Field{Key: logging.FieldUser, Value: username})
	return user, nil
}

// Login verifies the password and loads the user's data from the store.
func (a *Authenticator) Login(username, password string) (*models.User, error) {
	credential, ok := a.credentials[username]
	if !ok {
		return nil, &ledgererr.InvalidCredentialsError{Reason: "user '" + username + "' does not exist"}
	}
	match, err := verifyPassword(password, credential.Salt, credential.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, &ledgererr.InvalidCredentialsError{Reason: "wrong password for user '" + username + "'"}
	}
	user, err := a.store.LoadUser(username)
	if err != nil {
		return nil, err
	}
	a.log.Info("user logged in", logging.Field{Key: logging.FieldUser, Value: username})
	return user, nil
}
