package models

// User ties a ledger to an account. Splitting the user from the ledger keeps
// authorization concerns out of the budgeting services: domain code only ever
// sees the Ledger.
type User struct {
	Username     string  `json:"username"`
	PasswordHash string  `json:"password"`
	Salt         string  `json:"salt"`
	Ledger       *Ledger `json:"wallet"`
}

// NewUser creates a user with an empty ledger. The hash and salt come from
// the auth package at registration time.
func NewUser(username, passwordHash, salt string) *User {
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		Salt:         salt,
		Ledger:       NewLedger(),
	}
}
