package transfer

import (
	"testing"

	"budgetbook/internal/logging"
	"budgetbook/internal/models"
	"budgetbook/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func setup(t *testing.T) (*store.Store, logging.Logger, *models.User) {
	t.Helper()
	log := logging.NewLogrusAdapter("error", "text")
	s, err := store.New(t.TempDir(), log)
	require.NoError(t, err)

	recipient := models.NewUser("bob", "hash", "salt")
	require.NoError(t, s.SaveUser(recipient))

	sender := models.NewUser("alice", "hash", "salt")
	return s, log, sender
}

func TestSendRecordsBothSides(t *testing.T) {
	s, log, sender := setup(t)

	require.NoError(t, Send(s, log, sender, "bob", dec("250")))

	// Sender side: an expense under the transfers category, not yet saved.
	assert.Equal(t, "250", sender.Ledger.TotalExpenses().String())
	assert.Equal(t, []string{Category}, sender.Ledger.ExpenseCategories())

	// Recipient side: income persisted immediately.
	recipient, err := s.LoadUser("bob")
	require.NoError(t, err)
	assert.Equal(t, "250", recipient.Ledger.TotalIncome().String())
	assert.Equal(t, []string{Category}, recipient.Ledger.IncomeCategories())
}

func TestSendRejectsInvalidAmount(t *testing.T) {
	s, log, sender := setup(t)

	err := Send(s, log, sender, "bob", dec("-10"))

	assert.Error(t, err)
	assert.Empty(t, sender.Ledger.Operations)
	recipient, loadErr := s.LoadUser("bob")
	require.NoError(t, loadErr)
	assert.Empty(t, recipient.Ledger.Operations)
}

func TestSendToMissingUserFails(t *testing.T) {
	s, log, sender := setup(t)

	err := Send(s, log, sender, "ghost", dec("10"))

	assert.Error(t, err)
	assert.Empty(t, sender.Ledger.Operations)
}

func TestSendToSelfFails(t *testing.T) {
	s, log, sender := setup(t)
	assert.Error(t, Send(s, log, sender, "alice", dec("10")))
}
