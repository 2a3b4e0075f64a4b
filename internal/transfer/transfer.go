// Package transfer moves money between two users' ledgers: an expense on the
// sender, an income on the recipient, both under the reserved transfers
// category.
//
// The recipient's file is loaded, mutated and saved with no cross-process
// locking. The store's at-most-one-writer assumption applies: concurrent
// transfers to the same recipient from two processes are an unguarded race.
package transfer

import (
	"fmt"
	"time"

	"budgetbook/internal/logging"
	"budgetbook/internal/models"
	"budgetbook/internal/operations"
	"budgetbook/internal/store"

	"github.com/shopspring/decimal"
)

// Category is the ledger category used for both sides of a transfer.
const Category = "transfers"

// Send records amount as an expense on the sender's ledger and as an income
// on the recipient's, persisting the recipient immediately. Saving the
// sender stays with the caller, who owns the sender's session.
func Send(s *store.Store, log logging.Logger, from *models.User, toUsername string, amount decimal.Decimal) error {
	if from.Username == toUsername {
		return fmt.Errorf("cannot transfer money to yourself")
	}
	recipient, err := s.LoadUser(toUsername)
	if err != nil {
		return fmt.Errorf("could not load recipient %s: %w", toUsername, err)
	}

	now := time.Now()
	if err := operations.AddExpense(from.Ledger, amount, Category, now); err != nil {
		return err
	}
	if err := operations.AddIncome(recipient.Ledger, amount, Category, now); err != nil {
		// The expense was validated with the same amount, so this cannot
		// fire; keep the sender consistent anyway.
		ops := from.Ledger.Operations
		from.Ledger.Operations = ops[:len(ops)-1]
		return err
	}
	if err := s.SaveUser(recipient); err != nil {
		ops := from.Ledger.Operations
		from.Ledger.Operations = ops[:len(ops)-1]
		return fmt.Errorf("could not persist recipient %s: %w", toUsername, err)
	}

	log.Info("transfer completed",
		logging.Field{Key: logging.FieldUser, Value: from.Username},
		logging.Field{Key: "recipient", Value: toUsername},
		logging.Field{Key: logging.FieldAmount, Value: amount.String()})
	return nil
}
