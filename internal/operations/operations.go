// Package operations implements the operation service: mutation and query of
// the ledger's recorded income and expense entries.
package operations

import (
	"time"

	"budgetbook/internal/ledgererr"
	"budgetbook/internal/models"

	"github.com/shopspring/decimal"
)

// AddIncome appends a new income operation. The amount must be strictly
// positive.
func AddIncome(ledger *models.Ledger, amount decimal.Decimal, category string, timestamp time.Time) error {
	return add(ledger, amount, models.KindIncome, category, timestamp)
}

// AddExpense appends a new expense operation. The amount must be strictly
// positive.
func AddExpense(ledger *models.Ledger, amount decimal.Decimal, category string, timestamp time.Time) error {
	return add(ledger, amount, models.KindExpense, category, timestamp)
}

func add(ledger *models.Ledger, amount decimal.Decimal, kind models.OperationKind, category string, timestamp time.Time) error {
	if !amount.IsPositive() {
		return &ledgererr.InvalidAmountError{Amount: amount}
	}
	ledger.Operations = append(ledger.Operations, models.NewOperation(amount, kind, category, timestamp))
	return nil
}

// RemoveByID removes the first operation with the given id and reports
// whether a removal happened. A missing id is a normal outcome, not an error.
func RemoveByID(ledger *models.Ledger, id string) bool {
	for i, op := range ledger.Operations {
		if op.ID == id {
			ledger.Operations = append(ledger.Operations[:i], ledger.Operations[i+1:]...)
			return true
		}
	}
	return false
}

// RenameCategory sets the category of every operation of the given kind whose
// category equals oldCategory. For expenses, an existing limit entry moves to
// the new key with its value unchanged. Collisions with an existing newName
// are not checked here: merge semantics rely on them being allowed, so
// callers wanting uniqueness must pre-check.
func RenameCategory(ledger *models.Ledger, oldCategory, newName string, kind models.OperationKind) {
	if kind == models.KindExpense {
		if limit, ok := ledger.Limits[oldCategory]; ok {
			delete(ledger.Limits, oldCategory)
			ledger.Limits[newName] = limit
		}
	}
	for i := range ledger.Operations {
		if ledger.Operations[i].Kind == kind && ledger.Operations[i].Category == oldCategory {
			ledger.Operations[i].Category = newName
		}
	}
}

// MergeExpenseCategories folds several expense categories into one. Limits of
// the old categories are summed (categories without a limit contribute zero)
// and re-inserted under newName, even when the sum is zero; then every
// expense operation carrying an old category is rewritten to newName.
// The limit bookkeeping runs before the operation rewrite so the old keys
// are still visible when summed.
func MergeExpenseCategories(ledger *models.Ledger, newName string, oldCategories ...string) {
	combined := decimal.Zero
	for _, category := range oldCategories {
		if limit, ok := ledger.Limits[category]; ok {
			combined = combined.Add(limit)
		}
	}
	for _, category := range oldCategories {
		delete(ledger.Limits, category)
	}
	ledger.Limits[newName] = combined

	for i := range ledger.Operations {
		if ledger.Operations[i].Kind != models.KindExpense {
			continue
		}
		for _, category := range oldCategories {
			if ledger.Operations[i].Category == category {
				ledger.Operations[i].Category = newName
			}
		}
	}
}

// MergeIncomeCategories folds several income categories into one. Income has
// no limit concept, so this is a plain rename per old category.
func MergeIncomeCategories(ledger *models.Ledger, newName string, oldCategories ...string) {
	for _, category := range oldCategories {
		RenameCategory(ledger, category, newName, models.KindIncome)
	}
}

// IncomeByCategory sums income amounts for one category; zero when nothing
// matches.
func IncomeByCategory(ledger *models.Ledger, category string) decimal.Decimal {
	return amountByCategory(ledger, models.KindIncome, category)
}

// ExpensesByCategory sums expense amounts for one category; zero when nothing
// matches.
func ExpensesByCategory(ledger *models.Ledger, category string) decimal.Decimal {
	return amountByCategory(ledger, models.KindExpense, category)
}

func amountByCategory(ledger *models.Ledger, kind models.OperationKind, category string) decimal.Decimal {
	sum := decimal.Zero
	for _, op := range ledger.Operations {
		if op.Kind == kind && op.Category == category {
			sum = sum.Add(op.Amount)
		}
	}
	return sum
}

// IncomeByCategories sums income across the union of the named categories.
// Missing categories contribute zero.
func IncomeByCategories(ledger *models.Ledger, categories ...string) decimal.Decimal {
	sum := decimal.Zero
	for _, category := range categories {
		sum = sum.Add(IncomeByCategory(ledger, category))
	}
	return sum
}

// ExpensesByCategories sums expenses across the union of the named
// categories. Missing categories contribute zero.
func ExpensesByCategories(ledger *models.Ledger, categories ...string) decimal.Decimal {
	sum := decimal.Zero
	for _, category := range categories {
		sum = sum.Add(ExpensesByCategory(ledger, category))
	}
	return sum
}

// SumByKind sums the amounts of the given kind within an already-filtered
// operation list. It is a reusable aggregation primitive, not tied to a
// ledger.
func SumByKind(ops []models.Operation, kind models.OperationKind) decimal.Decimal {
	sum := decimal.Zero
	for _, op := range ops {
		if op.Kind == kind {
			sum = sum.Add(op.Amount)
		}
	}
	return sum
}
