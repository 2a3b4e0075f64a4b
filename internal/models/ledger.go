// Package models defines the core data model of the budgeting application:
// the per-user Ledger, its recorded Operations and the category limit map.
package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OperationKind tags an operation as income or expense.
type OperationKind string

const (
	KindIncome  OperationKind = "income"
	KindExpense OperationKind = "expense"
)

// Operation is one recorded income or expense entry.
// Amount is strictly positive for the whole lifetime of the operation;
// only Category may change after creation (rename/merge).
type Operation struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Kind      OperationKind   `json:"kind"`
	Category  string          `json:"category"`
	Timestamp time.Time       `json:"timestamp"`
}

// IsIncome reports whether the operation is an income entry.
func (o Operation) IsIncome() bool {
	return o.Kind == KindIncome
}

// NewOperation builds an operation with a fresh unique id.
// Ids are opaque UUID strings, assigned once and never reused.
func NewOperation(amount decimal.Decimal, kind OperationKind, category string, timestamp time.Time) Operation {
	return Operation{
		ID:        uuid.NewString(),
		Amount:    amount,
		Kind:      kind,
		Category:  category,
		Timestamp: timestamp,
	}
}

// Ledger is the per-user container of operations and budget limits.
// Operations keeps insertion order (call order, not timestamp order).
// Limits maps an expense category to its non-negative cap; a limit entry
// exists independently of whether any operation carries that category.
type Ledger struct {
	Operations []Operation                `json:"operations"`
	Limits     map[string]decimal.Decimal `json:"limits"`
}

// NewLedger creates an empty ledger for a new user.
func NewLedger() *Ledger {
	return &Ledger{
		Operations: []Operation{},
		Limits:     map[string]decimal.Decimal{},
	}
}

// TotalIncome is the sum of all income operation amounts.
func (l *Ledger) TotalIncome() decimal.Decimal {
	return l.sumByKind(KindIncome)
}

// TotalExpenses is the sum of all expense operation amounts.
func (l *Ledger) TotalExpenses() decimal.Decimal {
	return l.sumByKind(KindExpense)
}

// Balance is TotalIncome minus TotalExpenses, always computed, never stored.
func (l *Ledger) Balance() decimal.Decimal {
	return l.TotalIncome().Sub(l.TotalExpenses())
}

func (l *Ledger) sumByKind(kind OperationKind) decimal.Decimal {
	sum := decimal.Zero
	for _, op := range l.Operations {
		if op.Kind == kind {
			sum = sum.Add(op.Amount)
		}
	}
	return sum
}

// IncomeCategories returns the distinct categories of income operations,
// sorted for deterministic iteration.
func (l *Ledger) IncomeCategories() []string {
	return l.categoriesByKind(KindIncome)
}

// ExpenseCategories returns the distinct categories of expense operations,
// sorted for deterministic iteration.
func (l *Ledger) ExpenseCategories() []string {
	return l.categoriesByKind(KindExpense)
}

func (l *Ledger) categoriesByKind(kind OperationKind) []string {
	seen := map[string]struct{}{}
	for _, op := range l.Operations {
		if op.Kind == kind {
			seen[op.Category] = struct{}{}
		}
	}
	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// LimitCategories returns the limit map keys sorted for deterministic
// iteration.
func (l *Ledger) LimitCategories() []string {
	categories := make([]string, 0, len(l.Limits))
	for category := range l.Limits {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// IncomeOperations returns the income operations in insertion order.
func (l *Ledger) IncomeOperations() []Operation {
	return l.operationsByKind(KindIncome)
}

// ExpenseOperations returns the expense operations in insertion order.
func (l *Ledger) ExpenseOperations() []Operation {
	return l.operationsByKind(KindExpense)
}

func (l *Ledger) operationsByKind(kind OperationKind) []Operation {
	ops := make([]Operation, 0, len(l.Operations))
	for _, op := range l.Operations {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}
