// Package budgeting implements the budgeting service: CRUD on per-category
// spending limits and derived remainder figures.
package budgeting

import (
	"budgetbook/internal/ledgererr"
	"budgetbook/internal/models"
	"budgetbook/internal/operations"

	"github.com/shopspring/decimal"
)

// HasLimit reports whether a limit entry exists for the category.
func HasLimit(ledger *models.Ledger, category string) bool {
	_, ok := ledger.Limits[category]
	return ok
}

// AddLimit inserts or overwrites the limit for a category. Overwriting an
// existing entry is allowed; callers that care must check HasLimit first.
func AddLimit(ledger *models.Ledger, category string, limit decimal.Decimal) error {
	if limit.IsNegative() {
		return &ledgererr.InvalidLimitError{Category: category, Limit: limit}
	}
	ledger.Limits[category] = limit
	return nil
}

// RemoveLimit deletes the limit entry for a category.
func RemoveLimit(ledger *models.Ledger, category string) error {
	if !HasLimit(ledger, category) {
		return &ledgererr.LimitNotFoundError{Category: category}
	}
	delete(ledger.Limits, category)
	return nil
}

// ChangeLimit replaces the limit value of an existing entry.
func ChangeLimit(ledger *models.Ledger, category string, newLimit decimal.Decimal) error {
	if !HasLimit(ledger, category) {
		return &ledgererr.LimitNotFoundError{Category: category}
	}
	if newLimit.IsNegative() {
		return &ledgererr.InvalidLimitError{Category: category, Limit: newLimit}
	}
	ledger.Limits[category] = newLimit
	return nil
}

// GetLimit returns the limit for a category.
func GetLimit(ledger *models.Ledger, category string) (decimal.Decimal, error) {
	limit, ok := ledger.Limits[category]
	if !ok {
		return decimal.Zero, &ledgererr.LimitNotFoundError{Category: category}
	}
	return limit, nil
}

// GetLimits sums the limits of the named categories. In strict mode the
// first missing category aborts the accumulation with a not-found error;
// otherwise missing categories silently contribute zero.
func GetLimits(ledger *models.Ledger, strict bool, categories ...string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, category := range categories {
		limit, err := GetLimit(ledger, category)
		if err != nil {
			if strict {
				return decimal.Zero, err
			}
			continue
		}
		sum = sum.Add(limit)
	}
	return sum, nil
}

// GetRemainder returns limit minus spent for a category. Spending without a
// limit is not an error condition; the remainder is simply inexpressible
// without a limit entry.
func GetRemainder(ledger *models.Ledger, category string) (decimal.Decimal, error) {
	limit, err := GetLimit(ledger, category)
	if err != nil {
		return decimal.Zero, err
	}
	spent := operations.ExpensesByCategory(ledger, category)
	return limit.Sub(spent), nil
}

// GetRemainders sums the remainders of the named categories with the same
// strict/non-strict policy as GetLimits.
func GetRemainders(ledger *models.Ledger, strict bool, categories ...string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, category := range categories {
		remainder, err := GetRemainder(ledger, category)
		if err != nil {
			if strict {
				return decimal.Zero, err
			}
			continue
		}
		sum = sum.Add(remainder)
	}
	return sum, nil
}
