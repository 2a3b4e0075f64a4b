// Package notifications derives human-readable warnings from a ledger.
// Building notifications never mutates state and never fails: an empty
// string is the normal outcome when no condition fires.
package notifications

import (
	"fmt"
	"strings"

	"budgetbook/internal/models"
	"budgetbook/internal/operations"

	"github.com/shopspring/decimal"
)

var hundredPercent = decimal.NewFromInt(100)

// Thresholds holds the tunable cut-off points of the notification rules.
type Thresholds struct {
	RatioCritical  decimal.Decimal
	RatioComfort   decimal.Decimal
	RatioHigh      decimal.Decimal
	RatioWarn      decimal.Decimal
	ShareExpense   decimal.Decimal
	ShareIncome    decimal.Decimal
	ShareNearLimit decimal.Decimal
}

// DefaultThresholds returns the built-in cut-off points.
func DefaultThresholds() Thresholds {
	return Thresholds{
		RatioCritical:  decimal.RequireFromString("1.20"),
		RatioComfort:   decimal.RequireFromString("1.50"),
		RatioHigh:      decimal.RequireFromString("0.80"),
		RatioWarn:      decimal.RequireFromString("0.70"),
		ShareExpense:   decimal.RequireFromString("0.35"),
		ShareIncome:    decimal.RequireFromString("0.40"),
		ShareNearLimit: decimal.RequireFromString("0.20"),
	}
}

// Build renders the notification block with the default thresholds.
func Build(ledger *models.Ledger) string {
	return DefaultThresholds().Build(ledger)
}

// Build concatenates the balance-health, category-importance and
// budget-consumption blocks and wraps them in a notifications header.
// Returns the empty string when nothing fires.
func (t Thresholds) Build(ledger *models.Ledger) string {
	var b strings.Builder
	b.WriteString(t.balanceHealth(ledger))
	b.WriteString(t.categoryImportance(ledger))
	b.WriteString(t.budgetConsumption(ledger))
	if b.Len() == 0 {
		return ""
	}
	return "------ Notifications. Pay attention: ------\n" + b.String()
}

// balanceHealth emits at most one line; the rules are mutually exclusive and
// checked in priority order.
func (t Thresholds) balanceHealth(ledger *models.Ledger) string {
	income := ledger.TotalIncome()
	expenses := ledger.TotalExpenses()
	balance := ledger.Balance()
	bothExist := income.IsPositive() && expenses.IsPositive()

	switch {
	case len(ledger.Operations) == 0:
		return "- Nothing is recorded yet. Your balance is zero.\n"
	case bothExist && expenses.GreaterThanOrEqual(income.Mul(t.RatioCritical)):
		factor := expenses.Div(income)
		return fmt.Sprintf("- Your expenses significantly exceed your income: by a factor of %s.\n", factor.StringFixed(2))
	case balance.IsNegative():
		return "- Your expenses exceeded your income. Your balance is negative.\n"
	case balance.Round(0).IsZero():
		return "- Your expenses reached your income. Your balance is zero.\n"
	case expenses.GreaterThanOrEqual(income.Mul(t.RatioHigh)):
		return fmt.Sprintf("- Your expenses passed the %s%% mark of your income.\n", t.RatioHigh.Mul(hundredPercent).StringFixed(0))
	case expenses.GreaterThanOrEqual(income.Mul(t.RatioWarn)):
		return fmt.Sprintf("- Your expenses passed the %s%% mark of your income.\n", t.RatioWarn.Mul(hundredPercent).StringFixed(0))
	case bothExist && income.GreaterThanOrEqual(expenses.Mul(t.RatioComfort)):
		return "- Your income significantly exceeds your expenses. Keep it up.\n"
	}
	return ""
}

// categoryImportance emits one line per category whose share of the matching
// total crosses the importance threshold (35% for expenses, 40% for income
// with the default thresholds).
func (t Thresholds) categoryImportance(ledger *models.Ledger) string {
	var b strings.Builder
	totalExpenses := ledger.TotalExpenses()
	totalIncome := ledger.TotalIncome()

	if totalExpenses.IsPositive() {
		for _, category := range ledger.ExpenseCategories() {
			spent := operations.ExpensesByCategory(ledger, category)
			if spent.GreaterThanOrEqual(totalExpenses.Mul(t.ShareExpense)) {
				share := spent.Div(totalExpenses).Mul(hundredPercent)
				fmt.Fprintf(&b, "- Expense category \"%s\" weighs heavily on your total expenses: it makes up %s%% of them.\n",
					category, share.StringFixed(1))
			}
		}
	}
	if totalIncome.IsPositive() {
		for _, category := range ledger.IncomeCategories() {
			earned := operations.IncomeByCategory(ledger, category)
			if earned.GreaterThanOrEqual(totalIncome.Mul(t.ShareIncome)) {
				share := earned.Div(totalIncome).Mul(hundredPercent)
				fmt.Fprintf(&b, "- Income category \"%s\" weighs heavily on your total income: it makes up %s%% of it.\n",
					category, share.StringFixed(1))
			}
		}
	}
	return b.String()
}

// budgetConsumption walks the limited categories in sorted order. Categories
// whose limit rounds to zero are collected and reported once as a combined
// blocked-categories line after the per-category warnings.
func (t Thresholds) budgetConsumption(ledger *models.Ledger) string {
	var b strings.Builder
	var blocked []string

	for _, category := range ledger.LimitCategories() {
		limit := ledger.Limits[category]
		spent := operations.ExpensesByCategory(ledger, category)
		remainder := limit.Sub(spent)

		if limit.Round(0).IsZero() {
			blocked = append(blocked, category)
		}

		switch {
		case remainder.IsNegative():
			fmt.Fprintf(&b, "- You went over the budget for category \"%s\" (spent: %s, limit: %s, overage: %s).\n",
				category, spent.StringFixed(1), limit.StringFixed(1), remainder.Abs().StringFixed(1))
		case remainder.Round(0).IsZero() && !limit.Round(0).IsZero():
			fmt.Fprintf(&b, "- You used up the budget for category \"%s\" (spent: %s, limit: %s). Its remainder is zero.\n",
				category, spent.StringFixed(1), limit.StringFixed(1))
		case spent.IsPositive() && remainder.LessThanOrEqual(limit.Mul(t.ShareNearLimit)):
			consumed := spent.Div(limit).Mul(hundredPercent)
			fmt.Fprintf(&b, "- You are running out of budget for category \"%s\" (spent: %s, limit: %s, %s%% of the limit consumed).\n",
				category, spent.StringFixed(1), limit.StringFixed(1), consumed.StringFixed(1))
		}
	}
	if len(blocked) > 0 {
		fmt.Fprintf(&b, "- Spending is fully blocked for these zero-limit categories: %s.\n", strings.Join(blocked, ", "))
	}
	return b.String()
}
