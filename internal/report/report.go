// Package report renders read-only summaries of a ledger for display or for
// saving to the reports directory.
package report

import (
	"fmt"
	"strings"

	"budgetbook/internal/budgeting"
	"budgetbook/internal/models"
	"budgetbook/internal/operations"
)

// BalanceSummary renders the income/expense balance line.
func BalanceSummary(ledger *models.Ledger) string {
	return fmt.Sprintf("Balance of income and expenses: %s\n", ledger.Balance().StringFixed(3))
}

// IncomeSummary renders the total income and the per-category breakdown.
func IncomeSummary(ledger *models.Ledger) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total income: %s\n", ledger.TotalIncome().StringFixed(3))
	b.WriteString("Income by category:\n")
	for _, category := range ledger.IncomeCategories() {
		fmt.Fprintf(&b, "\t%s: %s\n", category, operations.IncomeByCategory(ledger, category).StringFixed(3))
	}
	return b.String()
}

// ExpenseSummary renders the total expenses and the per-category breakdown.
func ExpenseSummary(ledger *models.Ledger) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total expenses: %s\n", ledger.TotalExpenses().StringFixed(3))
	b.WriteString("Expenses by category:\n")
	for _, category := range ledger.ExpenseCategories() {
		fmt.Fprintf(&b, "\t%s: %s\n", category, operations.ExpensesByCategory(ledger, category).StringFixed(3))
	}
	return b.String()
}

// BudgetsSummary renders limit, spent and remainder per limited category.
func BudgetsSummary(ledger *models.Ledger) string {
	var b strings.Builder
	b.WriteString("Budget limits by category:\n")
	for _, category := range ledger.LimitCategories() {
		limit := ledger.Limits[category]
		spent := operations.ExpensesByCategory(ledger, category)
		remainder, err := budgeting.GetRemainder(ledger, category)
		if err != nil {
			// The category came from the limits map, so the limit exists.
			continue
		}
		fmt.Fprintf(&b, "\t%s: limit %s, spent %s, remainder %s\n",
			category, limit.StringFixed(3), spent.StringFixed(3), remainder.StringFixed(3))
	}
	return b.String()
}

// OperationList renders an operation list one line per entry, insertion
// order preserved.
func OperationList(ops []models.Operation) string {
	var b strings.Builder
	for _, op := range ops {
		fmt.Fprintf(&b, "%s  %-7s  %s  %s  (id %s)\n",
			op.Timestamp.Format("2006-01-02 15:04"), op.Kind, op.Amount.StringFixed(2), op.Category, op.ID)
	}
	return b.String()
}
