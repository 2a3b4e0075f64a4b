package operations

import (
	"testing"
	"time"

	"budgetbook/internal/ledgererr"
	"budgetbook/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAddIncomeThenQueryByCategory(t *testing.T) {
	ledger := models.NewLedger()

	require.NoError(t, AddIncome(ledger, dec("150.25"), "pay", time.Now()))
	assert.Equal(t, "150.25", IncomeByCategory(ledger, "pay").String())

	// Repeating the add doubles the sum.
	require.NoError(t, AddIncome(ledger, dec("150.25"), "pay", time.Now()))
	assert.Equal(t, "300.5", IncomeByCategory(ledger, "pay").String())
}

func TestAddRejectsNonPositiveAmounts(t *testing.T) {
	ledger := models.NewLedger()

	tests := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"zero", decimal.Zero},
		{"negative", dec("-5")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AddExpense(ledger, tt.amount, "food", time.Now())
			var invalid *ledgererr.InvalidAmountError
			assert.ErrorAs(t, err, &invalid)
			assert.Empty(t, ledger.Operations)
		})
	}
}

func TestBalanceHoldsAfterAddAndRemove(t *testing.T) {
	ledger := models.NewLedger()
	require.NoError(t, AddIncome(ledger, dec("1000"), "pay", time.Now()))
	require.NoError(t, AddExpense(ledger, dec("300"), "food", time.Now()))
	require.NoError(t, AddExpense(ledger, dec("200"), "transport", time.Now()))

	assert.Equal(t, "500", ledger.Balance().String())
	assert.True(t, ledger.Balance().Equal(ledger.TotalIncome().Sub(ledger.TotalExpenses())))

	RemoveByID(ledger, ledger.Operations[1].ID)
	assert.Equal(t, "800", ledger.Balance().String())
	assert.True(t, ledger.Balance().Equal(ledger.TotalIncome().Sub(ledger.TotalExpenses())))
}

func TestRemoveByID(t *testing.T) {
	ledger := models.NewLedger()
	require.NoError(t, AddIncome(ledger, dec("10"), "pay", time.Now()))
	id := ledger.Operations[0].ID

	assert.True(t, RemoveByID(ledger, id))
	assert.Empty(t, ledger.Operations)

	// Second removal reports false and mutates nothing.
	assert.False(t, RemoveByID(ledger, id))
	assert.Empty(t, ledger.Operations)
}

func TestRemoveByIDMissingIsNotAnError(t *testing.T) {
	ledger := models.NewLedger()
	assert.False(t, RemoveByID(ledger, "no-such-id"))
}

func TestRenameCategoryMovesExpenseLimit(t *testing.T) {
	ledger := models.NewLedger()
	require.NoError(t, AddExpense(ledger, dec("40"), "cafe", time.Now()))
	require.NoError(t, AddIncome(ledger, dec("40"), "cafe", time.Now()))
	ledger.Limits["cafe"] = dec("500")

	RenameCategory(ledger, "cafe", "restaurants", models.KindExpense)

	assert.Equal(t, "restaurants", ledger.Operations[0].Category)
	// The income operation with the same category name is untouched.
	assert.Equal(t, "cafe", ledger.Operations[1].Category)
	assert.NotContains(t, ledger.Limits, "cafe")
	assert.Equal(t, "500", ledger.Limits["restaurants"].String())
}

func TestRenameIncomeCategoryIgnoresLimits(t *testing.T) {
	ledger := models.NewLedger()
	require.NoError(t, AddIncome(ledger, dec("40"), "sidejob", time.Now()))
	ledger.Limits["sidejob"] = dec("500")

	RenameCategory(ledger, "sidejob", "freelance", models.KindIncome)

	assert.Equal(t, "freelance", ledger.Operations[0].Category)
	assert.Equal(t, "500", ledger.Limits["sidejob"].String())
}

func TestMergeExpenseCategoriesCombinesLimits(t *testing.T) {
	ledger := models.NewLedger()
	require.NoError(t, AddExpense(ledger, dec("100"), "a", time.Now()))
	require.NoError(t, AddExpense(ledger, dec("50"), "b", time.Now()))
	ledger.Limits["a"] = dec("500")
	ledger.Limits["b"] = dec("300")

	MergeExpenseCategories(ledger, "food", "a", "b")

	assert.Equal(t, "800", ledger.Limits["food"].String())
	assert.NotContains(t, ledger.Limits, "a")
	assert.NotContains(t, ledger.Limits, "b")
	assert.Equal(t, "150", ExpensesByCategory(ledger, "food").String())
}

func TestMergeExpenseCategoriesWithoutLimitsYieldsZeroLimit(t *testing.T) {
	ledger := models.NewLedger()
	require.NoError(t, AddExpense(ledger, dec("10"), "a", time.Now()))

	MergeExpenseCategories(ledger, "misc", "a", "b")

	// A combined (zero-valued) limit is always produced.
	limit, ok := ledger.Limits["misc"]
	require.True(t, ok)
	assert.True(t, limit.IsZero())
}

func TestMergeExpenseCategoriesLeavesIncomeAlone(t *testing.T) {
	ledger := models.NewLedger()
	require.NoError(t, AddIncome(ledger, dec("10"), "a", time.Now()))
	require.NoError(t, AddExpense(ledger, dec("20"), "a", time.Now()))

	MergeExpenseCategories(ledger, "merged", "a")

	assert.Equal(t, "a", ledger.Operations[0].Category)
	assert.Equal(t, "merged", ledger.Operations[1].Category)
}

func TestMergeIncomeCategories(t *testing.T) {
	ledger := models.NewLedger()
	require.NoError(t, AddIncome(ledger, dec("10"), "sidejob", time.Now()))
	require.NoError(t, AddIncome(ledger, dec("20"), "consulting", time.Now()))

	MergeIncomeCategories(ledger, "freelance", "sidejob", "consulting")

	assert.Equal(t, "30", IncomeByCategory(ledger, "freelance").String())
	assert.Empty(t, ledger.Limits)
}

func TestSumsByCategoriesUnion(t *testing.T) {
	ledger := models.NewLedger()
	require.NoError(t, AddExpense(ledger, dec("10"), "a", time.Now()))
	require.NoError(t, AddExpense(ledger, dec("20"), "b", time.Now()))

	// Missing categories contribute zero; repeats are a union of sums.
	assert.Equal(t, "30", ExpensesByCategories(ledger, "a", "b", "missing").String())
	assert.True(t, ExpensesByCategory(ledger, "missing").IsZero())
	assert.True(t, IncomeByCategories(ledger, "a").IsZero())
}

func TestSumByKind(t *testing.T) {
	ops := []models.Operation{
		models.NewOperation(dec("10"), models.KindIncome, "pay", time.Now()),
		models.NewOperation(dec("5"), models.KindExpense, "food", time.Now()),
		models.NewOperation(dec("7"), models.KindExpense, "food", time.Now()),
	}

	assert.Equal(t, "10", SumByKind(ops, models.KindIncome).String())
	assert.Equal(t, "12", SumByKind(ops, models.KindExpense).String())
}
