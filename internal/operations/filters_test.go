package operations

import (
	"testing"
	"time"

	"budgetbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerWithTimestamps(t *testing.T) *models.Ledger {
	t.Helper()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ledger := models.NewLedger()
	require.NoError(t, AddIncome(ledger, dec("100"), "pay", base))
	require.NoError(t, AddExpense(ledger, dec("10"), "food", base.Add(24*time.Hour)))
	require.NoError(t, AddExpense(ledger, dec("20"), "transport", base.Add(48*time.Hour)))
	require.NoError(t, AddExpense(ledger, dec("30"), "food", base.Add(72*time.Hour)))
	return ledger
}

func TestFilterByPeriodIsExclusiveOnBothEnds(t *testing.T) {
	ledger := ledgerWithTimestamps(t)
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(72 * time.Hour)

	matched := FilterByPeriod(ledger, start, end)

	// Operations exactly at start and end are excluded.
	require.Len(t, matched, 2)
	assert.Equal(t, "food", matched[0].Category)
	assert.Equal(t, "transport", matched[1].Category)
}

func TestFilterByPeriodIgnoresKindAndCategory(t *testing.T) {
	ledger := ledgerWithTimestamps(t)
	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	assert.Len(t, FilterByPeriod(ledger, start, end), 4)
}

func TestFilterByCategoriesConcatenatesInRequestOrder(t *testing.T) {
	ledger := ledgerWithTimestamps(t)

	matched := FilterByCategories(ledger, models.KindExpense, "transport", "food")

	require.Len(t, matched, 3)
	assert.Equal(t, "transport", matched[0].Category)
	assert.Equal(t, "food", matched[1].Category)
	assert.Equal(t, "food", matched[2].Category)
	// Within one requested category, insertion order is preserved.
	assert.Equal(t, "10", matched[1].Amount.String())
	assert.Equal(t, "30", matched[2].Amount.String())
}

func TestFilterByKindAndPeriod(t *testing.T) {
	ledger := ledgerWithTimestamps(t)
	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	income := FilterByKindAndPeriod(ledger, models.KindIncome, start, end)
	require.Len(t, income, 1)
	assert.Equal(t, "pay", income[0].Category)

	expenses := FilterByKindAndPeriod(ledger, models.KindExpense, start, end)
	assert.Len(t, expenses, 3)
}

func TestFilterByKindAndPeriodAndCategory(t *testing.T) {
	ledger := ledgerWithTimestamps(t)
	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	matched := FilterByKindAndPeriodAndCategory(ledger, models.KindExpense, start, end, "food")

	require.Len(t, matched, 2)
	assert.Equal(t, "40", SumByKind(matched, models.KindExpense).String())
}
