package operations

import (
	"time"

	"budgetbook/internal/models"
)

// FilterByCategories returns the operations of the given kind matching the
// requested categories, concatenated in the order categories were requested,
// each group in original insertion order.
func FilterByCategories(ledger *models.Ledger, kind models.OperationKind, categories ...string) []models.Operation {
	matched := []models.Operation{}
	for _, category := range categories {
		for _, op := range ledger.Operations {
			if op.Kind == kind && op.Category == category {
				matched = append(matched, op)
			}
		}
	}
	return matched
}

// FilterByPeriod returns the operations with start < timestamp < end,
// exclusive on both ends, irrespective of kind or category, in insertion
// order.
func FilterByPeriod(ledger *models.Ledger, start, end time.Time) []models.Operation {
	matched := []models.Operation{}
	for _, op := range ledger.Operations {
		if op.Timestamp.After(start) && op.Timestamp.Before(end) {
			matched = append(matched, op)
		}
	}
	return matched
}

// FilterByKindAndPeriod applies the period filter first, then keeps only the
// given kind.
func FilterByKindAndPeriod(ledger *models.Ledger, kind models.OperationKind, start, end time.Time) []models.Operation {
	matched := []models.Operation{}
	for _, op := range FilterByPeriod(ledger, start, end) {
		if op.Kind == kind {
			matched = append(matched, op)
		}
	}
	return matched
}

// FilterByKindAndPeriodAndCategory applies the period filter, then the kind
// filter, then keeps only the given category.
func FilterByKindAndPeriodAndCategory(ledger *models.Ledger, kind models.OperationKind, start, end time.Time, category string) []models.Operation {
	matched := []models.Operation{}
	for _, op := range FilterByKindAndPeriod(ledger, kind, start, end) {
		if op.Category == category {
			matched = append(matched, op)
		}
	}
	return matched
}
