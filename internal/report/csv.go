package report

import (
	"time"

	"budgetbook/internal/models"

	"github.com/gocarina/gocsv"
)

// operationRow is the CSV shape of one operation.
type operationRow struct {
	ID        string `csv:"Id"`
	Timestamp string `csv:"Timestamp"`
	Kind      string `csv:"Kind"`
	Category  string `csv:"Category"`
	Amount    string `csv:"Amount"`
}

// OperationsCSV marshals an operation list to CSV, one row per operation,
// insertion order preserved.
func OperationsCSV(ops []models.Operation) (string, error) {
	rows := make([]operationRow, 0, len(ops))
	for _, op := range ops {
		rows = append(rows, operationRow{
			ID:        op.ID,
			Timestamp: op.Timestamp.Format(time.RFC3339),
			Kind:      string(op.Kind),
			Category:  op.Category,
			Amount:    op.Amount.StringFixed(2),
		})
	}
	return gocsv.MarshalString(&rows)
}
