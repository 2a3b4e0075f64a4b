// Package snapshot serializes a ledger, or one facet of it, to JSON and
// applies validating partial-replace imports. The JSON produced here is the
// same format the persistence layer writes, so whole-ledger snapshots stay
// compatible with user data files.
//
// Every import is all-or-nothing: a payload that fails validation leaves the
// ledger completely unmodified.
package snapshot

import (
	"encoding/json"

	"budgetbook/internal/ledgererr"
	"budgetbook/internal/models"

	"github.com/shopspring/decimal"
)

// Facet names used in snapshot errors and file naming.
const (
	FacetWhole    = "whole-ledger"
	FacetIncome   = "income"
	FacetExpenses = "expenses"
	FacetLimits   = "limits"
)

// ExportLedger serializes the whole ledger.
func ExportLedger(ledger *models.Ledger) (string, error) {
	return marshal(FacetWhole, ledger)
}

// ExportIncome serializes only the income operations.
func ExportIncome(ledger *models.Ledger) (string, error) {
	return marshal(FacetIncome, ledger.IncomeOperations())
}

// ExportExpenses serializes only the expense operations.
func ExportExpenses(ledger *models.Ledger) (string, error) {
	return marshal(FacetExpenses, ledger.ExpenseOperations())
}

// ExportLimits serializes only the category limit map.
func ExportLimits(ledger *models.Ledger) (string, error) {
	return marshal(FacetLimits, ledger.Limits)
}

func marshal(facet string, v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", &ledgererr.SnapshotFormatError{Facet: facet, Reason: "could not serialize", Err: err}
	}
	return string(data), nil
}

// ImportLedger replaces the entire ledger with the deserialized payload.
// The payload must carry the full ledger shape, probed by requiring both the
// operations and limits fields before decoding.
func ImportLedger(ledger *models.Ledger, payload string) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &probe); err != nil {
		return &ledgererr.SnapshotFormatError{Facet: FacetWhole, Reason: "payload is not a ledger object", Err: err}
	}
	if _, ok := probe["operations"]; !ok {
		return &ledgererr.SnapshotFormatError{Facet: FacetWhole, Reason: "missing operations field"}
	}
	if _, ok := probe["limits"]; !ok {
		return &ledgererr.SnapshotFormatError{Facet: FacetWhole, Reason: "missing limits field"}
	}

	var parsed models.Ledger
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return &ledgererr.SnapshotFormatError{Facet: FacetWhole, Reason: "payload does not decode as a ledger", Err: err}
	}
	if err := validateOperations(FacetWhole, parsed.Operations, ""); err != nil {
		return err
	}
	if err := validateLimits(FacetWhole, parsed.Limits); err != nil {
		return err
	}
	if parsed.Operations == nil {
		parsed.Operations = []models.Operation{}
	}
	if parsed.Limits == nil {
		parsed.Limits = map[string]decimal.Decimal{}
	}
	*ledger = parsed
	return nil
}

// ImportIncome replaces the income operations while preserving every
// existing expense operation. Relative ordering between the two kinds is not
// guaranteed, only that neither kind is lost.
func ImportIncome(ledger *models.Ledger, payload string) error {
	return importOperationsFacet(ledger, payload, models.KindIncome)
}

// ImportExpenses replaces the expense operations while preserving every
// existing income operation.
func ImportExpenses(ledger *models.Ledger, payload string) error {
	return importOperationsFacet(ledger, payload, models.KindExpense)
}

func importOperationsFacet(ledger *models.Ledger, payload string, kind models.OperationKind) error {
	facet := FacetIncome
	if kind == models.KindExpense {
		facet = FacetExpenses
	}

	var parsed []models.Operation
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return &ledgererr.SnapshotFormatError{Facet: facet, Reason: "payload is not an operation list", Err: err}
	}
	if err := validateOperations(facet, parsed, kind); err != nil {
		return err
	}

	var preserved []models.Operation
	if kind == models.KindIncome {
		preserved = ledger.ExpenseOperations()
	} else {
		preserved = ledger.IncomeOperations()
	}
	rebuilt := make([]models.Operation, 0, len(parsed)+len(preserved))
	rebuilt = append(rebuilt, parsed...)
	rebuilt = append(rebuilt, preserved...)
	ledger.Operations = rebuilt
	return nil
}

// ImportLimits discards the existing limit map and replaces it wholesale
// with the deserialized payload. Unlike the operation facets this is a full
// overwrite, not a preserve-and-merge.
func ImportLimits(ledger *models.Ledger, payload string) error {
	var parsed map[string]decimal.Decimal
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return &ledgererr.SnapshotFormatError{Facet: FacetLimits, Reason: "payload is not a category-to-limit map", Err: err}
	}
	if err := validateLimits(FacetLimits, parsed); err != nil {
		return err
	}
	if parsed == nil {
		parsed = map[string]decimal.Decimal{}
	}
	ledger.Limits = parsed
	return nil
}

// validateOperations rejects wrong-kind entries (when kind is set) and
// entries that would break the positive-amount invariant.
func validateOperations(facet string, ops []models.Operation, kind models.OperationKind) error {
	for _, op := range ops {
		if kind != "" && op.Kind != kind {
			return &ledgererr.SnapshotFormatError{
				Facet:  facet,
				Reason: "payload carries a " + string(op.Kind) + " entry where only " + string(kind) + " entries are allowed",
			}
		}
		if op.Kind != models.KindIncome && op.Kind != models.KindExpense {
			return &ledgererr.SnapshotFormatError{Facet: facet, Reason: "entry with unknown kind '" + string(op.Kind) + "'"}
		}
		if !op.Amount.IsPositive() {
			return &ledgererr.SnapshotFormatError{Facet: facet, Reason: "entry with non-positive amount " + op.Amount.String()}
		}
	}
	return nil
}

func validateLimits(facet string, limits map[string]decimal.Decimal) error {
	for category, limit := range limits {
		if limit.IsNegative() {
			return &ledgererr.SnapshotFormatError{Facet: facet, Reason: "negative limit for category '" + category + "'"}
		}
	}
	return nil
}
