package menu

import (
	"fmt"
	"time"

	"budgetbook/internal/budgeting"
	"budgetbook/internal/models"
	"budgetbook/internal/operations"
	"budgetbook/internal/report"
	"budgetbook/internal/snapshot"
	"budgetbook/internal/transfer"
)

const timestampLayout = "2006-01-02 15:04"

func (m *Menu) handleOperations() (State, error) {
	fmt.Fprint(m.out, "\n--- Income and expenses ---\n"+
		"1. Add income\n"+
		"2. Add expense\n"+
		"3. Remove operation by id\n"+
		"4. List all operations\n"+
		"0. Back\n")
	choice, err := m.readInput("> ")
	if err != nil {
		return StateOperations, err
	}

	switch choice {
	case "1":
		return StateOperations, m.actionAddOperation(models.KindIncome)
	case "2":
		return StateOperations, m.actionAddOperation(models.KindExpense)
	case "3":
		return StateOperations, m.actionRemoveOperation()
	case "4":
		fmt.Fprint(m.out, report.OperationList(m.session.User.Ledger.Operations))
		return StateOperations, nil
	case "0":
		return StateMain, nil
	default:
		fmt.Fprintln(m.out, "Unknown option:", choice)
		return StateOperations, nil
	}
}

func (m *Menu) actionAddOperation(kind models.OperationKind) error {
	amount, err := m.readAmount("Amount: ")
	if err != nil {
		return err
	}
	category, err := m.readCategory("Category: ")
	if err != nil {
		return err
	}
	timestamp, err := m.readTimestamp("Timestamp (YYYY-MM-DD HH:MM, empty for now): ")
	if err != nil {
		return err
	}

	ledger := m.session.User.Ledger
	if kind == models.KindIncome {
		err = operations.AddIncome(ledger, amount, category, timestamp)
	} else {
		err = operations.AddExpense(ledger, amount, category, timestamp)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Recorded %s of %s in category %s.\n", kind, amount.String(), category)
	return m.saveAndNotify()
}

func (m *Menu) readTimestamp(prompt string) (time.Time, error) {
	line, err := m.readInput(prompt)
	if err != nil {
		return time.Time{}, err
	}
	if line == "" {
		return time.Now(), nil
	}
	timestamp, err := time.ParseInLocation(timestampLayout, line, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("'%s' is not a valid timestamp, expected YYYY-MM-DD HH:MM", line)
	}
	return timestamp, nil
}

func (m *Menu) actionRemoveOperation() error {
	id, err := m.readInput("Operation id: ")
	if err != nil {
		return err
	}
	if operations.RemoveByID(m.session.User.Ledger, id) {
		fmt.Fprintln(m.out, "Operation removed.")
		return m.saveAndNotify()
	}
	fmt.Fprintln(m.out, "No operation with that id exists; nothing removed.")
	return nil
}

func (m *Menu) handleCategories() (State, error) {
	fmt.Fprint(m.out, "\n--- Categories ---\n"+
		"1. Rename income category\n"+
		"2. Rename expense category\n"+
		"3. Merge income categories\n"+
		"4. Merge expense categories\n"+
		"0. Back\n")
	choice, err := m.readInput("> ")
	if err != nil {
		return StateCategories, err
	}

	switch choice {
	case "1":
		return StateCategories, m.actionRenameCategory(models.KindIncome)
	case "2":
		return StateCategories, m.actionRenameCategory(models.KindExpense)
	case "3":
		return StateCategories, m.actionMergeCategories(models.KindIncome)
	case "4":
		return StateCategories, m.actionMergeCategories(models.KindExpense)
	case "0":
		return StateMain, nil
	default:
		fmt.Fprintln(m.out, "Unknown option:", choice)
		return StateCategories, nil
	}
}

func (m *Menu) actionRenameCategory(kind models.OperationKind) error {
	oldName, err := m.readCategory("Current category name: ")
	if err != nil {
		return err
	}
	newName, err := m.readCategory("New category name: ")
	if err != nil {
		return err
	}
	// Rename itself allows collisions (merge builds on that); the menu is
	// the caller responsible for pre-checking them.
	for _, existing := range m.categoriesOf(kind) {
		if existing == newName && newName != oldName {
			return fmt.Errorf("category '%s' already exists; use merge to combine categories", newName)
		}
	}
	operations.RenameCategory(m.session.User.Ledger, oldName, newName, kind)
	fmt.Fprintf(m.out, "Renamed category %s to %s.\n", oldName, newName)
	return m.saveAndNotify()
}

func (m *Menu) categoriesOf(kind models.OperationKind) []string {
	if kind == models.KindIncome {
		return m.session.User.Ledger.IncomeCategories()
	}
	return m.session.User.Ledger.ExpenseCategories()
}

func (m *Menu) actionMergeCategories(kind models.OperationKind) error {
	oldCategories, err := m.readCategories("Categories to merge (comma-separated): ")
	if err != nil {
		return err
	}
	newName, err := m.readCategory("Merged category name: ")
	if err != nil {
		return err
	}
	if kind == models.KindIncome {
		operations.MergeIncomeCategories(m.session.User.Ledger, newName, oldCategories...)
	} else {
		operations.MergeExpenseCategories(m.session.User.Ledger, newName, oldCategories...)
	}
	fmt.Fprintf(m.out, "Merged %d categories into %s.\n", len(oldCategories), newName)
	return m.saveAndNotify()
}

func (m *Menu) handleBudgeting() (State, error) {
	fmt.Fprint(m.out, "\n--- Budgeting ---\n"+
		"1. Add limit\n"+
		"2. Change limit\n"+
		"3. Remove limit\n"+
		"4. Show limit\n"+
		"5. Show remainder\n"+
		"6. Budgets summary\n"+
		"0. Back\n")
	choice, err := m.readInput("> ")
	if err != nil {
		return StateBudgeting, err
	}

	ledger := m.session.User.Ledger
	switch choice {
	case "1", "2":
		category, err := m.readCategory("Category: ")
		if err != nil {
			return StateBudgeting, err
		}
		limit, err := m.readAmount("Limit: ")
		if err != nil {
			return StateBudgeting, err
		}
		if choice == "1" {
			if budgeting.HasLimit(ledger, category) {
				return StateBudgeting, fmt.Errorf("a limit for '%s' already exists; change it instead", category)
			}
			err = budgeting.AddLimit(ledger, category, limit)
		} else {
			err = budgeting.ChangeLimit(ledger, category, limit)
		}
		if err != nil {
			return StateBudgeting, err
		}
		fmt.Fprintf(m.out, "Limit for %s is now %s.\n", category, limit.String())
		return StateBudgeting, m.saveAndNotify()
	case "3":
		category, err := m.readCategory("Category: ")
		if err != nil {
			return StateBudgeting, err
		}
		if err := budgeting.RemoveLimit(ledger, category); err != nil {
			return StateBudgeting, err
		}
		fmt.Fprintf(m.out, "Limit for %s removed.\n", category)
		return StateBudgeting, m.saveAndNotify()
	case "4":
		category, err := m.readCategory("Category: ")
		if err != nil {
			return StateBudgeting, err
		}
		limit, err := budgeting.GetLimit(ledger, category)
		if err != nil {
			return StateBudgeting, err
		}
		fmt.Fprintf(m.out, "Limit for %s: %s\n", category, limit.StringFixed(3))
		return StateBudgeting, nil
	case "5":
		category, err := m.readCategory("Category: ")
		if err != nil {
			return StateBudgeting, err
		}
		remainder, err := budgeting.GetRemainder(ledger, category)
		if err != nil {
			return StateBudgeting, err
		}
		fmt.Fprintf(m.out, "Remainder for %s: %s\n", category, remainder.StringFixed(3))
		return StateBudgeting, nil
	case "6":
		fmt.Fprint(m.out, report.BudgetsSummary(ledger))
		return StateBudgeting, nil
	case "0":
		return StateMain, nil
	default:
		fmt.Fprintln(m.out, "Unknown option:", choice)
		return StateBudgeting, nil
	}
}

func (m *Menu) handleAnalytics() (State, error) {
	fmt.Fprint(m.out, "\n--- Analytics ---\n"+
		"1. Balance summary\n"+
		"2. Income summary\n"+
		"3. Expense summary\n"+
		"4. Operations in a period\n"+
		"5. Save operations report (CSV)\n"+
		"0. Back\n")
	choice, err := m.readInput("> ")
	if err != nil {
		return StateAnalytics, err
	}

	ledger := m.session.User.Ledger
	switch choice {
	case "1":
		fmt.Fprint(m.out, report.BalanceSummary(ledger))
		return StateAnalytics, nil
	case "2":
		fmt.Fprint(m.out, report.IncomeSummary(ledger))
		return StateAnalytics, nil
	case "3":
		fmt.Fprint(m.out, report.ExpenseSummary(ledger))
		return StateAnalytics, nil
	case "4":
		return StateAnalytics, m.actionPeriodFilter()
	case "5":
		contents, err := report.OperationsCSV(ledger.Operations)
		if err != nil {
			return StateAnalytics, err
		}
		name := fmt.Sprintf("%s_operations_%s", m.session.User.Username, time.Now().Format("20060102_150405"))
		path, err := m.store.SaveReport(name, ".csv", contents)
		if err != nil {
			return StateAnalytics, err
		}
		fmt.Fprintf(m.out, "Report saved to %s\n", path)
		return StateAnalytics, nil
	case "0":
		return StateMain, nil
	default:
		fmt.Fprintln(m.out, "Unknown option:", choice)
		return StateAnalytics, nil
	}
}

func (m *Menu) actionPeriodFilter() error {
	start, err := m.readTimestamp("Period start (YYYY-MM-DD HH:MM): ")
	if err != nil {
		return err
	}
	end, err := m.readTimestamp("Period end (YYYY-MM-DD HH:MM): ")
	if err != nil {
		return err
	}
	matched := operations.FilterByPeriod(m.session.User.Ledger, start, end)
	if len(matched) == 0 {
		fmt.Fprintln(m.out, "No operations in that period.")
		return nil
	}
	fmt.Fprint(m.out, report.OperationList(matched))
	fmt.Fprintf(m.out, "Income in period: %s, expenses in period: %s\n",
		operations.SumByKind(matched, models.KindIncome).StringFixed(2),
		operations.SumByKind(matched, models.KindExpense).StringFixed(2))
	return nil
}

func (m *Menu) handleSnapshots() (State, error) {
	fmt.Fprint(m.out, "\n--- Snapshots ---\n"+
		"1. Export whole ledger\n"+
		"2. Export income only\n"+
		"3. Export expenses only\n"+
		"4. Export budgets only\n"+
		"5. Import snapshot from file\n"+
		"0. Back\n")
	choice, err := m.readInput("> ")
	if err != nil {
		return StateSnapshots, err
	}

	switch choice {
	case "1", "2", "3", "4":
		return StateSnapshots, m.actionExportSnapshot(choice)
	case "5":
		return StateSnapshots, m.actionImportSnapshot()
	case "0":
		return StateMain, nil
	default:
		fmt.Fprintln(m.out, "Unknown option:", choice)
		return StateSnapshots, nil
	}
}

func (m *Menu) actionExportSnapshot(choice string) error {
	ledger := m.session.User.Ledger
	var contents, facet string
	var err error
	switch choice {
	case "1":
		facet = snapshot.FacetWhole
		contents, err = snapshot.ExportLedger(ledger)
	case "2":
		facet = snapshot.FacetIncome
		contents, err = snapshot.ExportIncome(ledger)
	case "3":
		facet = snapshot.FacetExpenses
		contents, err = snapshot.ExportExpenses(ledger)
	case "4":
		facet = snapshot.FacetLimits
		contents, err = snapshot.ExportLimits(ledger)
	}
	if err != nil {
		return err
	}
	name := fmt.Sprintf("%s_%s_%s", m.session.User.Username, facet, time.Now().Format("20060102_150405"))
	path, err := m.store.SaveSnapshot(name, contents)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Snapshot saved to %s\n", path)
	return nil
}

func (m *Menu) actionImportSnapshot() error {
	fmt.Fprint(m.out, "Snapshot type:\n"+
		"1. Whole ledger\n"+
		"2. Income only\n"+
		"3. Expenses only\n"+
		"4. Budgets only\n")
	choice, err := m.readInput("> ")
	if err != nil {
		return err
	}
	path, err := m.readInput("Path to snapshot file: ")
	if err != nil {
		return err
	}
	contents, err := m.store.LoadSnapshot(path)
	if err != nil {
		return err
	}

	ledger := m.session.User.Ledger
	switch choice {
	case "1":
		err = snapshot.ImportLedger(ledger, contents)
	case "2":
		err = snapshot.ImportIncome(ledger, contents)
	case "3":
		err = snapshot.ImportExpenses(ledger, contents)
	case "4":
		err = snapshot.ImportLimits(ledger, contents)
	default:
		return fmt.Errorf("unknown snapshot type: %s", choice)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Snapshot imported.")
	return m.saveAndNotify()
}

func (m *Menu) actionTransfer() error {
	toUsername, err := m.readInput("Recipient username: ")
	if err != nil {
		return err
	}
	amount, err := m.readAmount("Amount: ")
	if err != nil {
		return err
	}
	if err := transfer.Send(m.store, m.log, m.session.User, toUsername, amount); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Sent %s to %s.\n", amount.String(), toUsername)
	return m.saveAndNotify()
}
