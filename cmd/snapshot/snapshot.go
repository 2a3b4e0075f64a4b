// Package snapshot contains the non-interactive snapshot subcommands. They
// run against the same store as the interactive session, so exported files
// are interchangeable between the two.
package snapshot

import (
	"fmt"
	"os"

	"budgetbook/cmd/root"
	"budgetbook/internal/logging"
	"budgetbook/internal/models"
	"budgetbook/internal/snapshot"
	"budgetbook/internal/store"

	"github.com/spf13/cobra"
)

var (
	username string
	facet    string
	input    string
	output   string

	// Cmd is the parent snapshot command.
	Cmd = &cobra.Command{
		Use:   "snapshot",
		Short: "Export or import ledger snapshots without the interactive menu",
	}

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export a user's ledger, or one facet of it, to a file",
		RunE:  runExport,
	}

	importCmd = &cobra.Command{
		Use:   "import",
		Short: "Import a snapshot file into a user's ledger",
		RunE:  runImport,
	}
)

// Init wires the snapshot subcommands and their flags.
func Init() {
	for _, c := range []*cobra.Command{exportCmd, importCmd} {
		c.Flags().StringVarP(&username, "user", "u", "", "Username whose ledger to use (required)")
		c.Flags().StringVarP(&facet, "facet", "f", snapshot.FacetWhole,
			"Snapshot facet: whole-ledger, income, expenses or limits")
		_ = c.MarkFlagRequired("user")
	}
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: the snapshots directory)")
	importCmd.Flags().StringVarP(&input, "input", "i", "", "Snapshot file to import (required)")
	_ = importCmd.MarkFlagRequired("input")

	Cmd.AddCommand(exportCmd)
	Cmd.AddCommand(importCmd)
}

func openStore() (*store.Store, *models.User, error) {
	s, err := store.New(root.Cfg.Data.Directory, root.Log)
	if err != nil {
		return nil, nil, err
	}
	user, err := s.LoadUser(username)
	if err != nil {
		return nil, nil, err
	}
	return s, user, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	s, user, err := openStore()
	if err != nil {
		return err
	}

	var contents string
	switch facet {
	case snapshot.FacetWhole:
		contents, err = snapshot.ExportLedger(user.Ledger)
	case snapshot.FacetIncome:
		contents, err = snapshot.ExportIncome(user.Ledger)
	case snapshot.FacetExpenses:
		contents, err = snapshot.ExportExpenses(user.Ledger)
	case snapshot.FacetLimits:
		contents, err = snapshot.ExportLimits(user.Ledger)
	default:
		return fmt.Errorf("unknown facet: %s", facet)
	}
	if err != nil {
		return err
	}

	var path string
	if output != "" {
		path = output
		if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
			return fmt.Errorf("could not write snapshot to %s: %w", path, err)
		}
	} else {
		name := fmt.Sprintf("%s_%s", username, facet)
		path, err = s.SaveSnapshot(name, contents)
		if err != nil {
			return err
		}
	}
	root.Log.Info("snapshot exported",
		logging.Field{Key: logging.FieldUser, Value: username},
		logging.Field{Key: logging.FieldFacet, Value: facet},
		logging.Field{Key: logging.FieldFile, Value: path})
	fmt.Println(path)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	s, user, err := openStore()
	if err != nil {
		return err
	}
	contents, err := s.LoadSnapshot(input)
	if err != nil {
		return err
	}

	switch facet {
	case snapshot.FacetWhole:
		err = snapshot.ImportLedger(user.Ledger, contents)
	case snapshot.FacetIncome:
		err = snapshot.ImportIncome(user.Ledger, contents)
	case snapshot.FacetExpenses:
		err = snapshot.ImportExpenses(user.Ledger, contents)
	case snapshot.FacetLimits:
		err = snapshot.ImportLimits(user.Ledger, contents)
	default:
		return fmt.Errorf("unknown facet: %s", facet)
	}
	if err != nil {
		return err
	}

	if err := s.SaveUser(user); err != nil {
		return err
	}
	root.Log.Info("snapshot imported",
		logging.Field{Key: logging.FieldUser, Value: username},
		logging.Field{Key: logging.FieldFacet, Value: facet},
		logging.Field{Key: logging.FieldFile, Value: input})
	return nil
}
