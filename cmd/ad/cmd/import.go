package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkrogh/annodoc/internal/docstore"
	"github.com/mkrogh/annodoc/internal/exchange"
)

var importCmd = &cobra.Command{
	Use:   "import <file.jsonl>",
	Short: "Import doc entries from a JSONL export",
	Long: `Import doc entries from a JSONL export into the local store.

Each line is one entry as produced by 'ad list --json' (unwrapped).
Invalid entries are skipped and reported; existing entries with the
same id are overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	root, err := workspaceRoot()
	if err != nil {
		return err
	}

	entries, err := exchange.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	importable, skipped := exchange.FilterImportable(entries)
	for _, skipErr := range skipped {
		fmt.Fprintf(os.Stderr, "skipped: %v\n", skipErr)
	}

	store := docstore.NewStore(root)
	for _, e := range importable {
		if err := store.Write(e); err != nil {
			return fmt.Errorf("failed to write %s: %w", e.ID, err)
		}
	}

	fmt.Printf("Imported %d entries", len(importable))
	if len(skipped) > 0 {
		fmt.Printf(" (%d skipped)", len(skipped))
	}
	fmt.Println()
	return nil
}
