package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkrogh/annodoc/internal/docstore"
	"github.com/mkrogh/annodoc/internal/query"
	"github.com/mkrogh/annodoc/internal/styles"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List extracted doc entries",
	Long: `List extracted doc entries, sorted by source location.

Examples:
  # All entries
  ad list

  # Only constructors, as JSON
  ad list --kind init --json

  # Entries from one file
  ad list --file src/calc.rs`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listKind   string
	listFile   string
	listLang   string
	listPrefix string
	listJSON   bool
)

func init() {
	listCmd.Flags().StringVar(&listKind, "kind", "", "filter by kind (doc or init)")
	listCmd.Flags().StringVar(&listFile, "file", "", "filter by source file")
	listCmd.Flags().StringVar(&listLang, "lang", "", "filter by language")
	listCmd.Flags().StringVar(&listPrefix, "prefix", "", "filter by id prefix")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	root, err := workspaceRoot()
	if err != nil {
		return err
	}

	store := docstore.NewStore(root)
	entries, err := store.List()
	if err != nil {
		return fmt.Errorf("failed to list entries: %w", err)
	}

	filtered := query.Apply(entries, query.Filter{
		Kind:     listKind,
		File:     listFile,
		Language: listLang,
		IDPrefix: listPrefix,
	})
	query.SortByLocation(filtered)

	if listJSON {
		enc := json.NewEncoder(os.Stdout)
		if err := enc.Encode(filtered); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}

	if len(filtered) == 0 {
		fmt.Println("No entries. Run 'ad scan' first.")
		return nil
	}
	for _, e := range filtered {
		fmt.Printf("%s %-24s %s\n",
			styles.KindBadge(e.Kind),
			e.ID,
			styles.Dim.Render(fmt.Sprintf("%s:%d", e.File, e.Line)))
	}
	return nil
}
