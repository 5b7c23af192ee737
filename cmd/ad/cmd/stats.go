package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkrogh/annodoc/internal/docstore"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show doc store statistics",
	Long: `Show summary statistics about extracted entries: counts by kind
and language, number of documented files, and example coverage.

Examples:
  # Human-readable stats
  ad stats

  # Output as JSON
  ad stats --json`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var statsJSON bool

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	root, err := workspaceRoot()
	if err != nil {
		return err
	}

	store := docstore.NewStore(root)
	entries, err := store.List()
	if err != nil {
		return fmt.Errorf("failed to list entries: %w", err)
	}

	kindCounts := make(map[string]int)
	langCounts := make(map[string]int)
	files := make(map[string]struct{})
	withExample := 0

	for _, e := range entries {
		kindCounts[e.Kind]++
		langCounts[e.Language]++
		files[e.File] = struct{}{}
		if e.Example != nil {
			withExample++
		}
	}

	if statsJSON {
		payload := map[string]any{
			"total":        len(entries),
			"kind":         kindCounts,
			"language":     langCounts,
			"files":        len(files),
			"with_example": withExample,
		}
		enc := json.NewEncoder(os.Stdout)
		if err := enc.Encode(payload); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}

	fmt.Printf("Entries: %d across %d files\n", len(entries), len(files))
	fmt.Println("By kind:")
	for kind, n := range kindCounts {
		fmt.Printf("  %-8s %d\n", kind, n)
	}
	fmt.Println("By language:")
	for lang, n := range langCounts {
		fmt.Printf("  %-8s %d\n", lang, n)
	}
	if len(entries) > 0 {
		fmt.Printf("Example coverage: %d/%d\n", withExample, len(entries))
	}
	return nil
}
