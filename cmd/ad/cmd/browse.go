package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mkrogh/annodoc/internal/docstore"
	"github.com/mkrogh/annodoc/internal/query"
	"github.com/mkrogh/annodoc/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse doc entries interactively",
	Long: `Open an interactive browser over the extracted doc entries.

Keys: j/k to move, f to cycle the kind filter, q to quit.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	root, err := workspaceRoot()
	if err != nil {
		return err
	}

	store := docstore.NewStore(root)
	entries, err := store.List()
	if err != nil {
		return fmt.Errorf("failed to list entries: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("no entries to browse, run 'ad scan' first")
	}
	query.SortByLocation(entries)

	program := tea.NewProgram(tui.NewModel(entries), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}
