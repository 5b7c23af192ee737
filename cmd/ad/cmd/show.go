package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkrogh/annodoc/internal/docstore"
	"github.com/mkrogh/annodoc/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show details of a doc entry",
	Long: `Show the full details of a doc entry by its ID.

Displays the description, parameters, return value and example.
Use --json for machine-readable output.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var showJSON bool

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	root, err := workspaceRoot()
	if err != nil {
		return err
	}

	store := docstore.NewStore(root)
	entry, err := store.Read(args[0])
	if err != nil {
		return fmt.Errorf("failed to read entry: %w", err)
	}

	if showJSON {
		enc := json.NewEncoder(os.Stdout)
		if err := enc.Encode(entry); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}

	fmt.Fprint(os.Stdout, render.Terminal(entry))
	return nil
}
