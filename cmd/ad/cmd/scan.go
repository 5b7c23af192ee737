package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkrogh/annodoc/internal/config"
	"github.com/mkrogh/annodoc/internal/docstore"
	"github.com/mkrogh/annodoc/internal/scanner"
	"github.com/mkrogh/annodoc/internal/styles"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Extract annotation blocks into the doc store",
	Long: `Scan the workspace sources for @doc annotation blocks and sync the
extracted entries into .annodoc/docs/.

Entries for blocks that disappeared from the sources are removed.
Diagnostics (malformed blocks, duplicate ids, stray tags) are printed
to stderr but do not fail the scan; use 'ad validate' to gate on them.`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

var scanJSON bool

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	root, err := workspaceRoot()
	if err != nil {
		return err
	}
	cfg, err := config.LoadOrDefault(configPath(root))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	res, err := scanner.Scan(root, cfg)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	entries := scanner.Entries(res, time.Now().UTC())
	store := docstore.NewStore(root)
	if err := store.Sync(entries); err != nil {
		return fmt.Errorf("failed to sync doc store: %w", err)
	}

	if scanJSON {
		payload := map[string]any{
			"files_scanned": res.FilesScanned,
			"entries":       entries,
			"diagnostics":   res.Diagnostics,
		}
		enc := json.NewEncoder(os.Stdout)
		if err := enc.Encode(payload); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}

	for _, d := range res.Diagnostics {
		fmt.Fprintln(os.Stderr, styles.Warning.Render(d.String()))
	}
	fmt.Printf("Scanned %d files, extracted %d entries", res.FilesScanned, len(entries))
	if len(res.Diagnostics) > 0 {
		fmt.Printf(" (%d diagnostics)", len(res.Diagnostics))
	}
	fmt.Println()
	return nil
}
