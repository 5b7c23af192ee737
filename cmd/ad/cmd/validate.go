package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkrogh/annodoc/internal/config"
	"github.com/mkrogh/annodoc/internal/scanner"
	"github.com/mkrogh/annodoc/internal/styles"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check annotation blocks without writing the store",
	Long: `Scan the workspace and report annotation diagnostics without
touching the doc store.

Exits nonzero when any diagnostic is found, so it can gate CI.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

var validateJSON bool

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
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

	if validateJSON {
		payload := map[string]any{
			"files_scanned": res.FilesScanned,
			"blocks":        len(res.Found),
			"diagnostics":   res.Diagnostics,
		}
		enc := json.NewEncoder(os.Stdout)
		if err := enc.Encode(payload); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
	} else {
		for _, d := range res.Diagnostics {
			fmt.Fprintln(os.Stderr, styles.Warning.Render(d.String()))
		}
		fmt.Printf("%d files, %d valid blocks, %d diagnostics\n",
			res.FilesScanned, len(res.Found), len(res.Diagnostics))
	}

	if len(res.Diagnostics) > 0 {
		return fmt.Errorf("%d annotation diagnostics", len(res.Diagnostics))
	}
	return nil
}
