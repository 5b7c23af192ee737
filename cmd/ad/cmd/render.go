package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mkrogh/annodoc/internal/config"
	"github.com/mkrogh/annodoc/internal/docstore"
	"github.com/mkrogh/annodoc/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the markdown document",
	Long: `Render all extracted entries into a single markdown document.

By default the document is written to the path configured under
render.output (DOCS.md). Use --stdout to print it instead.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

var (
	renderStdout bool
	renderOut    string
)

func init() {
	renderCmd.Flags().BoolVar(&renderStdout, "stdout", false, "print to stdout instead of writing the output file")
	renderCmd.Flags().StringVar(&renderOut, "out", "", "output path (overrides render.output)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	root, err := workspaceRoot()
	if err != nil {
		return err
	}
	cfg, err := config.LoadOrDefault(configPath(root))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store := docstore.NewStore(root)
	entries, err := store.List()
	if err != nil {
		return fmt.Errorf("failed to list entries: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("no entries to render, run 'ad scan' first")
	}

	doc := render.Markdown(cfg.Render.GetTitle(), entries)

	if renderStdout {
		fmt.Print(doc)
		return nil
	}

	target := cfg.Render.GetOutput()
	if renderOut != "" {
		target = renderOut
	}
	out := filepath.Join(root, filepath.FromSlash(target))
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	fmt.Printf("Wrote %d entries to %s\n", len(entries), target)
	return nil
}
