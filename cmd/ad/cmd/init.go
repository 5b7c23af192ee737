package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mkrogh/annodoc/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize an annodoc workspace",
	Long: `Initialize an annodoc workspace in the current directory.

Creates .annodoc/ with a default config.json. Extracted docs are stored
under .annodoc/docs/ by 'ad scan' and kept out of git; regenerate them
with 'ad scan' or merge exports with 'ad import'.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to detect working directory: %w", err)
	}

	dir := filepath.Join(cwd, ".annodoc")
	if err := os.MkdirAll(filepath.Join(dir, "docs"), 0o755); err != nil {
		return fmt.Errorf("failed to create .annodoc directory: %w", err)
	}

	cfgPath := filepath.Join(dir, "config.json")
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf(".annodoc already initialized at %s", dir)
	}
	if err := config.Save(cfgPath, config.Default()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	// Extracted entries are derived from the sources; keep them out of git.
	ignorePath := filepath.Join(dir, ".gitignore")
	if err := os.WriteFile(ignorePath, []byte("docs/\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write .gitignore: %w", err)
	}

	fmt.Println("Initialized .annodoc/")
	return nil
}
