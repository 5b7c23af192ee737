// Package cmd implements the ad command tree.
package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "ad",
	Short: "Extract structured docs from @doc annotations",
	Long: `ad scans source trees for @doc annotation comments and turns them
into structured documentation.

Annotation blocks follow a small tag grammar (@doc, @doc.init,
@description, @param, @returns, @example) embedded in ordinary line
comments, so the same blocks work across Go, Rust, Python and C++
sources. Run 'ad init' once, then 'ad scan' to extract.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// workspaceRoot walks upward from the working directory until it finds the
// directory containing .annodoc/.
func workspaceRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if info, err := os.Stat(filepath.Join(dir, ".annodoc")); err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("no .annodoc directory found (run 'ad init' first)")
		}
		dir = parent
	}
}

// configPath returns the config file path for a workspace root.
func configPath(root string) string {
	return filepath.Join(root, ".annodoc", "config.json")
}
