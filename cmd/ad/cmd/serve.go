package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkrogh/annodoc/internal/config"
	"github.com/mkrogh/annodoc/internal/docboard/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the live docs board",
	Long: `Serve the rendered docs over HTTP with live reload.

The board re-extracts docs whenever a watched source file changes and
pushes a reload message to connected browsers over a websocket.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:4317", "listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	root, err := workspaceRoot()
	if err != nil {
		return err
	}
	cfg, err := config.LoadOrDefault(configPath(root))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	board := server.New(root, cfg)
	if err := board.Rescan(); err != nil {
		return fmt.Errorf("initial scan failed: %w", err)
	}

	watcher := server.NewSourceWatcher(root)
	if err := watcher.Start(); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Stop()

	go board.Watch(watcher, func(err error) {
		fmt.Fprintf(os.Stderr, "rescan failed: %v\n", err)
	})

	fmt.Printf("Docs board on http://%s\n", serveAddr)
	if err := http.ListenAndServe(serveAddr, board.Handler()); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
