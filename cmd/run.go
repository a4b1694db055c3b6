package cmd

import (
	"fmt"

	"quizdrill/internal/app"
	"quizdrill/internal/storage"

	"github.com/spf13/cobra"
)

// runApp opens the store and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(st)
}

// openStore resolves the database path and opens the document store.
func openStore(cmd *cobra.Command) (*storage.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
