package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"quizdrill/internal/quiz"
	"quizdrill/internal/storage"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Export sessions as JSON files",
	Long: `Export writes the stored session JSON as-is (pretty-printed).
By default the last session goes to session_<startedAt>.json in the
given directory (default "."); --all writes the full session log to
all_sessions.json instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		all, _ := cmd.Flags().GetBool("all")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if all {
			return exportRaw(st, storage.KeyAllSessions, filepath.Join(dir, "all_sessions.json"))
		}

		raw, ok := st.Raw(storage.KeyLastSession)
		if !ok {
			return fmt.Errorf("no session to export")
		}
		var s quiz.Session
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return fmt.Errorf("stored session is unreadable: %w", err)
		}
		name := fmt.Sprintf("session_%s.json", s.StartedAt)
		return writePretty([]byte(raw), filepath.Join(dir, name))
	},
}

func init() {
	exportCmd.Flags().Bool("all", false, "Export the full session log instead of the last session")
}

func exportRaw(st *storage.Store, key, path string) error {
	raw, ok := st.Raw(key)
	if !ok {
		return fmt.Errorf("nothing stored under %q", key)
	}
	return writePretty([]byte(raw), path)
}

func writePretty(raw []byte, path string) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("format %s: %w", path, err)
	}
	buf.WriteByte('\n')
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Println("Wrote", path)
	return nil
}
