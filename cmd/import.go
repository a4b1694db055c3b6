package cmd

import (
	"fmt"
	"os"

	"quizdrill/internal/bank"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [bank-file]",
	Short: "Import a question bank and optional category map",
	Long: `Import replaces the stored question bank with the given file.
Accepts a JSON array or newline-delimited JSON records; loose field
names from common exports (qid/_id, stem_html/question/text,
choices, answer_index, analysis, type) are normalized on the way in.

A category override map can be imported alongside or on its own with
--categories; it accepts a JSON object, an array of {id, category}
rows, or comma/tab separated lines.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catFile, _ := cmd.Flags().GetString("categories")
		if len(args) == 0 && catFile == "" {
			return fmt.Errorf("nothing to import: pass a bank file or --categories")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if len(args) == 1 {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read bank file: %w", err)
			}
			b, err := bank.ParseBank(data)
			if err != nil {
				return fmt.Errorf("parse bank: %w", err)
			}
			if err := bank.SaveBank(st, b); err != nil {
				return fmt.Errorf("save bank: %w", err)
			}
			fmt.Printf("Imported %d questions\n", len(b))
		}

		if catFile != "" {
			data, err := os.ReadFile(catFile)
			if err != nil {
				return fmt.Errorf("read category file: %w", err)
			}
			cm, err := bank.ParseCategoryMap(data)
			if err != nil {
				return fmt.Errorf("parse category map: %w", err)
			}
			if err := bank.SaveCategoryMap(st, cm); err != nil {
				return fmt.Errorf("save category map: %w", err)
			}
			fmt.Printf("Imported %d category overrides\n", len(cm))
		}

		return nil
	},
}

func init() {
	importCmd.Flags().String("categories", "", "Category map file (JSON object, {id,category} rows, or CSV/TSV lines)")
}
