package cmd

import (
	"fmt"

	"quizdrill/internal/bank"
	"quizdrill/internal/quiz"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show bank and session statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		b := bank.LoadBank(st)
		cm := bank.LoadCategoryMap(st)
		history := quiz.NewSessionStore(st).LoadHistory()
		seen, wrong := quiz.DeriveSets(history)

		fmt.Printf("Questions:  %d\n", len(b))
		fmt.Printf("Sessions:   %d\n", len(history))
		fmt.Printf("Seen:       %d\n", len(seen))
		fmt.Printf("Wrong:      %d\n", len(wrong))

		cats := b.Categories(cm)
		if len(cats) == 0 {
			return nil
		}
		counts := make(map[string]int)
		for i := range b {
			counts[bank.EffectiveCategory(&b[i], cm)]++
		}
		fmt.Println("\nCategories:")
		for _, c := range cats {
			fmt.Printf("  %-20s %d\n", c, counts[c])
		}
		return nil
	},
}
