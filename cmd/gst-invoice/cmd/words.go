package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rezonia/gst-invoice/internal/words"
)

var wordsCmd = &cobra.Command{
	Use:   "words <number>",
	Short: "Spell a number in the Indian numbering system",
	Long: `Convert a non-negative integer to words the way the invoice's
"In Words" line does, using Indian groupings (thousand, lakh, crore).

Examples:
  gst-invoice words 29972
  # Twenty Nine Thousand Nine Hundred Seventy Two`,
	Args: cobra.ExactArgs(1),
	RunE: runWords,
}

func init() {
	rootCmd.AddCommand(wordsCmd)
}

func runWords(cmd *cobra.Command, args []string) error {
	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("not an integer: %q", args[0])
	}
	if n < 0 {
		return fmt.Errorf("negative amounts have no invoice spelling: %d", n)
	}

	fmt.Println(words.ToWords(n))
	return nil
}
