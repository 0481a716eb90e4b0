package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"docsum/pkg/config"
	"docsum/pkg/docext"
	"docsum/pkg/summarizer"
	"docsum/pkg/utils"
)

var (
	summarySentences int
	summaryRatio     float64
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <file>",
	Short: "Condense a document to its highest-scoring sentences",
	Long: `Extracts the text of a document, scores each sentence by the document-wide
frequencies of its words, and prints the top sentences in their original
order. Target length is a sentence count (--sentences) or a fraction of the
source (--ratio).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if summaryRatio < 0 || summaryRatio > 1 {
			return fmt.Errorf("--ratio must be between 0 and 1, got %g", summaryRatio)
		}
		cfg := config.Load()

		target := summarizer.Target{Sentences: summarySentences, Ratio: summaryRatio}
		if target.Sentences <= 0 && target.Ratio == 0 {
			target.Sentences = cfg.SummarySentences
		}

		text, err := docext.Extract(args[0])
		if err != nil {
			return err
		}
		summary, err := summarizer.Summarize(text, target)
		if err != nil {
			return err
		}

		utils.GetLogger().Logf("summarized %s (target sentences=%d ratio=%g)", args[0], target.Sentences, target.Ratio)
		fmt.Println(utils.Wrap(summary, utils.TerminalWidth()))
		return nil
	},
}

func init() {
	summarizeCmd.Flags().IntVarP(&summarySentences, "sentences", "n", 0, "Summary length in sentences (default from config)")
	summarizeCmd.Flags().Float64Var(&summaryRatio, "ratio", 0, "Summary length as a fraction of the source sentences")
	rootCmd.AddCommand(summarizeCmd)
}
