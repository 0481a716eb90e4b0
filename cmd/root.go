package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "docsum",
	Short: "Document analyzer and summarizer",
	Long: `Docsum extracts text from documents (PDF, PPTX, DOCX, plain text)
and either reports statistics about them or condenses them into a short
extractive summary.

Available commands:
  analyze    - Word/sentence counts, frequency table, top words, keywords
  summarize  - Condense a document to its highest-scoring sentences`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}
