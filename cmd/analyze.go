package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docsum/pkg/analyzer"
	"docsum/pkg/config"
	"docsum/pkg/docext"
	"docsum/pkg/filediscovery"
	"docsum/pkg/utils"
)

var (
	analyzeTop      int
	analyzeKeywords bool
	analyzeJSON     bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file-or-directory>",
	Short: "Report statistics for a document",
	Long: `Extracts the text of a document and prints word count, sentence count,
unique word count and the most frequent words. With --keywords, RAKE key
phrases are included. Given a directory, every supported document under it
is analyzed in turn (gitignored paths are skipped).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if analyzeTop <= 0 {
			analyzeTop = cfg.TopWords
		}

		paths, dirMode, err := resolveInputs(args[0])
		if err != nil {
			return err
		}

		logger := utils.GetLogger()
		var reports []*analyzer.Report
		for _, path := range paths {
			report, err := analyzeFile(path, cfg)
			if err != nil {
				if dirMode {
					fmt.Fprintf(os.Stderr, "skipping %s: %v\n", path, err)
					logger.Logf("analyze skipped %s: %v", path, err)
					continue
				}
				return err
			}
			logger.Logf("analyzed %s: %d words, %d sentences",
				path, report.WordCount, report.SentenceCount)
			reports = append(reports, report)
		}
		if len(reports) == 0 {
			return fmt.Errorf("no documents could be analyzed under %s", args[0])
		}

		if analyzeJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if dirMode {
				return enc.Encode(reports)
			}
			return enc.Encode(reports[0])
		}
		for i, report := range reports {
			if i > 0 {
				fmt.Println()
			}
			report.Render(os.Stdout)
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", 0, "Number of top words to report (default from config)")
	analyzeCmd.Flags().BoolVar(&analyzeKeywords, "keywords", false, "Include RAKE key phrases in the report")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit the report as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

// resolveInputs turns the argument into the list of documents to analyze and
// reports whether it named a directory.
func resolveInputs(arg string) ([]string, bool, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", arg, err)
	}
	if !info.IsDir() {
		return []string{arg}, false, nil
	}
	paths, err := filediscovery.Discover(arg)
	if err != nil {
		return nil, true, err
	}
	if len(paths) == 0 {
		return nil, true, fmt.Errorf("no supported documents found under %s", arg)
	}
	return paths, true, nil
}

func analyzeFile(path string, cfg *config.Config) (*analyzer.Report, error) {
	text, err := docext.Extract(path)
	if err != nil {
		return nil, err
	}
	report, err := analyzer.Analyze(text, analyzeTop)
	if err != nil {
		return nil, err
	}
	report.Path = path
	if analyzeKeywords {
		report.Keywords = analyzer.ExtractKeywords(text, cfg.KeywordCount)
	}
	return report, nil
}
