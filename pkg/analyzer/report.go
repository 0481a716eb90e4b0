package analyzer

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Render writes the report as human-readable tables.
func (r *Report) Render(w io.Writer) {
	if r.Path != "" {
		fmt.Fprintf(w, "Document: %s\n", r.Path)
	}

	metrics := tablewriter.NewWriter(w)
	metrics.SetHeader([]string{"Metric", "Value"})
	metrics.Append([]string{"Words", strconv.Itoa(r.WordCount)})
	metrics.Append([]string{"Sentences", strconv.Itoa(r.SentenceCount)})
	metrics.Append([]string{"Unique words", strconv.Itoa(r.UniqueWords)})
	metrics.Render()

	if len(r.TopWords) > 0 {
		top := tablewriter.NewWriter(w)
		top.SetHeader([]string{"Word", "Count"})
		for _, wf := range r.TopWords {
			top.Append([]string{wf.Word, strconv.Itoa(wf.Count)})
		}
		top.Render()
	}

	if len(r.Keywords) > 0 {
		kw := tablewriter.NewWriter(w)
		kw.SetHeader([]string{"Keyword", "Score"})
		for _, k := range r.Keywords {
			kw.Append([]string{k.Phrase, strconv.FormatFloat(k.Score, 'f', 1, 64)})
		}
		kw.Render()
	}
}
