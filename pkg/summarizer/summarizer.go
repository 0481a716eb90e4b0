// Package summarizer produces an extractive summary: the top-scoring
// sentences of a document, re-emitted in their original order.
package summarizer

import (
	"sort"
	"strings"

	"docsum/pkg/docext"
	"docsum/pkg/texttool"
)

// Target bounds the summary length. Sentences takes precedence when set;
// otherwise Ratio selects a fraction of the source sentence count. Either
// way at least one sentence is produced.
type Target struct {
	Sentences int
	Ratio     float64
}

func (t Target) resolve(total int) int {
	n := t.Sentences
	if n <= 0 && t.Ratio > 0 {
		n = int(float64(total) * t.Ratio)
	}
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	return n
}

// Summarize scores each sentence by the document-wide frequencies of its
// non-stopword tokens, normalized by sentence length, and keeps the top
// sentences up to the target. Ties go to the earlier sentence. The selection
// is reassembled in document order, never score order.
func Summarize(text string, target Target) (string, error) {
	sentences := texttool.SplitSentences(text)
	if len(sentences) == 0 {
		return "", docext.ErrEmptyDocument
	}

	freq := make(map[string]int)
	for _, tok := range texttool.Tokenize(text) {
		if !texttool.IsStopword(tok) {
			freq[tok]++
		}
	}

	scores := make([]float64, len(sentences))
	for i, sentence := range sentences {
		tokens := texttool.Tokenize(sentence)
		if len(tokens) == 0 {
			continue
		}
		sum := 0
		for _, tok := range tokens {
			sum += freq[tok]
		}
		scores[i] = float64(sum) / float64(len(tokens))
	}

	order := make([]int, len(sentences))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	selected := order[:target.resolve(len(sentences))]
	sort.Ints(selected)

	picked := make([]string, 0, len(selected))
	for _, i := range selected {
		picked = append(picked, sentences[i])
	}
	return strings.Join(picked, " "), nil
}
