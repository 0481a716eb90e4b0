// Package analyzer computes document statistics: word and sentence totals, a
// word frequency table and the most frequent words.
package analyzer

import (
	"sort"

	"docsum/pkg/docext"
	"docsum/pkg/texttool"
)

// WordFreq is one entry of the top-words ranking.
type WordFreq struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Report holds the statistics computed for one document.
type Report struct {
	Path          string         `json:"path,omitempty"`
	WordCount     int            `json:"word_count"`
	SentenceCount int            `json:"sentence_count"`
	UniqueWords   int            `json:"unique_words"`
	TopWords      []WordFreq     `json:"top_words"`
	Frequencies   map[string]int `json:"-"`
	Keywords      []Keyword      `json:"keywords,omitempty"`
}

// Analyze computes a Report for the given text. WordCount always equals the
// sum of the frequency-table counts. The top-K ranking skips stopwords; ties
// are broken by first occurrence in the document.
func Analyze(text string, topK int) (*Report, error) {
	tokens := texttool.Tokenize(text)
	if len(tokens) == 0 {
		return nil, docext.ErrEmptyDocument
	}

	freq := make(map[string]int, len(tokens))
	firstSeen := make(map[string]int, len(tokens))
	for i, tok := range tokens {
		if _, ok := freq[tok]; !ok {
			firstSeen[tok] = i
		}
		freq[tok]++
	}

	var ranked []string
	for word := range freq {
		if !texttool.IsStopword(word) {
			ranked = append(ranked, word)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if freq[a] != freq[b] {
			return freq[a] > freq[b]
		}
		return firstSeen[a] < firstSeen[b]
	})
	if topK > 0 && len(ranked) > topK {
		ranked = ranked[:topK]
	}

	top := make([]WordFreq, 0, len(ranked))
	for _, word := range ranked {
		top = append(top, WordFreq{Word: word, Count: freq[word]})
	}

	return &Report{
		WordCount:     len(tokens),
		SentenceCount: len(texttool.SplitSentences(text)),
		UniqueWords:   len(freq),
		TopWords:      top,
		Frequencies:   freq,
	}, nil
}
