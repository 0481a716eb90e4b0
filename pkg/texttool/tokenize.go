// Package texttool provides the tokenization and sentence-splitting primitives
// shared by the analyzer and summarizer.
package texttool

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the NFC form of text. Extracted documents can carry
// decomposed code points depending on the source format.
func Normalize(text string) string {
	return norm.NFC.String(text)
}

// Tokenize splits text into lowercase word tokens. A token is a run of
// letters or digits; apostrophes and hyphens are kept when they sit between
// two such runes ("don't", "well-known"). Punctuation never produces tokens.
func Tokenize(text string) []string {
	folder := cases.Fold()
	runes := []rune(Normalize(text))

	var tokens []string
	var current []rune
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			current = append(current, r)
		case (r == '\'' || r == '-') && len(current) > 0 && i+1 < len(runes) &&
			(unicode.IsLetter(runes[i+1]) || unicode.IsDigit(runes[i+1])):
			current = append(current, r)
		default:
			if len(current) > 0 {
				tokens = append(tokens, folder.String(string(current)))
				current = nil
			}
		}
	}
	if len(current) > 0 {
		tokens = append(tokens, folder.String(string(current)))
	}
	return tokens
}

// SplitSentences splits text into sentences on '.', '!' and '?' boundaries
// followed by whitespace or end of input. Runs of terminators ("?!", "...")
// stay attached to the sentence they close. Internal whitespace is collapsed
// so that sentences read as single lines regardless of source layout.
func SplitSentences(text string) []string {
	runes := []rune(text)

	var sentences []string
	flush := func(segment []rune) {
		s := strings.Join(strings.Fields(string(segment)), " ")
		if s != "" {
			sentences = append(sentences, s)
		}
	}

	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminator(runes[i]) {
			continue
		}
		// Consume the full terminator run.
		end := i
		for end+1 < len(runes) && isTerminator(runes[end+1]) {
			end++
		}
		if end+1 < len(runes) && !unicode.IsSpace(runes[end+1]) {
			// Mid-token period, e.g. "3.14" or "v1.2". Not a boundary.
			i = end
			continue
		}
		flush(runes[start : end+1])
		start = end + 1
		i = end
	}
	if start < len(runes) {
		flush(runes[start:])
	}
	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
