package analyzer

import (
	"sort"

	rake "github.com/afjoseph/RAKE.Go"
)

// Keyword is a candidate key phrase with its RAKE score.
type Keyword struct {
	Phrase string  `json:"phrase"`
	Score  float64 `json:"score"`
}

// ExtractKeywords runs RAKE over the text and returns the n highest-scoring
// phrases. Equal scores are ordered alphabetically so output is stable.
func ExtractKeywords(text string, n int) []Keyword {
	candidates := rake.RunRake(text)
	keywords := make([]Keyword, 0, len(candidates))
	for _, c := range candidates {
		keywords = append(keywords, Keyword{Phrase: c.Key, Score: c.Value})
	}
	sort.SliceStable(keywords, func(i, j int) bool {
		if keywords[i].Score != keywords[j].Score {
			return keywords[i].Score > keywords[j].Score
		}
		return keywords[i].Phrase < keywords[j].Phrase
	})
	if n > 0 && len(keywords) > n {
		keywords = keywords[:n]
	}
	return keywords
}
