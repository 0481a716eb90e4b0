package texttool

// stopwords is the English function-word set excluded when ranking words and
// scoring sentences. Totals and frequency counts always include them.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "an", "the", "and", "or", "but", "nor", "so", "yet",
		"of", "in", "on", "at", "to", "for", "from", "by", "with", "about",
		"as", "into", "onto", "over", "under", "between", "through", "during",
		"is", "am", "are", "was", "were", "be", "been", "being",
		"do", "does", "did", "doing", "have", "has", "had", "having",
		"will", "would", "shall", "should", "can", "could", "may", "might", "must",
		"i", "you", "he", "she", "it", "we", "they",
		"me", "him", "her", "us", "them",
		"my", "your", "his", "its", "our", "their",
		"this", "that", "these", "those",
		"what", "which", "who", "whom", "whose", "where", "when", "why", "how",
		"not", "no", "if", "then", "than", "there", "here",
		"all", "any", "both", "each", "few", "more", "most", "some", "such",
		"only", "own", "same", "too", "very", "just", "also",
	} {
		stopwords[w] = struct{}{}
	}
}

// IsStopword reports whether the lowercase token is a stopword.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
