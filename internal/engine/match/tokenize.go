package match

import (
	"strings"
	"unicode"
)

// stopWords filters articles, prepositions, common conjunctions and forms
// of "to be" that add noise to keyword ranking.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "had": true,
	"has": true, "have": true, "was": true, "were": true, "been": true,
	"being": true, "will": true, "with": true, "this": true, "that": true,
	"these": true, "those": true, "from": true, "they": true, "them": true,
	"their": true, "our": true, "your": true, "its": true, "into": true,
	"onto": true, "over": true, "under": true, "about": true, "above": true,
	"below": true, "between": true, "through": true, "during": true,
	"before": true, "after": true, "while": true, "than": true, "then": true,
	"when": true, "where": true, "which": true, "what": true, "who": true,
	"whom": true, "why": true, "how": true, "each": true, "any": true,
	"both": true, "more": true, "most": true, "other": true, "some": true,
	"such": true, "only": true, "own": true, "same": true, "very": true,
	"also": true, "per": true, "via": true, "upon": true, "within": true,
	"without": true, "against": true, "among": true, "because": true,
	"until": true, "since": true, "off": true, "out": true, "too": true,
}

// minTokenLen: tokens of 2 chars or fewer carry no signal ("of", "to", "a").
const minTokenLen = 3

// Tokenize lowercases text, treats any non-alphanumeric rune as a
// separator, and drops short tokens and stop words. Empty or
// whitespace-only input yields an empty (non-nil) slice. No stemming.
func Tokenize(text string) []string {
	indexed := tokenizeIndexed(text)
	out := make([]string, len(indexed))
	for i, tok := range indexed {
		out[i] = tok.word
	}
	return out
}

// TokenSet returns the unique tokens of text as a membership set.
func TokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range Tokenize(text) {
		set[w] = true
	}
	return set
}

// token is a kept token annotated with its position in the raw word
// stream. Positions let the n-gram extractor tell adjacent tokens apart
// from tokens separated by a dropped stop word.
type token struct {
	word string
	pos  int
}

// tokenizeIndexed is Tokenize plus raw-stream positions.
func tokenizeIndexed(text string) []token {
	out := []token{}
	for pos, w := range rawTokens(text) {
		if len(w) < minTokenLen || stopWords[w] {
			continue
		}
		out = append(out, token{word: w, pos: pos})
	}
	return out
}

// rawTokens splits text into every lowercased alphanumeric run, in order,
// with no length or stop-word filtering. Used for tier proximity scans
// and Jaccard token sets.
func rawTokens(text string) []string {
	var words []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			words = append(words, b.String())
			b.Reset()
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return words
}
