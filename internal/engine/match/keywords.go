package match

import (
	"regexp"
	"sort"
)

// DefaultTopKeywords caps how many ranked keywords extraction returns
// unless the caller asks for a different budget.
const DefaultTopKeywords = 20

// qualificationMarkers recognizes degree and certification keywords.
var qualificationMarkers = map[string]bool{
	"bachelor": true, "bachelors": true, "master": true, "masters": true,
	"phd": true, "doctorate": true, "degree": true, "diploma": true,
	"certification": true, "certifications": true, "certified": true,
}

// yearsRe matches experience-duration phrases like "5 years" or "3years".
var yearsRe = regexp.MustCompile(`\d+\s*years?`)

// ExtractKeywords tokenizes text, frequency-ranks unigram tokens and
// returns the top topN as categorized keywords. Ranking is deterministic:
// descending frequency, ties broken by first occurrence. topN <= 0 falls
// back to DefaultTopKeywords. All-stopword input yields an empty slice.
func ExtractKeywords(text string, topN int) []Keyword {
	return extractKeywords(text, topN, false, DefaultTaxonomy())
}

// ExtractKeywordsWithPhrases additionally ranks bigrams and trigrams built
// from tokens that are adjacent in the raw word stream. Windows spanning a
// dropped stop word or short token are excluded, so "experience with
// Python" never produces the phrase "experience python".
func ExtractKeywordsWithPhrases(text string, topN int) []Keyword {
	return extractKeywords(text, topN, true, DefaultTaxonomy())
}

type keywordStat struct {
	word  string
	freq  int
	first int // raw-stream position of first occurrence
	order int // discovery order, the deterministic tie-break
}

func extractKeywords(text string, topN int, phrases bool, tax *Taxonomy) []Keyword {
	if topN <= 0 {
		topN = DefaultTopKeywords
	}

	tokens := tokenizeIndexed(text)
	stats := make(map[string]*keywordStat, len(tokens))
	var ordered []*keywordStat

	note := func(word string, pos int) {
		s, ok := stats[word]
		if !ok {
			s = &keywordStat{word: word, first: pos, order: len(ordered)}
			stats[word] = s
			ordered = append(ordered, s)
		}
		s.freq++
	}

	for _, tok := range tokens {
		note(tok.word, tok.pos)
	}

	if phrases {
		for i := range tokens {
			for n := 2; n <= 3; n++ {
				if i+n > len(tokens) {
					break
				}
				// Adjacency in the raw stream means nothing was dropped
				// inside the window.
				if tokens[i+n-1].pos != tokens[i].pos+n-1 {
					break
				}
				phrase := tokens[i].word
				for j := 1; j < n; j++ {
					phrase += " " + tokens[i+j].word
				}
				note(phrase, tokens[i].pos)
			}
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].freq != ordered[j].freq {
			return ordered[i].freq > ordered[j].freq
		}
		return ordered[i].order < ordered[j].order
	})
	if len(ordered) > topN {
		ordered = ordered[:topN]
	}

	out := make([]Keyword, len(ordered))
	for i, s := range ordered {
		out[i] = Keyword{
			Word:      s.word,
			Frequency: s.freq,
			Score:     keywordScore(s),
			Category:  classifyKeyword(s.word, tax),
		}
	}
	return out
}

// keywordScore is monotonic in frequency; the position term (< 1) boosts
// keywords that first appear earlier in the text without ever reordering
// different frequencies.
func keywordScore(s *keywordStat) float64 {
	return float64(s.freq) + 1.0/float64(s.first+2)
}

// classifyKeyword assigns a category: taxonomy hit wins, then the
// soft-skill lexicon, then qualification markers.
func classifyKeyword(word string, tax *Taxonomy) Category {
	switch {
	case tax.IsKnownSkill(word):
		return CategoryTechnical
	case softSkillLexicon[word]:
		return CategorySoftSkill
	case qualificationMarkers[word] || yearsRe.MatchString(word):
		return CategoryQualification
	default:
		return CategoryOther
	}
}
