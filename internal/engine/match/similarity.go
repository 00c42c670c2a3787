package match

import "strings"

// MatchKeywords partitions jobKeywords into matched and missing against
// the resume's extracted keyword set and declared skill names. A job
// keyword matches on a verbatim, case-insensitive token hit — no fuzzy
// matching, no stemming. The two returned lists are disjoint and together
// cover every job keyword, preserving job-keyword rank order.
func MatchKeywords(jobKeywords []Keyword, resumeKeywords, resumeSkills []string) (matched, missing []string) {
	have := make(map[string]bool, len(resumeKeywords)+len(resumeSkills))
	for _, w := range resumeKeywords {
		have[strings.ToLower(w)] = true
	}
	for _, name := range resumeSkills {
		// A declared skill counts both as its full lowercased name and as
		// its individual tokens, so "Node.js" matches the keyword "node".
		have[strings.ToLower(strings.TrimSpace(name))] = true
		for _, w := range Tokenize(name) {
			have[w] = true
		}
	}

	matched = []string{}
	missing = []string{}
	for _, kw := range jobKeywords {
		if have[kw.Word] {
			matched = append(matched, kw.Word)
		} else {
			missing = append(missing, kw.Word)
		}
	}
	return matched, missing
}

// JaccardSimilarity computes |intersection| / |union| over the raw token
// sets of two strings. Identical non-empty strings score 1.0; if either
// side has no tokens the result is 0.0 — the empty/empty case never
// divides by zero.
func JaccardSimilarity(a, b string) float64 {
	setA := make(map[string]bool)
	for _, w := range rawTokens(a) {
		setA[w] = true
	}
	setB := make(map[string]bool)
	for _, w := range rawTokens(b) {
		setB[w] = true
	}
	if len(setA) == 0 || len(setB) == 0 {
		return 0.0
	}

	inter := 0
	for w := range setA {
		if setB[w] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	return float64(inter) / float64(union)
}
