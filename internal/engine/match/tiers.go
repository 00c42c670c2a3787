package match

import "strings"

// tierWindow is how many raw tokens on each side of a keyword occurrence
// the tier scan inspects for an indicator.
const tierWindow = 5

// Tier indicator tokens. Checked against raw (unfiltered) tokens so that
// short or stop-word indicators still count.
var (
	mustHaveIndicators = map[string]bool{
		"required": true, "require": true, "requires": true,
		"must": true, "mandatory": true, "essential": true,
	}
	niceToHaveIndicators = map[string]bool{
		"nice": true, "bonus": true, "plus": true,
	}
	preferredIndicators = map[string]bool{
		"preferred": true, "preferably": true, "desirable": true,
	}
)

// ClassifyTiers assigns each keyword to at most one requirement tier by
// scanning a ±tierWindow token window around every occurrence for an
// indicator. The first indicator found wins, which resolves ambiguity
// deterministically; a keyword with no nearby indicator lands in no tier.
// Missed assignments are acceptable, cross-tier duplicates are not.
func ClassifyTiers(text string, keywords []Keyword) RequirementTiers {
	tiers := RequirementTiers{
		MustHave:   []string{},
		NiceToHave: []string{},
		Preferred:  []string{},
	}

	raw := rawTokens(text)
	for _, kw := range keywords {
		switch classifyTier(raw, kw.Word) {
		case "must_have":
			tiers.MustHave = append(tiers.MustHave, kw.Word)
		case "nice_to_have":
			tiers.NiceToHave = append(tiers.NiceToHave, kw.Word)
		case "preferred":
			tiers.Preferred = append(tiers.Preferred, kw.Word)
		}
	}
	return tiers
}

// classifyTier finds the first tier indicator near any occurrence of word.
// Phrases are located by their leading token.
func classifyTier(raw []string, word string) string {
	lead := word
	if i := strings.IndexByte(word, ' '); i > 0 {
		lead = word[:i]
	}

	for i, tok := range raw {
		if tok != lead {
			continue
		}
		lo := i - tierWindow
		if lo < 0 {
			lo = 0
		}
		hi := i + tierWindow
		if hi >= len(raw) {
			hi = len(raw) - 1
		}
		for j := lo; j <= hi; j++ {
			if j == i {
				continue
			}
			switch {
			case mustHaveIndicators[raw[j]]:
				return "must_have"
			case niceToHaveIndicators[raw[j]]:
				return "nice_to_have"
			case preferredIndicators[raw[j]]:
				return "preferred"
			}
		}
	}
	return ""
}
