package match

import "strings"

// maxSuggestionItems caps how many skill/keyword names a suggestion lists.
const maxSuggestionItems = 5

// ruleContext is the read-only view a recommendation rule evaluates.
type ruleContext struct {
	result    *MatchResult
	resume    *ResumeContent
	jobTokens map[string]bool
	resumeKW  map[string]bool
}

// recommendationRule pairs a firing predicate with a builder. Rules are
// independent: several can fire for one input, each at most once.
type recommendationRule struct {
	when  func(*ruleContext) bool
	build func(*ruleContext) Recommendation
}

// recommendationRules is evaluated in slice order, and that order is the
// output order. Reordering this table is an observable behavior change.
var recommendationRules = []recommendationRule{
	{
		when: func(c *ruleContext) bool { return len(c.result.MissingSkills) > 0 },
		build: func(c *ruleContext) Recommendation {
			return Recommendation{
				Category:   RecommendSkills,
				Priority:   PriorityHigh,
				Suggestion: "Add these missing skills to your resume if you have them: " + joinFirst(c.result.MissingSkills, maxSuggestionItems),
			}
		},
	},
	{
		when: func(c *ruleContext) bool { return len(c.result.MissingKeywords) > 3 },
		build: func(c *ruleContext) Recommendation {
			return Recommendation{
				Category:   RecommendKeywords,
				Priority:   PriorityHigh,
				Suggestion: "Incorporate these keywords from the job description: " + joinFirst(c.result.MissingKeywords, maxSuggestionItems),
			}
		},
	},
	{
		when: func(c *ruleContext) bool { return strings.TrimSpace(c.resume.Summary) == "" },
		build: func(c *ruleContext) Recommendation {
			return Recommendation{
				Category:   RecommendSummary,
				Priority:   PriorityMedium,
				Suggestion: "Add a professional summary that highlights your fit for this role",
			}
		},
	},
	{
		when: func(c *ruleContext) bool { return c.result.SectionScores.Experience < 50 },
		build: func(c *ruleContext) Recommendation {
			return Recommendation{
				Category:   RecommendExperience,
				Priority:   PriorityHigh,
				Suggestion: "Emphasize experiences that align with job requirements",
			}
		},
	},
	{
		when: func(c *ruleContext) bool { return c.jobTokens["team"] && !c.resumeKW["team"] },
		build: func(c *ruleContext) Recommendation {
			return Recommendation{
				Category:   RecommendExperience,
				Priority:   PriorityMedium,
				Suggestion: "Highlight teamwork and collaboration in your experience",
			}
		},
	},
	{
		when: func(c *ruleContext) bool { return c.jobTokens["lead"] && !c.resumeKW["lead"] },
		build: func(c *ruleContext) Recommendation {
			return Recommendation{
				Category:   RecommendExperience,
				Priority:   PriorityMedium,
				Suggestion: "Emphasize leadership roles and initiatives",
			}
		},
	},
}

// GenerateRecommendations evaluates the rule table against a computed
// match result. Pure and deterministic: identical inputs produce an
// identical list in identical order.
func GenerateRecommendations(result *MatchResult, resume *ResumeContent, jobText string) []Recommendation {
	ctx := &ruleContext{
		result: result,
		resume: resume,
		jobTokens: func() map[string]bool {
			set := make(map[string]bool)
			for _, w := range rawTokens(jobText) {
				set[w] = true
			}
			return set
		}(),
		resumeKW: func() map[string]bool {
			set := make(map[string]bool)
			for _, w := range rawTokens(FlattenResume(resume)) {
				set[w] = true
			}
			return set
		}(),
	}

	recs := []Recommendation{}
	for _, rule := range recommendationRules {
		if rule.when(ctx) {
			recs = append(recs, rule.build(ctx))
		}
	}
	return recs
}

// joinFirst joins up to n items with commas.
func joinFirst(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
