// Package match implements the resume-to-job matching engine: keyword
// extraction from free-text job postings, set-overlap matching against a
// structured resume, composite 0–100 scoring, and rule-based recommendations.
//
// Every function in this package is a pure computation over its inputs plus
// the static taxonomy — no I/O, no shared mutable state. Caching and
// persistence live one layer up (engine cache, history store).
package match

// Category classifies an extracted keyword.
type Category string

const (
	CategoryTechnical     Category = "technical"
	CategorySoftSkill     Category = "soft_skill"
	CategoryQualification Category = "qualification"
	CategoryOther         Category = "other"
)

// Priority ranks a recommendation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// RecommendationCategory names the resume area a recommendation targets.
type RecommendationCategory string

const (
	RecommendSkills     RecommendationCategory = "skills"
	RecommendKeywords   RecommendationCategory = "keywords"
	RecommendSummary    RecommendationCategory = "summary"
	RecommendExperience RecommendationCategory = "experience"
)

// Keyword is a ranked, categorized token or short phrase extracted from
// free text. Word is always lowercase; single tokens are alphanumeric,
// phrases are space-joined tokens.
type Keyword struct {
	Word      string   `json:"word"`
	Frequency int      `json:"frequency"`
	Score     float64  `json:"score"`
	Category  Category `json:"category"`
}

// RequirementTiers partitions extracted keywords by proximity to
// tier-indicating phrases. A keyword appears in at most one tier;
// keywords with no nearby indicator appear in none.
type RequirementTiers struct {
	MustHave   []string `json:"must_have"`
	NiceToHave []string `json:"nice_to_have"`
	Preferred  []string `json:"preferred"`
}

// ExperienceEntry is a single work-history item of a resume.
type ExperienceEntry struct {
	Position    string   `json:"position"`
	Description string   `json:"description"`
	Bullets     []string `json:"bullets"`
}

// ProjectEntry is a single project item of a resume.
type ProjectEntry struct {
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// SkillEntry is a declared skill name on a resume.
type SkillEntry struct {
	Name string `json:"name"`
}

// EducationEntry is an education item. Only presence matters to scoring.
type EducationEntry struct {
	School string `json:"school,omitempty"`
	Degree string `json:"degree,omitempty"`
}

// ResumeContent is the read-only structured resume view consumed by the
// engine. Lists may be empty but are treated as empty, never as errors:
// a missing section degrades the relevant sub-score gracefully.
type ResumeContent struct {
	Summary     string            `json:"summary"`
	Experiences []ExperienceEntry `json:"experiences"`
	Projects    []ProjectEntry    `json:"projects"`
	Skills      []SkillEntry      `json:"skills"`
	Educations  []EducationEntry  `json:"educations"`
}

// SectionScores holds the four weighted sub-scores and the overall
// composite, each in [0,100].
type SectionScores struct {
	Keywords   int `json:"keywords"`
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Education  int `json:"education"`
	Overall    int `json:"overall"`
}

// Recommendation is a single actionable suggestion for closing a gap
// between resume and job posting.
type Recommendation struct {
	Category   RecommendationCategory `json:"category"`
	Suggestion string                 `json:"suggestion"`
	Priority   Priority               `json:"priority"`
}

// MatchResult is the full outcome of matching one resume against one job
// description. Matched/missing lists are disjoint and together cover the
// extracted job keyword set.
type MatchResult struct {
	MatchScore      int              `json:"match_score"`
	MatchedSkills   []string         `json:"matched_skills"`
	MissingSkills   []string         `json:"missing_skills"`
	MatchedKeywords []string         `json:"matched_keywords"`
	MissingKeywords []string         `json:"missing_keywords"`
	SectionScores   SectionScores    `json:"section_scores"`
	Recommendations []Recommendation `json:"recommendations"`
}

// KeywordsByCategory groups extracted keyword words by category for the
// extraction entry point output.
type KeywordsByCategory struct {
	Technical      []string `json:"technical"`
	SoftSkills     []string `json:"soft_skills"`
	Qualifications []string `json:"qualifications"`
}

// ExtractResult is the structured output of the keyword extraction entry
// point.
type ExtractResult struct {
	Keywords           []Keyword          `json:"keywords"`
	TopKeywords        []string           `json:"top_keywords"`
	KeywordsByCategory KeywordsByCategory `json:"keywords_by_category"`
	Requirements       RequirementTiers   `json:"requirements"`
}
