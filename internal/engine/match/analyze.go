package match

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Invalid-input sentinels. These are the only error conditions the engine
// raises; degenerate-but-valid input (all-stopword text, empty resume
// sections) resolves to documented defaults instead.
var (
	ErrEmptyJobText = errors.New("job description text is empty")
	ErrNilResume    = errors.New("resume is required")
)

// MatchResumeToJob matches a structured resume against free-text job
// description and returns the full scored result. The call is a pure
// function of its inputs: repeated calls with unchanged data return an
// identical result, recommendations order included.
func MatchResumeToJob(resume *ResumeContent, jobText string) (*MatchResult, error) {
	if resume == nil {
		return nil, ErrNilResume
	}
	if strings.TrimSpace(jobText) == "" {
		return nil, ErrEmptyJobText
	}

	tax := DefaultTaxonomy()
	jobKeywords := extractKeywords(jobText, DefaultTopKeywords, false, tax)

	resumeKeywords := Tokenize(FlattenResume(resume))
	skillNames := make([]string, len(resume.Skills))
	for i, s := range resume.Skills {
		skillNames[i] = s.Name
	}

	matched, missing := MatchKeywords(jobKeywords, resumeKeywords, skillNames)

	// Skills partition: the technical subset of the job keywords, split by
	// the same matched set.
	matchedSet := make(map[string]bool, len(matched))
	for _, w := range matched {
		matchedSet[w] = true
	}
	matchedSkills, missingSkills := []string{}, []string{}
	for _, kw := range jobKeywords {
		if kw.Category != CategoryTechnical {
			continue
		}
		if matchedSet[kw.Word] {
			matchedSkills = append(matchedSkills, kw.Word)
		} else {
			missingSkills = append(missingSkills, kw.Word)
		}
	}

	scores := ScoreSections(resume, jobKeywords, matched, RequiresDegree(jobText))

	result := &MatchResult{
		MatchScore:      scores.Overall,
		MatchedSkills:   matchedSkills,
		MissingSkills:   missingSkills,
		MatchedKeywords: matched,
		MissingKeywords: missing,
		SectionScores:   scores,
	}
	result.Recommendations = GenerateRecommendations(result, resume, jobText)
	return result, nil
}

// ExtractKeywordSummary runs keyword extraction and classification over a
// block of free text and returns ranked keywords, category groupings, and
// requirement tiers. includePhrases turns on bigram/trigram extraction.
func ExtractKeywordSummary(text string, topN int, includePhrases bool) (*ExtractResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyJobText
	}

	keywords := extractKeywords(text, topN, includePhrases, DefaultTaxonomy())

	out := &ExtractResult{
		Keywords:    keywords,
		TopKeywords: []string{},
		KeywordsByCategory: KeywordsByCategory{
			Technical:      []string{},
			SoftSkills:     []string{},
			Qualifications: []string{},
		},
		Requirements: ClassifyTiers(text, keywords),
	}
	for _, kw := range keywords {
		out.TopKeywords = append(out.TopKeywords, kw.Word)
		switch kw.Category {
		case CategoryTechnical:
			out.KeywordsByCategory.Technical = append(out.KeywordsByCategory.Technical, kw.Word)
		case CategorySoftSkill:
			out.KeywordsByCategory.SoftSkills = append(out.KeywordsByCategory.SoftSkills, kw.Word)
		case CategoryQualification:
			out.KeywordsByCategory.Qualifications = append(out.KeywordsByCategory.Qualifications, kw.Word)
		}
	}
	return out, nil
}

// FlattenResume concatenates every text-bearing resume field into one
// block for tokenization: summary, experiences, projects, skill names and
// education lines, in declaration order.
func FlattenResume(resume *ResumeContent) string {
	if resume == nil {
		return ""
	}
	var b strings.Builder
	add := func(s string) {
		if s == "" {
			return
		}
		b.WriteString(s)
		b.WriteByte('\n')
	}

	add(resume.Summary)
	for _, e := range resume.Experiences {
		add(e.Position)
		add(e.Description)
		for _, bullet := range e.Bullets {
			add(bullet)
		}
	}
	for _, p := range resume.Projects {
		add(p.Description)
		add(strings.Join(p.Technologies, " "))
	}
	for _, s := range resume.Skills {
		add(s.Name)
	}
	for _, e := range resume.Educations {
		add(e.School)
		add(e.Degree)
	}
	return b.String()
}

// ResumeFingerprint returns a stable content hash of a resume, used to
// address cache entries and history rows. Identical content always maps
// to the same fingerprint.
func ResumeFingerprint(resume *ResumeContent) string {
	data, err := json.Marshal(resume)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%x", sum[:12])
}

// JobFingerprint returns a stable hash of normalized job text: tokenized
// form, so whitespace and punctuation differences collapse to one key.
func JobFingerprint(jobText string) string {
	sum := sha256.Sum256([]byte(strings.Join(rawTokens(jobText), " ")))
	return fmt.Sprintf("%x", sum[:12])
}
