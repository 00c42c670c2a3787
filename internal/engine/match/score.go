package match

import (
	"math"
	"regexp"
	"strings"
)

// Fixed scoring policy. The weights must sum to 1.0; they are constants,
// not configuration, so two deployments never disagree on a score.
const (
	weightKeywords   = 0.30
	weightSkills     = 0.35
	weightExperience = 0.25
	weightEducation  = 0.10
)

// neutralScore is the sub-score used when the resume carries no data for a
// section. Absence of data is not punished as hard as a proven mismatch.
const neutralScore = 50

// degreeRe detects an explicit degree requirement in job text.
var degreeRe = regexp.MustCompile(`(?i)bachelor|master|phd|degree`)

// RequiresDegree reports whether the job text signals a degree requirement.
func RequiresDegree(jobText string) bool {
	return degreeRe.MatchString(jobText)
}

// ScoreSections computes the four weighted sub-scores and the overall
// composite. Zero denominators resolve to explicit defaults, never to
// errors: no job keywords → 0, no technical job keywords → 0, no
// experience entries → neutral 50, no degree requirement → neutral 50.
func ScoreSections(resume *ResumeContent, jobKeywords []Keyword, matched []string, requiresDegree bool) SectionScores {
	matchedSet := make(map[string]bool, len(matched))
	for _, w := range matched {
		matchedSet[w] = true
	}

	var s SectionScores
	s.Keywords = ratioScore(len(matched), len(jobKeywords))
	s.Skills = skillScore(jobKeywords, matchedSet)
	s.Experience = experienceScore(resume.Experiences, jobKeywords)
	s.Education = educationScore(len(resume.Educations) > 0, requiresDegree)

	s.Overall = clampScore(int(math.Round(
		weightKeywords*float64(s.Keywords) +
			weightSkills*float64(s.Skills) +
			weightExperience*float64(s.Experience) +
			weightEducation*float64(s.Education))))
	return s
}

// ratioScore converts hit/total into a 0–100 score, 0 when total is zero.
func ratioScore(hit, total int) int {
	if total == 0 {
		return 0
	}
	return clampScore(int(math.Round(float64(hit) / float64(total) * 100)))
}

// skillScore is the match ratio restricted to job keywords the taxonomy
// recognizes as technical skills.
func skillScore(jobKeywords []Keyword, matchedSet map[string]bool) int {
	total, hit := 0, 0
	for _, kw := range jobKeywords {
		if kw.Category != CategoryTechnical {
			continue
		}
		total++
		if matchedSet[kw.Word] {
			hit++
		}
	}
	if total == 0 {
		return 0
	}
	return ratioScore(hit, total)
}

// experienceScore is the fraction of experience entries whose text
// mentions at least one job keyword. Zero entries scores neutral.
func experienceScore(entries []ExperienceEntry, jobKeywords []Keyword) int {
	if len(entries) == 0 {
		return neutralScore
	}
	relevant := 0
	for _, e := range entries {
		text := strings.ToLower(e.Position + " " + e.Description + " " + strings.Join(e.Bullets, " "))
		for _, kw := range jobKeywords {
			if strings.Contains(text, kw.Word) {
				relevant++
				break
			}
		}
	}
	return ratioScore(relevant, len(entries))
}

// educationScore: 100 when a required degree is present, 0 when required
// and absent, neutral when the job never asks.
func educationScore(hasEducation, requiresDegree bool) int {
	if !requiresDegree {
		return neutralScore
	}
	if hasEducation {
		return 100
	}
	return 0
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
