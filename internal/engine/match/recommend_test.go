package match

import (
	"reflect"
	"strings"
	"testing"
)

func TestRecommendMissingSkills(t *testing.T) {
	result := &MatchResult{MissingSkills: []string{"aws", "docker"}}
	resume := &ResumeContent{Summary: "engineer"}
	recs := GenerateRecommendations(result, resume, "cloud role")

	if len(recs) == 0 {
		t.Fatal("expected at least one recommendation")
	}
	r := recs[0]
	if r.Category != RecommendSkills || r.Priority != PriorityHigh {
		t.Errorf("rec = %+v, want skills/high", r)
	}
	if !strings.Contains(r.Suggestion, "aws") || !strings.Contains(r.Suggestion, "docker") {
		t.Errorf("suggestion missing skill names: %q", r.Suggestion)
	}
}

func TestRecommendSuggestionCapsItems(t *testing.T) {
	result := &MatchResult{
		MissingSkills: []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7"},
	}
	recs := GenerateRecommendations(result, &ResumeContent{Summary: "x"}, "role")
	if strings.Contains(recs[0].Suggestion, "a6") {
		t.Errorf("suggestion lists more than 5 items: %q", recs[0].Suggestion)
	}
	if !strings.Contains(recs[0].Suggestion, "a5") {
		t.Errorf("suggestion should list first 5 items: %q", recs[0].Suggestion)
	}
}

func TestRecommendMissingKeywordsThreshold(t *testing.T) {
	// Exactly 3 missing keywords: below the firing threshold.
	result := &MatchResult{MissingKeywords: []string{"a", "b", "c"}}
	recs := GenerateRecommendations(result, &ResumeContent{Summary: "x"}, "role")
	for _, r := range recs {
		if r.Category == RecommendKeywords {
			t.Errorf("keywords rule fired at 3 missing: %+v", r)
		}
	}

	result.MissingKeywords = []string{"a", "b", "c", "d"}
	recs = GenerateRecommendations(result, &ResumeContent{Summary: "x"}, "role")
	found := false
	for _, r := range recs {
		if r.Category == RecommendKeywords && r.Priority == PriorityHigh {
			found = true
		}
	}
	if !found {
		t.Error("keywords rule did not fire at 4 missing")
	}
}

func TestRecommendEmptySummary(t *testing.T) {
	result := &MatchResult{SectionScores: SectionScores{Experience: 100}}
	recs := GenerateRecommendations(result, &ResumeContent{Summary: "   "}, "role")
	if len(recs) != 1 || recs[0].Category != RecommendSummary || recs[0].Priority != PriorityMedium {
		t.Errorf("recs = %+v, want single summary/medium", recs)
	}
}

func TestRecommendLowExperienceScore(t *testing.T) {
	result := &MatchResult{SectionScores: SectionScores{Experience: 40}}
	recs := GenerateRecommendations(result, &ResumeContent{Summary: "x"}, "role")
	found := false
	for _, r := range recs {
		if r.Category == RecommendExperience && r.Priority == PriorityHigh {
			found = true
		}
	}
	if !found {
		t.Errorf("experience rule did not fire below 50: %+v", recs)
	}
}

func TestRecommendTeamAndLeadGaps(t *testing.T) {
	result := &MatchResult{SectionScores: SectionScores{Experience: 100}}
	resume := &ResumeContent{Summary: "solo contributor"}
	recs := GenerateRecommendations(result, resume, "join our team and lead projects")

	if len(recs) != 2 {
		t.Fatalf("recs = %+v, want teamwork and leadership", recs)
	}
	if !strings.Contains(recs[0].Suggestion, "teamwork") {
		t.Errorf("first rec = %q, want teamwork suggestion", recs[0].Suggestion)
	}
	if !strings.Contains(recs[1].Suggestion, "leadership") {
		t.Errorf("second rec = %q, want leadership suggestion", recs[1].Suggestion)
	}
}

func TestRecommendTeamPresentInResume(t *testing.T) {
	result := &MatchResult{SectionScores: SectionScores{Experience: 100}}
	resume := &ResumeContent{Summary: "team player"}
	recs := GenerateRecommendations(result, resume, "join our team")
	for _, r := range recs {
		if strings.Contains(r.Suggestion, "teamwork") {
			t.Errorf("teamwork rule fired although resume mentions team: %+v", r)
		}
	}
}

func TestRecommendationsDeterministicOrder(t *testing.T) {
	result := &MatchResult{
		MissingSkills:   []string{"aws"},
		MissingKeywords: []string{"a", "b", "c", "d"},
		SectionScores:   SectionScores{Experience: 10},
	}
	resume := &ResumeContent{}
	a := GenerateRecommendations(result, resume, "team lead role")
	b := GenerateRecommendations(result, resume, "team lead role")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("recommendation order differs between runs:\n%v\n%v", a, b)
	}

	// Fixed rule-table order: skills, keywords, summary, experience, team, lead.
	wantCats := []RecommendationCategory{
		RecommendSkills, RecommendKeywords, RecommendSummary,
		RecommendExperience, RecommendExperience, RecommendExperience,
	}
	if len(a) != len(wantCats) {
		t.Fatalf("got %d recs, want %d: %+v", len(a), len(wantCats), a)
	}
	for i, want := range wantCats {
		if a[i].Category != want {
			t.Errorf("rec %d category = %q, want %q", i, a[i].Category, want)
		}
	}
}

func TestNoRecommendationsForStrongMatch(t *testing.T) {
	result := &MatchResult{SectionScores: SectionScores{Experience: 100}}
	resume := &ResumeContent{Summary: "seasoned engineer"}
	recs := GenerateRecommendations(result, resume, "python role")
	if recs == nil {
		t.Fatal("recs must be non-nil")
	}
	if len(recs) != 0 {
		t.Errorf("strong match produced recommendations: %+v", recs)
	}
}
