package match

import "testing"

func TestScoreSectionsBounds(t *testing.T) {
	resume := &ResumeContent{
		Skills: []SkillEntry{{Name: "Python"}},
		Experiences: []ExperienceEntry{
			{Position: "Engineer", Description: "Wrote python services"},
		},
	}
	jobKW := ExtractKeywords("python docker kafka required degree", 10)
	matched, _ := MatchKeywords(jobKW, Tokenize(FlattenResume(resume)), []string{"Python"})

	s := ScoreSections(resume, jobKW, matched, true)
	for name, v := range map[string]int{
		"keywords":   s.Keywords,
		"skills":     s.Skills,
		"experience": s.Experience,
		"education":  s.Education,
		"overall":    s.Overall,
	} {
		if v < 0 || v > 100 {
			t.Errorf("%s score %d out of [0,100]", name, v)
		}
	}
}

func TestScoreSectionsZeroDenominators(t *testing.T) {
	resume := &ResumeContent{}

	// No job keywords at all: keyword and skill ratios resolve to 0, not to
	// a division error.
	s := ScoreSections(resume, nil, nil, false)
	if s.Keywords != 0 {
		t.Errorf("Keywords = %d, want 0 with no job keywords", s.Keywords)
	}
	if s.Skills != 0 {
		t.Errorf("Skills = %d, want 0 with no technical keywords", s.Skills)
	}
}

func TestExperienceScoreNeutralWhenEmpty(t *testing.T) {
	resume := &ResumeContent{} // no experience entries
	jobKW := ExtractKeywords("python docker", 10)
	s := ScoreSections(resume, jobKW, nil, false)
	if s.Experience != 50 {
		t.Errorf("Experience = %d, want neutral 50 for empty section", s.Experience)
	}
}

func TestExperienceScoreRelevantEntries(t *testing.T) {
	resume := &ResumeContent{
		Experiences: []ExperienceEntry{
			{Position: "Backend Engineer", Description: "Python microservices"},
			{Position: "Barista", Description: "Espresso and latte art"},
		},
	}
	jobKW := kw("python")
	s := ScoreSections(resume, jobKW, nil, false)
	if s.Experience != 50 {
		t.Errorf("Experience = %d, want 50 (1 of 2 entries relevant)", s.Experience)
	}
}

func TestEducationScore(t *testing.T) {
	tests := []struct {
		name           string
		hasEducation   bool
		requiresDegree bool
		want           int
	}{
		{"required and present", true, true, 100},
		{"required and absent", false, true, 0},
		{"not required, present", true, false, 50},
		{"not required, absent", false, false, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resume := &ResumeContent{}
			if tt.hasEducation {
				resume.Educations = []EducationEntry{{School: "MIT", Degree: "BSc"}}
			}
			s := ScoreSections(resume, nil, nil, tt.requiresDegree)
			if s.Education != tt.want {
				t.Errorf("Education = %d, want %d", s.Education, tt.want)
			}
		})
	}
}

func TestRequiresDegree(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Bachelor's degree required", true},
		{"Master of Science preferred", true},
		{"PhD a plus", true},
		{"We value experience over everything", false},
	}
	for _, tt := range tests {
		if got := RequiresDegree(tt.text); got != tt.want {
			t.Errorf("RequiresDegree(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct{ in, want int }{
		{-5, 0}, {0, 0}, {57, 57}, {100, 100}, {140, 100},
	}
	for _, tt := range tests {
		if got := clampScore(tt.in); got != tt.want {
			t.Errorf("clampScore(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestOverallIsWeightedComposite(t *testing.T) {
	// All sections perfect: composite must be exactly 100.
	resume := &ResumeContent{
		Summary:     "python docker",
		Skills:      []SkillEntry{{Name: "python"}, {Name: "docker"}},
		Experiences: []ExperienceEntry{{Description: "python and docker work"}},
		Educations:  []EducationEntry{{School: "MIT", Degree: "BSc"}},
	}
	jobKW := kw2("python", CategoryTechnical, "docker", CategoryTechnical)
	s := ScoreSections(resume, jobKW, []string{"python", "docker"}, true)
	if s.Overall != 100 {
		t.Errorf("Overall = %d, want 100 (all sections at 100)", s.Overall)
	}
}

// kw2 builds keywords with explicit categories: word, category pairs.
func kw2(pairs ...any) []Keyword {
	out := []Keyword{}
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, Keyword{Word: pairs[i].(string), Category: pairs[i+1].(Category)})
	}
	return out
}
