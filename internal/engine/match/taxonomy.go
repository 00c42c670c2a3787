package match

import "strings"

// Taxonomy is the static reference data used to recognize known technical
// skills and seniority markers. It is data, not logic: extending coverage
// is a list change, never a scoring change.
type Taxonomy struct {
	skills    map[string]bool
	seniority []string
}

// NewTaxonomy builds a taxonomy from skill names and seniority phrases.
// Names are matched lowercased.
func NewTaxonomy(skills, seniority []string) *Taxonomy {
	t := &Taxonomy{
		skills:    make(map[string]bool, len(skills)),
		seniority: append([]string(nil), seniority...),
	}
	for _, s := range skills {
		t.skills[strings.ToLower(s)] = true
	}
	return t
}

// IsKnownSkill reports whether word (or the whole phrase) names a known
// technical skill. Membership test only — no fuzzy matching.
func (t *Taxonomy) IsKnownSkill(word string) bool {
	return t.skills[strings.ToLower(word)]
}

// SeniorityMarkers returns the seniority indicator phrases.
func (t *Taxonomy) SeniorityMarkers() []string {
	return append([]string(nil), t.seniority...)
}

// defaultSkills covers the common languages, frameworks and platforms seen
// in software job postings.
var defaultSkills = []string{
	"python", "java", "javascript", "typescript", "golang", "rust",
	"ruby", "php", "scala", "kotlin", "swift", "sql",
	"postgresql", "postgres", "mysql", "mongodb", "redis", "kafka",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
	"react", "angular", "vue", "node", "django", "flask",
	"spring", "graphql", "grpc", "linux", "git", "jenkins",
	"machine learning", "data analysis",
}

var defaultSeniority = []string{
	"senior", "junior", "lead", "principal", "staff", "entry level",
}

var defaultTaxonomy = NewTaxonomy(defaultSkills, defaultSeniority)

// DefaultTaxonomy returns the built-in skill/seniority reference data.
func DefaultTaxonomy() *Taxonomy { return defaultTaxonomy }

// softSkillLexicon recognizes interpersonal skill keywords.
var softSkillLexicon = map[string]bool{
	"communication": true, "leadership": true, "teamwork": true,
	"collaboration": true, "mentoring": true, "mentorship": true,
	"ownership": true, "initiative": true, "adaptability": true,
	"creativity": true, "presentation": true, "organization": true,
	"problem solving": true,
}
