package match

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "The quick brown fox", []string{"quick", "brown", "fox"}},
		{"punctuation as separator", "C++, Node.js and SQL!", []string{"node", "sql"}},
		{"short tokens dropped", "go to a db of it", []string{}},
		{"stop words dropped", "the and for with this that", []string{}},
		{"mixed case", "Python PYTHON python", []string{"python", "python", "python"}},
		{"digits kept", "5 years kubernetes 2024", []string{"years", "kubernetes", "2024"}},
		{"empty", "", []string{}},
		{"whitespace only", "   \n\t  ", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if got == nil {
				t.Fatal("Tokenize returned nil, want non-nil slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizePreservesOrderAndDuplicates(t *testing.T) {
	got := Tokenize("python java python")
	want := []string{"python", "java", "python"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenSet(t *testing.T) {
	set := TokenSet("Python and python, JAVA")
	if len(set) != 2 {
		t.Errorf("TokenSet len = %d, want 2 (%v)", len(set), set)
	}
	if !set["python"] || !set["java"] {
		t.Errorf("TokenSet missing expected tokens: %v", set)
	}
}

func TestRawTokensUnfiltered(t *testing.T) {
	got := rawTokens("The DB is required.")
	want := []string{"the", "db", "is", "required"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rawTokens = %v, want %v", got, want)
	}
}

func TestTokenizeIndexedPositions(t *testing.T) {
	// "with" is a stop word, "a" is short: kept tokens must carry their
	// raw-stream positions so phrase adjacency can be checked later.
	toks := tokenizeIndexed("experience with a python")
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2: %v", len(toks), toks)
	}
	if toks[0].word != "experience" || toks[0].pos != 0 {
		t.Errorf("tokens[0] = %+v, want {experience 0}", toks[0])
	}
	if toks[1].word != "python" || toks[1].pos != 3 {
		t.Errorf("tokens[1] = %+v, want {python 3}", toks[1])
	}
}
