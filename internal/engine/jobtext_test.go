package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildJobText(t *testing.T) {
	tests := []struct {
		name                               string
		title, company, body, requirements string
		want                               string
	}{
		{
			name:  "all fields",
			title: "Senior Engineer", company: "Acme", body: "Build things", requirements: "Go, SQL",
			want: "Senior Engineer\n\nAcme\n\nBuild things\n\nGo, SQL",
		},
		{
			name:  "empty fields skipped",
			title: "Senior Engineer", requirements: "Go",
			want: "Senior Engineer\n\nGo",
		},
		{
			name: "whitespace-only fields skipped",
			body: "   \n ",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildJobText(tt.title, tt.company, tt.body, tt.requirements)
			if got != tt.want {
				t.Errorf("BuildJobText = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJobTextFromHTML(t *testing.T) {
	src := `<html><body>
		<h1>Senior Go Engineer</h1>
		<p>We build <b>distributed systems</b> in Go.</p>
		<script>trackPageView();</script>
		<ul><li>5+ years experience</li><li>Kubernetes required</li></ul>
	</body></html>`

	text, err := JobTextFromHTML(src)
	require.NoError(t, err)

	require.Contains(t, text, "Senior Go Engineer")
	require.Contains(t, text, "distributed systems")
	require.Contains(t, text, "Kubernetes required")
	require.NotContains(t, text, "trackPageView")
	require.NotContains(t, text, "<p>")
}

func TestJobTextFromHTMLEmpty(t *testing.T) {
	_, err := JobTextFromHTML("   ")
	require.Error(t, err)
}

func TestJobTextFromHTMLPlainText(t *testing.T) {
	// Text without markup passes through intact.
	text, err := JobTextFromHTML("Python developer, remote")
	require.NoError(t, err)
	require.True(t, strings.Contains(text, "Python developer"))
}
