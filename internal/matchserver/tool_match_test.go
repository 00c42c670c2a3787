package matchserver

import (
	"context"
	"strings"
	"testing"

	"github.com/resumatch/go_match/internal/engine"
	"github.com/resumatch/go_match/internal/engine/match"
)

func TestResolveJobTextPrecedence(t *testing.T) {
	t.Run("explicit text wins", func(t *testing.T) {
		got, err := resolveJobText(engine.MatchResumeInput{
			JobText:  "plain text",
			JobHTML:  "<p>html</p>",
			JobTitle: "title",
		})
		if err != nil {
			t.Fatalf("resolveJobText error: %v", err)
		}
		if got != "plain text" {
			t.Errorf("got %q, want plain text", got)
		}
	})

	t.Run("html converted", func(t *testing.T) {
		got, err := resolveJobText(engine.MatchResumeInput{
			JobHTML: "<h1>Go Engineer</h1><p>Remote role</p>",
		})
		if err != nil {
			t.Fatalf("resolveJobText error: %v", err)
		}
		if !strings.Contains(got, "Go Engineer") || strings.Contains(got, "<h1>") {
			t.Errorf("HTML not converted: %q", got)
		}
	})

	t.Run("posting fields concatenated", func(t *testing.T) {
		got, err := resolveJobText(engine.MatchResumeInput{
			JobTitle:        "Go Engineer",
			JobCompany:      "Acme",
			JobRequirements: "Kubernetes required",
		})
		if err != nil {
			t.Fatalf("resolveJobText error: %v", err)
		}
		for _, want := range []string{"Go Engineer", "Acme", "Kubernetes required"} {
			if !strings.Contains(got, want) {
				t.Errorf("job text missing %q: %q", want, got)
			}
		}
	})

	t.Run("nothing provided", func(t *testing.T) {
		if _, err := resolveJobText(engine.MatchResumeInput{}); err == nil {
			t.Error("expected error for empty job input")
		}
	})
}

func TestResolveResume(t *testing.T) {
	ctx := context.Background()
	inline := &match.ResumeContent{Summary: "engineer"}

	t.Run("inline", func(t *testing.T) {
		got, err := resolveResume(ctx, engine.MatchResumeInput{Resume: inline})
		if err != nil {
			t.Fatalf("resolveResume error: %v", err)
		}
		if got != inline {
			t.Error("inline resume not returned as-is")
		}
	})

	t.Run("both sources rejected", func(t *testing.T) {
		_, err := resolveResume(ctx, engine.MatchResumeInput{Resume: inline, ResumeID: 7})
		if err == nil {
			t.Error("expected error when both resume and resume_id are set")
		}
	})

	t.Run("neither source rejected", func(t *testing.T) {
		if _, err := resolveResume(ctx, engine.MatchResumeInput{}); err == nil {
			t.Error("expected error when no resume source is given")
		}
	})

	t.Run("id without database", func(t *testing.T) {
		_, err := resolveResume(ctx, engine.MatchResumeInput{ResumeID: 7})
		if err == nil {
			t.Error("expected error when resume DB is not configured")
		}
	})
}
