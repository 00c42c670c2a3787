package matchserver

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/resumatch/go_match/internal/engine"
	"github.com/resumatch/go_match/internal/engine/match"
	"github.com/resumatch/go_match/internal/toolutil"
)

func registerMatchResumeToJob(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "match_resume_to_job",
		Description: "Match a structured resume against a job description. Returns a 0-100 composite score (keyword, skill, experience and education sub-scores), matched/missing skill and keyword lists, and prioritized recommendations for closing the gaps. The resume comes inline or by stored resume_id; the job as plain text, posting fields, or raw HTML.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.MatchResumeInput) (*mcp.CallToolResult, engine.MatchResumeOutput, error) {
		engine.IncrMatchRequests()
		if err := allowRequest(); err != nil {
			return nil, engine.MatchResumeOutput{}, err
		}

		resume, err := resolveResume(ctx, input)
		if err != nil {
			engine.IncrMatchErrors()
			return nil, engine.MatchResumeOutput{}, err
		}

		jobText, err := resolveJobText(input)
		if err != nil {
			engine.IncrMatchErrors()
			return nil, engine.MatchResumeOutput{}, err
		}

		resumeFP := match.ResumeFingerprint(resume)
		jobFP := match.JobFingerprint(jobText)

		cacheKey := engine.CacheKey("match_resume_to_job", resumeFP, jobFP)
		if out, ok := toolutil.CacheLoadJSON[engine.MatchResumeOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		var result *match.MatchResult
		err = engine.TrackOperation(ctx, "match_resume_to_job", func(context.Context) error {
			var matchErr error
			result, matchErr = match.MatchResumeToJob(resume, jobText)
			return matchErr
		})
		if err != nil {
			engine.IncrMatchErrors()
			return nil, engine.MatchResumeOutput{}, err
		}

		// History is best-effort: a broken local store must not fail the match.
		historyID, err := match.SaveMatch(ctx, resumeFP, jobFP,
			engine.TruncateRunes(jobText, 200, "..."), result)
		if err != nil {
			slog.Warn("match_resume_to_job: history save failed", slog.Any("error", err))
		}

		out := engine.MatchResumeOutput{
			Result:    result,
			HistoryID: historyID,
			Summary: fmt.Sprintf("Match score %d/100: %d of %d job keywords matched, %d missing skills.",
				result.MatchScore,
				len(result.MatchedKeywords),
				len(result.MatchedKeywords)+len(result.MissingKeywords),
				len(result.MissingSkills)),
		}
		toolutil.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}

// resolveResume returns the inline resume or loads a stored one. Exactly
// one source must be provided.
func resolveResume(ctx context.Context, input engine.MatchResumeInput) (*match.ResumeContent, error) {
	switch {
	case input.Resume != nil && input.ResumeID != 0:
		return nil, fmt.Errorf("provide either resume or resume_id, not both")
	case input.Resume != nil:
		return input.Resume, nil
	case input.ResumeID != 0:
		db := match.GetResumeDB()
		if db == nil {
			return nil, fmt.Errorf("resume_id requires the resume database (set DATABASE_URL)")
		}
		engine.IncrResumeLoads()
		resume, err := db.LoadResume(ctx, input.ResumeID)
		if err != nil {
			engine.IncrResumeLoadErrors()
			return nil, fmt.Errorf("load resume %d: %w", input.ResumeID, err)
		}
		return resume, nil
	default:
		return nil, fmt.Errorf("resume or resume_id is required")
	}
}

// resolveJobText normalizes the three job input forms into one text
// block: explicit text wins, then HTML, then posting fields.
func resolveJobText(input engine.MatchResumeInput) (string, error) {
	if strings.TrimSpace(input.JobText) != "" {
		return input.JobText, nil
	}
	if strings.TrimSpace(input.JobHTML) != "" {
		text, err := engine.JobTextFromHTML(input.JobHTML)
		if err != nil {
			return "", fmt.Errorf("convert job HTML: %w", err)
		}
		return text, nil
	}
	text := engine.BuildJobText(input.JobTitle, input.JobCompany, input.JobBody, input.JobRequirements)
	if text == "" {
		return "", fmt.Errorf("job_text, job_html, or posting fields are required")
	}
	return text, nil
}
