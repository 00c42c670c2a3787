package matchserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/resumatch/go_match/internal/engine"
	"github.com/resumatch/go_match/internal/engine/match"
)

func registerMatchHistory(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "match_history",
		Description: "List previously computed resume-to-job matches, newest first. Each entry carries the resume and job fingerprints, a job snippet, the score, and the full stored result. Supports a minimum-score filter and a result limit.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.MatchHistoryInput) (*mcp.CallToolResult, *match.HistoryListResult, error) {
		engine.IncrHistoryRequests()

		result, err := match.ListMatches(ctx, match.HistoryListInput{
			MinScore: input.MinScore,
			Limit:    input.Limit,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("list history: %w", err)
		}
		return nil, result, nil
	})
}
