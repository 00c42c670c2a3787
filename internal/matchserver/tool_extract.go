package matchserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/resumatch/go_match/internal/engine"
	"github.com/resumatch/go_match/internal/engine/match"
	"github.com/resumatch/go_match/internal/toolutil"
)

func registerExtractKeywords(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_keywords",
		Description: "Extract and rank salient keywords from job posting text. Returns frequency-ranked keywords with categories (technical, soft_skill, qualification), the top-keyword list, and requirement tiers (must-have / nice-to-have / preferred) inferred from nearby indicator phrases. Accepts plain text or raw HTML.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.ExtractKeywordsInput) (*mcp.CallToolResult, engine.ExtractKeywordsOutput, error) {
		engine.IncrExtractRequests()
		if err := allowRequest(); err != nil {
			return nil, engine.ExtractKeywordsOutput{}, err
		}

		text := input.Text
		if strings.TrimSpace(text) == "" && input.HTML != "" {
			converted, err := engine.JobTextFromHTML(input.HTML)
			if err != nil {
				return nil, engine.ExtractKeywordsOutput{}, fmt.Errorf("convert HTML: %w", err)
			}
			text = converted
		}
		if strings.TrimSpace(text) == "" {
			return nil, engine.ExtractKeywordsOutput{}, fmt.Errorf("text or html is required")
		}

		topN := input.TopN
		if topN <= 0 {
			topN = engine.Cfg.TopKeywords
		}

		cacheKey := engine.CacheKey("extract_keywords",
			match.JobFingerprint(text),
			strconv.Itoa(topN),
			strconv.FormatBool(input.IncludePhrases),
		)
		if out, ok := toolutil.CacheLoadJSON[engine.ExtractKeywordsOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		result, err := match.ExtractKeywordSummary(text, topN, input.IncludePhrases)
		if err != nil {
			if errors.Is(err, match.ErrEmptyJobText) {
				return nil, engine.ExtractKeywordsOutput{}, fmt.Errorf("text or html is required")
			}
			return nil, engine.ExtractKeywordsOutput{}, err
		}

		slog.Debug("extract_keywords: complete",
			slog.Int("keywords", len(result.Keywords)),
			slog.Bool("phrases", input.IncludePhrases),
		)

		out := engine.ExtractKeywordsOutput{Result: result}
		toolutil.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}
