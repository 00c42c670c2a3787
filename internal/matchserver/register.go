// Package matchserver is the MCP tool layer over the matching engine. It
// owns the collaborator concerns the engine itself does not: input
// resolution, caching, history persistence, and request rate limiting.
package matchserver

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/time/rate"

	"github.com/resumatch/go_match/internal/engine"
)

// matchLimiter bounds how many analyses run per second across all
// clients. nil = unlimited.
var matchLimiter *rate.Limiter

// RegisterTools registers the matching tools on the given MCP server:
// extract_keywords, match_resume_to_job, match_history.
func RegisterTools(server *mcp.Server) {
	if engine.Cfg.MatchRatePerSec > 0 {
		burst := engine.Cfg.MatchRateBurst
		if burst <= 0 {
			burst = 1
		}
		matchLimiter = rate.NewLimiter(rate.Limit(engine.Cfg.MatchRatePerSec), burst)
	}

	registerExtractKeywords(server)
	registerMatchResumeToJob(server)
	registerMatchHistory(server)
}

// allowRequest applies the shared rate limit without blocking: a request
// over budget is rejected so the client can back off.
func allowRequest() error {
	if matchLimiter != nil && !matchLimiter.Allow() {
		return fmt.Errorf("rate limit exceeded, retry later")
	}
	return nil
}
