// go_match — Resume-to-Job Matching MCP server.
//
// Exposes three MCP tools: extract_keywords, match_resume_to_job,
// match_history. Runs as HTTP MCP server or stdio transport.
//
// The matching engine lives in internal/engine/match and has no network
// dependencies; PostgreSQL (stored resumes), Redis (cache L2) and SQLite
// (match history) are optional collaborators wired here.
package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/resumatch/go_match/internal/engine"
	"github.com/resumatch/go_match/internal/engine/match"
	"github.com/resumatch/go_match/internal/matchserver"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	initEngine()

	slog.Info("starting go_match",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_match",
		Version: version,
	}, nil)

	matchserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 3))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_match",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		RedisURL:             env.Str("REDIS_URL", ""),
		CacheTTL:             env.Duration("CACHE_TTL", 24*time.Hour),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		DatabaseURL:          env.Str("DATABASE_URL", ""),
		HistoryDBPath:        env.Str("HISTORY_DB_PATH", ""),
		TopKeywords:          env.Int("TOP_KEYWORDS", match.DefaultTopKeywords),
		MatchRatePerSec:      env.Float("MATCH_RATE_PER_SEC", 10),
		MatchRateBurst:       env.Int("MATCH_RATE_BURST", 20),
	}
	engine.Init(c)

	if c.HistoryDBPath != "" {
		match.SetHistoryPath(c.HistoryDBPath)
	}

	// Resume DB (PostgreSQL, read-only source of stored resumes)
	if c.DatabaseURL != "" {
		rdb, err := match.ConnectResumeDB(context.Background(), c.DatabaseURL)
		if err != nil {
			slog.Warn("resume DB init failed, resume_id lookups disabled", slog.Any("error", err))
		} else {
			match.SetResumeDB(rdb)
			slog.Info("resume DB initialized")
		}
	}

	engine.InitCache(c.RedisURL, c.CacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
}
