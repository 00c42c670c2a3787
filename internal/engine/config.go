package engine

import "time"

// Config holds all engine configuration, injected from main.
type Config struct {
	RedisURL             string        // optional cache L2
	CacheTTL             time.Duration // result cache lifetime, DefaultCacheTTL when zero
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
	DatabaseURL          string  // optional PostgreSQL resume source
	HistoryDBPath        string  // SQLite match-history location; empty = default under $HOME
	TopKeywords          int     // extraction budget when the caller does not set one
	MatchRatePerSec      float64 // tool-layer rate limit; <= 0 disables limiting
	MatchRateBurst       int
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (match, matchserver).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
