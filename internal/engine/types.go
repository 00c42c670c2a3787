package engine

import "github.com/resumatch/go_match/internal/engine/match"

// ExtractKeywordsInput is the input for the extract_keywords tool.
type ExtractKeywordsInput struct {
	Text           string `json:"text" jsonschema:"Free text to extract keywords from (job posting body, requirements section)"`
	HTML           string `json:"html,omitempty" jsonschema:"Raw HTML posting; converted to plain text before extraction. Mutually exclusive with text"`
	TopN           int    `json:"top_n,omitempty" jsonschema:"Max keywords to return (default 20)"`
	IncludePhrases bool   `json:"include_phrases,omitempty" jsonschema:"Also rank two- and three-word phrases"`
}

// ExtractKeywordsOutput wraps the engine extraction result.
type ExtractKeywordsOutput struct {
	Result *match.ExtractResult `json:"result"`
}

// MatchResumeInput is the input for the match_resume_to_job tool. The
// resume arrives inline as structured JSON or by stored id; the job
// arrives as plain text, as posting fields, or as raw HTML.
type MatchResumeInput struct {
	Resume   *match.ResumeContent `json:"resume,omitempty" jsonschema:"Structured resume content (summary, experiences, projects, skills, educations)"`
	ResumeID int64                `json:"resume_id,omitempty" jsonschema:"Stored resume id; requires the PostgreSQL resume source"`

	JobText         string `json:"job_text,omitempty" jsonschema:"Job description as plain text"`
	JobHTML         string `json:"job_html,omitempty" jsonschema:"Job description as raw HTML; converted before matching"`
	JobTitle        string `json:"job_title,omitempty" jsonschema:"Posting title, concatenated into the job text when job_text is absent"`
	JobCompany      string `json:"job_company,omitempty" jsonschema:"Posting company"`
	JobBody         string `json:"job_body,omitempty" jsonschema:"Posting body"`
	JobRequirements string `json:"job_requirements,omitempty" jsonschema:"Posting requirements section"`
}

// MatchResumeOutput is the structured output for match_resume_to_job.
type MatchResumeOutput struct {
	Result    *match.MatchResult `json:"result"`
	HistoryID int64              `json:"history_id,omitempty"`
	Summary   string             `json:"summary"`
}

// MatchHistoryInput is the input for the match_history tool.
type MatchHistoryInput struct {
	MinScore int `json:"min_score,omitempty" jsonschema:"Only entries with match_score >= this value"`
	Limit    int `json:"limit,omitempty" jsonschema:"Max entries to return (default 50, max 100)"`
}
