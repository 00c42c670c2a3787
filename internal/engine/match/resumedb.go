package match

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// ErrResumeNotFound is returned when a resume id resolves to no row.
var ErrResumeNotFound = errors.New("resume not found")

// Package-level singleton, set from main.go.
var resumeDB *ResumeDB

// SetResumeDB sets the package-level resume DB instance.
func SetResumeDB(db *ResumeDB) { resumeDB = db }

// GetResumeDB returns the package-level resume DB instance (may be nil).
func GetResumeDB() *ResumeDB { return resumeDB }

// ResumeDB is a read-only PostgreSQL source of structured resumes. The
// collaborating persistence layer owns the data; the engine only loads it
// into ResumeContent views.
type ResumeDB struct {
	pool *pgxpool.Pool
}

// ConnectResumeDB creates a pgx pool and ensures the source schema exists.
func ConnectResumeDB(ctx context.Context, databaseURL string) (*ResumeDB, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	db := &ResumeDB{pool: pool}
	if err := db.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	slog.Info("resume postgres connected", slog.String("addr", config.ConnConfig.Host))
	return db, nil
}

func (db *ResumeDB) Close() {
	db.pool.Close()
}

func (db *ResumeDB) runMigrations(ctx context.Context) error {
	entries, err := schemaFS.ReadDir("schema")
	if err != nil {
		return fmt.Errorf("read schema dir: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		data, err := schemaFS.ReadFile("schema/" + entry.Name())
		if err != nil {
			return fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		if _, err := db.pool.Exec(ctx, string(data)); err != nil {
			return fmt.Errorf("execute %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// LoadResume resolves a stored resume id into the structured view the
// engine consumes. Sections come back in insertion order; missing
// sections load as empty lists, never nil.
func (db *ResumeDB) LoadResume(ctx context.Context, resumeID int64) (*ResumeContent, error) {
	resume := &ResumeContent{
		Experiences: []ExperienceEntry{},
		Projects:    []ProjectEntry{},
		Skills:      []SkillEntry{},
		Educations:  []EducationEntry{},
	}

	err := db.pool.QueryRow(ctx,
		`SELECT summary FROM resumes WHERE id = $1`, resumeID,
	).Scan(&resume.Summary)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrResumeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load resume %d: %w", resumeID, err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT position, description, bullets
		 FROM resume_experiences WHERE resume_id = $1 ORDER BY sort_order, id`, resumeID)
	if err != nil {
		return nil, fmt.Errorf("load experiences: %w", err)
	}
	for rows.Next() {
		var e ExperienceEntry
		if err := rows.Scan(&e.Position, &e.Description, &e.Bullets); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan experience: %w", err)
		}
		if e.Bullets == nil {
			e.Bullets = []string{}
		}
		resume.Experiences = append(resume.Experiences, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate experiences: %w", err)
	}

	rows, err = db.pool.Query(ctx,
		`SELECT description, technologies
		 FROM resume_projects WHERE resume_id = $1 ORDER BY sort_order, id`, resumeID)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	for rows.Next() {
		var p ProjectEntry
		if err := rows.Scan(&p.Description, &p.Technologies); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan project: %w", err)
		}
		if p.Technologies == nil {
			p.Technologies = []string{}
		}
		resume.Projects = append(resume.Projects, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	rows, err = db.pool.Query(ctx,
		`SELECT name FROM resume_skills WHERE resume_id = $1 ORDER BY id`, resumeID)
	if err != nil {
		return nil, fmt.Errorf("load skills: %w", err)
	}
	for rows.Next() {
		var s SkillEntry
		if err := rows.Scan(&s.Name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		resume.Skills = append(resume.Skills, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate skills: %w", err)
	}

	rows, err = db.pool.Query(ctx,
		`SELECT school, degree FROM resume_educations WHERE resume_id = $1 ORDER BY id`, resumeID)
	if err != nil {
		return nil, fmt.Errorf("load educations: %w", err)
	}
	for rows.Next() {
		var e EducationEntry
		if err := rows.Scan(&e.School, &e.Degree); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan education: %w", err)
		}
		resume.Educations = append(resume.Educations, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate educations: %w", err)
	}

	return resume, nil
}
