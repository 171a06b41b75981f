package wizard

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultQuestions returns the four questions of a generation run, in
// presentation order: project name, language variant, database,
// security level. baseDir is the directory the project will be created
// under; the name question rejects names that already exist there.
func DefaultQuestions(baseDir string) []Question {
	return []Question{
		{
			ID:          "project_name",
			Type:        QuestionTypeInput,
			Title:       "Project name",
			Description: "Directory to create for the new backend.",
			Required:    true,
			Validate: func(name string) error {
				name = strings.TrimSpace(name)
				if name == "" {
					return errors.New("project name is required")
				}
				if strings.ContainsAny(name, `/\`) {
					return errors.New("project name must not contain path separators")
				}
				if _, err := os.Stat(filepath.Join(baseDir, name)); err == nil {
					return fmt.Errorf("directory %q already exists", name)
				}
				return nil
			},
		},
		{
			ID:          "variant",
			Type:        QuestionTypeSelect,
			Title:       "Language",
			Description: "Flavor of the generated sources.",
			Options: []Option{
				{Label: "JavaScript", Value: "javascript", Desc: "plain Node.js"},
				{Label: "TypeScript", Value: "typescript", Desc: "typed sources plus tsconfig"},
			},
			Default:  "javascript",
			Required: true,
		},
		{
			ID:          "database",
			Type:        QuestionTypeSelect,
			Title:       "Database",
			Description: "Adds a connection helper and the matching driver dependency.",
			Options: []Option{
				{Label: "None", Value: "none", Desc: "no database layer"},
				{Label: "MongoDB", Value: "mongodb", Desc: "mongoose"},
				{Label: "PostgreSQL", Value: "postgres", Desc: "pg"},
				{Label: "MySQL", Value: "mysql", Desc: "mysql2"},
				{Label: "SQLite", Value: "sqlite", Desc: "better-sqlite3"},
			},
			Default:  "none",
			Required: true,
		},
		{
			ID:          "security",
			Type:        QuestionTypeSelect,
			Title:       "Security",
			Description: "Middleware and endpoints wired into the generated app.",
			Options: []Option{
				{Label: "None", Value: "none", Desc: "no security middleware"},
				{Label: "Basic", Value: "basic", Desc: "helmet, CORS, rate limiting"},
				{Label: "JWT auth", Value: "jwt", Desc: "basic plus login endpoint and token middleware"},
			},
			Default:  "none",
			Required: true,
		},
	}
}
