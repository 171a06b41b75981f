// Package wizard provides the interactive question flow that collects
// the four answers parameterizing a generation run.
package wizard

import "errors"

// Result holds the user's raw selections from the wizard.
type Result struct {
	ProjectName string // Project name (required, must not exist as a directory)
	Variant     string // Language variant: "javascript", "typescript"
	Database    string // Database kind: "none", "mongodb", "postgres", "mysql", "sqlite"
	Security    string // Security level: "none", "basic", "jwt"
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
)

// Question defines a single wizard question.
type Question struct {
	ID          string             // Unique identifier
	Type        QuestionType       // Select or Input
	Title       string             // Question title
	Description string             // Additional description
	Options     []Option           // Options for select questions
	Default     string             // Default value
	Required    bool               // Whether the field is required
	Validate    func(string) error // Extra validation for input questions
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)
