// Package scaffold derives a deterministic file plan from the user's
// answers and writes the generated project to disk.
package scaffold

import "fmt"

// Variant selects the language flavor of the generated project.
type Variant string

const (
	// VariantJavaScript generates plain Node.js sources.
	VariantJavaScript Variant = "javascript"
	// VariantTypeScript generates TypeScript sources plus a tsconfig.
	VariantTypeScript Variant = "typescript"
)

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	return v == VariantJavaScript || v == VariantTypeScript
}

// Ext returns the source file extension for the variant, without a dot.
func (v Variant) Ext() string {
	if v == VariantTypeScript {
		return "ts"
	}
	return "js"
}

// Database selects the database integration of the generated project.
type Database string

const (
	DatabaseNone     Database = "none"
	DatabaseMongo    Database = "mongodb"
	DatabasePostgres Database = "postgres"
	DatabaseMySQL    Database = "mysql"
	DatabaseSQLite   Database = "sqlite"
)

// Valid reports whether d is a known database kind.
func (d Database) Valid() bool {
	switch d {
	case DatabaseNone, DatabaseMongo, DatabasePostgres, DatabaseMySQL, DatabaseSQLite:
		return true
	}
	return false
}

// Security selects the security level of the generated project.
type Security string

const (
	// SecurityNone skips all security middleware.
	SecurityNone Security = "none"
	// SecurityBasic wires helmet, CORS, and rate limiting.
	SecurityBasic Security = "basic"
	// SecurityToken adds JWT auth (login endpoint plus verify middleware)
	// on top of the basic protections.
	SecurityToken Security = "jwt"
)

// Valid reports whether s is a known security level.
func (s Security) Valid() bool {
	return s == SecurityNone || s == SecurityBasic || s == SecurityToken
}

// AnswerSet holds the four wizard answers that fully parameterize a
// generation run. It is immutable once collected; every downstream
// decision is a pure function of these values.
type AnswerSet struct {
	ProjectName string
	Variant     Variant
	Database    Database
	Security    Security
}

// Validate checks that every field carries an accepted value.
func (a AnswerSet) Validate() error {
	if a.ProjectName == "" {
		return fmt.Errorf("%w: project name is empty", ErrInvalidAnswers)
	}
	if !a.Variant.Valid() {
		return fmt.Errorf("%w: unknown variant %q", ErrInvalidAnswers, a.Variant)
	}
	if !a.Database.Valid() {
		return fmt.Errorf("%w: unknown database %q", ErrInvalidAnswers, a.Database)
	}
	if !a.Security.Valid() {
		return fmt.Errorf("%w: unknown security level %q", ErrInvalidAnswers, a.Security)
	}
	return nil
}

// HasDatabase reports whether the project includes a database layer.
func (a AnswerSet) HasDatabase() bool {
	return a.Database != DatabaseNone
}

// HasSecurity reports whether helmet/CORS/rate-limit middleware is wired.
func (a AnswerSet) HasSecurity() bool {
	return a.Security != SecurityNone
}

// HasAuth reports whether JWT auth files are generated.
func (a AnswerSet) HasAuth() bool {
	return a.Security == SecurityToken
}
