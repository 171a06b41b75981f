package template

// Context provides the data seen by every project file template. All
// fields are exported for use with Go's text/template package.
type Context struct {
	// Project
	ProjectName string

	// Variant
	TypeScript bool
	Ext        string // "js" or "ts"

	// Feature flags
	Database    string // "none", "mongodb", "postgres", "mysql", "sqlite"
	HasDatabase bool
	HasSecurity bool // helmet/CORS/rate-limit middleware
	HasAuth     bool // JWT login endpoint + verify middleware

	// Application-setup sections, pre-assembled per answer set. Health
	// entries come first; auth entries (when present) directly after.
	AppImports []string
	AppSetup   []string
	AppRoutes  []string

	// Meta
	GeneratorVersion string
}
