package scaffold

import "fmt"

// AppSections holds the ordered lines that make up the variable parts
// of the application-setup file. The file is assembled once per
// AnswerSet from these named sections, so optional features (database
// bootstrap, auth routes) are composed in at build time instead of
// being patched into the rendered file afterwards.
type AppSections struct {
	// Imports are the module import lines, health route first, auth
	// route (when present) immediately after.
	Imports []string
	// Setup are the middleware mounts and bootstrap calls that run
	// before any route is registered.
	Setup []string
	// Routes are the route registration lines, health first, auth
	// (when present) immediately after.
	Routes []string
}

// BuildAppSections assembles the section lists for the answers.
func BuildAppSections(answers AnswerSet) AppSections {
	typed := answers.Variant == VariantTypeScript

	var s AppSections

	s.Imports = append(s.Imports, importLine(typed, "healthRoute", "./routes/v1/health.route"))
	if answers.HasAuth() {
		s.Imports = append(s.Imports, importLine(typed, "authRoute", "./routes/v1/auth.route"))
	}
	s.Imports = append(s.Imports, importNames(typed, "{ notFound, errorHandler }", "./middlewares/error.middleware"))
	if answers.HasSecurity() {
		s.Imports = append(s.Imports, importLine(typed, "applySecurity", "./middlewares/security.middleware"))
	}
	if answers.HasDatabase() {
		s.Imports = append(s.Imports, importNames(typed, "{ connectDatabase }", "./config/db"))
	}

	s.Setup = append(s.Setup,
		"app.use(express.json());",
		"app.use(express.urlencoded({ extended: true }));",
	)
	if answers.HasSecurity() {
		s.Setup = append(s.Setup, "applySecurity(app);")
	}
	if answers.HasDatabase() {
		s.Setup = append(s.Setup, "connectDatabase();")
	}

	s.Routes = append(s.Routes, "app.use('/api/v1/health', healthRoute);")
	if answers.HasAuth() {
		s.Routes = append(s.Routes, "app.use('/api/v1/auth', authRoute);")
	}

	return s
}

func importLine(typed bool, name, path string) string {
	if typed {
		return fmt.Sprintf("import %s from '%s';", name, path)
	}
	return fmt.Sprintf("const %s = require('%s');", name, path)
}

func importNames(typed bool, names, path string) string {
	if typed {
		return fmt.Sprintf("import %s from '%s';", names, path)
	}
	return fmt.Sprintf("const %s = require('%s');", names, path)
}
