package scaffold

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Manifest models the generated package.json. Building it structurally
// (instead of through a text template) keeps the output valid JSON by
// construction and makes the dependency set round-trippable.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Main            string            `json:"main"`
	Scripts         map[string]string `json:"scripts"`
	Keywords        []string          `json:"keywords"`
	License         string            `json:"license"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// Pinned dependency ranges for generated projects.
var (
	runtimeDeps = map[string]string{
		"express": "^4.21.2",
		"dotenv":  "^16.4.7",
	}
	securityDeps = map[string]string{
		"helmet":             "^8.0.0",
		"cors":               "^2.8.5",
		"express-rate-limit": "^7.5.0",
	}
	authDeps = map[string]string{
		"jsonwebtoken": "^9.0.2",
		"bcryptjs":     "^2.4.3",
	}
	databaseDeps = map[Database]map[string]string{
		DatabaseMongo:    {"mongoose": "^8.9.5"},
		DatabasePostgres: {"pg": "^8.13.1"},
		DatabaseMySQL:    {"mysql2": "^3.12.0"},
		DatabaseSQLite:   {"better-sqlite3": "^11.8.1"},
	}
)

// BuildManifest assembles the package.json contents for the answers.
func BuildManifest(answers AnswerSet) Manifest {
	m := Manifest{
		Name:         npmName(answers.ProjectName),
		Version:      "1.0.0",
		Description:  "Express backend generated with forgekit",
		Keywords:     []string{"express", "backend", "api"},
		License:      "MIT",
		Dependencies: map[string]string{},
		DevDependencies: map[string]string{
			"nodemon": "^3.1.9",
		},
	}

	for k, v := range runtimeDeps {
		m.Dependencies[k] = v
	}
	if answers.HasSecurity() {
		for k, v := range securityDeps {
			m.Dependencies[k] = v
		}
	}
	if answers.HasAuth() {
		for k, v := range authDeps {
			m.Dependencies[k] = v
		}
	}
	if deps, ok := databaseDeps[answers.Database]; ok {
		for k, v := range deps {
			m.Dependencies[k] = v
		}
	}

	switch answers.Variant {
	case VariantTypeScript:
		m.Main = "dist/server.js"
		m.Scripts = map[string]string{
			"start": "node dist/server.js",
			"dev":   "ts-node-dev --respawn src/server.ts",
			"build": "tsc",
		}
		m.DevDependencies["typescript"] = "^5.7.3"
		m.DevDependencies["ts-node-dev"] = "^2.0.0"
		m.DevDependencies["@types/node"] = "^22.10.7"
		m.DevDependencies["@types/express"] = "^5.0.0"
		if answers.HasSecurity() {
			m.DevDependencies["@types/cors"] = "^2.8.17"
		}
		if answers.HasAuth() {
			m.DevDependencies["@types/jsonwebtoken"] = "^9.0.7"
			m.DevDependencies["@types/bcryptjs"] = "^2.4.6"
		}
		if answers.Database == DatabasePostgres {
			m.DevDependencies["@types/pg"] = "^8.11.10"
		}
		if answers.Database == DatabaseSQLite {
			m.DevDependencies["@types/better-sqlite3"] = "^7.6.12"
		}
	default:
		m.Main = "src/server.js"
		m.Scripts = map[string]string{
			"start": "node src/server.js",
			"dev":   "nodemon src/server.js",
		}
	}

	return m
}

// Render serializes the manifest with two-space indentation and a
// trailing newline, matching npm's own formatting.
func (m Manifest) Render() ([]byte, error) {
	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("scaffold: render manifest: %w", err)
	}
	return append(out, '\n'), nil
}

// ParseManifest parses rendered package.json bytes back into a Manifest.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("scaffold: parse manifest: %w", err)
	}
	return m, nil
}

// npmName normalizes a project name into a valid npm package name.
func npmName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, " ", "-")
	return n
}
