package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/forgekit/forgekit/internal/template"
)

func newTestEmitter(t *testing.T) *Emitter {
	t.Helper()
	fsys, err := template.EmbeddedTemplates()
	if err != nil {
		t.Fatalf("EmbeddedTemplates error: %v", err)
	}
	return NewEmitter(template.NewRenderer(fsys))
}

func TestEmitRefusesExistingTarget(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "demo")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}

	answers := baseAnswers()
	err := newTestEmitter(t).Emit(context.Background(), target, answers, Plan(answers))
	if !errors.Is(err, ErrTargetExists) {
		t.Fatalf("expected ErrTargetExists, got %v", err)
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("no file may be written when the target exists; found %d entries", len(entries))
	}
}

func TestEmitAbortsOnWriteFailure(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	base := t.TempDir()
	if err := os.Chmod(base, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(base, 0o755) })

	answers := baseAnswers()
	e := newTestEmitter(t)
	var written []string
	e.SetReporter(reporterFunc(func(relPath string, index, total int) {
		written = append(written, relPath)
	}))

	err := e.Emit(context.Background(), filepath.Join(base, "demo"), answers, Plan(answers))
	if err == nil {
		t.Fatal("expected an error when the base directory is not writable")
	}
	if errors.Is(err, ErrTargetExists) {
		t.Fatalf("write failure must not be reported as ErrTargetExists: %v", err)
	}
	if !strings.Contains(err.Error(), "create directory") {
		t.Errorf("error = %v, want the failed directory creation wrapped", err)
	}
	if len(written) != 0 {
		t.Errorf("no file may be reported after an aborted run; saw %v", written)
	}
}

func TestEmitLeavesPartialOutputBehind(t *testing.T) {
	// An empty template FS fails the first rendered file, after the
	// manifest is already on disk. The partial tree must stay put.
	answers := baseAnswers()
	target := filepath.Join(t.TempDir(), "demo")

	e := NewEmitter(template.NewRenderer(fstest.MapFS{}))
	if err := e.Emit(context.Background(), target, answers, Plan(answers)); err == nil {
		t.Fatal("expected an error when templates cannot be rendered")
	}

	if _, err := os.Stat(filepath.Join(target, "package.json")); err != nil {
		t.Errorf("manifest written before the failure must remain: %v", err)
	}
	if _, err := os.Stat(filepath.Join(target, ".env.example")); err == nil {
		t.Error("no file may be written past the failure")
	}
}

func TestEmitWritesFullPlan(t *testing.T) {
	answers := AnswerSet{
		ProjectName: "demo",
		Variant:     VariantTypeScript,
		Database:    DatabasePostgres,
		Security:    SecurityToken,
	}
	plan := Plan(answers)
	target := filepath.Join(t.TempDir(), "demo")

	if err := newTestEmitter(t).Emit(context.Background(), target, answers, plan); err != nil {
		t.Fatalf("Emit error: %v", err)
	}

	for _, task := range plan.Files {
		if _, err := os.Stat(filepath.Join(target, filepath.FromSlash(task.RelPath))); err != nil {
			t.Errorf("planned file %s was not written: %v", task.RelPath, err)
		}
	}
	for _, dir := range plan.Dirs {
		info, err := os.Stat(filepath.Join(target, filepath.FromSlash(dir)))
		if err != nil || !info.IsDir() {
			t.Errorf("planned directory %s was not created", dir)
		}
	}
}

func TestEmitAppFileAuthWiring(t *testing.T) {
	answers := baseAnswers()
	answers.Security = SecurityToken
	target := filepath.Join(t.TempDir(), "demo")

	if err := newTestEmitter(t).Emit(context.Background(), target, answers, Plan(answers)); err != nil {
		t.Fatalf("Emit error: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(target, "src", "app.js"))
	if err != nil {
		t.Fatal(err)
	}
	app := string(raw)

	healthImport := strings.Index(app, "require('./routes/v1/health.route')")
	authImport := strings.Index(app, "require('./routes/v1/auth.route')")
	healthReg := strings.Index(app, "app.use('/api/v1/health', healthRoute);")
	authReg := strings.Index(app, "app.use('/api/v1/auth', authRoute);")

	if healthImport < 0 || authImport < 0 || healthReg < 0 || authReg < 0 {
		t.Fatalf("app file is missing route wiring:\n%s", app)
	}
	if !(healthImport < authImport && authImport < healthReg && healthReg < authReg) {
		t.Errorf("route wiring out of order: imports at %d/%d, registrations at %d/%d",
			healthImport, authImport, healthReg, authReg)
	}
}

func TestEmitPostgresUtility(t *testing.T) {
	answers := baseAnswers()
	answers.Database = DatabasePostgres
	target := filepath.Join(t.TempDir(), "demo")

	if err := newTestEmitter(t).Emit(context.Background(), target, answers, Plan(answers)); err != nil {
		t.Fatalf("Emit error: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(target, "src", "config", "db.js"))
	if err != nil {
		t.Fatal(err)
	}
	db := string(raw)

	if !strings.Contains(db, "url.startsWith('postgres://')") {
		t.Error("postgres utility must branch on the connection URL prefix")
	}
	if !strings.Contains(db, "require('pg')") {
		t.Error("postgres utility must use the pg driver")
	}
	for _, other := range []string{"mongoose", "mysql2", "better-sqlite3"} {
		if strings.Contains(db, other) {
			t.Errorf("postgres utility must not reference %q", other)
		}
	}
}

func TestEmitEnvExample(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "demo")
		answers := baseAnswers()
		if err := newTestEmitter(t).Emit(context.Background(), target, answers, Plan(answers)); err != nil {
			t.Fatalf("Emit error: %v", err)
		}
		raw, err := os.ReadFile(filepath.Join(target, ".env.example"))
		if err != nil {
			t.Fatal(err)
		}
		env := string(raw)
		for _, want := range []string{"PORT=", "NODE_ENV="} {
			if !strings.Contains(env, want) {
				t.Errorf(".env.example missing %s", want)
			}
		}
		for _, reject := range []string{"DATABASE_URL", "JWT_SECRET"} {
			if strings.Contains(env, reject) {
				t.Errorf(".env.example must not contain %s for a plain project", reject)
			}
		}
	})

	t.Run("database_and_auth", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "demo")
		answers := baseAnswers()
		answers.Database = DatabaseMongo
		answers.Security = SecurityToken
		if err := newTestEmitter(t).Emit(context.Background(), target, answers, Plan(answers)); err != nil {
			t.Fatalf("Emit error: %v", err)
		}
		raw, err := os.ReadFile(filepath.Join(target, ".env.example"))
		if err != nil {
			t.Fatal(err)
		}
		env := string(raw)
		for _, want := range []string{"DATABASE_URL=mongodb://", "JWT_SECRET=", "JWT_EXPIRES_IN="} {
			if !strings.Contains(env, want) {
				t.Errorf(".env.example missing %s", want)
			}
		}
	})
}

func TestEmitManifestParses(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo")
	answers := baseAnswers()
	if err := newTestEmitter(t).Emit(context.Background(), target, answers, Plan(answers)); err != nil {
		t.Fatalf("Emit error: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(target, "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	m, err := ParseManifest(raw)
	if err != nil {
		t.Fatalf("emitted package.json does not parse: %v", err)
	}
	if m.Name != "demo" {
		t.Errorf("manifest name = %q, want demo", m.Name)
	}
}

func TestEmitReportsProgress(t *testing.T) {
	answers := baseAnswers()
	plan := Plan(answers)
	target := filepath.Join(t.TempDir(), "demo")

	e := newTestEmitter(t)
	var seen []string
	e.SetReporter(reporterFunc(func(relPath string, index, total int) {
		if total != len(plan.Files) {
			t.Errorf("total = %d, want %d", total, len(plan.Files))
		}
		seen = append(seen, relPath)
	}))

	if err := e.Emit(context.Background(), target, answers, plan); err != nil {
		t.Fatalf("Emit error: %v", err)
	}
	if len(seen) != len(plan.Files) {
		t.Errorf("reporter saw %d files, want %d", len(seen), len(plan.Files))
	}
}

// reporterFunc adapts a function to the Reporter interface.
type reporterFunc func(relPath string, index, total int)

func (f reporterFunc) FileWritten(relPath string, index, total int) {
	f(relPath, index, total)
}
