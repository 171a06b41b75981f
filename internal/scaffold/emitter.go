package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/forgekit/forgekit/internal/template"
	"github.com/forgekit/forgekit/pkg/version"
)

// Reporter receives progress callbacks while the emitter writes files.
type Reporter interface {
	// FileWritten is called after each file is written. index is
	// 1-based; total is the number of files in the plan.
	FileWritten(relPath string, index, total int)
}

// Emitter renders a file plan and writes it below a target root.
type Emitter struct {
	renderer template.Renderer
	reporter Reporter
}

// NewEmitter creates an Emitter backed by the given renderer.
func NewEmitter(renderer template.Renderer) *Emitter {
	return &Emitter{renderer: renderer}
}

// SetReporter wires a progress reporter. A nil reporter disables
// progress callbacks.
func (e *Emitter) SetReporter(r Reporter) {
	e.reporter = r
}

// Emit writes the plan to targetRoot. The target must not exist yet;
// if it does, ErrTargetExists is returned before anything is written.
// A failed write aborts the run without rollback, so a failed run may
// leave a partially populated directory behind.
func (e *Emitter) Emit(ctx context.Context, targetRoot string, answers AnswerSet, plan FilePlan) error {
	targetRoot = filepath.Clean(targetRoot)

	if _, err := os.Stat(targetRoot); err == nil {
		return fmt.Errorf("%w: %s", ErrTargetExists, targetRoot)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("scaffold: stat target %q: %w", targetRoot, err)
	}

	for _, dir := range plan.Dirs {
		if err := os.MkdirAll(filepath.Join(targetRoot, filepath.FromSlash(dir)), 0o755); err != nil {
			return fmt.Errorf("scaffold: create directory %q: %w", dir, err)
		}
	}

	tctx := BuildContext(answers)

	for i, task := range plan.Files {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		content, err := e.render(task, answers, tctx)
		if err != nil {
			return err
		}

		destPath := filepath.Join(targetRoot, filepath.FromSlash(task.RelPath))
		if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			return fmt.Errorf("scaffold: create directory for %q: %w", task.RelPath, err)
		}
		if err := os.WriteFile(destPath, content, 0o644); err != nil {
			return fmt.Errorf("scaffold: write %q: %w", task.RelPath, err)
		}

		if e.reporter != nil {
			e.reporter.FileWritten(task.RelPath, i+1, len(plan.Files))
		}
	}

	return nil
}

// render produces the contents for one file task. The manifest is built
// structurally; everything else renders an embedded template.
func (e *Emitter) render(task FileTask, answers AnswerSet, tctx template.Context) ([]byte, error) {
	if task.TemplateID == TemplateManifest {
		return BuildManifest(answers).Render()
	}

	path, ok := template.Lookup(task.TemplateID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, task.TemplateID)
	}
	content, err := e.renderer.Render(path, tctx)
	if err != nil {
		return nil, fmt.Errorf("scaffold: render %q: %w", task.RelPath, err)
	}
	return content, nil
}

// BuildContext assembles the template context for the answers,
// including the pre-composed application-setup sections.
func BuildContext(answers AnswerSet) template.Context {
	sections := BuildAppSections(answers)
	return template.Context{
		ProjectName:      answers.ProjectName,
		TypeScript:       answers.Variant == VariantTypeScript,
		Ext:              answers.Variant.Ext(),
		Database:         string(answers.Database),
		HasDatabase:      answers.HasDatabase(),
		HasSecurity:      answers.HasSecurity(),
		HasAuth:          answers.HasAuth(),
		AppImports:       sections.Imports,
		AppSetup:         sections.Setup,
		AppRoutes:        sections.Routes,
		GeneratorVersion: version.GetVersion(),
	}
}
