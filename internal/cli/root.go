// Package cli wires the cobra command surface and the generation
// pipeline: wizard, planner, emitter, installer.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/forgekit/forgekit/internal/cli/wizard"
	"github.com/forgekit/forgekit/internal/installer"
	"github.com/forgekit/forgekit/internal/scaffold"
	"github.com/forgekit/forgekit/internal/template"
	"github.com/forgekit/forgekit/internal/ui"
	"github.com/forgekit/forgekit/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "forgekit",
	Short: "Scaffold a boilerplate Express backend project",
	Long: `forgekit is an interactive generator for Express backend projects.

It asks four questions (project name, language variant, database,
security level), writes the project files into a new directory, and
runs npm install inside it. All configuration is collected
interactively; there are no flags to set.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       version.GetVersion(),
	RunE:          runGenerate,
}

// Execute runs the root command and reports any failure to the user.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		reportFailure(os.Stderr, err)
	}
	return err
}

// reportFailure writes a failure to w. Cancellation prints a plain
// line; every other failure prints with an error prefix.
func reportFailure(w io.Writer, err error) {
	if errors.Is(err, wizard.ErrCancelled) {
		_, _ = fmt.Fprintln(w, "Generation cancelled.")
		return
	}
	theme := ui.NewTheme()
	_, _ = fmt.Fprintln(w, theme.Error.Render("Error: ")+err.Error())
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("forgekit %s\n", version.GetFullVersion()))
}

// progressReporter adapts a ui.ProgressBar to the emitter's Reporter.
type progressReporter struct {
	bar ui.ProgressBar
}

func (p *progressReporter) FileWritten(relPath string, index, total int) {
	p.bar.SetTitle(relPath)
	p.bar.Increment(1)
}

// runGenerate executes the full generation pipeline once.
func runGenerate(cmd *cobra.Command, _ []string) error {
	headless := ui.NewHeadlessManager()
	if headless.IsHeadless() {
		return errors.New("forgekit requires an interactive terminal; there is no non-interactive mode")
	}

	theme := ui.NewTheme()
	theme.PrintBanner(version.GetVersion())
	theme.PrintWelcome()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	result, err := wizard.RunWithDefaults(cwd)
	if err != nil {
		return err
	}

	answers := scaffold.AnswerSet{
		ProjectName: result.ProjectName,
		Variant:     scaffold.Variant(result.Variant),
		Database:    scaffold.Database(result.Database),
		Security:    scaffold.Security(result.Security),
	}
	if err := answers.Validate(); err != nil {
		return err
	}

	embeddedFS, err := template.EmbeddedTemplates()
	if err != nil {
		return fmt.Errorf("load embedded templates: %w", err)
	}

	plan := scaffold.Plan(answers)
	target := filepath.Join(cwd, answers.ProjectName)

	emitter := scaffold.NewEmitter(template.NewRenderer(embeddedFS))
	bar := ui.NewProgress(theme, headless).Start("writing project files", len(plan.Files))
	emitter.SetReporter(&progressReporter{bar: bar})

	err = emitter.Emit(cmd.Context(), target, answers, plan)
	bar.Done()
	if err != nil {
		return err
	}

	fmt.Println(theme.Success.Render(fmt.Sprintf("✔ Created %s (%d files)", answers.ProjectName, len(plan.Files))))
	fmt.Println()

	typescript := answers.Variant == scaffold.VariantTypeScript

	run := installer.New(target)
	if !run.Available() {
		fmt.Println(theme.Muted.Render("npm not found in PATH; skipping dependency installation."))
		fmt.Print(theme.RenderNextSteps(ui.NextSteps(answers.ProjectName, typescript, false)))
		return fmt.Errorf("%w: npm not found in PATH", installer.ErrInstallFailed)
	}

	fmt.Println(theme.Muted.Render("Installing dependencies with npm..."))
	if err := run.Install(cmd.Context()); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(theme.Success.Render("✔ Dependencies installed"))
	fmt.Print(theme.RenderNextSteps(ui.NextSteps(answers.ProjectName, typescript, true)))
	return nil
}
