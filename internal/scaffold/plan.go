package scaffold

import "fmt"

// Template identifiers understood by the emitter. Most map to an
// embedded template file; TemplateManifest is built structurally so the
// generated package.json stays valid JSON by construction.
const (
	TemplateManifest        = "manifest"
	TemplateEnvExample      = "env-example"
	TemplateGitignore       = "gitignore"
	TemplateReadme          = "readme"
	TemplateTSConfig        = "tsconfig"
	TemplateServer          = "server"
	TemplateApp             = "app"
	TemplateLogger          = "logger"
	TemplateHealthCtrl      = "health-controller"
	TemplateHealthRoute     = "health-route"
	TemplateErrorMiddleware = "error-middleware"
	TemplateDatabase        = "database"
	TemplateSecurity        = "security-middleware"
	TemplateAuthMiddleware  = "auth-middleware"
	TemplateAuthCtrl        = "auth-controller"
	TemplateAuthRoute       = "auth-route"
)

// FileTask names one file to generate: where it goes relative to the
// project root and which template produces it.
type FileTask struct {
	RelPath    string
	TemplateID string
}

// FilePlan is the ordered set of directories and files derived from an
// AnswerSet. The order is stable so runs are reproducible.
type FilePlan struct {
	Dirs  []string
	Files []FileTask
}

// Plan derives the file plan for the given answers. It is a pure
// function: the same AnswerSet always yields the same plan, in the same
// order.
func Plan(answers AnswerSet) FilePlan {
	ext := answers.Variant.Ext()

	dirs := []string{
		"src",
		"src/config",
		"src/controllers",
		"src/routes",
		"src/routes/v1",
		"src/middlewares",
		"src/services",
		"src/utils",
	}
	if answers.HasDatabase() {
		dirs = append(dirs, "src/models")
	}

	files := []FileTask{
		{RelPath: "package.json", TemplateID: TemplateManifest},
		{RelPath: ".env.example", TemplateID: TemplateEnvExample},
		{RelPath: ".gitignore", TemplateID: TemplateGitignore},
		{RelPath: "README.md", TemplateID: TemplateReadme},
	}
	if answers.Variant == VariantTypeScript {
		files = append(files, FileTask{RelPath: "tsconfig.json", TemplateID: TemplateTSConfig})
	}

	files = append(files,
		FileTask{RelPath: src("server", ext), TemplateID: TemplateServer},
		FileTask{RelPath: src("app", ext), TemplateID: TemplateApp},
		FileTask{RelPath: src("utils/logger", ext), TemplateID: TemplateLogger},
		FileTask{RelPath: src("controllers/health.controller", ext), TemplateID: TemplateHealthCtrl},
		FileTask{RelPath: src("routes/v1/health.route", ext), TemplateID: TemplateHealthRoute},
		FileTask{RelPath: src("middlewares/error.middleware", ext), TemplateID: TemplateErrorMiddleware},
	)

	if answers.HasDatabase() {
		files = append(files, FileTask{RelPath: src("config/db", ext), TemplateID: TemplateDatabase})
	}
	if answers.HasSecurity() {
		files = append(files, FileTask{RelPath: src("middlewares/security.middleware", ext), TemplateID: TemplateSecurity})
	}
	if answers.HasAuth() {
		files = append(files,
			FileTask{RelPath: src("middlewares/auth.middleware", ext), TemplateID: TemplateAuthMiddleware},
			FileTask{RelPath: src("controllers/auth.controller", ext), TemplateID: TemplateAuthCtrl},
			FileTask{RelPath: src("routes/v1/auth.route", ext), TemplateID: TemplateAuthRoute},
		)
	}

	return FilePlan{Dirs: dirs, Files: files}
}

func src(name, ext string) string {
	return fmt.Sprintf("src/%s.%s", name, ext)
}
