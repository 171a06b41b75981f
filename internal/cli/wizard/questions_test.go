package wizard

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultQuestionsOrder(t *testing.T) {
	questions := DefaultQuestions(t.TempDir())

	wantIDs := []string{"project_name", "variant", "database", "security"}
	if len(questions) != len(wantIDs) {
		t.Fatalf("got %d questions, want %d", len(questions), len(wantIDs))
	}
	for i, id := range wantIDs {
		if questions[i].ID != id {
			t.Errorf("question %d: ID = %q, want %q", i, questions[i].ID, id)
		}
	}

	if questions[0].Type != QuestionTypeInput {
		t.Error("project_name must be an input question")
	}
	for _, q := range questions[1:] {
		if q.Type != QuestionTypeSelect {
			t.Errorf("question %s must be a select question", q.ID)
		}
	}
}

func TestDefaultQuestionsOptionValues(t *testing.T) {
	questions := DefaultQuestions(t.TempDir())

	optionValues := func(q Question) []string {
		vals := make([]string, len(q.Options))
		for i, o := range q.Options {
			vals[i] = o.Value
		}
		return vals
	}

	cases := map[string][]string{
		"variant":  {"javascript", "typescript"},
		"database": {"none", "mongodb", "postgres", "mysql", "sqlite"},
		"security": {"none", "basic", "jwt"},
	}

	for _, q := range questions[1:] {
		want, ok := cases[q.ID]
		if !ok {
			t.Fatalf("unexpected question %s", q.ID)
		}
		got := optionValues(q)
		if len(got) != len(want) {
			t.Fatalf("question %s: options = %v, want %v", q.ID, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("question %s option %d: %q, want %q", q.ID, i, got[i], want[i])
			}
		}
	}
}

func TestProjectNameValidation(t *testing.T) {
	base := t.TempDir()
	if err := os.Mkdir(filepath.Join(base, "taken"), 0o755); err != nil {
		t.Fatal(err)
	}

	validate := DefaultQuestions(base)[0].Validate
	if validate == nil {
		t.Fatal("project_name question must validate input")
	}

	t.Run("rejects_empty", func(t *testing.T) {
		if err := validate(""); err == nil {
			t.Error("empty name must be rejected")
		}
	})

	t.Run("rejects_existing_directory", func(t *testing.T) {
		if err := validate("taken"); err == nil {
			t.Error("existing directory name must be rejected")
		}
	})

	t.Run("rejects_path_separators", func(t *testing.T) {
		if err := validate("a/b"); err == nil {
			t.Error("names with path separators must be rejected")
		}
	})

	t.Run("accepts_fresh_name", func(t *testing.T) {
		if err := validate("fresh"); err != nil {
			t.Errorf("fresh name rejected: %v", err)
		}
	})
}

func TestRunRequiresQuestions(t *testing.T) {
	if _, err := Run(nil); err != ErrNoQuestions {
		t.Errorf("expected ErrNoQuestions, got %v", err)
	}
}

func TestSaveAnswer(t *testing.T) {
	var r Result
	saveAnswer("project_name", "demo", &r)
	saveAnswer("variant", "typescript", &r)
	saveAnswer("database", "postgres", &r)
	saveAnswer("security", "jwt", &r)
	saveAnswer("unknown", "ignored", &r)

	want := Result{ProjectName: "demo", Variant: "typescript", Database: "postgres", Security: "jwt"}
	if r != want {
		t.Errorf("result = %+v, want %+v", r, want)
	}
}
