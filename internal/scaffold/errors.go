package scaffold

import "errors"

// Sentinel errors for generation operations.
var (
	// ErrInvalidAnswers indicates an AnswerSet with a missing or unknown value.
	ErrInvalidAnswers = errors.New("scaffold: invalid answers")

	// ErrTargetExists indicates the target directory already exists.
	// No file is written when this is returned.
	ErrTargetExists = errors.New("scaffold: target directory already exists")

	// ErrUnknownTemplate indicates a file plan entry referenced a template
	// that is not in the catalog.
	ErrUnknownTemplate = errors.New("scaffold: unknown template id")
)
