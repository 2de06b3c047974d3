package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrConfiguration indicates a malformed codestart catalog or spec:
	// invalid dependency expression, missing required field, unknown
	// designated codestart.
	ErrConfiguration = errors.New("configuration error")

	// ErrSelection indicates the selector could not pick exactly one
	// codestart for a category-defining category.
	ErrSelection = errors.New("selection conflict")

	// ErrPrecondition indicates the filesystem is not in the state a
	// generation run requires.
	ErrPrecondition = errors.New("precondition failed")

	// ErrRender indicates a template referenced missing data or an include
	// that could not be located.
	ErrRender = errors.New("render error")

	// ErrNotFound indicates a codestart, catalog, or file was not found.
	ErrNotFound = errors.New("not found")
)

// Exit codes returned by the codestart binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitConfigurationError indicates a catalog or codestart spec is invalid.
	ExitConfigurationError = 2

	// ExitSelectionConflict indicates codestart selection failed.
	ExitSelectionConflict = 3

	// ExitPreconditionFailed indicates the target directory is unusable.
	ExitPreconditionFailed = 4

	// ExitRenderError indicates template rendering failed.
	ExitRenderError = 5

	// ExitNotFound indicates a codestart or file was not found.
	ExitNotFound = 6
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed is set when the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrConfiguration):
		return ExitConfigurationError
	case errors.Is(err, ErrSelection):
		return ExitSelectionConflict
	case errors.Is(err, ErrPrecondition):
		return ExitPreconditionFailed
	case errors.Is(err, ErrRender):
		return ExitRenderError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}
