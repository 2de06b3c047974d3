// Package cmdtypes provides shared types for the cmd package and its helpers.
// It is separate from internal/cmd so internal/cmdutil can use these types
// without importing the commands.
package cmdtypes

import (
	"github.com/paulrobinson/quarkus/internal/config"
	oerrors "github.com/paulrobinson/quarkus/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed into every sub-command
// constructor.
type GlobalConfig struct {
	Config     *config.Config
	ConfigPath string // resolved --config path
	Verbose    bool
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess            = oerrors.ExitSuccess
	ExitGeneralError       = oerrors.ExitGeneralError
	ExitConfigurationError = oerrors.ExitConfigurationError
	ExitSelectionConflict  = oerrors.ExitSelectionConflict
	ExitPreconditionFailed = oerrors.ExitPreconditionFailed
	ExitRenderError        = oerrors.ExitRenderError
	ExitNotFound           = oerrors.ExitNotFound
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError

// NewExitError wraps err with the exit code derived from it. printed marks
// errors the command already reported.
func NewExitError(err error, printed bool) *ExitError {
	return &ExitError{Code: oerrors.ExitCodeFromError(err), Err: err, Printed: printed}
}
