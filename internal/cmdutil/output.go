package cmdutil

import (
	"errors"
	"fmt"
	"strings"

	oerrors "github.com/paulrobinson/quarkus/internal/errors"
	"github.com/paulrobinson/quarkus/internal/output"
	"github.com/paulrobinson/quarkus/internal/selector"
)

// PrintError prints a command failure in a user-friendly format.
// Structured errors get a summary line followed by their details; selection
// conflicts list the competing codestarts. Anything else falls back to the
// key-value log format.
func PrintError(msg string, err error) {
	var detailErr *oerrors.DetailError
	var conflictErr *selector.ConflictError

	switch {
	case errors.As(err, &detailErr):
		output.Error(fmt.Sprintf("%s: %s", msg, detailErr.Message), detailKeyvals(detailErr)...)
		if detailErr.Hint != "" {
			output.Details("Hint: " + detailErr.Hint)
		}
	case errors.As(err, &conflictErr):
		output.Error(fmt.Sprintf("%s: cannot resolve %s codestart", msg, conflictErr.Category))
		if len(conflictErr.Candidates) > 0 {
			output.Details(fmt.Sprintf("%s:\n  %s", conflictErr.Reason, strings.Join(conflictErr.Candidates, "\n  ")))
		} else {
			output.Details("no codestart requested and the catalog has no fallback")
		}
	default:
		output.Error(msg, "error", err)
	}
}

func detailKeyvals(e *oerrors.DetailError) []any {
	var kv []any
	if e.Location != "" {
		kv = append(kv, "location", e.Location)
	}
	if e.Field != "" {
		kv = append(kv, "field", e.Field)
	}
	return kv
}
