package cli

import (
	"errors"
	"fmt"
	"strings"

	goflags "github.com/jessevdk/go-flags"

	"github.com/runnerr0/chromium-export/internal/history"
	"github.com/runnerr0/chromium-export/internal/output"
)

// InputError is a problem with what the user asked for, reported with
// guidance on how to fix it.
type InputError struct {
	Err   error
	Hints []string
}

func (e *InputError) Error() string { return e.Err.Error() }

func (e *InputError) Unwrap() error { return e.Err }

func inputErr(err error, hints ...string) *InputError {
	return &InputError{Err: err, Hints: hints}
}

// reportError prints err the way the user should see it.
func reportError(out *output.Writer, err error) {
	var flagsErr *goflags.Error
	if errors.As(err, &flagsErr) {
		// go-flags already printed it.
		return
	}

	var inErr *InputError
	if errors.As(err, &inErr) {
		out.Error(inErr.Err, inErr.Hints...)
		return
	}

	var schemaErr *history.SchemaError
	if errors.As(err, &schemaErr) {
		lines := make([]string, 0, len(schemaErr.Missing))
		for _, m := range schemaErr.Missing {
			lines = append(lines, fmt.Sprintf("  Missing in '%s': %s", m.Table, strings.Join(m.Columns, ", ")))
		}
		out.Error(errors.New("database schema not supported for export"), lines...)
		return
	}

	out.Error(err)
}
