package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/fitlog/internal/constants"
	"github.com/julianstephens/fitlog/internal/logger"
	"github.com/julianstephens/fitlog/internal/migration"
	"github.com/julianstephens/fitlog/internal/models"
	"github.com/julianstephens/fitlog/internal/validation"
)

// hints maps the domain sentinels to the command that usually gets the user unstuck.
// Checked in order; the first match wins.
var hints = []struct {
	target error
	hint   string
}{
	{models.ErrNotFound, fmt.Sprintf("run '%s list' to see existing activities", constants.AppName)},
	{validation.ErrInvalid, fmt.Sprintf("run '%s --help' for accepted values", constants.AppName)},
	{migration.ErrSchemaTooNew, fmt.Sprintf("upgrade %s, or run '%s reset' to start over (deletes all data)", constants.AppName, constants.AppName)},
	{models.ErrStorage, fmt.Sprintf("run '%s doctor' to check the database", constants.AppName)},
}

// Hint returns the follow-up suggestion for err, or "" when none applies.
func Hint(err error) string {
	if err == nil {
		return ""
	}
	for _, h := range hints {
		if stderrors.Is(err, h.target) {
			return h.hint
		}
	}
	return ""
}

// Format renders err with the "Error: " prefix and, for known failures, a hint line.
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("Error: %v", err)
	if hint := Hint(err); hint != "" {
		msg += "\nHint: " + hint
	}
	return msg
}

func Formatf(format string, args ...interface{}) string {
	return Format(fmt.Errorf(format, args...))
}

// Fatal reports err on stderr and exits with status 1. A nil err is a no-op.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command failed", "error", err, "hint", Hint(err))
	fmt.Fprintln(os.Stderr, Format(err))
	os.Exit(1)
}

func Fatalf(format string, args ...interface{}) {
	Fatal(fmt.Errorf(format, args...))
}
