package cli

import (
	"errors"

	"github.com/alfredodrv/mwrgen/internal/config"
	"github.com/alfredodrv/mwrgen/internal/planfile"
	"github.com/alfredodrv/mwrgen/internal/recurrence"
)

// Process exit codes
const (
	ExitOK    = 0
	ExitUsage = 1 // missing or invalid arguments and configuration
	ExitIO    = 2 // input could not be read or output could not be written
	ExitData  = 3 // input was read but holds plans that cannot be converted
)

// ExitCode maps an error returned by Execute to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var readErr *planfile.ReadError
	var writeErr *planfile.WriteError
	var valErr *planfile.ValidationError

	switch {
	case errors.As(err, &readErr), errors.As(err, &writeErr):
		return ExitIO
	case errors.As(err, &valErr),
		errors.Is(err, recurrence.ErrInvalidFrequencyType),
		errors.Is(err, recurrence.ErrUnreadableRule):
		return ExitData
	default:
		return ExitUsage
	}
}

const missingArgumentsHelp = "Please provide the input file path and the output file path. Use --help for more info."

// FormatError renders err for the terminal.
func FormatError(err error) string {
	if errors.Is(err, config.ErrMissingArguments) {
		return errorStyle.Render(missingArgumentsHelp)
	}
	return errorStyle.Render("Error: " + err.Error())
}
