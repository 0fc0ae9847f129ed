package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/josephgoksu/TodoWing/internal/ui"
	"golang.org/x/term"
)

// cliError pairs the message shown to the user with the underlying cause,
// which is only printed with --verbose.
type cliError struct {
	msg string
	err error
}

func (e *cliError) Error() string {
	return e.msg
}

func (e *cliError) Unwrap() error {
	return e.err
}

// newCLIError builds an error whose text is userMsg. technicalErr may be nil.
func newCLIError(userMsg string, technicalErr error) error {
	return &cliError{msg: userMsg, err: technicalErr}
}

// osExit is replaced in tests.
var osExit = os.Exit

// stderrIsTerminal decides whether errors are drawn as a panel.
var stderrIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// HandleFatalError handles unrecoverable errors that should terminate the application.
func HandleFatalError(userMsg string, technicalErr error) {
	PrintError(userMsg, technicalErr)
	closeLog()
	osExit(1)
}

// PrintError prints an error message without exiting, allowing for recovery.
func PrintError(userMsg string, technicalErr error) {
	if technicalErr != nil {
		slog.Warn(userMsg, "error", technicalErr)
	}
	if isVerbose() && technicalErr != nil {
		// In verbose mode, print the detailed, underlying technical error.
		fmt.Fprintf(os.Stderr, "Error: %v\n", technicalErr)
	} else {
		// By default, print the clean, user-friendly message.
		if stderrIsTerminal() {
			fmt.Fprintln(os.Stderr, ui.RenderErrorPanel("Error", userMsg))
			return
		}
		fmt.Fprintln(os.Stderr, userMsg)
	}
}

// LogError records an error in the log file and echoes it to stderr in verbose mode.
func LogError(msg string, err error) {
	slog.Debug(msg, "error", err)
	if isVerbose() {
		if err != nil {
			fmt.Fprintf(os.Stderr, "[DEBUG] %s: %v\n", msg, err)
		} else {
			fmt.Fprintf(os.Stderr, "[DEBUG] %s\n", msg)
		}
	}
}
