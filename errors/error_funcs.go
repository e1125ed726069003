package errors

import (
	"os"

	"github.com/fatih/color"
)

// OsExit is a variable for testing, so we can mock os.Exit.
var OsExit = os.Exit

// CheckErrorAndPrint prints an error message to stderr.
func CheckErrorAndPrint(err error) {
	if err == nil {
		return
	}
	color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
}

// CheckErrorPrintAndExit prints an error message and exits with exit code 1.
func CheckErrorPrintAndExit(err error) {
	if err == nil {
		return
	}
	CheckErrorAndPrint(err)
	Exit(1)
}

// Exit exits the program with the specified exit code.
func Exit(exitCode int) {
	OsExit(exitCode)
}
