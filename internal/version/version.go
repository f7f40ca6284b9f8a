// Package version provides version information and display utilities for
// the nextline commands.
package version

import (
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"

	"github.com/linecast/nextline/internal/config"
)

const (
	// Name of the project.
	Name string = "NextLine"
	// Version of the project.
	Version string = "0.3.0"
)

// String returns a plain text representation of the version information.
func String() string {
	return fmt.Sprintf("%s %s", Name, Version)
}

// PaintedString returns a color-formatted version string for terminals.
func PaintedString() string {
	if config.Common != nil && !config.Common.TermColorsEnable {
		return String()
	}
	return fmt.Sprintf("%s %s",
		aurora.Bold(aurora.Blue(Name)), aurora.Yellow(Version))
}

// Print the version.
func Print() {
	fmt.Println(PaintedString())
}

// PrintAndExit prints the program version and exits.
func PrintAndExit() {
	Print()
	os.Exit(0)
}
