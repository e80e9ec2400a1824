package ui

import (
	"fmt"
	"io"
)

// PrintError writes "Error: <message>" to w with the prefix in red.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "%s %s\n", ErrorColor("Error:"), err.Error())
}

// PrintWarning writes "Warning: <message>" to w with the prefix in yellow.
func PrintWarning(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", WarningColor("Warning:"), message)
}
