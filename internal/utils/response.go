package utils

import (
	"fmt"
	"io"
	"strings"
)

const ruleWidth = 60

func Success(w io.Writer, message string) {
	fmt.Fprintf(w, "%s\n", message)
}

func Error(w io.Writer, message string) {
	fmt.Fprintf(w, "Error: %s\n", message)
}

// Heading prints a section title in the "===== TITLE =====" style.
func Heading(w io.Writer, title string) {
	fmt.Fprintf(w, "\n===== %s =====\n\n", strings.ToUpper(title))
}

func Rule(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
}

// Money formats an amount the way receipts show it.
func Money(amount float64) string {
	return fmt.Sprintf("RM%.2f", amount)
}
