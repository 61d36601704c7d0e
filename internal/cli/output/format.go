package output

import (
	"fmt"
	"strconv"
	"strings"
)

// InvalidInputMessage is shown when the number of points cannot be used.
const InvalidInputMessage = "Invalid input. Please enter a positive integer."

// FormatEstimate renders the result label, e.g. "Estimated Pi: 3.1416".
func FormatEstimate(v float64) string {
	return "Estimated Pi: " + FormatFloat(v)
}

// FormatFloat prints the shortest representation of v, always with a
// fractional part.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatHeader returns a markdown header of the given level.
func FormatHeader(level int, text string) string {
	level = min(max(level, 1), 6)
	return strings.Repeat("#", level) + " " + text
}

// FormatKeyValue returns a markdown list item with a bold key.
func FormatKeyValue(key, value string) string {
	return fmt.Sprintf("- **%s:** %s", key, value)
}
