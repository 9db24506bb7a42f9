package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"counterscrape/internal/match"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteOutput writes the results in the specified format
func WriteOutput(w io.Writer, results *match.Results, refDate time.Time, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, results)
	case FormatText:
		return writeText(w, results, refDate)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the ordered results object as indented JSON
func writeJSON(w io.Writer, results *match.Results) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	return encoder.Encode(results)
}

// writeText outputs one fixed-width aligned line per match, followed by
// the date summary and attribution lines.
func writeText(w io.Writer, results *match.Results, refDate time.Time) error {
	day := match.DayString(refDate)

	if results.Len() == 0 {
		fmt.Fprintf(w, "No match results for %s\n", day)
		fmt.Fprintln(w, "Powered by HLTV.org")
		return nil
	}

	for _, m := range results.Matches() {
		fmt.Fprintf(w, "%s %-2d - %2d %s %-13s\n",
			center(m.TeamOne, 20), m.TeamOneScore, m.TeamTwoScore, center(m.TeamTwo, 20), m.Maps)
	}
	fmt.Fprintf(w, "\nCS:GO match results for %s\n", day)
	fmt.Fprintln(w, "Powered by HLTV.org")
	return nil
}

// center pads s with spaces to width, the odd space going to the right.
// Strings already at or past width are returned unchanged.
func center(s string, width int) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
