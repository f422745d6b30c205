package ingest

import (
	"strings"

	"github.com/menulytics/menulytics/internal/models"
)

// candidateDelimiters are tried in order against the header line; the
// first one that splits it into more than one field wins.
var candidateDelimiters = []rune{',', ';', '\t', '|'}

// Parse tokenizes raw upload text into rows of fields. The first row is
// the header. Blank lines are dropped and original row order is kept.
// Fewer than two non-blank lines (header plus at least one data row) is
// an error.
func Parse(raw string) ([][]string, error) {
	lines := splitLines(raw)
	if len(lines) < 2 {
		return nil, models.ErrEmptyInput
	}

	delim := detectDelimiter(lines[0])

	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, splitFields(line, delim))
	}
	return rows, nil
}

func splitLines(raw string) []string {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(normalized, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func detectDelimiter(header string) rune {
	for _, d := range candidateDelimiters {
		if len(splitFields(header, d)) > 1 {
			return d
		}
	}
	return ','
}

// splitFields tokenizes one line. A double quote toggles quoted mode;
// the delimiter inside quotes is literal text. Fields are trimmed.
func splitFields(line string, delim rune) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == delim && !inQuotes:
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(field.String()))
	return fields
}
