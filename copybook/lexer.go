// lexer.go - Area-column normalization and statement splitting.
package copybook

import (
	"fmt"
	"strings"
)

// CopybookAreaError reports a structural problem in the fixed-column
// source (e.g. a continuation line with nothing to continue).
type CopybookAreaError struct {
	Line   int
	Reason string
}

func (e *CopybookAreaError) Error() string {
	return fmt.Sprintf("copybook area error at line %d: %s", e.Line, e.Reason)
}

const (
	seqAreaEnd     = 6  // columns 1-6: sequence numbers, discarded
	indicatorCol   = 6  // column 7 (0-based index 6): indicator
	contentAreaEnd = 72 // columns 8-72: content
)

// extractStatements reads area-encoded copybook source and returns
// each period-terminated statement as a single normalized string,
// continuations already joined.
func extractStatements(source string) ([]string, error) {
	lines := strings.Split(strings.ReplaceAll(source, "\r\n", "\n"), "\n")

	var acc strings.Builder
	var statements []string

	flush := func() {
		stmt := strings.TrimSpace(acc.String())
		if stmt != "" {
			statements = append(statements, stmt)
		}
		acc.Reset()
	}

	for lineNo, raw := range lines {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		var indicator byte = ' '
		var content string
		if len(raw) > indicatorCol {
			indicator = raw[indicatorCol]
			end := len(raw)
			if end > contentAreaEnd {
				end = contentAreaEnd
			}
			if end > seqAreaEnd+1 {
				content = raw[seqAreaEnd+1 : end]
			}
		} else if len(raw) > seqAreaEnd {
			content = raw[seqAreaEnd:]
		} else {
			content = raw
		}

		switch indicator {
		case '*':
			continue // comment line
		case '-':
			if acc.Len() == 0 {
				return nil, &CopybookAreaError{Line: lineNo + 1, Reason: "continuation indicator with no preceding content"}
			}
			joined := strings.TrimRight(acc.String(), " ") + strings.TrimLeft(content, " ")
			acc.Reset()
			acc.WriteString(joined)
		default:
			if acc.Len() > 0 {
				acc.WriteString(" ")
			}
			acc.WriteString(strings.TrimSpace(content))
		}

		// A period ends the current statement; there may be trailing
		// content after it on the same logical line, which belongs to
		// the next statement.
		for {
			joined := acc.String()
			idx := strings.Index(joined, ".")
			if idx == -1 {
				break
			}
			stmt := strings.TrimSpace(joined[:idx])
			if stmt != "" {
				statements = append(statements, stmt)
			}
			remainder := strings.TrimSpace(joined[idx+1:])
			acc.Reset()
			acc.WriteString(remainder)
		}
	}
	flush()

	return statements, nil
}
