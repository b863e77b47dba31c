// parser.go - DCLGEN file parser: DECLARE block + host-variable block.
package dclgen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mfdata/mfcore/copybook"
	"github.com/mfdata/mfcore/ddl"
)

// DclGenStructureError reports a DCLGEN file missing one of its two
// required blocks.
type DclGenStructureError struct {
	Reason string
}

func (e *DclGenStructureError) Error() string {
	return fmt.Sprintf("DCLGEN structure error: %s", e.Reason)
}

var (
	declarePattern = regexp.MustCompile(`(?is)EXEC\s+SQL\s+DECLARE\s+([\w]+(?:\.[\w]+)?)\s+TABLE\s*\((.*?)\)\s*END-EXEC`)
	sqlColPattern  = regexp.MustCompile(`(?is)^([\w]+)\s+([A-Z][\w]*(?:\s*\([^)]*\))?)\s*(NOT\s+NULL)?$`)
	// hostBlockStart captures from the start of the 01 line, keeping its
	// leading columns so copybook.Parse sees the fixed-column areas.
	hostBlockStart = regexp.MustCompile(`(?ims)^([ \t]*01\s+[\w-]+\..*)$`)
)

// Parse parses one DCLGEN file's text into a DclGenResult.
func Parse(text string) (*DclGenResult, error) {
	result := &DclGenResult{}

	dm := declarePattern.FindStringSubmatch(text)
	if dm == nil {
		return nil, &DclGenStructureError{Reason: "missing EXEC SQL DECLARE ... TABLE (...) END-EXEC block"}
	}
	result.TableName = strings.ToUpper(dm[1])
	result.Schema, result.Table = splitQName(result.TableName)
	result.SQLColumns = parseSQLColumns(dm[2])

	hb := hostBlockStart.FindStringSubmatch(text)
	if hb == nil {
		return nil, &DclGenStructureError{Reason: "missing 01-level COBOL host-variable record"}
	}
	layout, err := copybook.Parse(hb[1])
	if err != nil {
		return nil, fmt.Errorf("dclgen: host-variable block: %w", err)
	}
	result.Layout = layout

	for _, f := range layout.Elementary() {
		if f.Level == 49 {
			// auto-generated VARCHAR length-prefix field
			continue
		}
		result.HostVariables = append(result.HostVariables, HostVariable{Field: f})
	}

	pairHostVariables(result)
	return result, nil
}

// parseSQLColumns parses the DECLARE block's column list under the
// subset grammar: column name + type + optional NOT NULL.
func parseSQLColumns(content string) []ddl.ColumnSpec {
	var cols []ddl.ColumnSpec
	for _, part := range splitTopLevelCommas(content) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		m := sqlColPattern.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		cols = append(cols, ddl.ColumnSpec{
			Name:        strings.ToUpper(m[1]),
			SQLTypeText: strings.ToUpper(strings.Join(strings.Fields(m[2]), " ")),
			Nullable:    m[3] == "",
		})
	}
	return cols
}

// pairHostVariables strips a leading "DCL-" prefix, replaces "-" with
// "_", and exact-matches the result against a SQL column name.
func pairHostVariables(result *DclGenResult) {
	for i := range result.HostVariables {
		hv := &result.HostVariables[i]
		candidate := strings.TrimPrefix(hv.Field.Name, "DCL-")
		candidate = strings.ReplaceAll(candidate, "-", "_")

		if col := columnByName(result.SQLColumns, candidate); col != nil {
			hv.SQLColumn = col.Name
		} else {
			result.Warnings = append(result.Warnings, &HostVariableUnpaired{HostVariable: hv.Field.Name})
		}
	}
}

func splitQName(qname string) (schema, table string) {
	parts := strings.SplitN(qname, ".", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return "", parts[0]
}

// splitTopLevelCommas splits on commas at paren-depth 0, the same
// rule ddl.Parse uses for CREATE TABLE item lists.
func splitTopLevelCommas(s string) []string {
	var items []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				items = append(items, s[start:i])
				start = i + 1
			}
		}
	}
	items = append(items, s[start:])
	return items
}
