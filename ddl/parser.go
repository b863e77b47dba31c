// parser.go - hand-rolled recursive-descent CREATE TABLE parser.
//
// DB2's DDL dialect (schema-qualified names, FOR BIT DATA, WITH
// DEFAULT) has no analogue in a MySQL-grammar library, so this is a
// small parser over the single CREATE TABLE statement shape
// rather than a general SQL grammar.
package ddl

import (
	"fmt"
	"regexp"
	"strings"
)

// DdlSyntaxError reports a CREATE TABLE statement that does not match
// the accepted grammar.
type DdlSyntaxError struct {
	Reason string
}

func (e *DdlSyntaxError) Error() string {
	return fmt.Sprintf("DDL syntax error: %s", e.Reason)
}

var (
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineComment  = regexp.MustCompile(`--[^\n]*`)

	createHeader = regexp.MustCompile(`(?is)^CREATE\s+TABLE\s+([\w.]+)\s*\(`)

	forBitData  = regexp.MustCompile(`(?i)\bFOR\s+BIT\s+DATA\b`)
	notNull     = regexp.MustCompile(`(?i)\bNOT\s+NULL\b`)
	withDefault = regexp.MustCompile(`(?is)\bWITH\s+DEFAULT\b\s*(.*)$`)
	nameColRest = regexp.MustCompile(`(?s)^([\w]+)\s+(.+)$`)
)

func stripComments(text string) string {
	text = blockComment.ReplaceAllString(text, " ")
	text = lineComment.ReplaceAllString(text, "")
	return text
}

// Parse parses a single CREATE TABLE statement into a TableDef.
func Parse(text string) (*TableDef, error) {
	cleaned := strings.TrimSpace(stripComments(text))
	cleaned = strings.TrimSuffix(cleaned, ";")

	header := createHeader.FindStringSubmatchIndex(cleaned)
	if header == nil {
		return nil, &DdlSyntaxError{Reason: "expected CREATE TABLE <name> ("}
	}
	qname := cleaned[header[2]:header[3]]
	bodyStart := header[1] // position just after the opening '('

	body, end, err := matchParens(cleaned, bodyStart)
	if err != nil {
		return nil, err
	}
	if trailing := strings.TrimSpace(cleaned[end:]); trailing != "" {
		return nil, &DdlSyntaxError{Reason: fmt.Sprintf("unexpected trailing text %q", trailing)}
	}

	table := &TableDef{}
	table.Schema, table.Name = splitQName(qname)

	items := splitTopLevel(body)
	for _, raw := range items {
		item := strings.TrimSpace(raw)
		if item == "" {
			continue
		}
		upper := strings.ToUpper(item)

		switch {
		case strings.HasPrefix(upper, "PRIMARY KEY"):
			names, err := parseNameList(item, "PRIMARY KEY")
			if err != nil {
				return nil, err
			}
			table.PrimaryKey = names

		case strings.HasPrefix(upper, "FOREIGN KEY"):
			fk, err := parseForeignKey(item)
			if err != nil {
				return nil, err
			}
			table.ForeignKeys = append(table.ForeignKeys, *fk)

		case strings.HasPrefix(upper, "CONSTRAINT") ||
			strings.HasPrefix(upper, "UNIQUE") ||
			strings.HasPrefix(upper, "CHECK") ||
			strings.HasPrefix(upper, "INDEX"):
			// ignored item kinds; every CONSTRAINT-prefixed item is
			// skipped, including named FOREIGN KEY and PRIMARY KEY constraints

		default:
			col, err := parseColumn(item)
			if err != nil {
				return nil, err
			}
			table.Columns = append(table.Columns, *col)
		}
	}

	for _, pk := range table.PrimaryKey {
		if c := table.ByName(pk); c != nil {
			c.IsPK = true
		}
	}
	for i := range table.ForeignKeys {
		fk := &table.ForeignKeys[i]
		for _, colName := range fk.Columns {
			if c := table.ByName(colName); c != nil {
				c.FKRef = fk
			}
		}
	}

	return table, nil
}

func parseColumn(item string) (*ColumnSpec, error) {
	m := nameColRest.FindStringSubmatch(item)
	if m == nil {
		return nil, &DdlSyntaxError{Reason: fmt.Sprintf("malformed column definition %q", item)}
	}
	col := &ColumnSpec{Name: strings.ToUpper(m[1]), Nullable: true}
	rest := m[2]

	if dm := withDefault.FindStringSubmatch(rest); dm != nil {
		col.Default = strings.TrimSpace(dm[1])
		rest = withDefault.ReplaceAllString(rest, "")
	}
	if notNull.MatchString(rest) {
		col.Nullable = false
		rest = notNull.ReplaceAllString(rest, " ")
	}
	if forBitData.MatchString(rest) {
		col.ForBitData = true
		rest = forBitData.ReplaceAllString(rest, " ")
	}

	col.SQLTypeText = strings.TrimSpace(strings.Join(strings.Fields(rest), " "))
	if col.SQLTypeText == "" {
		return nil, &DdlSyntaxError{Reason: fmt.Sprintf("column %s has no type", col.Name)}
	}
	return col, nil
}

func parseForeignKey(item string) (*ForeignKeyRef, error) {
	rest := strings.TrimSpace(item[len("FOREIGN KEY"):])

	var name string
	if !strings.HasPrefix(rest, "(") {
		sp := strings.IndexAny(rest, " (")
		if sp == -1 {
			return nil, &DdlSyntaxError{Reason: fmt.Sprintf("malformed FOREIGN KEY clause %q", item)}
		}
		name = strings.TrimSpace(rest[:sp])
		rest = strings.TrimSpace(rest[sp:])
	}

	cols, rest, err := consumeParenList(rest)
	if err != nil {
		return nil, err
	}

	upperRest := strings.ToUpper(rest)
	refIdx := strings.Index(upperRest, "REFERENCES")
	if refIdx == -1 {
		return nil, &DdlSyntaxError{Reason: fmt.Sprintf("FOREIGN KEY clause %q missing REFERENCES", item)}
	}
	rest = strings.TrimSpace(rest[refIdx+len("REFERENCES"):])

	parenIdx := strings.Index(rest, "(")
	if parenIdx == -1 {
		return nil, &DdlSyntaxError{Reason: fmt.Sprintf("REFERENCES clause %q missing column list", item)}
	}
	qname := strings.TrimSpace(rest[:parenIdx])
	refSchema, refTable := splitQName(qname)

	refCols, _, err := consumeParenList(rest[parenIdx:])
	if err != nil {
		return nil, err
	}

	return &ForeignKeyRef{
		Name:       strings.ToUpper(name),
		Columns:    cols,
		RefSchema:  refSchema,
		RefTable:   refTable,
		RefColumns: refCols,
	}, nil
}

func parseNameList(item, prefix string) ([]string, error) {
	rest := strings.TrimSpace(item[len(prefix):])
	names, _, err := consumeParenList(rest)
	return names, err
}

// consumeParenList expects s to begin (after optional whitespace) with
// a parenthesized comma list; it returns the parsed names
// (uppercase-normalized) and the unconsumed remainder of s.
func consumeParenList(s string) ([]string, string, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "(") {
		return nil, s, &DdlSyntaxError{Reason: fmt.Sprintf("expected '(' in %q", s)}
	}
	body, end, err := matchParens(s, 1)
	if err != nil {
		return nil, s, err
	}
	var names []string
	for _, n := range splitTopLevel(body) {
		n = strings.ToUpper(strings.TrimSpace(n))
		if n != "" {
			names = append(names, n)
		}
	}
	return names, s[end:], nil
}

func splitQName(qname string) (schema, name string) {
	parts := strings.SplitN(qname, ".", 2)
	if len(parts) == 2 {
		return strings.ToUpper(parts[0]), strings.ToUpper(parts[1])
	}
	return "", strings.ToUpper(parts[0])
}

// matchParens starts just past an opening '(' at openAt-1 (i.e. open
// is at position openAt-1, content begins at openAt) and returns the
// content up to its balancing ')', plus the index just after that ')'.
func matchParens(s string, openAt int) (content string, after int, err error) {
	depth := 1
	for i := openAt; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[openAt:i], i + 1, nil
			}
		}
	}
	return "", 0, &DdlSyntaxError{Reason: "unbalanced parentheses"}
}

// splitTopLevel splits body on commas that occur at paren-depth 0
// at paren-depth 0.
func splitTopLevel(body string) []string {
	var items []string
	depth := 0
	start := 0
	for i, r := range body {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				items = append(items, body[start:i])
				start = i + 1
			}
		}
	}
	items = append(items, body[start:])
	return items
}
