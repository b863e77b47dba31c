// layout.go - Layout: the ordered, offset-computed result of parsing a copybook.
package copybook

import (
	"fmt"
	"strings"
)

// Layout is the immutable result of parsing one copybook: an ordered
// list of Fields (group and elementary, in source order) plus the
// computed overall record length.
type Layout struct {
	Fields       []*Field
	RecordLength int
}

// Elementary returns the non-group fields in layout order, the same
// list the decoder walks.
func (l *Layout) Elementary() []*Field {
	out := make([]*Field, 0, len(l.Fields))
	for _, f := range l.Fields {
		if f.IsElementary() {
			out = append(out, f)
		}
	}
	return out
}

// ByName returns the first field with the given name, or nil.
func (l *Layout) ByName(name string) *Field {
	for _, f := range l.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// String renders a tabular record-layout listing: offset, length,
// level, name, and physical kind for every field.
func (l *Layout) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString("RECORD LAYOUT\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	fmt.Fprintf(&sb, "%-8s %-8s %-6s %-30s %s\n", "Offset", "Length", "Level", "Name", "Physical")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	for _, f := range l.Fields {
		indent := strings.Repeat("  ", f.Level/5)
		name := indent + f.Name
		desc := "(GROUP)"
		if f.IsElementary() {
			desc = f.Physical.Kind.String()
		}
		fmt.Fprintf(&sb, "%-8d %-8d %-6d %-30s %s\n", f.Offset, f.Width(), f.Level, name, desc)
	}
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	fmt.Fprintf(&sb, "Total Record Length: %d bytes\n", l.RecordLength)
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	return sb.String()
}
