// parser.go - Copybook statement grammar and the layout-building stack.
package copybook

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mfdata/mfcore/pic"
)

// RedefinesTargetMissing reports a REDEFINES clause whose target field
// cannot be found among the preceding siblings at the same level.
type RedefinesTargetMissing struct {
	Field  string
	Target string
}

func (e *RedefinesTargetMissing) Error() string {
	return fmt.Sprintf("field %s REDEFINES %s, but no matching sibling was found", e.Field, e.Target)
}

// OccursNotPositive reports an OCCURS clause whose count is < 1.
type OccursNotPositive struct {
	Field string
	Count int
}

func (e *OccursNotPositive) Error() string {
	return fmt.Sprintf("field %s has OCCURS %d, which must be >= 1", e.Field, e.Count)
}

// GroupEmpty reports a non-top-level group item with no children.
type GroupEmpty struct {
	Field string
}

func (e *GroupEmpty) Error() string {
	return fmt.Sprintf("group item %s has no children", e.Field)
}

var (
	levelPattern = regexp.MustCompile(`^(\d{1,2})\s+([\w-]+)(.*)$`)

	redefinesPattern = regexp.MustCompile(`(?i)REDEFINES\s+([\w-]+)`)
	occursPattern    = regexp.MustCompile(`(?i)OCCURS\s+(\d+)(?:\s+TIMES)?`)
	picPattern       = regexp.MustCompile(`(?i)PIC(?:TURE)?\s+(S)?([XA9]+(?:\(\d+\))?)(?:\s*V(9+(?:\(\d+\))?))?`)
	usagePattern     = regexp.MustCompile(`(?i)\b(COMP(?:-[1-5])?|DISPLAY)\b`)
)

// parsedStatement is the intermediate result of parsing one
// period-terminated copybook statement, before offsets are assigned.
type parsedStatement struct {
	level     int
	name      string
	picPhrase string // reconstructed "PIC ..." phrase, or "" when there is no PIC clause (group items, FILLER groups)
	occurs    int
	redefines string
	isFiller  bool
}

func parseStatement(stmt string) (*parsedStatement, error) {
	m := levelPattern.FindStringSubmatch(stmt)
	if m == nil {
		return nil, nil // not a field-defining statement
	}
	level, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, nil
	}
	name := strings.ToUpper(m[2])
	rest := m[3]

	// Levels 66 (RENAMES) and 88 (condition names) are recognized and
	// discarded without affecting the cursor.
	if level == 66 || level == 88 {
		return nil, nil
	}

	ps := &parsedStatement{level: level, name: name, occurs: 1, isFiller: name == "FILLER"}

	if rm := redefinesPattern.FindStringSubmatch(rest); rm != nil {
		ps.redefines = strings.ToUpper(rm[1])
	}

	if om := occursPattern.FindStringSubmatch(rest); om != nil {
		n, err := strconv.Atoi(om[1])
		if err != nil {
			return nil, fmt.Errorf("invalid OCCURS count in %q", stmt)
		}
		ps.occurs = n
	}

	if pm := picPattern.FindStringSubmatch(rest); pm != nil {
		phrase := "PIC " + pm[1] + pm[2]
		if pm[3] != "" {
			phrase += "V" + pm[3]
		}
		if um := usagePattern.FindStringSubmatch(rest); um != nil {
			phrase += " " + strings.ToUpper(um[1])
		}
		ps.picPhrase = phrase
	}

	return ps, nil
}

// stackEntry tracks one open group level while the builder walks the
// statement list. restoreCursor is the cursor value to reinstate when
// this entry pops (the group redefined a sibling, so its children were
// laid out from the overlaid offset and must not leave the cursor
// advanced past it); -1 means no restore is needed.
type stackEntry struct {
	field         *Field
	restoreCursor int
}

// Parse parses area-encoded copybook source into a Layout, applying
// the build rules below.
func Parse(source string) (*Layout, error) {
	statements, err := extractStatements(source)
	if err != nil {
		return nil, err
	}

	layout := &Layout{}
	var stack []stackEntry
	var rootSiblings []*Field
	cursor := 0
	topLevel := -1

	for _, stmt := range statements {
		ps, err := parseStatement(stmt)
		if err != nil {
			return nil, err
		}
		if ps == nil {
			continue
		}
		if topLevel == -1 {
			topLevel = ps.level
		}

		// Rule 1: pop the stack while its top level >= current level.
		for len(stack) > 0 && stack[len(stack)-1].field.Level >= ps.level {
			popped := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if popped.restoreCursor >= 0 {
				cursor = popped.restoreCursor
			}
		}

		field := &Field{
			Name:      ps.name,
			Level:     ps.level,
			Occurs:    ps.occurs,
			Redefines: ps.redefines,
			IsFiller:  ps.isFiller,
		}

		if len(stack) > 0 {
			parent := stack[len(stack)-1].field
			field.Parent = parent
			parent.Children = append(parent.Children, field)
		} else {
			rootSiblings = append(rootSiblings, field)
		}

		if ps.occurs < 1 {
			return nil, &OccursNotPositive{Field: field.Name, Count: ps.occurs}
		}

		switch {
		case ps.picPhrase != "":
			// Rule 3: elementary item.
			result, err := pic.Analyze(ps.picPhrase)
			if err != nil {
				return nil, err
			}
			phys := result.Physical
			field.Physical = &phys
			field.Offset = cursor

			if field.Redefines != "" {
				target := findSibling(field, field.Redefines, rootSiblings)
				if target == nil {
					return nil, &RedefinesTargetMissing{Field: field.Name, Target: field.Redefines}
				}
				field.Offset = target.Offset
				// Rule 4: REDEFINES does not advance the cursor.
			} else {
				cursor += field.TotalWidth()
			}

		case field.IsFiller:
			// FILLER without a PIC clause behaves like a group item
			// structurally (retained, flagged rather than dropped).
			entry, newCursor, err := pushGroup(field, cursor, rootSiblings)
			if err != nil {
				return nil, err
			}
			cursor = newCursor
			stack = append(stack, entry)

		default:
			// Rule 2: group item; does not itself consume bytes.
			entry, newCursor, err := pushGroup(field, cursor, rootSiblings)
			if err != nil {
				return nil, err
			}
			cursor = newCursor
			stack = append(stack, entry)
		}

		layout.Fields = append(layout.Fields, field)
	}

	if err := validateGroups(layout, topLevel); err != nil {
		return nil, err
	}

	layout.RecordLength = computeRecordLength(layout)
	return layout, nil
}

// pushGroup assigns a group/FILLER-group item's Offset, overlaying a
// REDEFINES target's offset when present, and returns the stackEntry
// to push along with the cursor the group's children should be laid
// out from. A redefining group descends its children starting at the
// target's offset (so they overlay the target's own layout instead of
// continuing past it) and reports a restoreCursor so Rule 1's pop
// reinstates the pre-overlay cursor once the group closes, matching
// the elementary REDEFINES rule that redefinition never advances the
// cursor.
func pushGroup(field *Field, cursor int, rootSiblings []*Field) (stackEntry, int, error) {
	field.IsGroup = true
	field.Offset = cursor

	if field.Redefines == "" {
		return stackEntry{field: field, restoreCursor: -1}, cursor, nil
	}

	target := findSibling(field, field.Redefines, rootSiblings)
	if target == nil {
		return stackEntry{}, cursor, &RedefinesTargetMissing{Field: field.Name, Target: field.Redefines}
	}
	field.Offset = target.Offset
	return stackEntry{field: field, restoreCursor: cursor}, target.Offset, nil
}

// findSibling locates the nearest previous sibling of f with the
// given name (it must share the parent and level —
// enforced here by only searching within f's own sibling list, be it
// a parent's Children or the top-level list).
func findSibling(f *Field, name string, rootSiblings []*Field) *Field {
	siblings := rootSiblings
	if f.Parent != nil {
		siblings = f.Parent.Children
	}
	for i := len(siblings) - 1; i >= 0; i-- {
		if siblings[i] != f && siblings[i].Name == name && siblings[i].Level == f.Level {
			return siblings[i]
		}
	}
	return nil
}

// validateGroups enforces the rule that group items must contain at
// least one child, excepting an empty top-level record.
func validateGroups(layout *Layout, topLevel int) error {
	for _, f := range layout.Fields {
		if !f.IsGroup || f.IsFiller {
			continue
		}
		if len(f.Children) == 0 && f.Level != topLevel {
			return &GroupEmpty{Field: f.Name}
		}
	}
	return nil
}

// computeRecordLength is max(offset + width*occurs) across all
// elementary, non-group fields.
func computeRecordLength(layout *Layout) int {
	max := 0
	for _, f := range layout.Fields {
		if !f.IsElementary() {
			continue
		}
		end := f.Offset + f.TotalWidth()
		if end > max {
			max = end
		}
	}
	return max
}
