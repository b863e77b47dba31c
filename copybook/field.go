// field.go - Field: one node in a copybook's hierarchical layout.
package copybook

import "github.com/mfdata/mfcore/pic"

// Field is one data item from a copybook: either a group item (no
// PhysicalType, has Children) or an elementary item (has PhysicalType,
// no Children). Level 66 (RENAMES) and 88 (condition names) are
// discarded by the parser and never produce a Field.
type Field struct {
	Name      string
	Level     int
	Offset    int
	Physical  *pic.PhysicalType // nil for group items
	Occurs    int               // >= 1
	Redefines string            // name of the overlaid sibling, if any
	IsFiller  bool
	IsGroup   bool

	Parent   *Field
	Children []*Field
}

// IsElementary reports whether this field carries a PhysicalType.
func (f *Field) IsElementary() bool {
	return f.Physical != nil
}

// Width returns the elementary field's single-occurrence byte width,
// or 0 for a group item.
func (f *Field) Width() int {
	if f.Physical == nil {
		return 0
	}
	return f.Physical.ByteWidth()
}

// TotalWidth returns Width() * Occurs, the span this field (or its
// array) consumes starting at Offset.
func (f *Field) TotalWidth() int {
	return f.Width() * f.Occurs
}

// Logical returns the derived LogicalType for an elementary field.
func (f *Field) Logical() pic.LogicalType {
	if f.Physical == nil {
		return pic.LogicalType{Kind: pic.LogicalString}
	}
	return pic.LogicalOf(*f.Physical)
}
