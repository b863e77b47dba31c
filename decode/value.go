// value.go - Value: the decoded logical value for one field.
package decode

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mfdata/mfcore/pic"
)

// Value is a tagged union over the logical value domain. Only the
// field matching Kind is meaningful; Null overrides all of them.
type Value struct {
	Kind pic.LogicalKind
	Null bool

	Str     string
	Int     int64
	Dec     decimal.Decimal
	Float   float64
	Boolean bool
	Bytes   []byte
}

func (v Value) String() string {
	if v.Null {
		return "<null>"
	}
	switch v.Kind {
	case pic.LogicalString:
		return v.Str
	case pic.LogicalInt16, pic.LogicalInt32, pic.LogicalInt64:
		return fmt.Sprintf("%d", v.Int)
	case pic.LogicalDecimal:
		return v.Dec.String()
	case pic.LogicalFloat32, pic.LogicalFloat64:
		return fmt.Sprintf("%v", v.Float)
	case pic.LogicalBoolean:
		return fmt.Sprintf("%v", v.Boolean)
	case pic.LogicalBinary:
		return fmt.Sprintf("% x", v.Bytes)
	default:
		return v.Str
	}
}

// NullValue returns the null marker for a field of the given kind.
func NullValue(kind pic.LogicalKind) Value {
	return Value{Kind: kind, Null: true}
}
