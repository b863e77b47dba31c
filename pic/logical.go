// logical.go - LogicalType: the modern-side type a PhysicalType maps to.
package pic

import "fmt"

type LogicalKind int

const (
	LogicalString LogicalKind = iota
	LogicalInt16
	LogicalInt32
	LogicalInt64
	LogicalDecimal
	LogicalFloat32
	LogicalFloat64
	LogicalDate
	LogicalTimestamp
	LogicalBinary
	LogicalBoolean
)

func (k LogicalKind) String() string {
	switch k {
	case LogicalString:
		return "String"
	case LogicalInt16:
		return "Int16"
	case LogicalInt32:
		return "Int32"
	case LogicalInt64:
		return "Int64"
	case LogicalDecimal:
		return "Decimal"
	case LogicalFloat32:
		return "Float32"
	case LogicalFloat64:
		return "Float64"
	case LogicalDate:
		return "Date"
	case LogicalTimestamp:
		return "Timestamp"
	case LogicalBinary:
		return "Binary"
	case LogicalBoolean:
		return "Boolean"
	default:
		return fmt.Sprintf("LogicalKind(%d)", int(k))
	}
}

// LogicalType is the sum type over the logical value domain.
// Precision/Scale are only meaningful when Kind == LogicalDecimal.
type LogicalType struct {
	Kind      LogicalKind
	Precision int
	Scale     int
}

func (t LogicalType) String() string {
	if t.Kind == LogicalDecimal {
		return fmt.Sprintf("Decimal(%d,%d)", t.Precision, t.Scale)
	}
	return t.Kind.String()
}

// integerKindForDigits picks the tightest integer LogicalKind that can
// hold a decimal value of the given digit count:
// <=4 digits -> Int16, <=9 -> Int32, <=18 -> Int64.
func integerKindForDigits(digits int) LogicalKind {
	switch {
	case digits <= 4:
		return LogicalInt16
	case digits <= 9:
		return LogicalInt32
	default:
		return LogicalInt64
	}
}

// LogicalOf derives the LogicalType for a PhysicalType.
func LogicalOf(p PhysicalType) LogicalType {
	switch p.Kind {
	case KindText:
		return LogicalType{Kind: LogicalString}
	case KindZonedDecimal, KindPackedDecimal:
		if p.Scale > 0 || p.Digits > 18 {
			return LogicalType{Kind: LogicalDecimal, Precision: p.Digits, Scale: p.Scale}
		}
		return LogicalType{Kind: integerKindForDigits(p.Digits)}
	case KindBinary:
		digits := binaryDigitsForBytes(p.Bytes)
		return LogicalType{Kind: integerKindForDigits(digits)}
	case KindFloat4:
		return LogicalType{Kind: LogicalFloat32}
	case KindFloat8:
		return LogicalType{Kind: LogicalFloat64}
	default:
		return LogicalType{Kind: LogicalString}
	}
}

// binaryDigitsForBytes inverts the COMP byte-width table so a
// raw Binary PhysicalType (which only knows its byte width, not the
// declared digit count) still gets the "tightest fitting" logical
// integer kind.
func binaryDigitsForBytes(bytes int) int {
	switch bytes {
	case 2:
		return 4
	case 4:
		return 9
	default:
		return 18
	}
}
