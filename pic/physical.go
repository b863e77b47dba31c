// physical.go - PhysicalType: a tagged description of on-disk bytes.
package pic

import "fmt"

// PhysicalKind selects which on-disk representation a PhysicalType
// describes. The decode package switches exhaustively on this.
type PhysicalKind int

const (
	KindText PhysicalKind = iota
	KindZonedDecimal
	KindPackedDecimal
	KindBinary
	KindFloat4
	KindFloat8
)

func (k PhysicalKind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindZonedDecimal:
		return "ZonedDecimal"
	case KindPackedDecimal:
		return "PackedDecimal"
	case KindBinary:
		return "Binary"
	case KindFloat4:
		return "Float4"
	case KindFloat8:
		return "Float8"
	default:
		return fmt.Sprintf("PhysicalKind(%d)", int(k))
	}
}

// PhysicalType is the sum-typed physical storage description from
// Only the fields relevant to Kind are meaningful:
//
//	Text:           Length, CCSID
//	ZonedDecimal:   Digits, Scale, Signed
//	PackedDecimal:  Digits, Scale, Signed
//	Binary:         Bytes, Signed
//	Float4/Float8:  (no extra fields)
type PhysicalType struct {
	Kind   PhysicalKind
	Length int // Text only: length in bytes
	CCSID  int // Text only: code page; 0 means "caller default"
	Digits int // Zoned/Packed: total decimal digits
	Scale  int // Zoned/Packed: digits after the implied decimal point
	Signed bool
	Bytes  int // Binary: 2, 4, or 8
}

// ByteWidth returns the constant on-disk width of this physical type,
// per the formulas below. The decoder and the copybook
// layout builder must agree on this value to the bit.
func (p PhysicalType) ByteWidth() int {
	switch p.Kind {
	case KindText:
		return p.Length
	case KindZonedDecimal:
		return p.Digits
	case KindPackedDecimal:
		return (p.Digits + 1 + 1) / 2
	case KindBinary:
		return p.Bytes
	case KindFloat4:
		return 4
	case KindFloat8:
		return 8
	default:
		return 0
	}
}

func Text(length, ccsid int) PhysicalType {
	return PhysicalType{Kind: KindText, Length: length, CCSID: ccsid}
}

func ZonedDecimal(digits, scale int, signed bool) PhysicalType {
	return PhysicalType{Kind: KindZonedDecimal, Digits: digits, Scale: scale, Signed: signed}
}

func PackedDecimal(digits, scale int, signed bool) PhysicalType {
	return PhysicalType{Kind: KindPackedDecimal, Digits: digits, Scale: scale, Signed: signed}
}

func Binary(bytes int, signed bool) PhysicalType {
	return PhysicalType{Kind: KindBinary, Bytes: bytes, Signed: signed}
}

func Float4() PhysicalType { return PhysicalType{Kind: KindFloat4} }
func Float8() PhysicalType { return PhysicalType{Kind: KindFloat8} }
