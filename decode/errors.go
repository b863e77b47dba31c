// errors.go - the decode error taxonomy.
package decode

import "fmt"

// Mode selects how DecodeRecord reacts to a per-field decode failure.
type Mode int

const (
	// Strict aborts the whole record decode and returns the first
	// FieldDecodeError encountered.
	Strict Mode = iota
	// Lenient substitutes a nil value for the failed field, collects
	// the error as a warning, and continues decoding the rest of the
	// record.
	Lenient
)

// Kind identifies which decode invariant a FieldDecodeError violates.
type Kind int

const (
	KindShortRecord Kind = iota
	KindZonedInvalidDigit
	KindPackedInvalidDigit
	KindPackedInvalidSign
	KindCodepageDecodeFailure
)

func (k Kind) String() string {
	switch k {
	case KindShortRecord:
		return "ShortRecord"
	case KindZonedInvalidDigit:
		return "ZonedInvalidDigit"
	case KindPackedInvalidDigit:
		return "PackedInvalidDigit"
	case KindPackedInvalidSign:
		return "PackedInvalidSign"
	case KindCodepageDecodeFailure:
		return "CodepageDecodeFailure"
	default:
		return "Unknown"
	}
}

// FieldDecodeError reports a single field's decode failure.
// The decoder itself is pure: producing this value never mutates the
// record under decode.
type FieldDecodeError struct {
	FieldName string
	Offset    int
	Kind      Kind
	Detail    string
}

func (e *FieldDecodeError) Error() string {
	return fmt.Sprintf("field %s at offset %d: %s (%s)", e.FieldName, e.Offset, e.Kind, e.Detail)
}

// RecordDecodeError wraps the FieldDecodeErrors accumulated while
// decoding one record in Lenient mode; DecodeRecord returns the partial
// Record alongside it.
type RecordDecodeError struct {
	Warnings []*FieldDecodeError
}

func (e *RecordDecodeError) Error() string {
	return fmt.Sprintf("%d field(s) failed to decode", len(e.Warnings))
}
