// record.go - DecodeRecord: bytes + Layout -> logical field values.
package decode

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mfdata/mfcore/codepage"
	"github.com/mfdata/mfcore/copybook"
	"github.com/mfdata/mfcore/pic"
)

// Record is the result of decoding one physical record: a flat map
// from field name to its decoded Value.
type Record map[string]Value

// DecodeField decodes a single elementary field's raw bytes into a
// Value, using cp to decode Text fields that carry no explicit CCSID
// of their own.
func DecodeField(f *copybook.Field, raw []byte, cp *codepage.CodePage) (Value, error) {
	pt := *f.Physical
	kind := f.Logical().Kind

	switch pt.Kind {
	case pic.KindText:
		codec := cp
		if pt.CCSID != 0 {
			resolved, _ := codepage.Resolve(pt.CCSID)
			codec = resolved
		}
		text, err := codec.Decode(codepage.TrimTrailingEBCDICSpace(raw))
		if err != nil {
			return Value{}, &FieldDecodeError{FieldName: f.Name, Offset: f.Offset, Kind: KindCodepageDecodeFailure, Detail: err.Error()}
		}
		return Value{Kind: kind, Str: text}, nil

	case pic.KindZonedDecimal:
		dec, err := DecodeZoned(raw, pt)
		if err != nil {
			return Value{}, annotate(err, f)
		}
		return numericValue(kind, dec), nil

	case pic.KindPackedDecimal:
		dec, err := DecodePacked(raw, pt)
		if err != nil {
			return Value{}, annotate(err, f)
		}
		return numericValue(kind, dec), nil

	case pic.KindBinary:
		n, err := DecodeBinary(raw, pt)
		if err != nil {
			return Value{}, annotate(err, f)
		}
		return Value{Kind: kind, Int: n}, nil

	case pic.KindFloat4:
		v, err := DecodeFloat4(raw)
		if err != nil {
			return Value{}, annotate(err, f)
		}
		return Value{Kind: kind, Float: float64(v)}, nil

	case pic.KindFloat8:
		v, err := DecodeFloat8(raw)
		if err != nil {
			return Value{}, annotate(err, f)
		}
		return Value{Kind: kind, Float: v}, nil

	default:
		return Value{}, &FieldDecodeError{FieldName: f.Name, Offset: f.Offset, Kind: KindShortRecord, Detail: "unrecognized physical kind"}
	}
}

// annotate fills in the FieldName/Offset the numeric decoders don't
// know (they operate on a raw slice, not a Field).
func annotate(err error, f *copybook.Field) error {
	fde, ok := err.(*FieldDecodeError)
	if !ok {
		return err
	}
	fde.FieldName = f.Name
	fde.Offset = f.Offset
	return fde
}

// numericValue converts a decoded decimal.Decimal into the Value shape
// matching its derived LogicalKind: Decimal stays exact-precision,
// integer kinds collapse to a plain int64 (scale zero).
func numericValue(kind pic.LogicalKind, dec decimal.Decimal) Value {
	if kind == pic.LogicalDecimal {
		return Value{Kind: kind, Dec: dec}
	}
	return Value{Kind: kind, Int: dec.IntPart()}
}

// DecodeRecord decodes every elementary field of layout against a raw
// record buffer sized exactly layout.RecordLength. In Strict mode, the
// first field failure aborts with that error. In Lenient mode, failed
// fields are set to null and every failure is collected into a
// returned *RecordDecodeError (the Record itself is still usable).
func DecodeRecord(layout *copybook.Layout, raw []byte, cp *codepage.CodePage, mode Mode) (Record, error) {
	if len(raw) != layout.RecordLength {
		return nil, &FieldDecodeError{
			Kind:   KindShortRecord,
			Detail: fmt.Sprintf("record buffer is %d bytes, layout expects %d", len(raw), layout.RecordLength),
		}
	}

	record := make(Record, len(layout.Elementary()))
	var warnings []*FieldDecodeError

	for _, f := range layout.Elementary() {
		width := f.Width()
		for occ := 0; occ < f.Occurs; occ++ {
			start := f.Offset + occ*width
			end := start + width
			name := f.Name
			if f.Occurs > 1 {
				name = fmt.Sprintf("%s[%d]", f.Name, occ)
			}

			val, err := DecodeField(f, raw[start:end], cp)
			if err != nil {
				fde, _ := err.(*FieldDecodeError)
				if fde == nil {
					fde = &FieldDecodeError{FieldName: f.Name, Offset: start, Kind: KindShortRecord, Detail: err.Error()}
				}
				if mode == Strict {
					return nil, fde
				}
				warnings = append(warnings, fde)
				record[name] = NullValue(f.Logical().Kind)
				continue
			}
			record[name] = val
		}
	}

	if len(warnings) > 0 {
		return record, &RecordDecodeError{Warnings: warnings}
	}
	return record, nil
}
