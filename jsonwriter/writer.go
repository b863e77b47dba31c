// writer.go - the JSON output mapping for decoded records.
//
// Serialization is kept out of the core decoder: the decoder returns
// typed Values, and this package is one concrete writer responsible
// for quoting, type-promotion (decimal as string, binary as base64),
// and the rest of the output shape. A CLI owns JSON rendering rather
// than the core decode package, the way a thin wrapper around a
// library's core types should.
package jsonwriter

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/mfdata/mfcore/decode"
	"github.com/mfdata/mfcore/pic"
)

// ValueToJSON converts one decoded Value into the JSON-ready shape
// the mapping is: string->string; integer->number; decimal->string
// (preserves precision beyond 2^53); date/timestamp->ISO-8601 string;
// binary->base64 string; boolean->boolean.
func ValueToJSON(v decode.Value) (interface{}, error) {
	if v.Null {
		return nil, nil
	}
	switch v.Kind {
	case pic.LogicalString, pic.LogicalDate, pic.LogicalTimestamp:
		return v.Str, nil
	case pic.LogicalInt16, pic.LogicalInt32, pic.LogicalInt64:
		return v.Int, nil
	case pic.LogicalDecimal:
		return v.Dec.String(), nil
	case pic.LogicalFloat32, pic.LogicalFloat64:
		return v.Float, nil
	case pic.LogicalBoolean:
		return v.Boolean, nil
	case pic.LogicalBinary:
		return base64.StdEncoding.EncodeToString(v.Bytes), nil
	default:
		return nil, fmt.Errorf("jsonwriter: unhandled logical kind %v", v.Kind)
	}
}

// RecordToJSON converts a full decoded Record into a plain
// map[string]interface{} ready for encoding/json.Marshal.
func RecordToJSON(rec decode.Record) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(rec))
	for name, v := range rec {
		jv, err := ValueToJSON(v)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		out[name] = jv
	}
	return out, nil
}

// MarshalRecord renders one decoded Record as a single JSON line, the
// shape the dataframe engine boundary consumes as "JSON
// lines" output.
func MarshalRecord(rec decode.Record) ([]byte, error) {
	m, err := RecordToJSON(rec)
	if err != nil {
		return nil, err
	}
	return json.Marshal(m)
}
