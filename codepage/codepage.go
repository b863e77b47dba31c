// codepage.go - CCSID to codec resolution and EBCDIC byte decoding.
package codepage

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// DefaultCCSID is the fallback code page used when a CCSID is not
// recognized, or when none is specified.
const DefaultCCSID = 37

// CodePage decodes EBCDIC (or, for the Unicode CCSIDs, already-modern)
// bytes into text. Values are immutable and safe for concurrent use.
type CodePage struct {
	CCSID int
	Name  string

	table [256]rune      // used for single-byte EBCDIC pages
	tdec  *encoding.Decoder // used when a golang.org/x/text codec covers the CCSID directly
	utf16 bool
	utf8  bool
}

var registry = map[int]*CodePage{}

func register(ccsid int, name string, cp *CodePage) {
	cp.CCSID = ccsid
	cp.Name = name
	registry[ccsid] = cp
}

func init() {
	register(37, "cp037", &CodePage{table: cp037})
	register(1047, "cp1047", &CodePage{tdec: charmap.CodePage1047.NewDecoder()})
	register(1140, "cp1140", &CodePage{tdec: charmap.CodePage1140.NewDecoder()})
	register(500, "cp500", &CodePage{table: overrideCp500.apply()})
	register(273, "cp273", &CodePage{table: overrideCp273.apply()})
	register(284, "cp284", &CodePage{table: overrideCp284.apply()})
	register(285, "cp285", &CodePage{table: overrideCp285.apply()})
	register(297, "cp297", &CodePage{table: overrideCp297.apply()})
	// 930/935/937 are DBCS (shift-in/shift-out) code pages; this
	// package decodes only their single-byte subset, matching the
	// cp037 table, and callers get a Warning for the scope limit.
	register(930, "cp930-sbcs", &CodePage{table: cp037})
	register(935, "cp935-sbcs", &CodePage{table: cp037})
	register(937, "cp937-sbcs", &CodePage{table: cp037})
	register(1200, "utf-16", &CodePage{utf16: true})
	register(1208, "utf-8", &CodePage{utf8: true})
}

// aliases maps the codec-name spellings a registry entry might carry
// (a numeric CCSID, or a codec alias like "cp037" or "utf8") to their CCSID.
var aliases = map[string]int{
	"cp037": 37, "ebcdic-us": 37, "ibm037": 37,
	"cp500": 500, "ibm500": 500,
	"cp1047": 1047, "ibm1047": 1047,
	"cp1140": 1140, "ibm1140": 1140,
	"cp273": 273, "cp284": 284, "cp285": 285, "cp297": 297,
	"cp930": 930, "cp935": 935, "cp937": 937,
	"utf-16": 1200, "utf16": 1200,
	"utf-8": 1208, "utf8": 1208,
}

// Warning describes a non-fatal condition raised while resolving a
// code page; unrecognized CCSIDs fall back to 37 with a warning.
type Warning struct {
	CCSID   int
	Message string
}

func (w *Warning) Error() string { return w.Message }

// Resolve returns the CodePage for a numeric CCSID, falling back to
// the default (37) with a Warning if the CCSID is not recognized. The
// DBCS CCSIDs 930/935/937 resolve with a Warning about the
// single-byte-only decoding.
func Resolve(ccsid int) (*CodePage, *Warning) {
	if cp, ok := registry[ccsid]; ok {
		switch ccsid {
		case 930, 935, 937:
			return cp, &Warning{
				CCSID:   ccsid,
				Message: fmt.Sprintf("CCSID %d is a double-byte code page; only its single-byte subset is decoded (%s)", ccsid, cp.Name),
			}
		}
		return cp, nil
	}
	return registry[DefaultCCSID], &Warning{
		CCSID:   ccsid,
		Message: fmt.Sprintf("unrecognized CCSID %d, falling back to %d (%s)", ccsid, DefaultCCSID, registry[DefaultCCSID].Name),
	}
}

// ResolveIdentifier resolves either a numeric CCSID string ("37") or a
// codec alias ("cp037", "UTF-8") to a CodePage.
func ResolveIdentifier(identifier string) (*CodePage, *Warning) {
	trimmed := strings.TrimSpace(identifier)
	if n, err := strconv.Atoi(trimmed); err == nil {
		return Resolve(n)
	}
	if ccsid, ok := aliases[strings.ToLower(trimmed)]; ok {
		return Resolve(ccsid)
	}
	return registry[DefaultCCSID], &Warning{
		Message: fmt.Sprintf("unrecognized code page identifier %q, falling back to CCSID %d", identifier, DefaultCCSID),
	}
}

// Default returns the US EBCDIC (CCSID 37) code page.
func Default() *CodePage {
	return registry[DefaultCCSID]
}

// Decode converts raw bytes in this code page into a Go string.
func (cp *CodePage) Decode(b []byte) (string, error) {
	switch {
	case cp.utf8:
		return string(b), nil
	case cp.utf16:
		if len(b)%2 != 0 {
			return "", fmt.Errorf("codepage: odd byte length %d for UTF-16", len(b))
		}
		units := make([]uint16, len(b)/2)
		for i := range units {
			units[i] = uint16(b[2*i])<<8 | uint16(b[2*i+1])
		}
		return string(utf16.Decode(units)), nil
	case cp.tdec != nil:
		out, err := cp.tdec.Bytes(b)
		if err != nil {
			return "", fmt.Errorf("codepage: %s decode failed: %w", cp.Name, err)
		}
		return string(out), nil
	default:
		runes := make([]rune, len(b))
		for i, c := range b {
			runes[i] = cp.table[c]
		}
		return string(runes), nil
	}
}

// TrimTrailingEBCDICSpace strips trailing 0x40 bytes (the EBCDIC space
// character) from raw bytes before decoding.
func TrimTrailingEBCDICSpace(b []byte) []byte {
	end := len(b)
	for end > 0 && b[end-1] == 0x40 {
		end--
	}
	return b[:end]
}
