// analyzer.go - PIC clause analyzer.
//
// Parses a single whitespace-normalized, upper-cased picture/usage
// phrase into a PhysicalType: a small hand-rolled recursive-descent
// scan rather than a general grammar engine, since the grammar itself
// is tiny.
package pic

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// PicSyntaxError reports an unparseable PIC phrase, with the byte
// position the scanner had reached when it gave up.
type PicSyntaxError struct {
	Phrase   string
	Position int
	Reason   string
}

func (e *PicSyntaxError) Error() string {
	return fmt.Sprintf("pic syntax error at byte %d in %q: %s", e.Position, e.Phrase, e.Reason)
}

// Usage is the recognized USAGE clause vocabulary in the grammar's
// grammar.
type Usage string

const (
	UsageDisplay Usage = "DISPLAY"
	UsageComp    Usage = "COMP"
	UsageComp1   Usage = "COMP-1"
	UsageComp2   Usage = "COMP-2"
	UsageComp3   Usage = "COMP-3"
	UsageComp4   Usage = "COMP-4"
	UsageComp5   Usage = "COMP-5"
)

// Result is the output of analyzing one PIC phrase: the physical
// storage description plus the derived logical type, bundled so
// callers don't have to call LogicalOf separately.
type Result struct {
	Physical PhysicalType
	Logical  LogicalType
	Signed   bool
}

var (
	// picHeader matches "PIC" or "PICTURE" plus the leading sign flag.
	picHeader = regexp.MustCompile(`^PIC(?:TURE)?\s+(S)?`)

	// baseRun matches a base-type run: either a repeated char class
	// ("XXX", "999") or a char class with a parenthesized count
	// ("X(25)", "9(7)"). Go's RE2 engine has no backreferences, so
	// unlike a PCRE-style grammar this enforces "same character
	// throughout" via three separate alternatives rather than a
	// captured-then-repeated group.
	baseRun = regexp.MustCompile(`^(X+|A+|9+)(?:\((\d+)\))?`)

	// fracRun matches the optional "V" fractional run.
	fracRun = regexp.MustCompile(`^V(9+)(?:\((\d+)\))?`)

	usagePattern = regexp.MustCompile(`^\s*(COMP(?:-[1-5])?|DISPLAY)\b`)
)

// Analyze parses one PIC/USAGE phrase into a Result. The phrase should
// already be whitespace-normalized (single spaces) and upper-cased;
// Normalize does this.
func Analyze(phrase string) (Result, error) {
	s := Normalize(phrase)
	pos := 0

	m := picHeader.FindStringSubmatchIndex(s)
	if m == nil {
		return Result{}, &PicSyntaxError{Phrase: phrase, Position: 0, Reason: `expected "PIC" or "PICTURE"`}
	}
	signed := m[2] != -1
	pos = m[1]

	rest := s[pos:]
	bm := baseRun.FindStringSubmatch(rest)
	if bm == nil {
		return Result{}, &PicSyntaxError{Phrase: phrase, Position: pos, Reason: "expected a base picture run (X, A, or 9)"}
	}
	baseChar := bm[1][0:1]
	var intDigits int
	if bm[2] != "" {
		n, err := strconv.Atoi(bm[2])
		if err != nil {
			return Result{}, &PicSyntaxError{Phrase: phrase, Position: pos, Reason: "invalid repeat count"}
		}
		intDigits = n
	} else {
		intDigits = len(bm[1])
	}
	pos += len(bm[0])
	rest = s[pos:]

	var fracDigits int
	if fm := fracRun.FindStringSubmatch(rest); fm != nil {
		if fm[2] != "" {
			n, err := strconv.Atoi(fm[2])
			if err != nil {
				return Result{}, &PicSyntaxError{Phrase: phrase, Position: pos, Reason: "invalid fractional count"}
			}
			fracDigits = n
		} else {
			fracDigits = len(fm[1])
		}
		pos += len(fm[0])
		rest = s[pos:]
	}

	usage := UsageDisplay
	if um := usagePattern.FindStringSubmatch(rest); um != nil {
		usage = Usage(um[1])
		pos += len(um[0])
	}

	if baseChar == "X" || baseChar == "A" {
		return Result{
			Physical: Text(intDigits, 0),
			Logical:  LogicalType{Kind: LogicalString},
			Signed:   false,
		}, nil
	}

	var phys PhysicalType
	switch usage {
	case UsageDisplay:
		phys = ZonedDecimal(intDigits+fracDigits, fracDigits, signed)
	case UsageComp3:
		phys = PackedDecimal(intDigits+fracDigits, fracDigits, signed)
	case UsageComp, UsageComp4, UsageComp5:
		phys = Binary(binaryBytesForDigits(intDigits+fracDigits), signed)
	case UsageComp1:
		phys = Float4()
	case UsageComp2:
		phys = Float8()
	default:
		return Result{}, &PicSyntaxError{Phrase: phrase, Position: pos, Reason: "unrecognized USAGE clause"}
	}

	return Result{
		Physical: phys,
		Logical:  LogicalOf(phys),
		Signed:   signed,
	}, nil
}

// binaryBytesForDigits implements the COMP byte-width table:
// <=4 digits -> 2 bytes, <=9 -> 4 bytes, else -> 8 bytes.
func binaryBytesForDigits(digits int) int {
	switch {
	case digits <= 4:
		return 2
	case digits <= 9:
		return 4
	default:
		return 8
	}
}

// Normalize upper-cases a phrase and collapses internal whitespace
// runs to single spaces, matching the "whitespace-normalized,
// upper-cased" precondition Analyze's input must satisfy.
func Normalize(phrase string) string {
	fields := strings.Fields(strings.ToUpper(phrase))
	return strings.Join(fields, " ")
}

// Degrade produces a fallback Text PhysicalType of the given storage
// width, for callers that request lenient recovery from an
// unparseable phrase.
func Degrade(storageWidth int) PhysicalType {
	return Text(storageWidth, 0)
}
