package codepage

// cp037 is the byte->rune table for CCSID 37 (US/Canada EBCDIC), the
// default code page. It also serves as the base table for the other
// single-byte EBCDIC code pages recognized by Resolve: those differ
// from cp037 only in a handful of "national use" punctuation
// positions, applied by nationalOverride.apply.
var cp037 = buildCp037()

func buildCp037() [256]rune {
	var t [256]rune

	// Control range: cp037 maps these onto the same C0 control
	// semantics as ASCII for the positions that matter to text
	// decoding (tab, LF, CR, backspace); everything else is left as
	// the replacement character since copybook Text fields never
	// carry raw control bytes in practice.
	for i := range t {
		t[i] = '�'
	}
	t[0x00] = '\x00'
	t[0x05] = '\t'
	t[0x0B] = '\v'
	t[0x0C] = '\f'
	t[0x0D] = '\r'
	t[0x16] = '\b'
	t[0x25] = '\n'

	t[0x40] = ' '
	t[0x4A] = '¢' // cent sign
	t[0x4B] = '.'
	t[0x4C] = '<'
	t[0x4D] = '('
	t[0x4E] = '+'
	t[0x4F] = '|'
	t[0x50] = '&'
	t[0x5A] = '!'
	t[0x5B] = '$'
	t[0x5C] = '*'
	t[0x5D] = ')'
	t[0x5E] = ';'
	t[0x5F] = '¬' // not sign
	t[0x60] = '-'
	t[0x61] = '/'
	t[0x6A] = '¦' // broken bar
	t[0x6B] = ','
	t[0x6C] = '%'
	t[0x6D] = '_'
	t[0x6E] = '>'
	t[0x6F] = '?'
	t[0x79] = '`'
	t[0x7A] = ':'
	t[0x7B] = '#'
	t[0x7C] = '@'
	t[0x7D] = '\''
	t[0x7E] = '='
	t[0x7F] = '"'

	lower := "abcdefghi"
	for i, r := range lower {
		t[0x81+i] = r
	}
	lower2 := "jklmnopqr"
	for i, r := range lower2 {
		t[0x91+i] = r
	}
	lower3 := "stuvwxyz"
	for i, r := range lower3 {
		t[0xA2+i] = r
	}
	t[0xA1] = '~'

	t[0xC0] = '{'
	upper := "ABCDEFGHI"
	for i, r := range upper {
		t[0xC1+i] = r
	}
	t[0xD0] = '}'
	upper2 := "JKLMNOPQR"
	for i, r := range upper2 {
		t[0xD1+i] = r
	}
	t[0xE0] = '\\'
	upper3 := "STUVWXYZ"
	for i, r := range upper3 {
		t[0xE2+i] = r
	}

	digits := "0123456789"
	for i, r := range digits {
		t[0xF0+i] = r
	}

	return t
}

// nationalOverride is a sparse set of byte positions where a national
// EBCDIC variant swaps in a different punctuation or currency glyph
// than cp037. Only positions actually affected by these variants are
// listed; everything else falls back to cp037.
type nationalOverride map[byte]rune

var (
	overrideCp500 = nationalOverride{ // International EBCDIC
		0x4A: '¢', 0x5A: '!', 0x5F: '¬', 0x6A: '¦',
		0xB5: '~', 0xBA: '[', 0xBB: ']',
	}
	overrideCp273 = nationalOverride{ // German (Austria/Germany)
		0x4A: '§', 0x5A: '!', 0x5F: '^', 0x6A: '~',
		0xB0: '^', 0xBA: 'Ä', 0xBB: 'Ö', 0xBC: 'Ü',
		0xC0: '§',
	}
	overrideCp284 = nationalOverride{ // Spanish
		0x4A: '[', 0x5A: ']', 0x5F: 'Ñ', 0x6A: 'ñ',
		0xBA: '¿',
	}
	overrideCp285 = nationalOverride{ // UK
		0x4A: '£', 0x5A: '!', 0x5F: '¯', 0x6A: '¦',
	}
	overrideCp297 = nationalOverride{ // French
		0x4A: '°', 0x5A: '!', 0x5F: '§', 0x6A: '¤',
		0xBA: 'é', 0xBB: 'ù',
	}
)

// apply returns a full 256-entry table derived from cp037 with the
// override positions replaced.
func (o nationalOverride) apply() [256]rune {
	t := cp037
	for pos, r := range o {
		t[pos] = r
	}
	return t
}
