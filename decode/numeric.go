// numeric.go - zoned, packed, and binary decode/encode.
package decode

import (
	"encoding/binary"
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/mfdata/mfcore/format"
	"github.com/mfdata/mfcore/pic"
)

// zonedValidZone is the set of high-nibble values permitted on every
// zoned-decimal byte but the last: ignored for value purposes but
// must be one of {0xF, 0xD, 0xC, 0xB, 0xA} to be considered valid.
var zonedValidZone = map[byte]bool{0xF: true, 0xD: true, 0xC: true, 0xB: true, 0xA: true}

// DecodeZoned decodes a zoned-decimal field.
func DecodeZoned(b []byte, pt pic.PhysicalType) (decimal.Decimal, error) {
	digits := make([]byte, len(b))
	for i, byt := range b {
		zone := byt >> 4
		digit := byt & 0x0F
		if digit > 9 {
			return decimal.Zero, &FieldDecodeError{Kind: KindZonedInvalidDigit, Detail: "digit nibble out of BCD range"}
		}
		if i < len(b)-1 && !zonedValidZone[zone] {
			return decimal.Zero, &FieldDecodeError{Kind: KindZonedInvalidDigit, Detail: "zone nibble not in {0xF,0xD,0xC,0xB,0xA}"}
		}
		digits[i] = digit
	}

	negative := len(b) > 0 && b[len(b)-1]>>4 == 0xD

	coefficient := new(big.Int)
	ten := big.NewInt(10)
	for _, d := range digits {
		coefficient.Mul(coefficient, ten)
		coefficient.Add(coefficient, big.NewInt(int64(d)))
	}
	if negative {
		coefficient.Neg(coefficient)
	}
	return decimal.NewFromBigInt(coefficient, int32(-pt.Scale)), nil
}

// EncodeZoned is the inverse of DecodeZoned; it always writes the
// canonical positive zone 0xF except on the sign byte, satisfying the
// round-trip invariant: encode(decode(b)) == b for canonical input.
func EncodeZoned(v decimal.Decimal, pt pic.PhysicalType) ([]byte, error) {
	width := pt.ByteWidth()
	scaled := v.Shift(int32(pt.Scale)).Truncate(0)
	negative := scaled.Sign() < 0
	coefficient := new(big.Int).Set(scaled.Abs().BigInt())
	ten := big.NewInt(10)
	rem := new(big.Int)

	out := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		coefficient.QuoRem(coefficient, ten, rem)
		digit := byte(rem.Int64())
		zone := byte(0xF)
		if i == width-1 && negative {
			zone = 0xD
		}
		out[i] = zone<<4 | digit
	}
	return out, nil
}

// packedPositiveSign and packedNegativeSign are the valid sign nibbles:
// exactly {0xA,0xC,0xE,0xF} non-negative, exactly {0xB,0xD} negative.
// Any other nibble is an invalid sign.
var packedPositiveSign = map[byte]bool{0xA: true, 0xC: true, 0xE: true, 0xF: true}
var packedNegativeSign = map[byte]bool{0xB: true, 0xD: true}

// DecodePacked decodes a packed (COMP-3) decimal field.
func DecodePacked(b []byte, pt pic.PhysicalType) (decimal.Decimal, error) {
	nibbles := make([]byte, 0, len(b)*2)
	for _, byt := range b {
		nibbles = append(nibbles, byt>>4, byt&0x0F)
	}
	if len(nibbles) == 0 {
		return decimal.Zero, &FieldDecodeError{Kind: KindPackedInvalidDigit, Detail: "empty field"}
	}

	sign := nibbles[len(nibbles)-1]
	digitNibbles := nibbles[:len(nibbles)-1]

	extra := len(digitNibbles) - pt.Digits
	if extra > 0 {
		for _, n := range digitNibbles[:extra] {
			if n != 0 {
				return decimal.Zero, &FieldDecodeError{Kind: KindPackedInvalidDigit, Detail: "leading digit nibble beyond declared width must be zero"}
			}
		}
		digitNibbles = digitNibbles[extra:]
	}

	coefficient := new(big.Int)
	ten := big.NewInt(10)
	for _, n := range digitNibbles {
		if n > 9 {
			return decimal.Zero, &FieldDecodeError{Kind: KindPackedInvalidDigit, Detail: "digit nibble out of BCD range"}
		}
		coefficient.Mul(coefficient, ten)
		coefficient.Add(coefficient, big.NewInt(int64(n)))
	}

	switch {
	case packedPositiveSign[sign]:
		// non-negative
	case packedNegativeSign[sign]:
		coefficient.Neg(coefficient)
	default:
		return decimal.Zero, &FieldDecodeError{Kind: KindPackedInvalidSign, Detail: "sign nibble not in {0xA,0xB,0xC,0xD,0xE,0xF}"}
	}

	return decimal.NewFromBigInt(coefficient, int32(-pt.Scale)), nil
}

// EncodePacked is the inverse of DecodePacked; it writes the canonical
// positive sign 0xF and negative sign 0xD.
func EncodePacked(v decimal.Decimal, pt pic.PhysicalType) ([]byte, error) {
	width := pt.ByteWidth()
	totalNibbles := width * 2
	digitCount := totalNibbles - 1

	scaled := v.Shift(int32(pt.Scale)).Truncate(0)
	negative := scaled.Sign() < 0
	coefficient := new(big.Int).Set(scaled.Abs().BigInt())
	ten := big.NewInt(10)
	rem := new(big.Int)

	digitNibbles := make([]byte, digitCount)
	for i := digitCount - 1; i >= 0; i-- {
		coefficient.QuoRem(coefficient, ten, rem)
		digitNibbles[i] = byte(rem.Int64())
	}

	nibbles := make([]byte, totalNibbles)
	copy(nibbles, digitNibbles)
	if negative {
		nibbles[totalNibbles-1] = 0xD
	} else {
		nibbles[totalNibbles-1] = 0xF
	}

	out := make([]byte, width)
	for i := 0; i < width; i++ {
		out[i] = nibbles[2*i]<<4 | nibbles[2*i+1]
	}
	return out, nil
}

// DecodeBinary decodes a big-endian binary integer, two's-complement
// when signed.
func DecodeBinary(b []byte, pt pic.PhysicalType) (int64, error) {
	switch len(b) {
	case 2:
		u, err := format.Be16(b, 0)
		if err != nil {
			return 0, &FieldDecodeError{Kind: KindShortRecord, Detail: err.Error()}
		}
		if pt.Signed {
			return int64(int16(u)), nil
		}
		return int64(u), nil
	case 4:
		u, err := format.Be32(b, 0)
		if err != nil {
			return 0, &FieldDecodeError{Kind: KindShortRecord, Detail: err.Error()}
		}
		if pt.Signed {
			return int64(int32(u)), nil
		}
		return int64(u), nil
	case 8:
		u, err := format.Be64(b, 0)
		if err != nil {
			return 0, &FieldDecodeError{Kind: KindShortRecord, Detail: err.Error()}
		}
		if pt.Signed {
			return int64(u), nil
		}
		if u > math.MaxInt64 {
			return 0, &FieldDecodeError{Kind: KindShortRecord, Detail: "unsigned 8-byte binary value overflows int64"}
		}
		return int64(u), nil
	default:
		return 0, &FieldDecodeError{Kind: KindShortRecord, Detail: "binary width must be 2, 4, or 8 bytes"}
	}
}

// EncodeBinary is the inverse of DecodeBinary.
func EncodeBinary(v int64, pt pic.PhysicalType) ([]byte, error) {
	out := make([]byte, pt.Bytes)
	switch pt.Bytes {
	case 2:
		binary.BigEndian.PutUint16(out, uint16(int16(v)))
	case 4:
		binary.BigEndian.PutUint32(out, uint32(int32(v)))
	case 8:
		binary.BigEndian.PutUint64(out, uint64(v))
	default:
		return nil, &FieldDecodeError{Kind: KindShortRecord, Detail: "binary width must be 2, 4, or 8 bytes"}
	}
	return out, nil
}

// DecodeFloat4 decodes a big-endian IEEE-754 single-precision float
// (COMP-1).
func DecodeFloat4(b []byte) (float32, error) {
	if len(b) != 4 {
		return 0, &FieldDecodeError{Kind: KindShortRecord, Detail: "float4 requires exactly 4 bytes"}
	}
	u, err := format.Be32(b, 0)
	if err != nil {
		return 0, &FieldDecodeError{Kind: KindShortRecord, Detail: err.Error()}
	}
	return math.Float32frombits(u), nil
}

// DecodeFloat8 decodes a big-endian IEEE-754 double-precision float
// (COMP-2).
func DecodeFloat8(b []byte) (float64, error) {
	if len(b) != 8 {
		return 0, &FieldDecodeError{Kind: KindShortRecord, Detail: "float8 requires exactly 8 bytes"}
	}
	u, err := format.Be64(b, 0)
	if err != nil {
		return 0, &FieldDecodeError{Kind: KindShortRecord, Detail: err.Error()}
	}
	return math.Float64frombits(u), nil
}
