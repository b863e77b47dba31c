// sqltype.go - SQL type text -> LogicalType mapping.
package ddl

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mfdata/mfcore/pic"
)

// UnsupportedSqlType reports a SQL type string this mapper does not
// recognize; callers receive LogicalString as a safe downgrade.
type UnsupportedSqlType struct {
	SQLType string
}

func (e *UnsupportedSqlType) Error() string {
	return fmt.Sprintf("unsupported SQL type %q, downgraded to String", e.SQLType)
}

var (
	decimalPattern  = regexp.MustCompile(`^(?:DECIMAL|NUMERIC|DEC)(?:\((\d+)(?:,\s*(\d+))?\))?$`)
	decfloatPattern = regexp.MustCompile(`^DECFLOAT\((16|34)\)$`)
	timestampPattern = regexp.MustCompile(`^TIMESTAMP(?:\(\d+\))?(?:\s+WITH\s+TIME\s+ZONE)?$`)
	charLikePattern  = regexp.MustCompile(`^(?:CHAR|VARCHAR|GRAPHIC)(?:\(\d+\))?$|^CLOB(?:\(\d+[KMG]?\))?$`)
	binaryPattern    = regexp.MustCompile(`^(?:BINARY|VARBINARY)(?:\(\d+\))?$|^BLOB(?:\(\d+[KMG]?\))?$`)
)

// MapSQLType translates free-text SQL type text into the corresponding
// LogicalType. forBitData reports whether
// the column carried a FOR BIT DATA clause, which turns the string
// families into Binary. The returned warning is non-nil exactly when
// the type fell back to String because it was not recognized.
func MapSQLType(sqlType string, forBitData bool) (pic.LogicalType, *UnsupportedSqlType) {
	t := strings.ToUpper(strings.Join(strings.Fields(strings.TrimSpace(sqlType)), " "))

	switch {
	case t == "SMALLINT":
		return pic.LogicalType{Kind: pic.LogicalInt16}, nil
	case t == "INTEGER" || t == "INT":
		return pic.LogicalType{Kind: pic.LogicalInt32}, nil
	case t == "BIGINT":
		return pic.LogicalType{Kind: pic.LogicalInt64}, nil
	case decimalPattern.MatchString(t):
		m := decimalPattern.FindStringSubmatch(t)
		precision, scale := 0, 0
		if m[1] != "" {
			precision, _ = strconv.Atoi(m[1])
		}
		if m[2] != "" {
			scale, _ = strconv.Atoi(m[2])
		}
		return pic.LogicalType{Kind: pic.LogicalDecimal, Precision: precision, Scale: scale}, nil
	case decfloatPattern.MatchString(t):
		m := decfloatPattern.FindStringSubmatch(t)
		precision, _ := strconv.Atoi(m[1])
		return pic.LogicalType{Kind: pic.LogicalDecimal, Precision: precision, Scale: 0}, nil
	case t == "REAL":
		return pic.LogicalType{Kind: pic.LogicalFloat32}, nil
	case t == "FLOAT" || t == "DOUBLE" || t == "DOUBLE PRECISION":
		return pic.LogicalType{Kind: pic.LogicalFloat64}, nil
	case charLikePattern.MatchString(t):
		if forBitData {
			return pic.LogicalType{Kind: pic.LogicalBinary}, nil
		}
		return pic.LogicalType{Kind: pic.LogicalString}, nil
	case binaryPattern.MatchString(t):
		return pic.LogicalType{Kind: pic.LogicalBinary}, nil
	case t == "DATE":
		return pic.LogicalType{Kind: pic.LogicalDate}, nil
	case timestampPattern.MatchString(t):
		return pic.LogicalType{Kind: pic.LogicalTimestamp}, nil
	case t == "TIME":
		return pic.LogicalType{Kind: pic.LogicalString}, nil
	case t == "BOOLEAN":
		return pic.LogicalType{Kind: pic.LogicalBoolean}, nil
	case t == "XML" || t == "ROWID":
		return pic.LogicalType{Kind: pic.LogicalString}, nil
	default:
		return pic.LogicalType{Kind: pic.LogicalString}, &UnsupportedSqlType{SQLType: sqlType}
	}
}
