// schema.go - LogicalSchemaOf: the name/type/nullable view shared by both parsers.
package logical

import (
	"github.com/mfdata/mfcore/copybook"
	"github.com/mfdata/mfcore/ddl"
	"github.com/mfdata/mfcore/pic"
)

// SchemaField is one entry of a unified logical schema: `(name,
// LogicalType, nullable)`.
type SchemaField struct {
	Name     string
	Type     pic.LogicalType
	Nullable bool
}

// SchemaOfLayout derives the logical schema of a parsed copybook.
// COBOL fixed-format records have no null representation, so every
// field is non-nullable.
func SchemaOfLayout(layout *copybook.Layout) []SchemaField {
	elementary := layout.Elementary()
	out := make([]SchemaField, 0, len(elementary))
	for _, f := range elementary {
		out = append(out, SchemaField{Name: f.Name, Type: f.Logical(), Nullable: false})
	}
	return out
}

// SchemaOfTableDef derives the logical schema of a parsed DDL table.
// Any column whose SQL type text is unrecognized downgrades to
// LogicalString and contributes an UnsupportedSqlType warning; the
// caller receives those as warnings rather than a fatal error,
// consistent with the rest of the mapping layer.
func SchemaOfTableDef(table *ddl.TableDef) ([]SchemaField, []*ddl.UnsupportedSqlType) {
	out := make([]SchemaField, 0, len(table.Columns))
	var warnings []*ddl.UnsupportedSqlType
	for _, col := range table.Columns {
		t, warn := ddl.MapSQLType(col.SQLTypeText, col.ForBitData)
		if warn != nil {
			warnings = append(warnings, warn)
		}
		out = append(out, SchemaField{Name: col.Name, Type: t, Nullable: col.Nullable})
	}
	return out, warnings
}
