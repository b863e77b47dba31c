// exports.go - Re-exports for main package API
package mfcore

import (
	"github.com/mfdata/mfcore/codepage"
	"github.com/mfdata/mfcore/copybook"
	"github.com/mfdata/mfcore/dclgen"
	"github.com/mfdata/mfcore/ddl"
	"github.com/mfdata/mfcore/decode"
	"github.com/mfdata/mfcore/logical"
	"github.com/mfdata/mfcore/pic"
)

// Re-export types from the pic package
type (
	PhysicalType = pic.PhysicalType
	LogicalType  = pic.LogicalType
	PhysicalKind = pic.PhysicalKind
	LogicalKind  = pic.LogicalKind
)

// Re-export types from the copybook package
type (
	Field  = copybook.Field
	Layout = copybook.Layout
)

// Re-export types from the ddl package
type (
	TableDef      = ddl.TableDef
	ColumnSpec    = ddl.ColumnSpec
	ForeignKeyRef = ddl.ForeignKeyRef
)

// Re-export types from the dclgen package
type (
	DclGenResult = dclgen.DclGenResult
	HostVariable = dclgen.HostVariable
)

// Re-export types from the decode package
type (
	Record            = decode.Record
	Value             = decode.Value
	Mode              = decode.Mode
	FieldDecodeError  = decode.FieldDecodeError
	RecordDecodeError = decode.RecordDecodeError
)

// Re-export decode modes
const (
	Strict  = decode.Strict
	Lenient = decode.Lenient
)

// Re-export types from the logical package
type SchemaField = logical.SchemaField

// ParseCopybook parses COBOL copybook source into a Layout.
func ParseCopybook(text string) (*Layout, error) {
	return copybook.Parse(text)
}

// ParseDDL parses a CREATE TABLE statement into a TableDef.
func ParseDDL(text string) (*TableDef, error) {
	return ddl.Parse(text)
}

// ParseDclgen parses a DCLGEN file's text into a DclGenResult.
func ParseDclgen(text string) (*DclGenResult, error) {
	return dclgen.Parse(text)
}

// LogicalSchemaOfLayout derives the logical schema of a parsed
// copybook.
func LogicalSchemaOfLayout(layout *Layout) []SchemaField {
	return logical.SchemaOfLayout(layout)
}

// LogicalSchemaOfTableDef derives the logical schema of a parsed DDL
// table.
func LogicalSchemaOfTableDef(table *TableDef) ([]SchemaField, []*ddl.UnsupportedSqlType) {
	return logical.SchemaOfTableDef(table)
}

// DecodeRecord decodes one raw record against layout.
func DecodeRecord(layout *Layout, raw []byte, cp *codepage.CodePage, mode Mode) (Record, error) {
	return decode.DecodeRecord(layout, raw, cp, mode)
}

// DefaultCodePage returns the US EBCDIC (CCSID 37) code page, the
// default for Text fields that carry no explicit CCSID.
func DefaultCodePage() *codepage.CodePage {
	return codepage.Default()
}

// ResolveCodePage resolves a numeric CCSID or codec alias to a
// CodePage.
func ResolveCodePage(identifier string) (*codepage.CodePage, *codepage.Warning) {
	return codepage.ResolveIdentifier(identifier)
}
