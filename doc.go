// Package mfcore provides a Go library for parsing mainframe COBOL
// copybooks and DB2 DDL/DCLGEN sources, and decoding the fixed-format
// EBCDIC records they describe into a code-page-independent, JSON-ready
// logical representation.
//
// The library is organized into subpackages by concern:
//
// Copybook and PIC Parsing:
//   - pic/: PICTURE clause grammar, physical storage types (zoned,
//     packed, binary, float), and the physical-to-logical type mapping.
//   - copybook/: hierarchical copybook layout parsing, REDEFINES
//     overlay resolution, OCCURS array expansion, offset/width math.
//
// DB2 Schema Parsing:
//   - ddl/: CREATE TABLE DDL parsing and SQL-type-to-logical mapping.
//   - dclgen/: DCLGEN file parsing, pairing SQL columns to COBOL host
//     variables.
//
// Decoding and Output:
//   - codepage/: EBCDIC/ASCII/Unicode code page resolution and decode.
//   - decode/: physical byte decoding (zoned/packed/binary/float) into
//     typed Values, Strict and Lenient record decode modes.
//   - logical/: unification of copybook and DDL schemas into a common
//     SchemaField representation.
//   - jsonwriter/: mapping decoded Values to JSON per the logical-type
//     table (decimal as string, binary as base64, timestamps as
//     ISO-8601).
//
// Dataset Registry:
//   - registry/: a flat, JSON-configured registry binding a logical
//     dataset name to its copybook/DDL and data file, and a Runner
//     that walks a fixed-format file decoding one record at a time.
//
// Basic usage:
//
//	layout, err := mfcore.ParseCopybook(copybookSource)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cp := mfcore.DefaultCodePage()
//	record, err := mfcore.DecodeRecord(layout, rawBytes, cp, mfcore.Strict)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, _ := jsonwriter.MarshalRecord(record)
//	fmt.Println(string(out))
package mfcore
