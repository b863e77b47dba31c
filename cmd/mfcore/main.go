// Command mfcore parses a copybook or DB2 DDL/DCLGEN source, decodes a
// fixed-format data file against it, and prints the resulting records.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mfdata/mfcore/codepage"
	"github.com/mfdata/mfcore/copybook"
	"github.com/mfdata/mfcore/dclgen"
	"github.com/mfdata/mfcore/ddl"
	"github.com/mfdata/mfcore/decode"
	"github.com/mfdata/mfcore/jsonwriter"
	"github.com/mfdata/mfcore/logical"
)

func main() {
	var (
		copybookFile = flag.String("copybook", "", "Path to a COBOL copybook source file")
		ddlFile      = flag.String("ddl", "", "Path to a DB2 CREATE TABLE DDL file")
		dclgenFile   = flag.String("dclgen", "", "Path to a DCLGEN file")
		dataFile     = flag.String("data", "", "Path to the fixed-format data file to decode")
		ccsid        = flag.Int("ccsid", 37, "CCSID of the data file's Text fields")
		format       = flag.String("format", "text", "Output format: text, json, or summary")
		lenient      = flag.Bool("lenient", false, "Use Lenient decode mode (null bad fields instead of aborting)")
		maxRecs      = flag.Int("max-records", 100, "Maximum records to display")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Mainframe Data Bridge\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -copybook CUSTOMER.cpy -data customer.dat\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -ddl CUSTOMER.sql -format summary\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -copybook CUSTOMER.cpy -data customer.dat -format json\n", os.Args[0])
	}

	flag.Parse()

	switch {
	case *copybookFile != "":
		runCopybook(*copybookFile, *dataFile, *ccsid, *format, *lenient, *maxRecs)
	case *ddlFile != "":
		runDDL(*ddlFile, *format)
	case *dclgenFile != "":
		runDclgen(*dclgenFile, *format)
	default:
		fmt.Fprintf(os.Stderr, "Error: one of -copybook, -ddl, or -dclgen is required\n\n")
		flag.Usage()
		os.Exit(1)
	}
}

func runCopybook(copybookFile, dataFile string, ccsid int, format string, lenient bool, maxRecs int) {
	src, err := os.ReadFile(copybookFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading copybook: %v\n", err)
		os.Exit(1)
	}

	layout, err := copybook.Parse(string(src))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing copybook: %v\n", err)
		os.Exit(1)
	}

	if format == "summary" || dataFile == "" {
		outputLayoutSummary(layout)
		if dataFile == "" {
			return
		}
	}

	cp, warn := codepage.Resolve(ccsid)
	if warn != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", warn)
	}

	raw, err := os.ReadFile(dataFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading data file: %v\n", err)
		os.Exit(1)
	}

	mode := decode.Strict
	if lenient {
		mode = decode.Lenient
	}

	width := layout.RecordLength
	if width == 0 {
		fmt.Fprintf(os.Stderr, "Error: layout has zero record length\n")
		os.Exit(1)
	}

	count := 0
	for offset := 0; offset+width <= len(raw) && count < maxRecs; offset += width {
		rec, err := decode.DecodeRecord(layout, raw[offset:offset+width], cp, mode)
		if err != nil && mode == decode.Strict {
			fmt.Fprintf(os.Stderr, "Error decoding record at byte %d: %v\n", offset, err)
			os.Exit(1)
		}
		if format == "json" {
			b, jerr := jsonwriter.MarshalRecord(rec)
			if jerr != nil {
				fmt.Fprintf(os.Stderr, "Error marshaling record: %v\n", jerr)
				os.Exit(1)
			}
			fmt.Println(string(b))
		} else {
			outputRecordText(rec, offset)
		}
		count++
	}
}

func runDDL(ddlFile, format string) {
	src, err := os.ReadFile(ddlFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading DDL file: %v\n", err)
		os.Exit(1)
	}

	table, err := ddl.Parse(string(src))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing DDL: %v\n", err)
		os.Exit(1)
	}

	fields, warnings := logical.SchemaOfTableDef(table)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", w)
	}

	if format == "json" {
		b, _ := json.MarshalIndent(fields, "", "  ")
		fmt.Println(string(b))
		return
	}

	fmt.Printf("Table %s.%s\n\n", table.Schema, table.Name)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "COLUMN\tSQL TYPE\tLOGICAL KIND\tNULLABLE\n")
	for _, f := range fields {
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\n", f.Name, columnSQLType(table, f.Name), f.Type.Kind, f.Nullable)
	}
	w.Flush()
}

func runDclgen(dclgenFile, format string) {
	src, err := os.ReadFile(dclgenFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading DCLGEN file: %v\n", err)
		os.Exit(1)
	}

	result, err := dclgen.Parse(string(src))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing DCLGEN: %v\n", err)
		os.Exit(1)
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", w)
	}

	if format == "json" {
		b, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(b))
		return
	}

	fmt.Printf("Table %s.%s\n\n", result.Schema, result.Table)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "SQL COLUMN\tHOST VARIABLE\n")
	for _, hv := range result.HostVariables {
		fmt.Fprintf(w, "%s\t%s\n", hv.SQLColumn, hv.Field.Name)
	}
	w.Flush()
}

func outputLayoutSummary(layout *copybook.Layout) {
	fmt.Printf("Record length: %d bytes\n\n", layout.RecordLength)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "FIELD\tOFFSET\tWIDTH\tPHYSICAL\n")
	for _, f := range layout.Elementary() {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", f.Name, f.Offset, f.Width(), f.Physical.Kind)
	}
	w.Flush()
}

func outputRecordText(rec decode.Record, offset int) {
	fmt.Printf("=== Record at byte %d ===\n", offset)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for name, v := range rec {
		fmt.Fprintf(w, "  %s\t%s\n", name, v.String())
	}
	w.Flush()
}

func columnSQLType(table *ddl.TableDef, name string) string {
	if col := table.ByName(name); col != nil {
		return col.SQLTypeText
	}
	return ""
}
