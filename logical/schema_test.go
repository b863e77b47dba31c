package logical

import (
	"testing"

	"github.com/mfdata/mfcore/copybook"
	"github.com/mfdata/mfcore/ddl"
	"github.com/mfdata/mfcore/pic"
)

func TestSchemaOfLayout(t *testing.T) {
	layout, err := copybook.Parse(`
       01 REC.
           05 ID    PIC 9(9).
           05 NAME  PIC X(20).
           05 AMT   PIC S9(7)V99 COMP-3.
`)
	if err != nil {
		t.Fatal(err)
	}

	fields := SchemaOfLayout(layout)
	if len(fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(fields))
	}
	for _, f := range fields {
		if f.Nullable {
			t.Fatalf("%s: COBOL fields must never be nullable", f.Name)
		}
	}

	byName := map[string]SchemaField{}
	for _, f := range fields {
		byName[f.Name] = f
	}
	if byName["ID"].Type.Kind != pic.LogicalInt32 {
		t.Fatalf("ID: got %v, want Int32", byName["ID"].Type.Kind)
	}
	if byName["AMT"].Type.Kind != pic.LogicalDecimal || byName["AMT"].Type.Precision != 9 || byName["AMT"].Type.Scale != 2 {
		t.Fatalf("AMT: got %v", byName["AMT"].Type)
	}
}

func TestSchemaOfTableDef(t *testing.T) {
	table, err := ddl.Parse(`CREATE TABLE S.T (K INTEGER NOT NULL, V DECIMAL(15,2), PRIMARY KEY(K))`)
	if err != nil {
		t.Fatal(err)
	}

	fields, warnings := SchemaOfTableDef(table)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(fields))
	}

	byName := map[string]SchemaField{}
	for _, f := range fields {
		byName[f.Name] = f
	}
	if byName["K"].Nullable {
		t.Fatal("K: expected NOT NULL to produce nullable=false")
	}
	if byName["K"].Type.Kind != pic.LogicalInt32 {
		t.Fatalf("K: got %v, want Int32", byName["K"].Type.Kind)
	}
	if !byName["V"].Nullable {
		t.Fatal("V: expected implicit nullability")
	}
	if byName["V"].Type.Kind != pic.LogicalDecimal || byName["V"].Type.Precision != 15 || byName["V"].Type.Scale != 2 {
		t.Fatalf("V: got %v", byName["V"].Type)
	}
}

func TestSchemaOfTableDefCollectsUnsupportedWarning(t *testing.T) {
	table, err := ddl.Parse(`CREATE TABLE S.T (X NCLOB)`)
	if err != nil {
		t.Fatal(err)
	}
	fields, warnings := SchemaOfTableDef(table)
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	if fields[0].Type.Kind != pic.LogicalString {
		t.Fatalf("got %v, want String downgrade", fields[0].Type.Kind)
	}
}
