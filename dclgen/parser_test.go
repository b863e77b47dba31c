package dclgen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/mfdata/mfcore/copybook"
	"github.com/mfdata/mfcore/ddl"
	"github.com/mfdata/mfcore/pic"
)

// fieldCmpOpts ignores the copybook.Field tree back/forward pointers,
// which form a cycle that cmp.Diff cannot walk through reflection alone.
var fieldCmpOpts = cmpopts.IgnoreFields(copybook.Field{}, "Parent", "Children")

const custDclgen = `
       EXEC SQL DECLARE
           CUST TABLE
       ( CUST_ID INTEGER NOT NULL,
         CUST_NAME VARCHAR(30) )
       END-EXEC.

       01 DCL-CUST.
          10 DCL-CUST-ID        PIC S9(9) COMP.
          10 DCL-CUST-NAME      PIC X(30).
`

func TestParseDclgenBasic(t *testing.T) {
	result, err := Parse(custDclgen)
	if err != nil {
		t.Fatal(err)
	}

	custIDField := &copybook.Field{
		Name: "DCL-CUST-ID", Level: 10, Offset: 0, Occurs: 1,
		Physical: &pic.PhysicalType{Kind: pic.KindBinary, Bytes: 4, Signed: true},
	}
	custNameField := &copybook.Field{
		Name: "DCL-CUST-NAME", Level: 10, Offset: 4, Occurs: 1,
		Physical: &pic.PhysicalType{Kind: pic.KindText, Length: 30},
	}

	want := &DclGenResult{
		TableName: "CUST",
		Table:     "CUST",
		SQLColumns: []ddl.ColumnSpec{
			{Name: "CUST_ID", SQLTypeText: "INTEGER", Nullable: false},
			{Name: "CUST_NAME", SQLTypeText: "VARCHAR(30)", Nullable: true},
		},
		HostVariables: []HostVariable{
			{Field: custIDField, SQLColumn: "CUST_ID"},
			{Field: custNameField, SQLColumn: "CUST_NAME"},
		},
		Layout: &copybook.Layout{
			Fields: []*copybook.Field{
				{Name: "DCL-CUST", Level: 1, Offset: 0, Occurs: 1, IsGroup: true},
				custIDField,
				custNameField,
			},
			RecordLength: 34,
		},
	}

	if diff := cmp.Diff(want, result, fieldCmpOpts); diff != "" {
		t.Fatalf("DclGenResult mismatch (-want +got):\n%s", diff)
	}

	logical, warn := ddl.MapSQLType(result.ColumnFor("DCL-CUST-ID").SQLTypeText, false)
	if warn != nil {
		t.Fatalf("unexpected warning: %v", warn)
	}
	if logical.Kind != pic.LogicalInt32 {
		t.Fatalf("got logical kind %v, want Int32", logical.Kind)
	}
}

func TestParseDclgenSkipsLevel49(t *testing.T) {
	src := `
       EXEC SQL DECLARE T TABLE
       ( NAME VARCHAR(10) )
       END-EXEC.

       01 DCL-T.
          49 NAME-LEN PIC S9(4) COMP.
          49 NAME-TEXT PIC X(10).
`
	result, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	for _, hv := range result.HostVariables {
		if hv.Field.Level == 49 {
			t.Fatalf("level 49 field %s should have been skipped", hv.Field.Name)
		}
	}
}

func TestParseDclgenUnpairedWarning(t *testing.T) {
	src := `
       EXEC SQL DECLARE T TABLE
       ( ID INTEGER NOT NULL )
       END-EXEC.

       01 DCL-T.
          10 DCL-UNRELATED-FIELD PIC X(4).
`
	result, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(result.Warnings))
	}
	if result.Warnings[0].HostVariable != "DCL-UNRELATED-FIELD" {
		t.Fatalf("got warning for %q", result.Warnings[0].HostVariable)
	}
}

func TestParseDclgenMissingDeclareBlock(t *testing.T) {
	_, err := Parse("01 DCL-T.\n   10 DCL-X PIC X(1).\n")
	if err == nil {
		t.Fatal("expected DclGenStructureError for missing DECLARE block")
	}
	if _, ok := err.(*DclGenStructureError); !ok {
		t.Fatalf("got %T", err)
	}
}
