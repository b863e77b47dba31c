package copybook

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/mfdata/mfcore/pic"
)

// fieldCmpOpts ignores the tree back/forward pointers: Parent forms a
// cycle with Children, and comparing the tree shape is redundant with
// comparing the flat Fields slice's Offset/Level/Redefines values.
var fieldCmpOpts = cmpopts.IgnoreFields(Field{}, "Parent", "Children")

const redefinesCopybook = `
       01 REC.
           05 A   PIC X(4).
           05 B   PIC X(4).
           05 C REDEFINES B   PIC 9(4).
           05 D   PIC X(2).
`

func TestParseRedefinesLayout(t *testing.T) {
	layout, err := Parse(redefinesCopybook)
	if err != nil {
		t.Fatal(err)
	}

	want := &Layout{
		Fields: []*Field{
			{Name: "REC", Level: 1, Offset: 0, Occurs: 1, IsGroup: true},
			{Name: "A", Level: 5, Offset: 0, Physical: &pic.PhysicalType{Kind: pic.KindText, Length: 4}, Occurs: 1},
			{Name: "B", Level: 5, Offset: 4, Physical: &pic.PhysicalType{Kind: pic.KindText, Length: 4}, Occurs: 1},
			{Name: "C", Level: 5, Offset: 4, Physical: &pic.PhysicalType{Kind: pic.KindZonedDecimal, Digits: 4, Signed: false}, Occurs: 1, Redefines: "B"},
			{Name: "D", Level: 5, Offset: 8, Physical: &pic.PhysicalType{Kind: pic.KindText, Length: 2}, Occurs: 1},
		},
		RecordLength: 10,
	}
	if diff := cmp.Diff(want, layout, fieldCmpOpts); diff != "" {
		t.Fatalf("Layout mismatch (-want +got):\n%s", diff)
	}
}

const groupRedefinesCopybook = `
       01 REC.
           05 A PIC X(4).
           05 G REDEFINES A.
              10 G1 PIC X(2).
              10 G2 PIC X(2).
`

func TestParseGroupRedefinesDescendsChildrenFromOverlaidOffset(t *testing.T) {
	layout, err := Parse(groupRedefinesCopybook)
	if err != nil {
		t.Fatal(err)
	}

	want := &Layout{
		Fields: []*Field{
			{Name: "REC", Level: 1, Offset: 0, Occurs: 1, IsGroup: true},
			{Name: "A", Level: 5, Offset: 0, Physical: &pic.PhysicalType{Kind: pic.KindText, Length: 4}, Occurs: 1},
			{Name: "G", Level: 5, Offset: 0, Occurs: 1, IsGroup: true, Redefines: "A"},
			{Name: "G1", Level: 10, Offset: 0, Physical: &pic.PhysicalType{Kind: pic.KindText, Length: 2}, Occurs: 1},
			{Name: "G2", Level: 10, Offset: 2, Physical: &pic.PhysicalType{Kind: pic.KindText, Length: 2}, Occurs: 1},
		},
		RecordLength: 4,
	}
	if diff := cmp.Diff(want, layout, fieldCmpOpts); diff != "" {
		t.Fatalf("Layout mismatch (-want +got):\n%s", diff)
	}
}

func TestParseGroupRedefinesThenSiblingResumesAfterOriginalField(t *testing.T) {
	src := `
       01 REC.
           05 A PIC X(4).
           05 G REDEFINES A.
              10 G1 PIC X(2).
              10 G2 PIC X(2).
           05 E PIC X(3).
`
	layout, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}

	e := layout.ByName("E")
	if e.Offset != 4 {
		t.Fatalf("E: got offset %d, want 4 (cursor must resume after A, not after G's children)", e.Offset)
	}
	if layout.RecordLength != 7 {
		t.Fatalf("got record length %d, want 7", layout.RecordLength)
	}
}

func TestParseGroupsAndOccurs(t *testing.T) {
	src := `
       01 CUST-REC.
           05 CUST-ID       PIC 9(9).
           05 CUST-NAME     PIC X(30).
           05 CUST-ADDR.
              10 ADDR-LINE  PIC X(20) OCCURS 3 TIMES.
           05 CUST-BALANCE  PIC S9(7)V99 COMP-3.
`
	layout, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}

	custID := layout.ByName("CUST-ID")
	if custID.Offset != 0 || custID.Width() != 9 {
		t.Fatalf("CUST-ID: got offset=%d width=%d", custID.Offset, custID.Width())
	}

	addr := layout.ByName("CUST-ADDR")
	if !addr.IsGroup || addr.Offset != 39 {
		t.Fatalf("CUST-ADDR: got group=%v offset=%d", addr.IsGroup, addr.Offset)
	}

	line := layout.ByName("ADDR-LINE")
	if line.Occurs != 3 || line.Offset != 39 {
		t.Fatalf("ADDR-LINE: got occurs=%d offset=%d", line.Occurs, line.Offset)
	}

	balance := layout.ByName("CUST-BALANCE")
	wantBalanceOffset := 39 + 20*3
	if balance.Offset != wantBalanceOffset {
		t.Fatalf("CUST-BALANCE: got offset %d, want %d", balance.Offset, wantBalanceOffset)
	}
	if balance.Width() != 5 {
		t.Fatalf("CUST-BALANCE: got width %d, want 5", balance.Width())
	}

	wantLen := wantBalanceOffset + 5
	if layout.RecordLength != wantLen {
		t.Fatalf("got record length %d, want %d", layout.RecordLength, wantLen)
	}
}

func TestParseFillerRetained(t *testing.T) {
	src := `
       01 REC.
           05 A      PIC X(2).
           05 FILLER PIC X(3).
           05 B      PIC X(1).
`
	layout, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	b := layout.ByName("B")
	if b.Offset != 5 {
		t.Fatalf("got offset %d, want 5", b.Offset)
	}
	found := false
	for _, f := range layout.Fields {
		if f.IsFiller {
			found = true
		}
	}
	if !found {
		t.Fatal("expected FILLER field to be retained in layout")
	}
}

func TestParseRedefinesTargetMissing(t *testing.T) {
	src := `
       01 REC.
           05 A PIC X(4).
           05 C REDEFINES NOPE PIC 9(4).
`
	_, err := Parse(src)
	if err == nil {
		t.Fatal("expected RedefinesTargetMissing error")
	}
	if _, ok := err.(*RedefinesTargetMissing); !ok {
		t.Fatalf("got %T, want *RedefinesTargetMissing", err)
	}
}

func TestParseOccursNotPositive(t *testing.T) {
	src := `
       01 REC.
           05 A PIC X(4) OCCURS 0.
`
	_, err := Parse(src)
	if err == nil {
		t.Fatal("expected OccursNotPositive error")
	}
	if _, ok := err.(*OccursNotPositive); !ok {
		t.Fatalf("got %T", err)
	}
}

func TestParseCommentAndContinuationLines(t *testing.T) {
	src := "      * this is a comment\n" +
		"       01 REC.\n" +
		"           05 LONG-NAME-FIELD PIC X(4)\n" +
		"      -        OCCURS 2.\n"
	layout, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	f := layout.ByName("LONG-NAME-FIELD")
	if f == nil {
		t.Fatal("missing field after continuation")
	}
	if f.Occurs != 2 {
		t.Fatalf("got occurs %d, want 2 (OCCURS clause split across continuation)", f.Occurs)
	}
}

func TestEmptyTopLevelGroupIsLegal(t *testing.T) {
	src := `
       01 EMPTY-REC.
`
	layout, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	if layout.RecordLength != 0 {
		t.Fatalf("got record length %d, want 0", layout.RecordLength)
	}
}

func TestNestedGroupEmptyIsError(t *testing.T) {
	src := `
       01 REC.
           05 A PIC X(1).
           05 EMPTY-GROUP.
           05 B PIC X(1).
`
	_, err := Parse(src)
	if err == nil {
		t.Fatal("expected GroupEmpty error")
	}
	if _, ok := err.(*GroupEmpty); !ok {
		t.Fatalf("got %T", err)
	}
}
