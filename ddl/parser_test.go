package ddl

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mfdata/mfcore/pic"
)

func TestParseCreateTableBasic(t *testing.T) {
	src := `CREATE TABLE S.T (K INTEGER NOT NULL, V DECIMAL(15,2), PRIMARY KEY(K))`

	table, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}

	want := &TableDef{
		Schema: "S",
		Name:   "T",
		Columns: []ColumnSpec{
			{Name: "K", SQLTypeText: "INTEGER", Nullable: false, IsPK: true},
			{Name: "V", SQLTypeText: "DECIMAL(15,2)", Nullable: true},
		},
		PrimaryKey: []string{"K"},
	}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Fatalf("TableDef mismatch (-want +got):\n%s", diff)
	}
}

func TestParseForeignKeyAndComments(t *testing.T) {
	src := `
-- customer orders table
CREATE TABLE SALES.ORDERS (
    ORDER_ID    INTEGER NOT NULL,
    CUST_ID     INTEGER NOT NULL,
    /* monetary columns use exact decimal storage */
    AMOUNT      DECIMAL(9,2) WITH DEFAULT 0,
    RAW_TOKEN   CHAR(16) FOR BIT DATA,
    PRIMARY KEY (ORDER_ID),
    FOREIGN KEY FK_CUST (CUST_ID) REFERENCES SALES.CUSTOMERS (CUST_ID)
)`
	table, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}

	fk := ForeignKeyRef{
		Name:       "FK_CUST",
		Columns:    []string{"CUST_ID"},
		RefSchema:  "SALES",
		RefTable:   "CUSTOMERS",
		RefColumns: []string{"CUST_ID"},
	}
	want := &TableDef{
		Schema: "SALES",
		Name:   "ORDERS",
		Columns: []ColumnSpec{
			{Name: "ORDER_ID", SQLTypeText: "INTEGER", Nullable: false, IsPK: true},
			{Name: "CUST_ID", SQLTypeText: "INTEGER", Nullable: false, FKRef: &fk},
			{Name: "AMOUNT", SQLTypeText: "DECIMAL(9,2)", Nullable: true, Default: "0"},
			{Name: "RAW_TOKEN", SQLTypeText: "CHAR(16)", Nullable: true, ForBitData: true},
		},
		PrimaryKey:  []string{"ORDER_ID"},
		ForeignKeys: []ForeignKeyRef{fk},
	}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Fatalf("TableDef mismatch (-want +got):\n%s", diff)
	}
}

func TestMapSQLType(t *testing.T) {
	cases := []struct {
		sql        string
		forBitData bool
		want       pic.LogicalKind
		precision  int
		scale      int
	}{
		{"SMALLINT", false, pic.LogicalInt16, 0, 0},
		{"INTEGER", false, pic.LogicalInt32, 0, 0},
		{"INT", false, pic.LogicalInt32, 0, 0},
		{"BIGINT", false, pic.LogicalInt64, 0, 0},
		{"DECIMAL(15,2)", false, pic.LogicalDecimal, 15, 2},
		{"NUMERIC(5)", false, pic.LogicalDecimal, 5, 0},
		{"DECFLOAT(34)", false, pic.LogicalDecimal, 34, 0},
		{"REAL", false, pic.LogicalFloat32, 0, 0},
		{"DOUBLE", false, pic.LogicalFloat64, 0, 0},
		{"VARCHAR(30)", false, pic.LogicalString, 0, 0},
		{"CHAR(16)", true, pic.LogicalBinary, 0, 0},
		{"BLOB(1M)", false, pic.LogicalBinary, 0, 0},
		{"DATE", false, pic.LogicalDate, 0, 0},
		{"TIMESTAMP(6) WITH TIME ZONE", false, pic.LogicalTimestamp, 0, 0},
		{"TIME", false, pic.LogicalString, 0, 0},
		{"BOOLEAN", false, pic.LogicalBoolean, 0, 0},
		{"ROWID", false, pic.LogicalString, 0, 0},
	}
	for _, c := range cases {
		got, warn := MapSQLType(c.sql, c.forBitData)
		if got.Kind != c.want {
			t.Errorf("%s: got %v, want %v", c.sql, got.Kind, c.want)
		}
		if got.Precision != c.precision || got.Scale != c.scale {
			t.Errorf("%s: got precision=%d scale=%d, want %d/%d", c.sql, got.Precision, got.Scale, c.precision, c.scale)
		}
		if warn != nil {
			t.Errorf("%s: unexpected warning %v", c.sql, warn)
		}
	}
}

func TestMapSQLTypeUnsupportedDowngradesToString(t *testing.T) {
	got, warn := MapSQLType("NCLOB", false)
	if got.Kind != pic.LogicalString {
		t.Fatalf("got %v, want String", got.Kind)
	}
	if warn == nil {
		t.Fatal("expected UnsupportedSqlType warning")
	}
}

func TestParseMalformedDdl(t *testing.T) {
	_, err := Parse("CREATE TABLE T (A INTEGER")
	if err == nil {
		t.Fatal("expected DdlSyntaxError for unbalanced parentheses")
	}
	if _, ok := err.(*DdlSyntaxError); !ok {
		t.Fatalf("got %T", err)
	}
}
