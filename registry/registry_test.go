package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mfdata/mfcore/copybook"
	"github.com/mfdata/mfcore/decode"
)

func TestLoadRegistry(t *testing.T) {
	body := `[
		{"name": "customers", "format": "F", "data_file": "customers.dat", "copybook": "CUSTOMER.cpy"},
		{"name": "orders", "format": "V", "source_table": "SALES.ORDERS"}
	]`
	entries, err := LoadRegistry(strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	reg := NewRegistry(entries)

	entry, err := reg.Resolve("customers")
	if err != nil {
		t.Fatal(err)
	}
	if !entry.IsCopybookBacked() {
		t.Fatal("customers: expected copybook-backed entry")
	}

	_, err = reg.Resolve("orders")
	if err == nil {
		t.Fatal("expected UnsupportedRecordFormat for a V-format entry")
	}
	if _, ok := err.(*UnsupportedRecordFormat); !ok {
		t.Fatalf("got %T", err)
	}

	_, err = reg.Resolve("nonexistent")
	if err == nil {
		t.Fatal("expected error for unknown entry name")
	}
}

func TestRunnerDecodeFile(t *testing.T) {
	layout, err := copybook.Parse(`
       01 REC.
           05 ID   PIC 9(4).
           05 NAME PIC X(4).
`)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	dataPath := filepath.Join(dir, "data.bin")
	// ID=0012 (zoned decimal, zone 0xF = non-negative); NAME="ABCD" in EBCDIC cp037.
	record1 := []byte{0xF0, 0xF0, 0xF1, 0xF2, 0xC1, 0xC2, 0xC3, 0xC4}
	record2 := []byte{0xF0, 0xF0, 0xF3, 0xF4, 0xC5, 0xC6, 0xC7, 0xC8}
	data := append(append([]byte{}, record1...), record2...)
	if err := os.WriteFile(dataPath, data, 0o644); err != nil {
		t.Fatal(err)
	}

	entry := &RegistryEntry{Name: "test", Format: Fixed, DataFile: dataPath, Copybook: "inline"}
	runner := &Runner{Mode: decode.Strict}

	records, err := runner.DecodeFile(entry, layout)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0]["ID"].Int != 12 {
		t.Fatalf("record 0 ID: got %d, want 12", records[0]["ID"].Int)
	}
	if records[0]["NAME"].Str != "ABCD" {
		t.Fatalf("record 0 NAME: got %q, want ABCD", records[0]["NAME"].Str)
	}
	if records[1]["ID"].Int != 34 {
		t.Fatalf("record 1 ID: got %d, want 34", records[1]["ID"].Int)
	}
	if records[1]["NAME"].Str != "EFGH" {
		t.Fatalf("record 1 NAME: got %q, want EFGH", records[1]["NAME"].Str)
	}
}
