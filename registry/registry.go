// registry.go - the dataset registry consumed by the CLI.
//
// The registry sits outside the core: it is a flat, JSON-configured
// list binding a logical dataset name to its source material. The
// core parsers and decoder never see it directly; Runner uses an entry
// to locate the data file to decode. cmd/mfcore takes its sources from
// command-line flags and does not read the registry.
package registry

import (
	"encoding/json"
	"fmt"
	"io"
)

// RecordFormat is the registry's record-format tag. Only Fixed is
// supported by the core decoder; Variable and
// VariableBlocked are recognized so a registry file can name them,
// but resolving one is an UnsupportedRecordFormat error.
type RecordFormat string

const (
	Fixed            RecordFormat = "F"
	Variable         RecordFormat = "V"
	VariableBlocked  RecordFormat = "VB"
)

// UnsupportedRecordFormat reports a registry entry naming a record
// format the core decoder cannot handle.
type UnsupportedRecordFormat struct {
	Entry  string
	Format RecordFormat
}

func (e *UnsupportedRecordFormat) Error() string {
	return fmt.Sprintf("entry %s: record format %s is not supported by the core decoder (only F)", e.Entry, e.Format)
}

// RegistryEntry names one dataset: a logical name, its record format,
// and either a copybook-backed fixed file or a DDL/DCLGEN-backed
// source table.
type RegistryEntry struct {
	Name   string       `json:"name"`
	Format RecordFormat `json:"format"`

	// Copybook-backed entry.
	DataFile string `json:"data_file,omitempty"`
	Copybook string `json:"copybook,omitempty"`

	// DDL/DCLGEN-backed entry.
	SourceTable string `json:"source_table,omitempty"`

	// CCSID is the code page identifier for this dataset's Text
	// fields; 0 means "use codepage.Default()".
	CCSID int `json:"ccsid,omitempty"`
}

// IsCopybookBacked reports whether this entry names a copybook + data
// file pair rather than a DDL/DCLGEN source table.
func (e *RegistryEntry) IsCopybookBacked() bool {
	return e.Copybook != ""
}

// LoadRegistry decodes a JSON array of RegistryEntry from r.
func LoadRegistry(r io.Reader) ([]RegistryEntry, error) {
	var entries []RegistryEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("registry: decode: %w", err)
	}
	return entries, nil
}

// Registry indexes a loaded entry list by name for repeated lookups.
type Registry struct {
	entries map[string]*RegistryEntry
}

// NewRegistry builds a Registry from a loaded entry list.
func NewRegistry(entries []RegistryEntry) *Registry {
	r := &Registry{entries: make(map[string]*RegistryEntry, len(entries))}
	for i := range entries {
		r.entries[entries[i].Name] = &entries[i]
	}
	return r
}

// Resolve looks up an entry by logical name and validates its record
// format is one the core decoder supports.
func (r *Registry) Resolve(name string) (*RegistryEntry, error) {
	entry, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("registry: no entry named %q", name)
	}
	if entry.Format != Fixed {
		return nil, &UnsupportedRecordFormat{Entry: name, Format: entry.Format}
	}
	return entry, nil
}
