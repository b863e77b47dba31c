// types.go - DclGenResult: the paired SQL/COBOL view of a DCLGEN file.
package dclgen

import (
	"fmt"

	"github.com/mfdata/mfcore/copybook"
	"github.com/mfdata/mfcore/ddl"
)

// HostVariableUnpaired reports a COBOL host variable whose canonicalized
// name matched no SQL column (warning only, decoding still proceeds).
type HostVariableUnpaired struct {
	HostVariable string
}

func (e *HostVariableUnpaired) Error() string {
	return fmt.Sprintf("host variable %s has no matching SQL column", e.HostVariable)
}

// HostVariable is one COBOL field from the DCLGEN's 01-level record,
// paired with its SQL column when the naming convention resolves one.
type HostVariable struct {
	Field     *copybook.Field
	SQLColumn string // "" when unpaired
}

// DclGenResult is the combined SQL/COBOL view of one DCLGEN file: the
// DECLARE block's columns, the 01-level record's host variables, and
// the name-based pairing between them.
type DclGenResult struct {
	TableName string
	Schema    string
	Table     string

	SQLColumns    []ddl.ColumnSpec
	HostVariables []HostVariable

	// Layout is the full copybook.Layout parsed from the host-variable
	// block, letting a caller decode records with the COBOL physical
	// layout while choosing SQL logical types for the writer.
	Layout *copybook.Layout

	Warnings []*HostVariableUnpaired
}

// ColumnFor returns the SQL column paired with the given host variable
// name, or nil if unpaired.
func (r *DclGenResult) ColumnFor(hostVariableName string) *ddl.ColumnSpec {
	for _, hv := range r.HostVariables {
		if hv.Field.Name == hostVariableName && hv.SQLColumn != "" {
			return columnByName(r.SQLColumns, hv.SQLColumn)
		}
	}
	return nil
}

func columnByName(cols []ddl.ColumnSpec, name string) *ddl.ColumnSpec {
	for i := range cols {
		if cols[i].Name == name {
			return &cols[i]
		}
	}
	return nil
}
