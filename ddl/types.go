// types.go - TableDef and friends: the DDL/DCL side of the data model.
package ddl

// ForeignKeyRef is a FOREIGN KEY (...) REFERENCES schema.table (...) clause.
type ForeignKeyRef struct {
	Name       string // constraint name, if given
	Columns    []string
	RefSchema  string
	RefTable   string
	RefColumns []string
}

// ColumnSpec is one CREATE TABLE column.
type ColumnSpec struct {
	Name        string
	SQLTypeText string
	ForBitData  bool
	Nullable    bool
	Default     string // raw expression text; "" means no WITH DEFAULT clause
	IsPK        bool
	FKRef       *ForeignKeyRef
}

// TableDef is the parsed shape of one CREATE TABLE statement.
type TableDef struct {
	Schema      string
	Name        string
	Columns     []ColumnSpec
	PrimaryKey  []string
	ForeignKeys []ForeignKeyRef
}

// ByName returns the column with the given name, or nil.
func (t *TableDef) ByName(name string) *ColumnSpec {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}
