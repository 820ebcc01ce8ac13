// Package definition extracts a table description from a PostgreSQL
// table-definition script.
package definition

import "strings"

// Category groups column types the generators treat alike.
type Category int

const (
	Textual Category = iota
	Numeric
	Boolean
	Temporal
)

func (c Category) String() string {
	switch c {
	case Numeric:
		return "numeric"
	case Boolean:
		return "boolean"
	case Temporal:
		return "temporal"
	default:
		return "textual"
	}
}

var (
	numericTypes = map[string]bool{
		"INT": true, "INT2": true, "INT4": true, "INT8": true, "INTEGER": true,
		"SMALLINT": true, "BIGINT": true,
		"SERIAL": true, "SERIAL2": true, "SERIAL4": true, "SERIAL8": true,
		"SMALLSERIAL": true, "BIGSERIAL": true,
	}
	booleanTypes  = map[string]bool{"BOOL": true, "BOOLEAN": true}
	temporalTypes = map[string]bool{"DATE": true, "TIMESTAMP": true, "TIMESTAMPTZ": true}

	// serial pseudo-types cannot be used as cast targets
	serialStorage = map[string]string{
		"SERIAL":      "INT4",
		"SERIAL4":     "INT4",
		"SERIAL2":     "INT2",
		"SMALLSERIAL": "INT2",
		"SERIAL8":     "INT8",
		"BIGSERIAL":   "INT8",
	}
)

// baseType drops a length or precision suffix: VARCHAR(64) -> VARCHAR.
func baseType(t string) string {
	t = strings.ToUpper(strings.TrimSpace(t))
	if idx := strings.Index(t, "("); idx != -1 {
		t = t[:idx]
	}

	return t
}

// Classify maps a type tag to its category. Unknown tags are Textual.
func Classify(typeTag string) Category {
	t := baseType(typeTag)

	switch {
	case numericTypes[t]:
		return Numeric
	case booleanTypes[t]:
		return Boolean
	case temporalTypes[t], strings.Contains(t, "TIMESTAMP"):
		return Temporal
	default:
		return Textual
	}
}

// Field is one column of the table.
type Field struct {
	Name        string
	Type        string
	NotNull     bool
	Description string
}

func (f Field) Category() Category { return Classify(f.Type) }

func (f Field) IsNumber() bool  { return f.Category() == Numeric }
func (f Field) IsString() bool  { return f.Category() == Textual }
func (f Field) IsBoolean() bool { return f.Category() == Boolean }
func (f Field) IsDate() bool    { return f.Category() == Temporal }

// CastType returns the type to use in a SQL CAST for this field.
func (f Field) CastType() string {
	if storage, ok := serialStorage[baseType(f.Type)]; ok {
		return storage
	}

	return f.Type
}

// Table is the normalized description of one CREATE TABLE statement.
type Table struct {
	Schema   string
	Name     string
	Sequence string
	Fields   []Field
}

// Key is the identity field. Callers rely on Parse rejecting empty tables.
func (t *Table) Key() Field { return t.Fields[0] }

// SearchField is the default searchable and sortable field: the second
// declared field, or the key when the table has only one.
func (t *Table) SearchField() Field {
	if len(t.Fields) > 1 {
		return t.Fields[1]
	}

	return t.Fields[0]
}

// QualifiedName returns schema.table.
func (t *Table) QualifiedName() string { return t.Schema + "." + t.Name }
