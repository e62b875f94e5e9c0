package schema

// Document is the machine-readable schema handed to the model.
type Document struct {
	Name        string  `json:"name" yaml:"name"`
	Platform    string  `json:"platform" yaml:"platform"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Tables      []Table `json:"tables" yaml:"tables"`
}

type Table struct {
	Name    string   `json:"name" yaml:"name"`
	Columns []Column `json:"columns" yaml:"columns"`
}

type Column struct {
	Name         string     `json:"name" yaml:"name"`
	Type         string     `json:"type" yaml:"type"`
	Nullable     bool       `json:"nullable" yaml:"nullable"`
	IsPrimaryKey bool       `json:"is_primary_key" yaml:"is_primary_key"`
	References   *Reference `json:"references,omitempty" yaml:"references,omitempty"`
}

// Reference is the target of a foreign key column.
type Reference struct {
	Table  string `json:"table" yaml:"table"`
	Column string `json:"column" yaml:"column"`
}

// QueryResult holds at most the configured row limit.
type QueryResult struct {
	Columns   []string                 `json:"columns"`
	Rows      []map[string]interface{} `json:"rows"`
	Truncated bool                     `json:"truncated,omitempty"`
}

// TableRef is a parsed "schema.table" identifier.
type TableRef struct {
	Schema string
	Name   string
}

func (t TableRef) String() string {
	return t.Schema + "." + t.Name
}
