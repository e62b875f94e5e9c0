package postgre

import (
	"context"
	"fmt"

	"rag-intent-chat/internal/schema"
)

const columnsQuery = `
	SELECT c.column_name, c.data_type, c.is_nullable = 'YES'
	FROM information_schema.columns c
	WHERE c.table_schema = $1 AND c.table_name = $2
	ORDER BY c.ordinal_position`

const primaryKeysQuery = `
	SELECT kcu.column_name
	FROM information_schema.table_constraints tc
	JOIN information_schema.key_column_usage kcu
		ON kcu.constraint_name = tc.constraint_name AND kcu.table_schema = tc.table_schema
	WHERE tc.constraint_type = 'PRIMARY KEY' AND tc.table_schema = $1 AND tc.table_name = $2`

const foreignKeysQuery = `
	SELECT kcu.column_name, ccu.table_schema, ccu.table_name, ccu.column_name
	FROM information_schema.table_constraints tc
	JOIN information_schema.key_column_usage kcu
		ON kcu.constraint_name = tc.constraint_name AND kcu.table_schema = tc.table_schema
	JOIN information_schema.constraint_column_usage ccu
		ON ccu.constraint_name = tc.constraint_name AND ccu.constraint_schema = tc.table_schema
	WHERE tc.constraint_type = 'FOREIGN KEY' AND tc.table_schema = $1 AND tc.table_name = $2`

// Describe introspects each table through information_schema.
func (r *implRepository) Describe(ctx context.Context, tables []string) (schema.Document, error) {
	refs, err := schema.ParseTables(tables)
	if err != nil {
		return schema.Document{}, err
	}

	doc := schema.Document{
		Name:        r.dbName,
		Platform:    schema.PlatformPostgre,
		Description: r.desc,
		Tables:      make([]schema.Table, 0, len(refs)),
	}
	for _, ref := range refs {
		table, err := r.describeTable(ctx, ref)
		if err != nil {
			return schema.Document{}, err
		}
		doc.Tables = append(doc.Tables, table)
	}
	return doc, nil
}

func (r *implRepository) describeTable(ctx context.Context, ref schema.TableRef) (schema.Table, error) {
	columns, err := r.columns(ctx, ref)
	if err != nil {
		return schema.Table{}, err
	}
	if len(columns) == 0 {
		return schema.Table{}, fmt.Errorf("%w: %s", schema.ErrTableNotFound, ref)
	}

	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c.Name] = i
	}

	pks, err := r.primaryKeys(ctx, ref)
	if err != nil {
		return schema.Table{}, err
	}
	for _, name := range pks {
		if i, ok := index[name]; ok {
			columns[i].IsPrimaryKey = true
		}
	}

	fks, err := r.foreignKeys(ctx, ref)
	if err != nil {
		return schema.Table{}, err
	}
	for name, target := range fks {
		if i, ok := index[name]; ok {
			target := target
			columns[i].References = &target
		}
	}

	return schema.Table{Name: ref.String(), Columns: columns}, nil
}

func (r *implRepository) columns(ctx context.Context, ref schema.TableRef) ([]schema.Column, error) {
	rows, err := r.db.QueryContext(ctx, columnsQuery, ref.Schema, ref.Name)
	if err != nil {
		r.l.Errorf(ctx, "%s columns %s: %v", r.dsn("Describe"), ref, err)
		return nil, schema.ErrFailedToDescribe
	}
	defer rows.Close()

	var columns []schema.Column
	for rows.Next() {
		var col schema.Column
		if err := rows.Scan(&col.Name, &col.Type, &col.Nullable); err != nil {
			r.l.Errorf(ctx, "%s scan %s: %v", r.dsn("Describe"), ref, err)
			return nil, schema.ErrFailedToDescribe
		}
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows %s: %v", r.dsn("Describe"), ref, err)
		return nil, schema.ErrFailedToDescribe
	}
	return columns, nil
}

func (r *implRepository) primaryKeys(ctx context.Context, ref schema.TableRef) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, primaryKeysQuery, ref.Schema, ref.Name)
	if err != nil {
		r.l.Errorf(ctx, "%s primary keys %s: %v", r.dsn("Describe"), ref, err)
		return nil, schema.ErrFailedToDescribe
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, schema.ErrFailedToDescribe
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, schema.ErrFailedToDescribe
	}
	return names, nil
}

// foreignKeys maps a column name to the column it references.
func (r *implRepository) foreignKeys(ctx context.Context, ref schema.TableRef) (map[string]schema.Reference, error) {
	rows, err := r.db.QueryContext(ctx, foreignKeysQuery, ref.Schema, ref.Name)
	if err != nil {
		r.l.Errorf(ctx, "%s foreign keys %s: %v", r.dsn("Describe"), ref, err)
		return nil, schema.ErrFailedToDescribe
	}
	defer rows.Close()

	refs := make(map[string]schema.Reference)
	for rows.Next() {
		var column, refSchema, refTable, refColumn string
		if err := rows.Scan(&column, &refSchema, &refTable, &refColumn); err != nil {
			return nil, schema.ErrFailedToDescribe
		}
		refs[column] = schema.Reference{
			Table:  schema.TableRef{Schema: refSchema, Name: refTable}.String(),
			Column: refColumn,
		}
	}
	if err := rows.Err(); err != nil {
		return nil, schema.ErrFailedToDescribe
	}
	return refs, nil
}
