package postgre

import (
	"context"

	"rag-intent-chat/internal/schema"
)

// Query runs statement inside a read-only transaction that is always rolled
// back. At most rowLimit rows are returned.
func (r *implRepository) Query(ctx context.Context, statement string) (schema.QueryResult, error) {
	stmt, err := schema.CheckReadOnly(statement)
	if err != nil {
		return schema.QueryResult{}, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("Query"), err)
		return schema.QueryResult{}, schema.ErrFailedToQuery
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "SET TRANSACTION READ ONLY"); err != nil {
		r.l.Errorf(ctx, "%s set read only: %v", r.dsn("Query"), err)
		return schema.QueryResult{}, schema.ErrFailedToQuery
	}

	rows, err := tx.QueryContext(ctx, stmt)
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("Query"), err)
		return schema.QueryResult{}, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return schema.QueryResult{}, schema.ErrFailedToQuery
	}

	result := schema.QueryResult{Columns: columns, Rows: []map[string]interface{}{}}
	for rows.Next() {
		if len(result.Rows) == r.rowLimit {
			result.Truncated = true
			break
		}

		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("Query"), err)
			return schema.QueryResult{}, schema.ErrFailedToQuery
		}

		row := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		r.l.Warnf(ctx, "%s rows: %v", r.dsn("Query"), err)
		return schema.QueryResult{}, err
	}

	r.l.Infof(ctx, "%s: %d rows (truncated=%t)", r.dsn("Query"), len(result.Rows), result.Truncated)
	return result, nil
}
