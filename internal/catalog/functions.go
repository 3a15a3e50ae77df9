package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// functionQuery reads one row per overload, ordered so that all
// overloads of a name are adjacent. List columns are flattened to
// strings here; grouping happens in Go.
const functionQuery = `
SELECT
    function_name,
    array_to_string(parameters, ', '),
    return_type,
    array_to_string(parameter_types, ', '),
    description,
    alias_of,
    examples[1]
FROM duckdb_functions()
ORDER BY function_name`

// Functions returns one aggregated record per distinct function name.
// Description and alias take the maximum non-null value across
// overloads; the example is the first one any overload carries, or nil
// when none do.
func (d *DB) Functions(ctx context.Context) ([]Function, error) {
	rows, err := d.db.QueryContext(ctx, functionQuery)
	if err != nil {
		return nil, fmt.Errorf("querying functions: %w", err)
	}
	defer rows.Close()

	var (
		fns  []Function
		last *Function
	)
	for rows.Next() {
		var (
			name                          string
			params, ret, paramTypes       sql.NullString
			description, aliasOf, example sql.NullString
		)
		if err := rows.Scan(&name, &params, &ret, &paramTypes, &description, &aliasOf, &example); err != nil {
			return nil, fmt.Errorf("scanning function row: %w", err)
		}

		if last == nil || last.Name != name {
			fns = append(fns, Function{Name: name})
			last = &fns[len(fns)-1]
		}
		last.ParameterOverloads = append(last.ParameterOverloads, params.String)
		last.ReturnTypeOverloads = append(last.ReturnTypeOverloads, ret.String)
		last.ParameterTypeOverloads = append(last.ParameterTypeOverloads, paramTypes.String)
		if description.String > last.Description {
			last.Description = description.String
		}
		if aliasOf.String > last.AliasOf {
			last.AliasOf = aliasOf.String
		}
		if example.Valid && last.Example == nil {
			e := example.String
			last.Example = &e
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading function rows: %w", err)
	}
	return fns, nil
}
