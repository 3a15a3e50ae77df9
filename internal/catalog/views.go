package catalog

import "context"

// Keywords returns the distinct keyword names from duckdb_keywords().
func (d *DB) Keywords(ctx context.Context) ([]string, error) {
	return d.names(ctx, "SELECT DISTINCT keyword_name FROM duckdb_keywords() ORDER BY keyword_name")
}

// Settings returns the distinct setting names from duckdb_settings().
func (d *DB) Settings(ctx context.Context) ([]string, error) {
	return d.names(ctx, "SELECT DISTINCT name FROM duckdb_settings() ORDER BY name")
}

// Types returns the distinct type names from duckdb_types().
func (d *DB) Types(ctx context.Context) ([]string, error) {
	return d.names(ctx, "SELECT DISTINCT type_name FROM duckdb_types() ORDER BY type_name")
}

// FunctionNames returns the distinct function names from duckdb_functions().
func (d *DB) FunctionNames(ctx context.Context) ([]string, error) {
	return d.names(ctx, "SELECT DISTINCT function_name FROM duckdb_functions() ORDER BY function_name")
}

// Records returns the union of all four catalog views, each entry
// tagged with its source group. The sources are disjoint by group;
// the same name may appear under more than one group.
func (d *DB) Records(ctx context.Context) ([]Record, error) {
	sources := []struct {
		group Group
		read  func(context.Context) ([]string, error)
	}{
		{GroupKeyword, d.Keywords},
		{GroupSetting, d.Settings},
		{GroupFunction, d.FunctionNames},
		{GroupType, d.Types},
	}

	var records []Record
	for _, src := range sources {
		names, err := src.read(ctx)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			records = append(records, Record{Group: src.group, Name: name})
		}
	}
	return records, nil
}
