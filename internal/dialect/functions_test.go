package dialect

import (
	"testing"

	"github.com/duckdialect/duckspec/internal/catalog"
)

func strPtr(s string) *string { return &s }

func TestBuildFunctionDict(t *testing.T) {
	tests := []struct {
		name     string
		fns      []catalog.Function
		included []string
		excluded []string
		want     map[string]FunctionDoc
	}{
		{
			name: "empty description excluded",
			fns: []catalog.Function{
				{Name: "count", Description: ""},
			},
			included: []string{"count"},
			want:     map[string]FunctionDoc{},
		},
		{
			name: "documented allow-listed function kept",
			fns: []catalog.Function{
				{Name: "json_extract", Description: "Extracts", Example: strPtr("json_extract(x,'$.a')")},
			},
			included: []string{"json"},
			want: map[string]FunctionDoc{
				"json_extract": {Description: "Extracts", Example: strPtr("json_extract(x,'$.a')")},
			},
		},
		{
			name: "name outside allow-list dropped",
			fns: []catalog.Function{
				{Name: "regexp_matches", Description: "Matches a regex"},
			},
			included: []string{"json", "count"},
			want:     map[string]FunctionDoc{},
		},
		{
			name: "excluded prefix wins over allow-list",
			fns: []catalog.Function{
				{Name: "pg_collation_for", Description: "Collation name"},
			},
			included: []string{"pg_"},
			excluded: []string{"pg_"},
			want:     map[string]FunctionDoc{},
		},
		{
			name: "nil example preserved",
			fns: []catalog.Function{
				{Name: "count_star", Description: "Counts rows"},
			},
			included: []string{"count"},
			want: map[string]FunctionDoc{
				"count_star": {Description: "Counts rows", Example: nil},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildFunctionDict(tt.fns, tt.included, tt.excluded)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d entries, want %d: %v", len(got), len(tt.want), got)
			}
			for name, want := range tt.want {
				doc, ok := got[name]
				if !ok {
					t.Fatalf("missing entry %q", name)
				}
				if doc.Description != want.Description {
					t.Errorf("%s description = %q, want %q", name, doc.Description, want.Description)
				}
				switch {
				case want.Example == nil && doc.Example != nil:
					t.Errorf("%s example = %q, want nil", name, *doc.Example)
				case want.Example != nil && (doc.Example == nil || *doc.Example != *want.Example):
					t.Errorf("%s example = %v, want %q", name, doc.Example, *want.Example)
				}
			}
		})
	}
}

func TestBuildFunctionDictDefaultPrefixes(t *testing.T) {
	fns := []catalog.Function{
		{Name: "to_json", Description: "Converts to JSON"},
		{Name: "generate_series", Description: "Series of values"},
		{Name: "levenshtein", Description: "Edit distance"},
	}

	dict := BuildFunctionDict(fns, IncludedFunctionPrefixes, ExcludedPrefixes)

	if _, ok := dict["to_json"]; !ok {
		t.Error("expected to_json to be kept")
	}
	if _, ok := dict["generate_series"]; !ok {
		t.Error("expected generate_series to be kept")
	}
	if _, ok := dict["levenshtein"]; ok {
		t.Error("expected levenshtein to be dropped")
	}
}
