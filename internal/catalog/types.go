// Package catalog reads keyword, setting, type, and function metadata
// from an in-process DuckDB database's introspection views.
package catalog

// Group identifies which catalog view a record came from.
type Group string

// Catalog view groups.
const (
	GroupKeyword  Group = "keyword"
	GroupSetting  Group = "setting"
	GroupFunction Group = "function"
	GroupType     Group = "type"
)

// Record is one named entry from a catalog view.
type Record struct {
	Group Group
	Name  string
}

// Function aggregates every overload row sharing one function name.
// Overload slices are parallel: index i describes the i-th overload.
type Function struct {
	Name                   string
	ParameterOverloads     []string
	ReturnTypeOverloads    []string
	ParameterTypeOverloads []string
	Description            string
	AliasOf                string
	Example                *string
}
