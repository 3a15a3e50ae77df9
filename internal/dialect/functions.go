package dialect

import "github.com/duckdialect/duckspec/internal/catalog"

// IncludedFunctionPrefixes is the curated allow-list of function name
// prefixes worth documenting in the editor.
var IncludedFunctionPrefixes = []string{
	"array",
	"count",
	"struct",
	"concat",
	"cast",
	"combine",
	"contains",
	"date",
	"day",
	"histogram",
	"generate_series",
	"json",
	"string",
	"substring",
	"to_",
	"trim",
}

// FunctionDoc is the editor-facing documentation for one function.
type FunctionDoc struct {
	Description string  `json:"description"`
	Example     *string `json:"example"`
}

// BuildFunctionDict filters the aggregated catalog functions down to
// the documented subset and keys them by name. A function is kept when
// its name avoids every excluded prefix, matches at least one included
// prefix, and carries a non-empty description. Names are unique in the
// input, so no key is ever written twice.
func BuildFunctionDict(fns []catalog.Function, included, excluded []string) map[string]FunctionDoc {
	dict := make(map[string]FunctionDoc)
	for _, fn := range fns {
		if MatchesAny(fn.Name, excluded) {
			continue
		}
		if !MatchesAny(fn.Name, included) || fn.Description == "" {
			continue
		}
		dict[fn.Name] = FunctionDoc{
			Description: fn.Description,
			Example:     fn.Example,
		}
	}
	return dict
}
