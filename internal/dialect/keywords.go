// Package dialect turns raw catalog metadata into the keyword and
// function datasets a CodeMirror SQL dialect consumes.
package dialect

import (
	"sort"
	"strings"

	"github.com/duckdialect/duckspec/internal/catalog"
)

// ExcludedPrefixes lists the name prefixes dropped from the exported
// keyword set and function dictionary.
var ExcludedPrefixes = []string{"__internal", "icu", "has_", "pg_", "allocator"}

// MatchesAny reports whether name starts with any of the prefixes.
// Matching is case-sensitive and anchored at the start of the name.
func MatchesAny(name string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// JoinSorted deduplicates names, sorts them ascending, and joins them
// with single spaces.
func JoinSorted(names []string) string {
	seen := make(map[string]bool, len(names))
	uniq := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			uniq = append(uniq, n)
		}
	}
	sort.Strings(uniq)
	return strings.Join(uniq, " ")
}

// KeywordSet is the aggregated keyword dataset for one run. Builtin is
// an intermediate grouping the editor does not consume, so it stays out
// of the exported document.
type KeywordSet struct {
	Version     string `json:"duckdb_version"`
	LastUpdated string `json:"last_updated"`
	Keywords    string `json:"keywords"`
	Builtin     string `json:"-"`
	Types       string `json:"types"`
}

// KeywordCount returns the number of tokens in the keywords string.
func (s KeywordSet) KeywordCount() int {
	return len(strings.Fields(s.Keywords))
}

// TypeCount returns the number of tokens in the types string.
func (s KeywordSet) TypeCount() int {
	return len(strings.Fields(s.Types))
}

// BuildKeywordSet aggregates the tagged catalog records into the three
// keyword strings. The exclusion list applies to the combined keyword
// string only; builtin keywords (keyword and setting groups) and type
// names are kept unfiltered. An empty exclusion list keeps everything.
func BuildKeywordSet(records []catalog.Record, version, lastUpdated string, excluded []string) KeywordSet {
	var all, builtin, types []string
	for _, r := range records {
		if !MatchesAny(r.Name, excluded) {
			all = append(all, r.Name)
		}
		switch r.Group {
		case catalog.GroupKeyword, catalog.GroupSetting:
			builtin = append(builtin, r.Name)
		case catalog.GroupType:
			types = append(types, r.Name)
		}
	}
	return KeywordSet{
		Version:     version,
		LastUpdated: lastUpdated,
		Keywords:    JoinSorted(all),
		Builtin:     JoinSorted(builtin),
		Types:       JoinSorted(types),
	}
}
