package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// SavedResponse reports what a run wrote and where.
type SavedResponse struct {
	Status        string `json:"status"`
	KeywordsPath  string `json:"keywords_path"`
	FunctionsPath string `json:"functions_path"`
	NumKeywords   int    `json:"num_keywords"`
	NumTypes      int    `json:"num_types"`
	NumFunctions  int    `json:"num_functions"`
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// printSaved reports a successful run in the selected output format.
func printSaved(resp *SavedResponse) {
	if humanOutput {
		fmt.Printf("Saved %d keywords, %d types, and %d functions\n",
			resp.NumKeywords, resp.NumTypes, resp.NumFunctions)
		fmt.Printf("  %s\n  %s\n", resp.KeywordsPath, resp.FunctionsPath)
		return
	}
	outputJSON(resp)
}
