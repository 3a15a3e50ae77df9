package main

import (
	"context"

	"github.com/duckdialect/duckspec/internal/catalog"
	"github.com/duckdialect/duckspec/internal/config"
	"github.com/duckdialect/duckspec/internal/dialect"
	"github.com/duckdialect/duckspec/internal/logger"
)

// buildAndWrite runs the full read, filter, export pipeline and
// reports what it wrote. The returned code is the exit code to use
// when err is non-nil. The catalog connection lives for exactly one
// call and is released on every exit path.
func buildAndWrite(ctx context.Context, cfg *config.Config, keywordsPath, functionsPath string) (*SavedResponse, int, error) {
	db, err := catalog.Open("")
	if err != nil {
		return nil, ExitDataError, err
	}
	defer db.Close()

	version, err := db.Version(ctx)
	if err != nil {
		return nil, ExitDataError, err
	}
	today, err := db.Today(ctx)
	if err != nil {
		return nil, ExitDataError, err
	}
	records, err := db.Records(ctx)
	if err != nil {
		return nil, ExitDataError, err
	}
	fns, err := db.Functions(ctx)
	if err != nil {
		return nil, ExitDataError, err
	}

	logger.Debug("catalog: %d records, %d functions (%s)", len(records), len(fns), version)

	set := dialect.BuildKeywordSet(records, version, today, cfg.ExcludedPrefixes)
	dict := dialect.BuildFunctionDict(fns, cfg.IncludedFunctions, cfg.ExcludedPrefixes)

	if err := dialect.WriteKeywords(keywordsPath, set); err != nil {
		return nil, ExitError, err
	}
	if err := dialect.WriteFunctions(functionsPath, dict); err != nil {
		return nil, ExitError, err
	}

	logger.Info("saved %s and %s", keywordsPath, functionsPath)

	return &SavedResponse{
		Status:        "saved",
		KeywordsPath:  keywordsPath,
		FunctionsPath: functionsPath,
		NumKeywords:   set.KeywordCount(),
		NumTypes:      set.TypeCount(),
		NumFunctions:  len(dict),
	}, ExitSuccess, nil
}
