package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/duckdialect/duckspec/internal/config"
	"github.com/duckdialect/duckspec/internal/logger"
)

var savePath string

func init() {
	generateCmd.Flags().StringVarP(&savePath, "savepath", "s", "", `Destination path (default "temp.json")`)
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write keyword and function metadata to JSON files",
	Long: `Read the DuckDB catalog and write the keywords document to the save
path and the functions document next to it.

Examples:
  duckspec generate
  duckspec generate --savepath out/keywords.json
  duckspec generate -s out/keywords.json --human`,
	RunE: runGenerate,
}

// defaultSavePath matches the historical script default.
const defaultSavePath = "temp.json"

// resolveSavePath picks the save path from the flag, the environment,
// or the default, in that order.
func resolveSavePath(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv("DUCKSPEC_SAVEPATH"); env != "" {
		return env
	}
	return defaultSavePath
}

// functionsPathFor returns the functions document path for a savepath:
// the configured file name in the same directory as the keywords file.
func functionsPathFor(savepath, name string) string {
	return filepath.Join(filepath.Dir(savepath), name)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// .env can carry DUCKSPEC_SAVEPATH for scripted runs.
	_ = godotenv.Load()

	path := resolveSavePath(savePath)

	cfg, err := config.Load(configPath)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	logger.Info("saving JSON files to %s", path)

	resp, code, err := buildAndWrite(cmd.Context(), cfg, path, functionsPathFor(path, cfg.FunctionsFile))
	if err != nil {
		exitWithError(code, "%v", err)
	}

	printSaved(resp)
	return nil
}
