package main

// Exit codes shared by all commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, filesystem failure)
	ExitConfigError = 2 // Configuration error (malformed config file)
	ExitDataError   = 3 // Catalog error (connection or query failure)
)
