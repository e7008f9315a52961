package cmd

// Exit codes for indental CLI
const (
	// ExitSuccess indicates the command completed
	ExitSuccess = 0

	// ExitFailure indicates a generic failure, or differences found by diff --exit-code
	ExitFailure = 1

	// ExitDiagnostics indicates validate --strict found warnings
	ExitDiagnostics = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
