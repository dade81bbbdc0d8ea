package cli

// Exit codes for the semlog CLI.
// These codes support programmatic composition and CI/CD integration.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitUnsupportedRuntime indicates the Go runtime is below the
	// supported minimum release
	ExitUnsupportedRuntime = 1

	// ExitFormatError indicates a malformed or invalid changelog document
	ExitFormatError = 2

	// ExitAlreadyExists indicates the init target file already exists
	ExitAlreadyExists = 3

	// ExitArgumentError indicates invalid or missing command arguments
	ExitArgumentError = 4

	// ExitUnexpected is the defensive catch-all for everything else
	ExitUnexpected = 99
)
