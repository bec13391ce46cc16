// Package cli implements the tfprep command-line interface.
//
// The package is organized around Cobra commands, each in its own file and
// registered on the root command from an init function. Commands delegate
// to the internal packages for the actual work:
//
//   - Command definitions (cobra.Command instances, flag registration)
//   - Settings resolution (flags folded over the runner variables)
//   - Pipeline execution (in internal/deploy and below)
//
// # Command Structure
//
// The root command is "tfprep" with subcommands:
//
//	tfprep prepare <dir> <env> <flags>  - Resolve arguments, write outputs
//	tfprep validate [environment]       - Shape-check the configuration
//	tfprep envs                         - List deploy targets
//	tfprep init                         - Create a starter .tfprep.yaml
//	tfprep version                      - Print version information
//	tfprep completion <shell>           - Generate completion scripts
//
// # Settings
//
// All host-environment access happens here: loadSettings binds the GitHub
// runner variables (GITHUB_OUTPUT, GITHUB_WORKSPACE, RUNNER_DEBUG,
// NO_COLOR) through a viper instance and folds the persistent flags over
// them. The resulting Settings struct is passed explicitly into the
// pipeline, so everything below the cli package is environment-free and
// straightforward to test.
//
// # Error Handling
//
// Commands return errors instead of printing them. Execute emits exactly
// one ::error:: workflow command carrying the headline (so the GitHub step
// annotation stays a single line), prints the full styled detail to
// stderr, and exits 1.
package cli
