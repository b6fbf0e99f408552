package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"apichangeguard/internal/config"
	"apichangeguard/internal/spec"
	"apichangeguard/internal/usage"
)

const (
	// Exit codes
	ExitOK           = 0 // Analysis completed (violations or not)
	ExitPolicyFail   = 1 // --fail-on gate tripped
	ExitInvalidInput = 2 // Spec, version, or usage-log parse error
	ExitRuntimeError = 3 // I/O, permissions, or runtime error
)

var (
	// Global config instance
	cfg *config.Config

	// Global flags
	configFile string
	verbose    bool
	debug      bool

	// Build version, set via SetVersion
	buildVersion = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "api-change-guard <spec-file> <spec-file> [usage-log]",
	Short: "API compatibility checker with semver auditing",
	Long: `api-change-guard compares two versions of an HTTP API description and
reports the compatibility violations introduced between them.

The two spec files may be passed in either order: the document with the
lower declared version is treated as the baseline. An optional usage log
escalates violations on endpoints with observed traffic. The tool also
verifies that the declared version bump is at least as large as the
detected changes require.

Output is a JSON array of violations on stdout, sorted by
(rule, path, method) so results are deterministic.

Exit codes:
  0  Analysis completed (even when violations are found)
  1  A violation at or above --fail-on severity was found
  2  Invalid spec document or usage log
  3  I/O or runtime error

Example:
  api-change-guard v1/openapi.yaml v2/openapi.yaml
  api-change-guard v1.yaml v2.yaml access-logs.json --fail-on HIGH
  api-change-guard v1.yaml v2.yaml --format text
  api-change-guard v1.yaml v2.yaml --tui`,
	Args:         cobra.RangeArgs(2, 3),
	RunE:         runCheck,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load configuration
		var err error
		cfg, err = config.LoadFromFile(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Override config with flags if provided
		if verbose {
			cfg.Verbose = true
		}
		if debug {
			cfg.Debug = true
		}
		if cmd.Flags().Changed("format") {
			cfg.Format = checkFormat
		}
		if cmd.Flags().Changed("pretty") {
			cfg.Pretty = checkPretty
		}
		if cmd.Flags().Changed("fail-on") {
			cfg.FailOn = checkFailOn
		}

		return cfg.Validate()
	},
}

// SetVersion sets the build version shown by the version command
func SetVersion(v string) {
	buildVersion = v
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(HandleError(err))
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ~/.api-change-guard.yaml or ./.api-change-guard.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"debug mode (very verbose)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("api-change-guard %s\n", buildVersion)
	},
}

// configCmd prints a sample configuration file
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print a sample configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(config.GenerateSampleConfig())
	},
}

// HandleError determines the appropriate exit code for an error
func HandleError(err error) int {
	if err == nil {
		return ExitOK
	}

	switch err.(type) {
	case *spec.InvalidSpecError, *spec.InvalidVersionError, *usage.LogParseError:
		return ExitInvalidInput
	case *FailOnError:
		return ExitPolicyFail
	default:
		return ExitRuntimeError
	}
}

// FailOnError represents a tripped --fail-on severity gate
type FailOnError struct {
	Severity string
	Count    int
}

func (e *FailOnError) Error() string {
	return fmt.Sprintf("%d violation(s) at or above %s severity", e.Count, e.Severity)
}

// logVerbose prints a message if verbose mode is enabled
func logVerbose(format string, args ...interface{}) {
	if cfg != nil && cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[INFO] "+format+"\n", args...)
	}
}

// logDebug prints a message if debug mode is enabled
func logDebug(format string, args ...interface{}) {
	if cfg != nil && cfg.Debug {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}
