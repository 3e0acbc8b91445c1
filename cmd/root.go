package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mletourn/lzmatool/internal/config"
	"github.com/mletourn/lzmatool/internal/logger"
	"github.com/mletourn/lzmatool/internal/run"
)

const version = "0.1.0"

var cfgFile string

// exitCode carries the result of the executed subcommand back to main.
var exitCode int

// rootCmd represents the base CLI command
var rootCmd = &cobra.Command{
	Use:   "lzmatool",
	Short: "A CLI tool for compressing and decompressing files with XZ",
	Long: `lzmatool compresses or decompresses a single file using the
XZ (LZMA2) container format.

The compression preset trades speed for ratio (0 = fastest, 9 = smallest,
default 6). Existing output files are never overwritten unless --force
is given.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// CLI flags can override config settings
		debug, _ := cmd.Flags().GetBool("debug")
		logFormat, _ := cmd.Flags().GetString("log-format")

		// If CLI flags were explicitly provided, update the global config
		if cmd.Flags().Changed("debug") {
			config.Instance.Debug = debug
		}

		if cmd.Flags().Changed("log-format") {
			config.Instance.LogFormat = logFormat
		}

		// If config file was explicitly specified via flag, re-read it
		if cmd.Flags().Changed("config") && cfgFile != "" {
			if err := config.Reload(cfgFile); err != nil {
				logger.LogWarn("error loading config file", map[string]interface{}{
					"config_file": cfgFile,
					"error":       err.Error(),
				})
			}
		}

		if cmd.Flags().Changed("debug") || cmd.Flags().Changed("log-format") {
			if err := logger.InitLogger(logger.LoggerConfig{
				Debug:     config.Instance.Debug,
				LogFormat: config.Instance.LogFormat,
				LogFile:   config.Instance.LogFile,
			}); err != nil {
				fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
			}
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return exitCode
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is "+config.AppName+".yaml in the current directory)")

	// Debug flag
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	// Log format flag
	rootCmd.PersistentFlags().String("log-format", "human", "Log format: json or human")

	// Bind flags to viper settings
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	// Add version command
	rootCmd.AddCommand(versionCmd)
}

// runOperation executes the driver and performs all process I/O: result
// lines to stdout, a single diagnostic line to stderr on failure.
func runOperation(p run.Params) {
	logger.LogDebug("starting operation", map[string]interface{}{
		"mode":   string(p.Mode),
		"input":  p.InputPath,
		"output": p.OutputPath,
		"preset": p.Preset,
		"force":  p.Force,
	})

	result, err := run.Execute(p)
	if err != nil {
		logger.LogError("operation failed", err, map[string]interface{}{
			"mode":  string(p.Mode),
			"input": p.InputPath,
		})
		fmt.Fprintln(os.Stderr, run.Diagnostic(err))
		exitCode = run.ExitCode(err)
		return
	}

	logger.LogInfo("operation complete", map[string]interface{}{
		"input":       result.InputPath,
		"output":      result.OutputPath,
		"input_size":  result.InputSize,
		"output_size": result.OutputSize,
	})

	for _, line := range result.Lines() {
		fmt.Println(line)
	}
}

// versionCmd shows the application version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("lzmatool v" + version)
	},
}
