package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zhubert/msgcodec/internal/logger"
)

var (
	skipConfirm bool
	resetConfig bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove log files and optionally reset the config",
	Long: `Removes every msgcodec log file from /tmp. With --config the saved
settings are reset to their defaults as well.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	cleanCmd.Flags().BoolVar(&resetConfig, "config", false, "Also reset saved settings to defaults")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin, cmd.OutOrStdout())
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(input io.Reader, out io.Writer) error {
	logs, err := logger.LogFiles()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error listing log files: %v\n", err)
	}

	if len(logs) == 0 && !resetConfig {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}

	fmt.Fprintln(out, "This will clean:")
	if len(logs) > 0 {
		fmt.Fprintf(out, "  - %d log file(s)\n", len(logs))
		for _, path := range logs {
			fmt.Fprintf(out, "      %s\n", path)
		}
	}
	if resetConfig {
		fmt.Fprintln(out, "  - Saved settings")
	}

	if !skipConfirm {
		if !confirm(input, out, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	logsCleared, err := logger.ClearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}

	if resetConfig {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if err := resetToDefaults(cfg); err != nil {
			return err
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Cleaned:")
	if logsCleared > 0 {
		fmt.Fprintf(out, "  - %d log file(s) removed\n", logsCleared)
	}
	if resetConfig {
		fmt.Fprintln(out, "  - Settings reset to defaults")
	}
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
