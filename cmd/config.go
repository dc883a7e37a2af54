package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/zhubert/msgcodec/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change saved settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print every setting as key=value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		return showConfig(cmd.OutOrStdout(), cfg)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting and save it",
	Long: `Changes one setting and writes the config file. Run "msgcodec config show"
to list the available keys.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		return setConfig(cmd.OutOrStdout(), cfg, args[0], args[1])
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), cfg.FilePath())
		return err
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func showConfig(out io.Writer, cfg *config.Config) error {
	for _, key := range config.Keys() {
		value, err := cfg.Get(key)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "%s=%s\n", key, value); err != nil {
			return err
		}
	}
	return nil
}

func setConfig(out io.Writer, cfg *config.Config, key, value string) error {
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return err
	}
	current, err := cfg.Get(key)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s=%s\n", key, current)
	return err
}

// resetToDefaults overwrites every key with its default value and saves.
func resetToDefaults(cfg *config.Config) error {
	defaults := config.Default()
	for _, key := range config.Keys() {
		value, err := defaults.Get(key)
		if err != nil {
			return err
		}
		if err := cfg.Set(key, value); err != nil {
			return err
		}
	}
	return cfg.Save()
}
