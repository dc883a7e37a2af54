package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/zhubert/msgcodec/internal/app"
	"github.com/zhubert/msgcodec/internal/config"
	"github.com/zhubert/msgcodec/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	themeFlag             string
	transformFlag         string
	version, commit, date string
)

// loadConfig is swapped out in tests so they never touch the user's config.
var loadConfig = config.Load

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "msgcodec",
	Short: "Encode and decode messages as a list of rows",
	Long: `msgcodec is a TUI for encoding and decoding short messages.
Each row holds one message. Encoding or decoding a row inserts the result
as a new row directly below it, so a message and its transforms read top
to bottom.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Theme for this run: auto, light or dark")
	rootCmd.PersistentFlags().StringVar(&transformFlag, "transform", "", "Transform for this run (reverse, rot13, base64)")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("msgcodec %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("msgcodec %s\n", version)
}

// loadWithOverrides loads the saved config and applies any --theme or
// --transform flag given on the command line. Overrides are not saved.
func loadWithOverrides(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		if err := cfg.Set("theme", themeFlag); err != nil {
			return nil, err
		}
	}
	if flags.Changed("transform") {
		if err := cfg.Set("transform", transformFlag); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadWithOverrides(cmd)
	if err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	m, err := app.New(cfg, version, nil)
	if err != nil {
		return fmt.Errorf("error creating app: %w", err)
	}
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
