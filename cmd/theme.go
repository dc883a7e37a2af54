package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/zhubert/msgcodec/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Print the theme mode the TUI would start in",
	Long: `Prints "light" or "dark". A pinned theme setting is reported as-is;
with the auto setting the OS appearance is queried once.`,
	Args: cobra.NoArgs,
	RunE: runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	cfg, err := loadWithOverrides(cmd)
	if err != nil {
		return err
	}
	return runThemeWith(cmd.Context(), cmd.OutOrStdout(), cfg.GetTheme(), theme.Detect)
}

// runThemeWith allows injecting the detector for testing
func runThemeWith(ctx context.Context, out io.Writer, setting string, detect theme.Detector) error {
	s, err := theme.ParseSetting(setting)
	if err != nil {
		return err
	}

	mode, fixed := s.Fixed()
	source := "pinned"
	if !fixed {
		if ctx == nil {
			ctx = context.Background()
		}
		mode = detect(ctx)
		source = "detected"
	}
	_, err = fmt.Fprintf(out, "%s (%s)\n", mode, source)
	return err
}
