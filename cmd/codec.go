package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zhubert/msgcodec/internal/codec"
	"github.com/zhubert/msgcodec/internal/logger"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [text...]",
	Short: "Encode text with the configured transform",
	Long: `Encodes the given text and prints the result. Arguments are joined with
single spaces. With no arguments the text is read from stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(cmd, codec.ActionEncode, args)
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [text...]",
	Short: "Decode text with the configured transform",
	Long: `Decodes the given text and prints the result. Arguments are joined with
single spaces. With no arguments the text is read from stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(cmd, codec.ActionDecode, args)
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
}

func runTransform(cmd *cobra.Command, action codec.Action, args []string) error {
	if err := logger.Init(logger.CLILogPath(action.String())); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer logger.Close()

	cfg, err := loadWithOverrides(cmd)
	if err != nil {
		return err
	}
	return runTransformWith(os.Stdin, cmd.OutOrStdout(), cfg.GetTransform(), action, args)
}

// runTransformWith allows injecting the input and output streams for testing
func runTransformWith(in io.Reader, out io.Writer, transform string, action codec.Action, args []string) error {
	svc, err := codec.NewService(transform)
	if err != nil {
		return err
	}

	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		// A single trailing newline comes from the shell, not the message.
		text = strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r")
	}

	result, ok, err := svc.Apply(action, text)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("nothing to %s: input is blank", action)
	}

	logger.WithComponent("cli").Debug("transform applied", "action", action.String(), "transform", transform)
	_, err = fmt.Fprintln(out, result)
	return err
}
