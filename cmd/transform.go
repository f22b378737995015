package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/caesar/internal/cipher"
	"github.com/zhubert/caesar/internal/config"
	"github.com/zhubert/caesar/internal/controller"
	"github.com/zhubert/caesar/internal/errors"
	"github.com/zhubert/caesar/internal/logger"
)

// newTransformCmd builds the headless encrypt or decrypt subcommand.
func newTransformCmd(opts *rootOptions, direction controller.Direction) *cobra.Command {
	name := direction.String()
	return &cobra.Command{
		Use:   name + " [text...]",
		Short: direction.Label() + " without the TUI",
		Long: fmt.Sprintf(`%s the arguments (joined by spaces) or, with no arguments, standard input.
The shift comes from --shift, then $%s, then the config file.`, direction.Label(), config.EnvShift),
		Example: fmt.Sprintf("  caesar %s -s 3 Hello, World!\n  echo secret | caesar %s", name, name),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, opts, direction, args)
		},
	}
}

func runTransform(cmd *cobra.Command, opts *rootOptions, direction controller.Direction, args []string) error {
	cfg, err := loadSettings(cmd, opts)
	if err != nil {
		return err
	}

	defer logger.Close()

	out := cmd.OutOrStdout()
	if len(args) > 0 {
		text := strings.Join(args, " ")
		_, err := fmt.Fprintln(out, transform(direction, text, cfg.Shift))
		return err
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return errors.InputReadFailed(err)
	}
	logger.Debug("CLI: %s %d bytes from stdin with shift %d", direction, len(data), cfg.Shift)
	_, err = fmt.Fprint(out, transform(direction, string(data), cfg.Shift))
	return err
}

func transform(direction controller.Direction, text string, shift int) string {
	if direction == controller.Decrypt {
		return cipher.Decrypt(text, shift)
	}
	return cipher.Encrypt(text, shift)
}
