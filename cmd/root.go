package cmd

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zhubert/caesar/internal/app"
	"github.com/zhubert/caesar/internal/cipher"
	"github.com/zhubert/caesar/internal/config"
	"github.com/zhubert/caesar/internal/controller"
	"github.com/zhubert/caesar/internal/errors"
	"github.com/zhubert/caesar/internal/logger"
	"github.com/zhubert/caesar/internal/ui"
)

var version, commit, date string

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

// rootOptions holds the flag values shared by the root and its subcommands.
type rootOptions struct {
	configPath string
	logFile    string
	shift      int
	decrypt    bool
	theme      string
	debug      bool
	quiet      bool
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "caesar",
		Short: "Caesar cipher with live, synchronized plaintext and ciphertext",
		Long: `caesar is a terminal Caesar cipher. Type into the input field and the
output field follows as you type. Change the shift or flip between encryption
and decryption at any time.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.initLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	opts.addPersistentFlags(cmd.PersistentFlags())
	opts.addTUIFlags(cmd.Flags())

	cmd.AddCommand(newTransformCmd(opts, controller.Encrypt))
	cmd.AddCommand(newTransformCmd(opts, controller.Decrypt))
	cmd.AddCommand(newDemoCmd())
	cmd.AddCommand(newCleanCmd())

	return cmd
}

// addPersistentFlags registers the flags every subcommand accepts.
func (o *rootOptions) addPersistentFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&o.debug, "debug", true, "Enable debug logging (on by default)")
	fs.BoolVarP(&o.quiet, "quiet", "q", false, "Reduce logging to info level only")
	fs.StringVar(&o.configPath, "config", "", "Config file (default ~/.caesar/config.yaml)")
	fs.StringVar(&o.logFile, "log-file", logger.DefaultLogPath, "Debug log file")
	fs.IntVarP(&o.shift, "shift", "s", cipher.DefaultShift, "Shift amount (1-25)")
}

// addTUIFlags registers the flags only the interactive root accepts.
func (o *rootOptions) addTUIFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&o.decrypt, "decrypt", "d", false, "Start in decryption mode")
	fs.StringVar(&o.theme, "theme", "", "UI theme (dark-purple, nord, dracula, gruvbox, tokyo-night, light)")
}

func (o *rootOptions) initLogging() {
	if o.quiet {
		logger.SetDebug(false)
	} else if o.debug {
		logger.SetDebug(true)
	}
	if err := logger.Init(o.logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	logger.SetRunID(uuid.NewString())
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("caesar %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("caesar %s\n", version)
}

// loadSettings reads the config file and applies flag overrides on top.
// Flags win over the environment, which wins over the file.
func loadSettings(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFrom(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("shift") {
		if opts.shift < cipher.MinShift || opts.shift > cipher.MaxShift {
			return nil, errors.ShiftInvalid(fmt.Sprint(opts.shift))
		}
		cfg.Shift = opts.shift
	}
	if f := cmd.Flags().Lookup("decrypt"); f != nil && f.Changed {
		if opts.decrypt {
			cfg.Direction = controller.Decrypt.String()
		} else {
			cfg.Direction = controller.Encrypt.String()
		}
	}
	if f := cmd.Flags().Lookup("theme"); f != nil && f.Changed {
		cfg.Theme = opts.theme
	}
	if cfg.Theme != "" && !ui.IsTheme(cfg.Theme) {
		return nil, errors.ConfigInvalid(fmt.Sprintf("unknown theme %q", cfg.Theme))
	}

	logger.Debug("CLI: settings file=%s shift=%d direction=%s theme=%s", cfg.FilePath(), cfg.Shift, cfg.Direction, cfg.Theme)
	return cfg, nil
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadSettings(cmd, opts)
	if err != nil {
		return err
	}

	defer logger.Close()

	m := app.New(cfg, nil)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		logger.Error("CLI: program exited: %v", err)
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
