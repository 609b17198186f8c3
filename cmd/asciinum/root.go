package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opal-lang/asciinum/core/invariant"
	"github.com/opal-lang/asciinum/core/radix"
	"github.com/opal-lang/asciinum/internal/config"
	"github.com/opal-lang/asciinum/internal/lineio"
	"github.com/opal-lang/asciinum/internal/logging"
	"github.com/opal-lang/asciinum/internal/output"
)

const longHelp = `Reads unsigned integers from stdin, one per line, and writes each one using
ASCII characters as digits.

RADIXOPT picks the digit alphabet. It is either a preset name (see
"asciinum presets") or exactly 3 characters, one per character block:

  1st, symbols:  a  all       !"#$%&'()*+,-./:;<=>?@[\]^_` + "`" + `{|}~
                 u  unixsafe  same as a without /
                 d  disabled
  2nd, numbers:  a  all       0123456789
                 d  disabled
  3rd, letters:  i  insensitive  abcdefghijklmnopqrstuvwxyz
                 s  sensitive    ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz
                 o  ordered      AaBbCcDdEeFfGgHhIiJjKkLlMmNnOoPpQqRrSsTtUuVvWwXxYyZz

The blocks are joined as symbols, numbers, letters; the length of the
result is the radix. The default RADIXOPT is "dao" (radix 62).

Input lines are trimmed of ASCII control characters and blank lines are
skipped. Lines that are not decimal integers in [0, 2^128-1] are reported
on stderr and processing continues; the exit status is then 2.

Environment: ASCIINUM_RADIX, ASCIINUM_FORMAT, ASCIINUM_DEBUG, NO_COLOR.`

// cli holds the streams and flag values shared by all commands.
type cli struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	configPath string
	debug      bool
	noColor    bool

	file   string
	follow bool
	format output.Format

	useColor bool
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	c := &cli{stdin: stdin, stdout: stdout, stderr: stderr}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		v, ok := invariant.AsViolation(r)
		if !ok {
			panic(r)
		}
		FormatError(stderr, &CLIError{
			Type:    "internal",
			Message: "internal error",
			Details: v.Error(),
			Hint:    "this is a bug in asciinum, please report it",
		}, c.useColor)
		code = ExitFailure
	}()

	root := c.newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	FormatError(stderr, err, c.useColor)
	return ExitFailure
}

func (c *cli) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "asciinum [RADIXOPT]",
		Short:         "Express numbers read from stdin with ASCII characters",
		Long:          longHelp,
		Args:          maxOneArg,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          c.runConvert,
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().BoolVar(&c.debug, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&c.noColor, "no-color", false, "Disable colored output")

	rootCmd.Flags().StringVarP(&c.file, "file", "f", "-", `Read numbers from this file ("-" for stdin)`)
	rootCmd.Flags().BoolVar(&c.follow, "follow", false, "Keep reading lines appended to --file until interrupted")
	rootCmd.Flags().Var(&c.format, "format", "Output format: text or cbor")

	rootCmd.AddCommand(c.newCorpusCmd(), c.newPresetsCmd())
	return rootCmd
}

func maxOneArg(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return &CLIError{
			Type:    "usage",
			Message: "too many arguments",
			Hint:    "use `--help` for more info.",
		}
	}
	return nil
}

// resolveConfig layers flags and the positional RADIXOPT over the file
// and environment configuration.
func (c *cli) resolveConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, &CLIError{Type: "config", Message: err.Error()}
	}

	if len(args) == 1 {
		cfg.Radix = args[0]
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		cfg.Format = c.format.String()
	}
	if c.debug {
		cfg.Debug = true
	}
	if c.noColor {
		cfg.NoColor = true
	}

	c.useColor = ShouldUseColor(cfg.NoColor, c.stderr)
	return cfg, nil
}

// converter builds the converter for cfg.Radix.
func (c *cli) converter(cfg config.Config, log zerolog.Logger) (*radix.Converter, error) {
	settings, err := radix.ParseSettings(cfg.Radix)
	if err != nil {
		cliErr := &CLIError{
			Type:    "config",
			Message: fmt.Sprintf("couldn't parse radix option `%s`: %v", cfg.Radix, err),
		}
		var cfgErr *radix.ConfigError
		if errors.As(err, &cfgErr) {
			cliErr.Hint = cfgErr.Hint
		}
		return nil, cliErr
	}

	conv := radix.NewConverter(settings)
	log.Debug().
		Str("selector", settings.Selector()).
		Stringer("settings", settings).
		Int("radix", conv.Radix()).
		Msg("converter ready")
	return conv, nil
}

func (c *cli) runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := c.resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	log := logging.New(c.stderr, cfg.Debug, c.useColor)

	conv, err := c.converter(cfg, log)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return &CLIError{Type: "config", Message: err.Error()}
	}

	reader, closeFunc, err := openInput(cmd.Context(), c.file, c.follow, c.stdin)
	if err != nil {
		return err
	}
	defer func() { _ = closeFunc() }()

	enc, err := output.NewEncoder(format, c.stdout)
	if err != nil {
		return &CLIError{Type: "config", Message: err.Error()}
	}

	log.Debug().Str("file", c.file).Bool("follow", c.follow).Str("format", string(format)).Msg("reading input")
	st, err := lineio.NewProcessor(conv, enc, lineio.WithLogger(log)).Run(cmd.Context(), reader)
	if err != nil && !errors.Is(err, context.Canceled) {
		return &CLIError{Type: "io", Message: err.Error()}
	}

	if st.Rejected > 0 {
		return &exitError{code: ExitInvalidInput}
	}
	return nil
}
