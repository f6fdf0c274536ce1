package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/byte4ever/mdinject/inject"
)

var errOutOfDate = errors.New("out of date")

type options struct {
	inPlace    string
	check      bool
	list       bool
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	op := &options{}

	cmd := &cobra.Command{
		Use:   "inject [flags] INPUT OUTPUT",
		Short: "Rewrite INJECT regions with the contents of files",
		Long: `inject reads INPUT, replaces the interior of every region delimited by

  <!-- INJECT: <directive> -->
  <!-- /INJECT -->

with the expansion of its directive, and writes the result to OUTPUT.
In a directive \n stands for a line break and ${path} for the contents
of path with trailing white space removed. INPUT and OUTPUT may be "-"
for standard input and standard output.`,
		Example: `  inject README.md README.md
  inject -i README.md
  inject - - < doc.md > out.md
  inject --check README.md`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          op.run,
	}

	fl := cmd.Flags()

	// Flags only count before INPUT, so -i is only the
	// shorthand in the first argument slot.
	fl.SetInterspersed(false)

	fl.StringVarP(
		&op.inPlace, "in-place", "i", "",
		"rewrite `FILE` in place, INPUT and OUTPUT are both FILE",
	)

	fl.BoolVar(
		&op.check, "check", false,
		"write nothing, fail if INPUT is not up to date",
	)

	fl.BoolVar(
		&op.list, "list", false,
		"write nothing, print the located regions as JSON",
	)

	fl.StringVar(
		&op.configPath, "config", "",
		"YAML config file",
	)

	fl.StringVar(
		&op.logLevel, "log-level", defaultLogLevel,
		"log level: debug, info, warn or error",
	)

	fl.StringVar(
		&op.logFormat, "log-format", defaultLogFormat,
		"log format: text or json",
	)

	cmd.MarkFlagsMutuallyExclusive("check", "list")

	return cmd
}

func (op *options) run(cmd *cobra.Command, positional []string) error {
	const errCtx = "inject"

	cfg, err := op.config(cmd)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	ar, ignored, err := parseArgs(
		op.inPlace,
		cmd.Flags().Changed("in-place"),
		positional,
		!op.check && !op.list,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if ignored != "" && ignored != ar.Input {
		logger.Warn(
			"ignoring argument after -i",
			"argument", ignored,
			"file", ar.Input,
		)
	}

	doc, err := readDocument(ar, cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if op.list {
		if err := writeReport(cmd.OutOrStdout(), doc); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		return nil
	}

	ij := inject.Injector{Logger: logger}

	result, err := ij.Inject(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if op.check {
		if result != doc {
			return fmt.Errorf(
				"%s: %w: %s", errCtx, errOutOfDate, ar.Input,
			)
		}

		logger.Info("up to date", "input", ar.Input)

		return nil
	}

	if err := writeDocument(ar, result, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// config merges the config file, if any, with the flags
// set on the command line.
func (op *options) config(cmd *cobra.Command) (Config, error) {
	cfg := defaultConfig()

	if op.configPath != "" {
		var err error

		cfg, err = loadConfig(op.configPath)
		if err != nil {
			return Config{}, err
		}
	}

	fl := cmd.Flags()

	if fl.Changed("log-level") {
		cfg.LogLevel = op.logLevel
	}

	if fl.Changed("log-format") {
		cfg.LogFormat = op.logFormat
	}

	return cfg, nil
}

// readDocument reads the whole input before anything is
// transformed.
func readDocument(ar Args, stdin io.Reader) (string, error) {
	const errCtx = "reading input"

	if ar.InputIsStdin() {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf(
				"%s: reading stdin: %w", errCtx, err,
			)
		}

		return string(content), nil
	}

	content, err := inject.ReadFile(ar.Input)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return content, nil
}

// writeDocument is only reached once the whole document has
// been expanded, so a failed run never truncates OUTPUT.
func writeDocument(ar Args, result string, stdout io.Writer) error {
	const errCtx = "writing output"

	if ar.OutputIsStdout() {
		if _, err := io.WriteString(stdout, result); err != nil {
			return fmt.Errorf(
				"%s: writing to stdout: %w", errCtx, err,
			)
		}

		return nil
	}

	err := os.WriteFile( //nolint:gosec // path from CLI argument
		ar.Output, []byte(result), 0o666,
	)
	if err != nil {
		return fmt.Errorf(
			"%s: %w", errCtx,
			&inject.FileAccessError{Path: ar.Output, Err: err},
		)
	}

	return nil
}
