package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tragoedia0722/filenamify/pkg/filenamify"
)

type convertFunc func(string, ...filenamify.Option) (string, error)

// runEach converts every argument, or every stdin line when there are none.
func runEach(ctx *commandContext, cmd *cobra.Command, args []string, convert convertFunc) error {
	cfg, err := ctx.ensureConfig(cmd)
	if err != nil {
		return err
	}
	opts := filenamify.WithOptions(cfg.Options())
	out := cmd.OutOrStdout()

	if len(args) > 0 {
		for _, arg := range args {
			if err := convertOne(ctx, out, arg, convert, opts); err != nil {
				return err
			}
		}
		return nil
	}

	in := cmd.InOrStdin()
	if isTerminal(in) {
		return cmd.Help()
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := convertOne(ctx, out, scanner.Text(), convert, opts); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}

func convertOne(ctx *commandContext, out io.Writer, input string, convert convertFunc, opts filenamify.Option) error {
	result, err := convert(input, opts)
	if err != nil {
		return err
	}
	ctx.log().Debug("sanitized", zap.String("input", input), zap.String("output", result))
	_, err = fmt.Fprintln(out, result)
	return err
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
