/*
Copyright © 2022 Sean Patrick Hagen <sean.hagen@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/seanhagen/minigrep/internal/logging"
	"github.com/seanhagen/minigrep/library"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envDebug = "MINIGREP_DEBUG"

const (
	exitOK      = 0
	exitFailure = 1
)

const defaultProgName = "minigrep"

func main() {
	os.Exit(execute(os.Args, os.Stdout, os.Stderr))
}

// newRootCmd builds the command for a single invocation. Flag parsing
// is turned off so every token reaches NewConfig untouched; a query of
// '-v' is a query, not a flag.
func newRootCmd(progName string, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "minigrep <query> <filename>",
		Short: "Print the contents of a file that will be searched for a query",
		Long: `minigrep takes a search query and the path to a file, loads the
whole file as text, and prints it underneath a "With text:" label.

Anything after the filename is ignored.`,

		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := library.NewConfig(append([]string{progName}, args...))
			if err != nil {
				return err
			}

			if ce := zap.L().Check(zapcore.DebugLevel, "parsed arguments"); ce != nil {
				ce.Write(zap.String("config", spew.Sdump(conf)))
			}

			return library.Run(conf, stdout)
		},
	}
}

// execute runs one invocation against the full argument list
// (program name first) and returns the exit code for the process.
func execute(args []string, stdout, stderr io.Writer) int {
	undo, err := logging.Setup(logging.Config{
		Enabled: logging.EnvEnabled(os.Getenv(envDebug)),
		Output:  stderr,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Application error: %v\n", err)
		return exitFailure
	}
	defer undo()
	defer func() { _ = zap.L().Sync() }()

	progName := defaultProgName
	rest := []string{}
	if len(args) > 0 {
		progName = args[0]
		rest = append(rest, args[1:]...)
	}

	cmd := newRootCmd(progName, stdout)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err = runRoot(cmd, rest)
	if err == nil {
		return exitOK
	}

	var confErr library.ErrConfig
	if errors.As(err, &confErr) {
		zap.L().Debug("unable to parse arguments", zap.Error(err))
		fmt.Fprintf(stderr, "Problem parsing arguments: %v\n", confErr)
		return exitFailure
	}

	zap.L().Debug("unable to run", zap.Error(err))
	fmt.Fprintf(stderr, "Application error: %v\n", err)
	return exitFailure
}

// runRoot hands every token to the root command's RunE. Execute isn't
// used because it routes a first token of '__complete' or
// '__completeNoDesc' to cobra's hidden completion command.
func runRoot(cmd *cobra.Command, args []string) error {
	if err := cmd.ValidateArgs(args); err != nil {
		return err
	}
	return cmd.RunE(cmd, args)
}
