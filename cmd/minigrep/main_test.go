package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type EntryTestSuite struct {
	suite.Suite

	dir    string
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func TestEntry(t *testing.T) {
	suite.Run(t, new(EntryTestSuite))
}

// SetupTest gives every test its own temp dir and output buffers, with
// debug logging switched off
func (ets *EntryTestSuite) SetupTest() {
	ets.dir = ets.T().TempDir()
	ets.stdout = bytes.NewBuffer(nil)
	ets.stderr = bytes.NewBuffer(nil)
	ets.T().Setenv(envDebug, "")
}

func (ets *EntryTestSuite) writeFile(name, contents string) string {
	path := filepath.Join(ets.dir, name)
	ets.Require().NoError(os.WriteFile(path, []byte(contents), 0644))
	return path
}

func (ets *EntryTestSuite) run(args ...string) int {
	return execute(args, ets.stdout, ets.stderr)
}

// TestNotEnoughArguments checks that only a program name is a parse error
func (ets *EntryTestSuite) TestNotEnoughArguments() {
	code := ets.run("prog")

	ets.Equal(exitFailure, code)
	ets.Equal("Problem parsing arguments: not enough arguments\n", ets.stderr.String())
	ets.Equal("", ets.stdout.String())
}

// TestOnlyQuery checks that a query without a filename is a parse error
func (ets *EntryTestSuite) TestOnlyQuery() {
	code := ets.run("prog", "hello")

	ets.Equal(exitFailure, code)
	ets.Equal("Problem parsing arguments: not enough arguments\n", ets.stderr.String())
}

// TestNoArgumentsAtAll checks that an empty argv is a parse error, not a panic
func (ets *EntryTestSuite) TestNoArgumentsAtAll() {
	code := ets.run()

	ets.Equal(exitFailure, code)
	ets.Equal("Problem parsing arguments: not enough arguments\n", ets.stderr.String())
}

// TestPrintsContents checks the labelled output for a readable file
func (ets *EntryTestSuite) TestPrintsContents() {
	poem := ets.writeFile("poem.txt", "Roses are red")

	code := ets.run("prog", "hello", poem)

	ets.Equal(exitOK, code)
	ets.Equal("With text:\nRoses are red\n", ets.stdout.String())
	ets.Equal("", ets.stderr.String())
}

// TestExtraArgumentsIgnored checks that tokens after the filename don't matter
func (ets *EntryTestSuite) TestExtraArgumentsIgnored() {
	poem := ets.writeFile("poem.txt", "Roses are red")

	code := ets.run("prog", "hello", poem, "another.txt", "--verbose")

	ets.Equal(exitOK, code)
	ets.Equal("With text:\nRoses are red\n", ets.stdout.String())
}

// TestFlagLookingQuery checks that tokens cobra would normally treat as flags
// or commands are passed through as the query
func (ets *EntryTestSuite) TestFlagLookingQuery() {
	poem := ets.writeFile("poem.txt", "Roses are red")

	queries := []string{
		"-v", "--help", "-h",
		"help", "completion", "__complete", "__completeNoDesc",
	}

	for _, query := range queries {
		ets.stdout.Reset()
		ets.stderr.Reset()

		code := ets.run("prog", query, poem)

		ets.Equal(exitOK, code, "query %q", query)
		ets.Equal("With text:\nRoses are red\n", ets.stdout.String(), "query %q", query)
		ets.Equal("", ets.stderr.String(), "query %q", query)
	}
}

// TestCompletionTokenAsFilename checks that cobra's hidden completion
// command name isn't picked up from the filename position either
func (ets *EntryTestSuite) TestCompletionTokenAsFilename() {
	code := ets.run("prog", "hello", "__complete")

	ets.Equal(exitFailure, code)
	ets.Contains(ets.stderr.String(), "Application error: ")
	ets.Equal("", ets.stdout.String())
}

// TestCommandName checks the command is always named minigrep, whatever
// path the binary was run from
func (ets *EntryTestSuite) TestCommandName() {
	cmd := newRootCmd("/opt/my tools/minigrep", ets.stdout)
	ets.Equal("minigrep", cmd.Name())
}

// TestMissingFile checks the application error for a file that isn't there
func (ets *EntryTestSuite) TestMissingFile() {
	code := ets.run("prog", "hello", filepath.Join(ets.dir, "missing.txt"))

	ets.Equal(exitFailure, code)
	ets.Contains(ets.stderr.String(), "Application error: ")
	ets.Contains(ets.stderr.String(), "no such file or directory")
	ets.Equal("", ets.stdout.String())
}

// TestDirectory checks that a directory can't be read as a file
func (ets *EntryTestSuite) TestDirectory() {
	code := ets.run("prog", "hello", ets.dir)

	ets.Equal(exitFailure, code)
	ets.Contains(ets.stderr.String(), "Application error: ")
	ets.Equal("", ets.stdout.String())
}

// TestNotText checks that non-UTF-8 contents are an application error
func (ets *EntryTestSuite) TestNotText() {
	bin := ets.writeFile("binary.bin", string([]byte{0xff, 0xfe, 0x00, 0x01}))

	code := ets.run("prog", "hello", bin)

	ets.Equal(exitFailure, code)
	ets.Contains(ets.stderr.String(), "Application error: ")
	ets.Contains(ets.stderr.String(), "valid UTF-8")
}

// TestDebugLogging checks that MINIGREP_DEBUG adds log lines without changing stdout
func (ets *EntryTestSuite) TestDebugLogging() {
	ets.T().Setenv(envDebug, "1")
	poem := ets.writeFile("poem.txt", "Roses are red")

	code := ets.run("prog", "hello", poem)

	ets.Equal(exitOK, code)
	ets.Equal("With text:\nRoses are red\n", ets.stdout.String())

	logged := ets.stderr.String()
	ets.Contains(logged, "parsed arguments")
	ets.Contains(logged, "reading file")
	ets.Contains(logged, "invocation")
}

// TestDebugLoggingOnFailure checks that parse errors get logged before the diagnostic
func (ets *EntryTestSuite) TestDebugLoggingOnFailure() {
	ets.T().Setenv(envDebug, "true")

	code := ets.run("prog")

	ets.Equal(exitFailure, code)
	ets.Contains(ets.stderr.String(), "unable to parse arguments")
	ets.Contains(ets.stderr.String(), "Problem parsing arguments: not enough arguments\n")
}
