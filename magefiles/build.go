//go:build mage
// +build mage

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	"github.com/magefile/mage/target"
)

const binaryName string = "minigrep"

// sourceDirs are checked to decide if the binary needs rebuilding
var sourceDirs = []string{"cmd", "internal", "library"}

// All does what it says on the tin: lints, tests, and builds the
// minigrep binary
func All() error {
	mg.SerialDeps(Lint, Test, Build)
	return nil
}

// Build generates the minigrep binary in the build directory, skipping
// the build if the binary is newer than every source file
func Build() error {
	mg.Deps(ensureBuildDir)

	binaryOut := buildDir + "/" + binaryName
	mod, err := target.Dir(binaryOut, sourceDirs...)
	if err != nil {
		return fmt.Errorf("unable to check if '%v' needs rebuilding: %w", binaryOut, err)
	}
	if !mod {
		fmt.Printf("[BUILD] '%v' is newer than %v, not rebuilding\n", binaryOut, sourceDirs)
		return nil
	}

	fmt.Print("[BUILD] building minigrep...")
	err = sh.RunV("go", "build", "-o", binaryOut, "./cmd/minigrep")
	if err != nil {
		fmt.Println(" ERROR")
		return err
	}
	fmt.Println(" SUCCESS")
	return nil
}

// Lint runs golangci-lint on the code
func Lint() error {
	stdOut := bytes.NewBuffer(nil)
	stdErr := bytes.NewBuffer(nil)

	fmt.Fprintf(os.Stdout, "[BUILD][LINT] linting the code...")
	_, err := sh.Exec(nil, stdOut, stdErr, "golangci-lint", "run", "-v", "./...")
	if err != nil {
		fmt.Fprintf(os.Stdout, " ERROR!\n")
		fmt.Fprint(os.Stdout, stdOut.String())
		fmt.Fprint(os.Stderr, stdErr.String())
		return err
	}
	fmt.Fprintf(os.Stdout, " SUCCESS!\n")
	return nil
}

// Clean removes the build directory
func Clean() error {
	fmt.Printf("[CLEAN] removing '%v'\n", buildDir)
	return sh.Rm(buildDir)
}
