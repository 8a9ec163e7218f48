//go:build mage
// +build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/sh"
)

// testPackages are run one at a time so a failure points at a package
var testPackages = []string{"library", "internal/logging", "cmd/minigrep"}

// Test runs the tests for every package
func Test() error {
	fmt.Printf("Running tests...\n")

	for _, p := range testPackages {
		if err := runTests(p); err != nil {
			return err
		}
	}

	return nil
}

func runTests(pkg string) error {
	fmt.Printf("Running %v tests...", pkg)

	out, err := sh.Output("go", "test", "-count=1", fmt.Sprintf("./%v", pkg))
	if err != nil {
		fmt.Printf(" ERROR\n%v\n", out)
		return fmt.Errorf("tests failed for '%v':\n\t%w", pkg, err)
	}
	fmt.Println(" DONE")

	return nil
}
