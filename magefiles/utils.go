//go:build mage
// +build mage

package main

import (
	"errors"
	"fmt"
	"os"
)

const buildDir string = "build"

func ensureBuildDir() error {
	st, err := os.Stat(buildDir)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Creating output build directory '%v'\n", buildDir)
		return os.Mkdir(buildDir, 0755)
	}
	if err != nil {
		return fmt.Errorf("unable to check build directory: %w", err)
	}

	if st.IsDir() {
		return nil
	}

	return fmt.Errorf("cannot create build directory '%v', a file already exists with that name", buildDir)
}
