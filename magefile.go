//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - run the test suite.
var Default = Test

// Test runs the full test suite with race detection.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet across the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "--timeout=5m", "./...")
}

// Tidy tidies module dependencies.
func Tidy() error {
	return sh.RunV("go", "mod", "tidy")
}

// Check runs vet then the tests.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Clean removes the test cache.
func Clean() error {
	return sh.RunV("go", "clean", "-testcache")
}
