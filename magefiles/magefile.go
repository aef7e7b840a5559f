//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the trifuzzy project using Mage.
//
// Usage:
//
//	mage build     Compile trifuzzy binary to bin/
//	mage test      Run all tests
//	mage cover     Run tests with a coverage profile in bin/
//	mage lint      Run golangci-lint
//	mage clean     Remove build artifacts
//	mage install   Install trifuzzy to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "trifuzzy"
	binaryDir  = "bin"
	cmdDir     = "./cmd/trifuzzy"

	binGo   = "go"
	binLint = "golangci-lint"
)

// Default target when mage runs without arguments.
var Default = Build

// Build compiles the trifuzzy binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Cover runs all tests and writes a coverage profile to bin/coverage.out.
func Cover() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	profile := filepath.Join(binaryDir, "coverage.out")
	if err := sh.RunV(binGo, "test", "-coverprofile="+profile, "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func="+profile)
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}

// Install runs the tests, then installs trifuzzy to GOPATH/bin.
func Install() error {
	mg.Deps(Test)
	return sh.RunV(binGo, "install", cmdDir)
}
