//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import "github.com/magefile/mage/sh"

const binLint = "golangci-lint"

// lintTargets are the familytree packages; magefiles are build tooling.
var lintTargets = []string{"./cmd/...", "./internal/...", "./pkg/..."}

// Lint runs golangci-lint over the familytree packages.
func Lint() error {
	return sh.RunV(binLint, append([]string{"run", "--timeout", "3m"}, lintTargets...)...)
}
