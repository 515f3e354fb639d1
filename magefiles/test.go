//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// fuzzTime bounds each fuzz target run.
const fuzzTime = "15s"

// fuzzPackage holds the fuzz targets.
const fuzzPackage = "./pkg/types"

// Test groups test targets (unit, fuzz, cover).
type Test mg.Namespace

// Unit runs all package tests.
func (Test) Unit() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Fuzz runs every fuzz target in pkg/types for fuzzTime each.
func (Test) Fuzz() error {
	out, err := sh.Output(binGo, "test", "-list", "^Fuzz", fuzzPackage)
	if err != nil {
		return err
	}
	var targets []string
	for line := range strings.SplitSeq(out, "\n") {
		if strings.HasPrefix(line, "Fuzz") {
			targets = append(targets, strings.TrimSpace(line))
		}
	}
	if len(targets) == 0 {
		fmt.Println("No fuzz targets found.")
		return nil
	}
	for _, target := range targets {
		if err := sh.RunV(binGo, "test", "-run", "^$", "-fuzz", "^"+target+"$", "-fuzztime", fuzzTime, fuzzPackage); err != nil {
			return fmt.Errorf("fuzz %s: %w", target, err)
		}
	}
	return nil
}

// Cover runs all tests and writes coverage.out.
func (Test) Cover() error {
	if err := sh.RunV(binGo, "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func=coverage.out")
}
