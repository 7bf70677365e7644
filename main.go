// Copyright (c) 2026 The tablediff Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tablediff/tablediff/internal/command"
	"github.com/tablediff/tablediff/internal/log"
	"github.com/tablediff/tablediff/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain(os.Args))
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// realMain runs the CLI and maps the outcome to an exit code: 0 when the
// inputs are semantically identical, 1 when differences were found, 2 on any
// error (bad flags, unreadable input, parse failure).
func realMain(args []string) int {
	log.InitLogger()

	if handleVersion(args) {
		return 0
	}

	app, outcome := command.InitApp(ctx)
	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	if outcome.HasChanges {
		return 1
	}
	return 0
}
