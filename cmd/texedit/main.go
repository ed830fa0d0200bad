// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texedit/main.go
// Summary: Entry point for the texedit terminal editor.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/framegrace/texedit/editor"
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "usage: texedit [file]")
		os.Exit(2)
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	if err := editor.Run(path); err != nil {
		// The terminal is already restored by the time Run returns.
		log.Fatalf("texedit: %v", err)
	}
}
