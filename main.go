// Copyright 2018-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/beevik/op65/host"
	"github.com/beevik/term"
)

var (
	batch bool
)

func init() {
	flag.BoolVar(&batch, "b", false, "run scripts and exit without reading stdin")
	flag.CommandLine.Usage = func() {
		fmt.Println("Usage: op65 [script] ..\nOptions:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	h := host.New()

	// Run commands contained in command-line files.
	for _, filename := range flag.Args() {
		file, err := os.Open(filename)
		if err != nil {
			exitOnError(err)
		}
		err = h.RunCommands(file, os.Stdout, false)
		file.Close()
		switch {
		case errors.Is(err, host.ErrQuit):
			os.Exit(0)
		case err != nil:
			exitOnError(err)
		}
	}

	if batch {
		return
	}

	// Break on Ctrl-C.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go handleInterrupt(h, c)

	// Run commands from stdin, prompting only when a user is typing them.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	err := h.RunCommands(os.Stdin, os.Stdout, interactive)
	if err != nil && !errors.Is(err, host.ErrQuit) {
		exitOnError(err)
	}
}

func handleInterrupt(h *host.Host, c chan os.Signal) {
	for {
		<-c
		h.Break()
	}
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
