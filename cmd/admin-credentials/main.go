package main

import (
	"flag"
	"fmt"
	"os"

	"invites/internal/tools/credentials"
)

func main() {
	cfg, err := credentials.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		exitf("parse flags: %v", err)
	}
	if err := credentials.Run(cfg, os.Stdin, os.Stdout, nil); err != nil {
		exitf("generate credentials: %v", err)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
