// Command creational runs the abstract factory and builder demonstrations.
//
// With no arguments it runs the fixed sequence:
//
//   - the factory driver with the normal, super and normal lines
//   - a full build and a build without part C, each with a fresh SuperBuilder
//
// Subcommands run one half on its own:
//
//	creational factory [line...]
//	creational builder [--without-c]
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the command line args, writing demo output to out.
func run(out io.Writer, args []string) error {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cmd := newRootCmd(out)
	cmd.SetArgs(args)
	return cmd.Execute()
}
