// Package cli defines the instruction-engine subcommands.
package cli

import "github.com/google/subcommands"

// Version is the build version stamped into the binary.
var Version = "0.1.0"

// Commands lists every subcommand the binary registers.
var Commands = []subcommands.Command{
	&serveCmd{},
	&evalCmd{},
}
