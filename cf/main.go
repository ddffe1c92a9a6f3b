package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/cashflow/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])

	// Shell completion: when invoked by the shell's completion hook, this
	// prints candidates and exits.
	cmd.Completion().Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
