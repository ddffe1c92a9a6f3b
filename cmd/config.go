package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/cashflow"
	"github.com/google/subcommands"
)

// configShowCmd holds the flags for the 'config' subcommand.
type configShowCmd struct{}

func (*configShowCmd) Name() string     { return "config" }
func (*configShowCmd) Synopsis() string { return "show the resolved configuration" }
func (*configShowCmd) Usage() string {
	return `cf config

  Prints the resolved data directory and the ledger file it points to.
`
}

func (c *configShowCmd) SetFlags(f *flag.FlagSet) {}

func (c *configShowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dir, err := DataDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	source := "default"
	switch {
	case *dataDirFlag != "":
		source = "-D flag"
	case os.Getenv("CASHFLOW_DIR") != "":
		source = "CASHFLOW_DIR environment variable"
	default:
		if cfg, err := readConfig(); err == nil && cfg[configKeyDataDir] != "" {
			source = "config file"
		}
	}

	fmt.Printf("data directory: %s (%s)\n", dir, source)
	fmt.Printf("ledger file:    %s\n", filepath.Join(dir, cashflow.LedgerFileName))
	return subcommands.ExitSuccess
}

// configSetDataDirCmd holds the flags for the 'set-data-dir' subcommand.
type configSetDataDirCmd struct{}

func (*configSetDataDirCmd) Name() string     { return "set-data-dir" }
func (*configSetDataDirCmd) Synopsis() string { return "record the data directory in the config file" }
func (*configSetDataDirCmd) Usage() string {
	return `cf set-data-dir <path>

  Records the data directory in ~/.cashflowrc so every later invocation
  uses it. The -D flag and CASHFLOW_DIR still take precedence.
`
}

func (c *configSetDataDirCmd) SetFlags(f *flag.FlagSet) {}

func (c *configSetDataDirCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: set-data-dir expects exactly one path.")
		return subcommands.ExitUsageError
	}
	dir, err := filepath.Abs(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving path: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, err := readConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	cfg[configKeyDataDir] = dir
	if err := writeConfig(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Data directory set to %s.\n", dir)
	return subcommands.ExitSuccess
}
