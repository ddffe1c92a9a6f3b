// Package cmd implements the CLI application to manage a personal cashflow ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cashflow"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&planCmd{}, "planning")
	c.Register(&setBalanceCmd{}, "planning")
	c.Register(&balanceCmd{}, "planning")

	c.Register(&addRecurringCmd{}, "recurring")
	c.Register(&listRecurringCmd{}, "recurring")
	c.Register(&editRecurringCmd{}, "recurring")
	c.Register(newEnableRecurringCmd(), "recurring")
	c.Register(newDisableRecurringCmd(), "recurring")
	c.Register(&deleteRecurringCmd{}, "recurring")

	c.Register(&addOneTimeCmd{}, "one-time")
	c.Register(&listOneTimeCmd{}, "one-time")
	c.Register(&editOneTimeCmd{}, "one-time")
	c.Register(&deleteOneTimeCmd{}, "one-time")

	c.Register(&exportCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&configShowCmd{}, "configuration")
	c.Register(&configSetDataDirCmd{}, "configuration")
	c.Register(&topicCmd{}, "configuration")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDirFlag = flag.String("D", "", "Path to the data directory (overrides CASHFLOW_DIR and the config file)")

// configFile is the user-level configuration, a plain KEY=VALUE file.
const configFile = ".cashflowrc"

// configKeyDataDir is the config file key holding the data directory.
const configKeyDataDir = "data_dir"

// configPath returns the path of the user configuration file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not resolve home directory: %w", err)
	}
	return filepath.Join(home, configFile), nil
}

// readConfig loads the configuration file as a key-value map. A missing file
// is an empty configuration.
func readConfig() (map[string]string, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return map[string]string{}, nil
	}
	cfg, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	return cfg, nil
}

// writeConfig persists the configuration file.
func writeConfig(cfg map[string]string) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := godotenv.Write(cfg, path); err != nil {
		return fmt.Errorf("could not write config file %q: %w", path, err)
	}
	return nil
}

// DataDir resolves the data directory: the -D flag wins, then the
// CASHFLOW_DIR environment variable, then the config file, then ~/.cashflow.
func DataDir() (string, error) {
	if *dataDirFlag != "" {
		return *dataDirFlag, nil
	}
	if dir := os.Getenv("CASHFLOW_DIR"); dir != "" {
		return dir, nil
	}
	cfg, err := readConfig()
	if err != nil {
		return "", err
	}
	if dir := cfg[configKeyDataDir]; dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not resolve home directory: %w", err)
	}
	return filepath.Join(home, ".cashflow"), nil
}

// LoadLedger loads the ledger from the resolved data directory.
func LoadLedger() (*cashflow.Ledger, error) {
	dir, err := DataDir()
	if err != nil {
		return nil, err
	}
	return cashflow.LoadLedger(dir)
}

// SaveLedger saves the ledger into the resolved data directory.
func SaveLedger(ledger *cashflow.Ledger) error {
	dir, err := DataDir()
	if err != nil {
		return err
	}
	return cashflow.SaveLedger(dir, ledger)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
