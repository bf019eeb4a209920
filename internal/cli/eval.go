package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/ledgerline/instruction-engine/settlement"
)

type evalCmd struct {
	accountsPath string
}

func (*evalCmd) Name() string     { return "eval" }
func (*evalCmd) Synopsis() string { return "evaluate one instruction against accounts from a file" }
func (*evalCmd) Usage() string {
	return `eval -accounts <file.json> <instruction...>

  Evaluates the instruction against the accounts in the JSON file and prints
  the outcome. The file holds an array of {id, balance, currency} records.

  Example:
    eval -accounts accounts.json DEBIT 100 USD FROM ACCOUNT A1 TO ACCOUNT A2
`
}

func (c *evalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.accountsPath, "accounts", "", "path to the accounts JSON file (required)")
}

func (c *evalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.accountsPath == "" {
		fmt.Fprintln(os.Stderr, "Error: the -accounts flag is required.")
		return subcommands.ExitUsageError
	}

	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: an instruction is required.")
		return subcommands.ExitUsageError
	}

	raw, err := os.ReadFile(c.accountsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading accounts file: %v\n", err)
		return subcommands.ExitFailure
	}

	var accounts []settlement.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing accounts file: %v\n", err)
		return subcommands.ExitFailure
	}

	outcome, err := settlement.New().EvaluateInstruction(accounts, strings.Join(f.Args(), " "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating instruction: %v\n", err)
		return subcommands.ExitFailure
	}

	encoded, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding outcome: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(string(encoded))

	if outcome.Status == settlement.StatusFailed {
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
