package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type editCmd struct {
	id   int64
	form clientForm
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "update an existing client" }
func (*editCmd) Usage() string {
	return `pst edit -id <id> [field flags...]

  Updates a client. Fields not passed as flags keep their current value;
  changing -country without -currency resets the currency to the
  country's default.

Usage Examples:
# The proposal was accepted.
$ pst edit -id 3 -status ACCEPTED

`
}

func (p *editCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.id, "id", 0, "Id of the client to update.")
	p.form.SetFlags(f)
}

func (p *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	client, ok := store.Client(p.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: client %d not found\n", p.id)
		return subcommands.ExitFailure
	}

	draft := client.Draft()
	if err := p.form.apply(&draft, flagsSet(f)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	if err := store.UpdateClient(p.id, draft); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated client #%d %q\n", client.ID, draft.Name)
	return subcommands.ExitSuccess
}
