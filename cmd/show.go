package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fmarino/prospect/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	id int64
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show one client in full" }
func (*showCmd) Usage() string {
	return `pst show -id <id>

  Prints a single client card with every field, services included.
`
}

func (p *showCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.id, "id", 0, "Id of the client to show.")
}

func (p *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.ClientMarkdown(client))
	return subcommands.ExitSuccess
}
