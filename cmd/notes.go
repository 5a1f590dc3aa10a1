package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fmarino/prospect/renderer"
	"github.com/google/subcommands"
)

type notesCmd struct {
	clientID int64
}

func (*notesCmd) Name() string     { return "notes" }
func (*notesCmd) Synopsis() string { return "list a client's notes" }
func (*notesCmd) Usage() string {
	return `pst notes -client <id>

  Prints every note of a client, in creation order.
`
}

func (p *notesCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.clientID, "client", 0, "Id of the client whose notes to list.")
}

func (p *notesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.clientID == 0 {
		fmt.Fprintln(os.Stderr, "Error: -client is required")
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	client, ok := store.Client(p.clientID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: client %d not found\n", p.clientID)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.NotesMarkdown(client))
	return subcommands.ExitSuccess
}
