package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type noteRmCmd struct {
	clientID int64
	noteID   int64
}

func (*noteRmCmd) Name() string     { return "note-rm" }
func (*noteRmCmd) Synopsis() string { return "delete a note" }
func (*noteRmCmd) Usage() string {
	return `pst note-rm -client <id> -note <id>

  Deletes a note. Deleting an unknown note is not an error.
`
}

func (p *noteRmCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.clientID, "client", 0, "Id of the client the note belongs to.")
	f.Int64Var(&p.noteID, "note", 0, "Id of the note to delete.")
}

func (p *noteRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.clientID == 0 || p.noteID == 0 {
		fmt.Fprintln(os.Stderr, "Error: -client and -note are required")
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if err := store.DeleteNote(p.clientID, p.noteID); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted note #%d from client #%d\n", p.noteID, p.clientID)
	return subcommands.ExitSuccess
}
