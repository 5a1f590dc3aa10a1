package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fmarino/prospect"
	"github.com/google/subcommands"
)

type noteEditCmd struct {
	clientID int64
	noteID   int64
	title    string
	date     string
	content  string
	tags     string
}

func (*noteEditCmd) Name() string     { return "note-edit" }
func (*noteEditCmd) Synopsis() string { return "update a note" }
func (*noteEditCmd) Usage() string {
	return `pst note-edit -client <id> -note <id> [field flags...]

  Updates a note. Fields not passed as flags keep their current value.
`
}

func (p *noteEditCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.clientID, "client", 0, "Id of the client the note belongs to.")
	f.Int64Var(&p.noteID, "note", 0, "Id of the note to update.")
	f.StringVar(&p.title, "title", "", "Note title.")
	f.StringVar(&p.date, "date", "", "Note date (YYYY-MM-DD).")
	f.StringVar(&p.content, "content", "", "Note body text.")
	f.StringVar(&p.tags, "tags", "", "Comma-separated tags.")
}

func (p *noteEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	client, ok := store.Client(p.clientID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: client %d not found\n", p.clientID)
		return subcommands.ExitFailure
	}
	var draft prospect.NoteDraft
	found := false
	for _, n := range client.Notes {
		if n.ID == p.noteID {
			draft = n.Draft()
			found = true
			break
		}
	}
	if !found {
		fmt.Fprintf(os.Stderr, "Error: note %d not found on client %d\n", p.noteID, p.clientID)
		return subcommands.ExitFailure
	}

	set := flagsSet(f)
	if set["title"] {
		draft.Title = p.title
	}
	if set["date"] {
		on, err := prospect.ParseDate(p.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		draft.Date = on
	}
	if set["content"] {
		draft.Content = p.content
	}
	if set["tags"] {
		tags, err := parseTags(p.tags)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		draft.Tags = tags
	}

	if err := store.UpdateNote(p.clientID, p.noteID, draft); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated note #%d on client #%d\n", p.noteID, p.clientID)
	return subcommands.ExitSuccess
}
