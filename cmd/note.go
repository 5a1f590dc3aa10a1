package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fmarino/prospect"
	"github.com/google/subcommands"
)

type noteCmd struct {
	clientID int64
	title    string
	date     string
	content  string
	tags     string
}

func (*noteCmd) Name() string     { return "note" }
func (*noteCmd) Synopsis() string { return "attach a note to a client" }
func (*noteCmd) Usage() string {
	return `pst note -client <id> -title <title> [-date <date>] [-tags <tags>] [-content <text>]

  Attaches a dated note to a client. The date defaults to today.

Usage Examples:
# Minutes of a kickoff meeting.
$ pst note -client 3 -title "Kickoff" -tags MEETING,IMPORTANT -content "Agreed on scope."

`
}

func (p *noteCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.clientID, "client", 0, "Id of the client the note belongs to.")
	f.StringVar(&p.title, "title", "", "Note title.")
	f.StringVar(&p.date, "date", "", "Note date (YYYY-MM-DD, defaults to today).")
	f.StringVar(&p.content, "content", "", "Note body text.")
	f.StringVar(&p.tags, "tags", "", "Comma-separated tags (MEETING, REMINDER, FOLLOW_UP, NEGOTIATION, GENERAL, IMPORTANT).")
}

func (p *noteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.clientID == 0 {
		fmt.Fprintln(os.Stderr, "Error: -client is required")
		return subcommands.ExitUsageError
	}

	draft := prospect.NoteDraft{Title: p.title, Date: prospect.Today(), Content: p.content}
	if p.date != "" {
		on, err := prospect.ParseDate(p.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		draft.Date = on
	}
	tags, err := parseTags(p.tags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	draft.Tags = tags

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	note, err := store.CreateNote(p.clientID, draft)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created note #%d %q on client #%d\n", note.ID, note.Title, p.clientID)
	return subcommands.ExitSuccess
}
