package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fmarino/prospect"
	"github.com/google/subcommands"
)

type addCmd struct {
	form clientForm
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new client" }
func (*addCmd) Usage() string {
	return `pst add -name <name> [-country <id>] [-services <ids>] [-status <status>] ...

  Records a new client. Dates default to today, the status to PENDING and
  the currency to the selected country's default.

Usage Examples:
# A proposal for an Argentinian client, web design and SEO.
$ pst add -name "Acme SA" -country AR -services 1,4 -one-time 1500

`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	p.form.SetFlags(f)
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// Defaults: today's dates, PENDING, first country of the list.
	today := prospect.Today()
	draft := prospect.ClientDraft{
		NeedDate: today,
		SentDate: today,
		Status:   prospect.StatusPending,
		Country:  prospect.Countries[0].ID,
		Currency: prospect.Countries[0].Currency,
	}
	set := flagsSet(f)
	if err := p.form.apply(&draft, set); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	client, err := store.CreateClient(draft)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created client #%d %q\n", client.ID, client.Name)
	return subcommands.ExitSuccess
}
