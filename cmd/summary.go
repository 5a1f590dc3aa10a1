package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fmarino/prospect"
	"github.com/fmarino/prospect/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the state of the client book" }
func (*summaryCmd) Usage() string {
	return `pst summary [-d <date>]

  Prints the headline figures of the client book as of a date: totals per
  status, accepted revenue, recent clients and notes, and whether any
  proposal went out in the last week.
`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Date of the summary (YYYY-MM-DD, defaults to today).")
}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on := prospect.Today()
	if p.date != "" {
		var err error
		on, err = prospect.ParseDate(p.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	summary := prospect.NewSummary(store.Clients(), on)
	printMarkdown(renderer.SummaryMarkdown(summary))
	return subcommands.ExitSuccess
}
