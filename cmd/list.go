package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fmarino/prospect"
	"github.com/fmarino/prospect/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	status string
	query  string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list clients" }
func (*listCmd) Usage() string {
	return `pst list [-status <status>] [-q <text>]

  Lists clients in creation order, optionally filtered by status or by a
  case-insensitive name search.
`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.status, "status", "", "Only clients with this status.")
	f.StringVar(&p.query, "q", "", "Only clients whose name contains this text.")
}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var status prospect.Status
	if p.status != "" {
		var err error
		status, err = prospect.ParseStatus(strings.ToUpper(p.status))
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

	var clients []prospect.Client
	for _, c := range store.Clients() {
		if status != "" && c.Status != status {
			continue
		}
		if p.query != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(p.query)) {
			continue
		}
		clients = append(clients, c)
	}

	printMarkdown(renderer.ClientsMarkdown(clients))
	return subcommands.ExitSuccess
}
