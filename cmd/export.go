package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fmarino/prospect"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the client book to CSV" }
func (*exportCmd) Usage() string {
	return `pst export [-o <file>]

  Writes every client as one CSV row, suitable for a spreadsheet. Notes
  are not exported. Use "-o -" to write to stdout.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", prospect.DefaultCSVFilename, "Destination file, or - for stdout.")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	clients := store.Clients()

	if p.output == "-" {
		if err := prospect.ExportCSV(os.Stdout, clients); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	file, err := os.Create(p.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "export error: cannot create %q: %v\n", p.output, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := prospect.ExportCSV(file, clients); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exported %d clients to %s\n", len(clients), p.output)
	return subcommands.ExitSuccess
}
