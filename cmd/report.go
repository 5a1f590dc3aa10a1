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

type reportCmd struct {
	year int
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "yearly report over the client book" }
func (*reportCmd) Usage() string {
	return `pst report [-year <year>]

  Prints the yearly report: conversion rate, accepted revenue, the
  breakdowns by status, country and service, and the month by month
  proposal activity. The year defaults to the most recent year with a
  proposal, or the current one for an empty book.
`
}

func (p *reportCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.year, "year", 0, "Year of the report (defaults to the most recent year with activity).")
}

func (p *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	clients := store.Clients()
	year := p.year
	if year == 0 {
		year = prospect.AvailableYears(clients, prospect.Today().Year())[0]
	}

	report := prospect.NewReport(clients, year)
	printMarkdown(renderer.ReportMarkdown(report))
	return subcommands.ExitSuccess
}
