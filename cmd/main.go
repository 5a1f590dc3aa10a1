// Package cmd implements the CLI application to manage the client book.
package cmd

import (
	"flag"

	"github.com/fmarino/prospect"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "clients")
	c.Register(&editCmd{}, "clients")
	c.Register(&rmCmd{}, "clients")
	c.Register(&listCmd{}, "clients")
	c.Register(&showCmd{}, "clients")

	c.Register(&noteCmd{}, "notes")
	c.Register(&noteEditCmd{}, "notes")
	c.Register(&noteRmCmd{}, "notes")
	c.Register(&notesCmd{}, "notes")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dbFile = flag.String("db", "prospect.db", "Path to the client database file")

// OpenStore opens the app database and hydrates the client collection.
func OpenStore() (*prospect.Store, error) {
	return prospect.Open(*dbFile)
}
