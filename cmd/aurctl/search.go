package main

import (
	"context"
	"flag"

	"github.com/pkg/errors"

	"github.com/falconindy/aurd/internal/rpcv1"
)

const searchShortHelp = "Search packages by name and/or description glob"
const searchLongHelp = `
Matches each TERM as a case-insensitive glob against name (and
description, unless the global -s flag is NAME) and prints the packages
selected by the global -o logic (default DISJUNCTIVE).
`

type searchCommand struct{}

func (c *searchCommand) Name() string              { return "search" }
func (c *searchCommand) Args() string              { return "<term...>" }
func (c *searchCommand) ShortHelp() string          { return searchShortHelp }
func (c *searchCommand) LongHelp() string           { return searchLongHelp }
func (c *searchCommand) Hidden() bool               { return false }
func (c *searchCommand) Register(fs *flag.FlagSet) {}

func (c *searchCommand) Run(client rpcv1.Client, globals *globalFlags, args []string) error {
	if len(args) == 0 {
		return errors.New("search requires at least one term")
	}

	searchBy, err := rpcv1.ParseSearchBy(globals.searchBy)
	if err != nil {
		return err
	}
	searchLogic, err := rpcv1.ParseSearchLogic(globals.searchLogic)
	if err != nil {
		return err
	}

	resp, err := client.Search(context.Background(), &rpcv1.SearchRequest{
		SearchBy:    searchBy,
		SearchLogic: searchLogic,
		Terms:       args,
		Options: rpcv1.RequestOptions{
			PackageFieldMask: rpcv1.ParseFieldMask(globals.fieldMask),
		},
	})
	if err != nil {
		return errors.Wrap(err, "search")
	}

	return printJSON(resp)
}
