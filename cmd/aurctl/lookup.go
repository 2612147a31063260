package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/falconindy/aurd/internal/rpcv1"
	"github.com/pkg/errors"
)

const lookupShortHelp = "Look up packages by an indexed field"
const lookupLongHelp = `
Looks up each NAME against the index selected by the global -l flag
(default NAME) and prints the matching packages plus any names that
matched nothing.
`

type lookupCommand struct{}

func (c *lookupCommand) Name() string      { return "lookup" }
func (c *lookupCommand) Args() string      { return "<name...>" }
func (c *lookupCommand) ShortHelp() string { return lookupShortHelp }
func (c *lookupCommand) LongHelp() string  { return lookupLongHelp }
func (c *lookupCommand) Hidden() bool      { return false }
func (c *lookupCommand) Register(fs *flag.FlagSet) {}

func (c *lookupCommand) Run(client rpcv1.Client, globals *globalFlags, args []string) error {
	if len(args) == 0 {
		return errors.New("lookup requires at least one name")
	}

	lookupBy, err := rpcv1.ParseLookupBy(globals.lookupBy)
	if err != nil {
		return err
	}

	resp, err := client.Lookup(context.Background(), &rpcv1.LookupRequest{
		LookupBy: lookupBy,
		Names:    args,
		Options: rpcv1.RequestOptions{
			PackageFieldMask: rpcv1.ParseFieldMask(globals.fieldMask),
		},
	})
	if err != nil {
		return errors.Wrap(err, "lookup")
	}

	return printJSON(resp)
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding response")
	}
	fmt.Println(string(data))
	return nil
}
