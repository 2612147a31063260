package main

import (
	"context"
	"flag"

	"github.com/pkg/errors"

	"github.com/falconindy/aurd/internal/rpcv1"
)

const resolveShortHelp = "Resolve dependency expressions to providing packages"
const resolveLongHelp = `
Parses each DEPSTRING (e.g. "pacman>=6.0.0") and prints the packages that
satisfy it, either by name or by a "provides" declaration, preserving
input order.
`

type resolveCommand struct{}

func (c *resolveCommand) Name() string              { return "resolve" }
func (c *resolveCommand) Args() string              { return "<depstring...>" }
func (c *resolveCommand) ShortHelp() string          { return resolveShortHelp }
func (c *resolveCommand) LongHelp() string           { return resolveLongHelp }
func (c *resolveCommand) Hidden() bool               { return false }
func (c *resolveCommand) Register(fs *flag.FlagSet) {}

func (c *resolveCommand) Run(client rpcv1.Client, globals *globalFlags, args []string) error {
	if len(args) == 0 {
		return errors.New("resolve requires at least one depstring")
	}

	resp, err := client.Resolve(context.Background(), &rpcv1.ResolveRequest{
		Depstrings: args,
		Options: rpcv1.RequestOptions{
			PackageFieldMask: rpcv1.ParseFieldMask(globals.fieldMask),
		},
	})
	if err != nil {
		return errors.Wrap(err, "resolve")
	}

	return printJSON(resp)
}
