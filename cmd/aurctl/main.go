// Command aurctl is the command-line client for aurd. It dials the
// server over gRPC and issues a single Lookup, Search, or Resolve RPC per
// invocation, printing the JSON response.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/falconindy/aurd/internal/config"
	"github.com/falconindy/aurd/internal/rpcv1"
)

// command is the per-subcommand contract, in the teacher's cmd/dep style:
// a small interface registered into a flat slice of implementations and
// dispatched on by name.
type command interface {
	Name() string
	Args() string
	ShortHelp() string
	LongHelp() string
	Register(*flag.FlagSet)
	Hidden() bool
	Run(client rpcv1.Client, globals *globalFlags, args []string) error
}

// globalFlags are aurctl's flags that precede the subcommand name:
// -a server_address, -l LOOKUP_BY, -s SEARCH_BY, -o SEARCH_LOGIC,
// -m FIELD_MASK.
type globalFlags struct {
	serverAddress string
	lookupBy      string
	searchBy      string
	searchLogic   string
	fieldMask     string
}

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) (exitCode int) {
	errLogger := log.New(os.Stderr, "", 0)

	commands := []command{
		&lookupCommand{},
		&searchCommand{},
		&resolveCommand{},
	}

	fs := flag.NewFlagSet("aurctl", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	globals := &globalFlags{}

	configPath := fs.String("config", "", "path to a TOML config file")
	fs.StringVar(&globals.serverAddress, "a", "", "server address")
	fs.StringVar(&globals.lookupBy, "l", "", "LookupBy enum name (default NAME)")
	fs.StringVar(&globals.searchBy, "s", "", "SearchBy enum name (default NAME_DESC)")
	fs.StringVar(&globals.searchLogic, "o", "", "SearchLogic enum name (default DISJUNCTIVE)")
	fs.StringVar(&globals.fieldMask, "m", "", "comma-delimited field mask")

	usage := func() {
		errLogger.Println("aurctl queries an aurd server")
		errLogger.Println()
		errLogger.Println("Usage: aurctl [flags] <command> [args...]")
		errLogger.Println()
		errLogger.Println("Commands:")
		w := tabwriter.NewWriter(os.Stderr, 0, 4, 2, ' ', 0)
		for _, cmd := range commands {
			if !cmd.Hidden() {
				fmt.Fprintf(w, "\t%s\t%s\n", cmd.Name(), cmd.ShortHelp())
			}
		}
		w.Flush()
	}

	if err := fs.Parse(args[1:]); err != nil {
		usage()
		return 1
	}

	if *configPath != "" {
		cfg, err := config.LoadClientConfig(*configPath)
		if err != nil {
			errLogger.Printf("loading config: %v\n", err)
			return 1
		}
		if globals.serverAddress == "" {
			globals.serverAddress = cfg.ServerAddress
		}
		if globals.lookupBy == "" {
			globals.lookupBy = cfg.LookupBy
		}
		if globals.searchBy == "" {
			globals.searchBy = cfg.SearchBy
		}
		if globals.searchLogic == "" {
			globals.searchLogic = cfg.SearchLogic
		}
		if globals.fieldMask == "" {
			globals.fieldMask = strings.Join(cfg.FieldMask, ",")
		}
	}
	if globals.serverAddress == "" {
		globals.serverAddress = "127.0.0.1:9000"
	}

	rest := fs.Args()
	if len(rest) == 0 {
		usage()
		return 1
	}
	cmdName, cmdArgs := rest[0], rest[1:]

	for _, cmd := range commands {
		if cmd.Name() != cmdName {
			continue
		}

		cmdFs := flag.NewFlagSet(cmdName, flag.ContinueOnError)
		cmdFs.SetOutput(os.Stderr)
		cmd.Register(cmdFs)
		resetUsage(errLogger, cmdFs, cmdName, cmd.Args(), cmd.LongHelp())

		if err := cmdFs.Parse(cmdArgs); err != nil {
			return 1
		}

		conn, err := grpc.Dial(globals.serverAddress,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithDefaultCallOptions(grpc.ForceCodec(rpcv1.Codec())),
		)
		if err != nil {
			errLogger.Printf("dialing %s: %v\n", globals.serverAddress, err)
			return 1
		}
		defer conn.Close()

		client := rpcv1.NewClient(conn)
		if err := cmd.Run(client, globals, cmdFs.Args()); err != nil {
			errLogger.Printf("%v\n", err)
			return 1
		}
		return 0
	}

	errLogger.Printf("aurctl: %s: no such command\n", cmdName)
	usage()
	return 1
}

func resetUsage(logger *log.Logger, fs *flag.FlagSet, name, args, longHelp string) {
	var (
		hasFlags  bool
		flagBlock bytes.Buffer
		fw        = tabwriter.NewWriter(&flagBlock, 0, 4, 2, ' ', 0)
	)
	fs.VisitAll(func(f *flag.Flag) {
		hasFlags = true
		fmt.Fprintf(fw, "\t-%s\t%s\n", f.Name, f.Usage)
	})
	fw.Flush()
	fs.Usage = func() {
		logger.Printf("Usage: aurctl %s %s\n", name, args)
		logger.Println()
		logger.Println(strings.TrimSpace(longHelp))
		logger.Println()
		if hasFlags {
			logger.Println("Flags:")
			logger.Println(flagBlock.String())
		}
	}
}
