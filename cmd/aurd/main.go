// Command aurd is the read-only AUR package metadata query daemon. It
// loads a Storage-backed corpus into an in-memory Snapshot, serves
// Lookup/Search/Resolve over gRPC, and reloads the corpus on SIGHUP
// without disrupting in-flight queries.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/Masterminds/semver"
	"google.golang.org/grpc"

	"github.com/falconindy/aurd/internal/config"
	"github.com/falconindy/aurd/internal/dlog"
	"github.com/falconindy/aurd/internal/query"
	"github.com/falconindy/aurd/internal/rpcv1"
	"github.com/falconindy/aurd/internal/storage"
)

// buildVersion is validated against semver.NewVersion at startup; it
// identifies this daemon's own build, distinct from the per-package
// pkgver strings compared by internal/vercmp.
const buildVersion = "1.0.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("aurd", flag.ContinueOnError)
	listenAddress := fs.String("l", "", "listen address (default 127.0.0.1:9000)")
	storageRoot := fs.String("storage-root", "", "directory of package blobs")
	configPath := fs.String("config", "", "path to a TOML config file")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	log := dlog.New(os.Stderr, "aurd: ")
	dlog.SetDefault(log)

	version, err := semver.NewVersion(buildVersion)
	if err != nil {
		log.Logf("invalid build version %q: %v\n", buildVersion, err)
		return 1
	}
	log.Logf("starting aurd %s\n", version)

	cfg := &config.ServerConfig{ListenAddress: "127.0.0.1:9000"}
	if *configPath != "" {
		loaded, err := config.LoadServerConfig(*configPath)
		if err != nil {
			log.Logf("loading config: %v\n", err)
			return 1
		}
		cfg = loaded
	}
	if *listenAddress != "" {
		cfg.ListenAddress = *listenAddress
	}
	if *storageRoot != "" {
		cfg.StorageRoot = *storageRoot
	}
	if cfg.StorageRoot == "" {
		fmt.Fprintln(os.Stderr, "aurd: -storage-root (or storage_root in -config) is required")
		return 1
	}

	store := storage.NewFilesystem(cfg.StorageRoot)

	engine, err := query.New(store)
	if err != nil {
		log.Logf("building initial snapshot: %v\n", err)
		return 1
	}

	listener, err := net.Listen("tcp", cfg.ListenAddress)
	if err != nil {
		log.Logf("listening on %s: %v\n", cfg.ListenAddress, err)
		return 1
	}
	log.Logf("listening on %s, storage root %s\n", cfg.ListenAddress, cfg.StorageRoot)

	grpcServer := grpc.NewServer(grpc.ForceServerCodec(rpcv1.Codec()))
	rpcv1.RegisterServer(grpcServer, rpcv1.NewServer(engine))

	serveErrs := make(chan error, 1)
	go func() {
		serveErrs <- grpcServer.Serve(listener)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case s := <-sig:
			switch s {
			case syscall.SIGHUP:
				log.Logln("SIGHUP received, reloading snapshot")
				if err := engine.Reload(); err != nil {
					log.Warnf("reload failed: %v\n", err)
				}
			case syscall.SIGINT, syscall.SIGTERM:
				log.Logln("shutting down gracefully")
				grpcServer.GracefulStop()
				return 0
			}
		case err := <-serveErrs:
			if err != nil {
				log.Logf("serve: %v\n", err)
				return 1
			}
			return 0
		}
	}
}
