// Command aur-blobify is the offline conversion tool that turns a JSON
// dump of package records (the legacy AUR RPC response shape) into the
// one-blob-per-file directory aurd reads at runtime. It never runs
// alongside aurd; the two are separate binaries so that conversion never
// competes with serving for CPU or I/O.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/termie/go-shutil"
	"github.com/theckman/go-flock"

	"github.com/falconindy/aurd/internal/record"
	"github.com/falconindy/aurd/internal/snapshot"
)

// legacyPackage is one entry of the legacy AUR RPC response's "results"
// array, grounded on the field names consumed by the upstream
// json_to_protobuf conversion tool.
type legacyPackage struct {
	Name           string   `json:"Name"`
	PackageBase    string   `json:"PackageBase"`
	Version        string   `json:"Version"`
	Description    string   `json:"Description"`
	URL            string   `json:"URL"`
	NumVotes       int32    `json:"NumVotes"`
	Popularity     float64  `json:"Popularity"`
	OutOfDate      int64    `json:"OutOfDate"`
	FirstSubmitted int64    `json:"FirstSubmitted"`
	LastModified   int64    `json:"LastModified"`
	Maintainer     string   `json:"Maintainer"`
	Depends        []string `json:"Depends"`
	MakeDepends    []string `json:"MakeDepends"`
	CheckDepends   []string `json:"CheckDepends"`
	OptDepends     []string `json:"OptDepends"`
	Provides       []string `json:"Provides"`
	Replaces       []string `json:"Replaces"`
	License        []string `json:"License"`
	Conflicts      []string `json:"Conflicts"`
	Groups         []string `json:"Groups"`
	Keywords       []string `json:"Keywords"`
}

type legacyResponse struct {
	Results []legacyPackage `json:"results"`
}

// toInternal maps a legacyPackage onto a PackageRecord. The legacy shape
// carries a single Maintainer string rather than a repeated field; it
// becomes a one-element Maintainers slice, or none at all when empty.
func toInternal(p legacyPackage) *record.PackageRecord {
	r := &record.PackageRecord{
		Name:         p.Name,
		Pkgbase:      p.PackageBase,
		Pkgver:       p.Version,
		Description:  p.Description,
		URL:          p.URL,
		Votes:        p.NumVotes,
		Popularity:   p.Popularity,
		Submitted:    p.FirstSubmitted,
		Modified:     p.LastModified,
		OutOfDate:    p.OutOfDate,
		Groups:       p.Groups,
		Keywords:     p.Keywords,
		Licenses:     p.License,
		Conflicts:    p.Conflicts,
		Replaces:     p.Replaces,
		Provides:     p.Provides,
		Depends:      p.Depends,
		MakeDepends:  p.MakeDepends,
		CheckDepends: p.CheckDepends,
		OptDepends:   p.OptDepends,
	}
	if p.Maintainer != "" {
		r.Maintainers = []string{p.Maintainer}
	}
	return r
}

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s inputfile dbdir\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}

	if err := run(os.Args[1], os.Args[2]); err != nil {
		fmt.Fprintf(os.Stderr, "aur-blobify: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath, dbDir string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return errors.Wrapf(err, "reading %s", inputPath)
	}

	var resp legacyResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return errors.Wrap(err, "parsing legacy JSON response")
	}

	staging, err := os.MkdirTemp(filepath.Dir(dbDir), ".aur-blobify-")
	if err != nil {
		return errors.Wrap(err, "creating staging directory")
	}
	defer os.RemoveAll(staging)

	var failures int
	for _, p := range resp.Results {
		r := toInternal(p)
		blob, err := snapshot.Encode(r)
		if err != nil {
			fmt.Fprintf(os.Stderr, "aur-blobify: skipping %s: %v\n", p.Name, err)
			failures++
			continue
		}
		if err := os.WriteFile(filepath.Join(staging, r.Name), blob, 0o644); err != nil {
			return errors.Wrapf(err, "writing staged blob for %s", r.Name)
		}
	}

	lock := flock.NewFlock(dbDir + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return errors.Wrap(err, "acquiring destination lock")
	}
	if !locked {
		return errors.Errorf("%s is locked by another aur-blobify run", dbDir)
	}
	defer lock.Unlock()

	if err := os.RemoveAll(dbDir); err != nil {
		return errors.Wrapf(err, "clearing %s", dbDir)
	}

	cfg := &shutil.CopyTreeOptions{
		Symlinks:     false,
		CopyFunction: shutil.Copy,
	}
	if err := shutil.CopyTree(staging, dbDir, cfg); err != nil {
		return errors.Wrapf(err, "staging into %s", dbDir)
	}

	fmt.Printf("aur-blobify: wrote %d packages to %s (%d skipped)\n", len(resp.Results)-failures, dbDir, failures)
	return nil
}
