// Package snapshot assembles an immutable, queryable view of package
// metadata from a Storage backend. A Snapshot is built by a single full
// scan and never mutated afterward; a fresh Snapshot is built and
// published wholesale on reload.
package snapshot

import (
	"github.com/falconindy/aurd/internal/dlog"
	"github.com/falconindy/aurd/internal/index"
	"github.com/falconindy/aurd/internal/record"
	"github.com/falconindy/aurd/internal/storage"
)

// indexNames enumerates every named index a Snapshot carries. Order only
// matters for log output; lookups are by name.
var indexNames = []string{
	"pkgname",
	"pkgbase",
	"maintainers",
	"groups",
	"keywords",
	"provides",
	"depends",
	"optdepends",
	"makedepends",
	"checkdepends",
}

// Snapshot is an immutable bundle of every decodable package record plus
// its ten named inverted indexes. Once Build returns, a Snapshot is never
// modified; concurrent readers share it without locking.
type Snapshot struct {
	packages []record.PackageRecord
	indexes  map[string]*index.Index
}

// Build performs a single full scan of s, decoding every blob matched by
// List("*") into a PackageRecord and indexing the result. A blob that
// fails to decode is skipped and logged rather than aborting the scan,
// so that one corrupt package can never take down a reload.
func Build(s storage.Storage) (*Snapshot, error) {
	names, err := s.List("*")
	if err != nil {
		return nil, err
	}

	packages := make([]record.PackageRecord, 0, len(names))
	for _, name := range names {
		blob, ok := s.Get(name)
		if !ok {
			dlog.Default().Warnf("skipping %s: blob missing during scan\n", name)
			continue
		}

		var r record.PackageRecord
		if err := Decode(blob, &r); err != nil {
			dlog.Default().Warnf("skipping %s: %v\n", name, err)
			continue
		}
		packages = append(packages, r)
	}

	snap := &Snapshot{
		packages: packages,
		indexes:  buildIndexes(packages),
	}
	dlog.Default().Logf("snapshot built: %d packages from %d blobs\n", len(packages), len(names))
	return snap, nil
}

func buildIndexes(packages []record.PackageRecord) map[string]*index.Index {
	extractors := map[string]index.Extractor{
		"pkgname":      index.Scalar(func(r *record.PackageRecord) string { return r.Name }),
		"pkgbase":      index.Scalar(func(r *record.PackageRecord) string { return r.Pkgbase }),
		"maintainers":  index.Repeated(func(r *record.PackageRecord) []string { return r.Maintainers }, false),
		"groups":       index.Repeated(func(r *record.PackageRecord) []string { return r.Groups }, false),
		"keywords":     index.Repeated(func(r *record.PackageRecord) []string { return r.Keywords }, false),
		"provides":     index.Dependency(func(r *record.PackageRecord) []string { return r.Provides }),
		"depends":      index.Dependency(func(r *record.PackageRecord) []string { return r.Depends }),
		"optdepends":   index.Dependency(func(r *record.PackageRecord) []string { return r.OptDepends }),
		"makedepends":  index.Dependency(func(r *record.PackageRecord) []string { return r.MakeDepends }),
		"checkdepends": index.Dependency(func(r *record.PackageRecord) []string { return r.CheckDepends }),
	}

	indexes := make(map[string]*index.Index, len(indexNames))
	for _, name := range indexNames {
		indexes[name] = index.Build(packages, name, extractors[name])
	}
	return indexes
}

// Packages returns the full package vector. Callers must not mutate the
// returned slice's elements; it is shared across every concurrent reader
// of this Snapshot.
func (s *Snapshot) Packages() []record.PackageRecord {
	return s.packages
}

// Index returns the named index, or nil if name does not match one of
// the ten fixed index names.
func (s *Snapshot) Index(name string) *index.Index {
	return s.indexes[name]
}
