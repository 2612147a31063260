// Package index implements InvertedIndex: a mapping from a case-folded
// string key to the ordered set of package records that produced that key
// under a given extractor.
package index

import (
	"strings"

	"github.com/falconindy/aurd/internal/depexpr"
	"github.com/falconindy/aurd/internal/dlog"
	"github.com/falconindy/aurd/internal/record"
)

// Extractor returns the (possibly empty) list of raw keys a record
// contributes to an index.
type Extractor func(r *record.PackageRecord) []string

// Scalar builds an Extractor that always emits exactly one key (possibly
// the empty string) per record.
func Scalar(field func(r *record.PackageRecord) string) Extractor {
	return func(r *record.PackageRecord) []string {
		return []string{field(r)}
	}
}

// Repeated builds an Extractor over a repeated string field. When
// includeEmpty is set, a record whose field is empty emits a single
// synthetic "" key so that "records missing field X" are reachable via
// Get("").
func Repeated(field func(r *record.PackageRecord) []string, includeEmpty bool) Extractor {
	return func(r *record.PackageRecord) []string {
		vals := field(r)
		if len(vals) == 0 && includeEmpty {
			return []string{""}
		}
		return vals
	}
}

// Dependency builds an Extractor over a repeated depstring field, indexing
// each element by its parsed name rather than the raw depstring.
func Dependency(field func(r *record.PackageRecord) []string) Extractor {
	return func(r *record.PackageRecord) []string {
		raw := field(r)
		keys := make([]string, len(raw))
		for i, d := range raw {
			keys[i] = depexpr.Parse(d).Name
		}
		return keys
	}
}

// Index is an immutable, built inverted index over a fixed package vector.
type Index struct {
	name    string
	entries map[string][]*record.PackageRecord
}

// Build constructs an Index over packages, using extract to obtain each
// record's keys. Index keys are case-folded at insertion; duplicate keys
// within a single record collapse so the record appears at most once per
// key.
func Build(packages []record.PackageRecord, name string, extract Extractor) *Index {
	idx := &Index{name: name, entries: make(map[string][]*record.PackageRecord)}

	for i := range packages {
		p := &packages[i]
		seen := make(map[string]bool)
		for _, raw := range extract(p) {
			key := strings.ToLower(raw)
			if seen[key] {
				continue
			}
			seen[key] = true
			idx.entries[key] = append(idx.entries[key], p)
		}
	}

	dlog.Default().Logf("%s index built with %d terms\n", name, len(idx.entries))
	return idx
}

// Get returns the ordered set of records associated with key, or nil if
// key has no entries. key is case-folded before lookup.
func (idx *Index) Get(key string) []*record.PackageRecord {
	if idx == nil {
		return nil
	}
	return idx.entries[strings.ToLower(key)]
}

// Name reports the index's human-readable name, used only for logging.
func (idx *Index) Name() string {
	return idx.name
}
