// Package query implements QueryEngine: the three read operators (Lookup,
// Search, Resolve) over a hot-reloadable Snapshot, plus Reload itself.
//
// A QueryEngine holds a shared reference to the current Snapshot. Every
// operator captures that reference exactly once, at entry, and operates
// on the captured value for the rest of the call; a concurrent Reload
// publishing a new Snapshot never disturbs a call already in flight.
// Reload itself is serialized by a dedicated mutex distinct from the
// reference read path, so that Snapshot contents stay immutable and
// lock-free to read while still preventing two reloads from racing each
// other against Storage.
package query

import (
	"path"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/falconindy/aurd/internal/depexpr"
	"github.com/falconindy/aurd/internal/dlog"
	"github.com/falconindy/aurd/internal/record"
	"github.com/falconindy/aurd/internal/snapshot"
	"github.com/falconindy/aurd/internal/storage"
)

// LookupBy selects which index Lookup consults.
type LookupBy int

const (
	LookupByUnknown LookupBy = iota
	LookupByName
	LookupByPkgbase
	LookupByMaintainer
	LookupByGroup
	LookupByKeyword
	LookupByDepends
	LookupByMakeDepends
	LookupByCheckDepends
	LookupByOptDepends
)

func (l LookupBy) String() string {
	switch l {
	case LookupByUnknown:
		return "UNKNOWN"
	case LookupByName:
		return "NAME"
	case LookupByPkgbase:
		return "PKGBASE"
	case LookupByMaintainer:
		return "MAINTAINER"
	case LookupByGroup:
		return "GROUP"
	case LookupByKeyword:
		return "KEYWORD"
	case LookupByDepends:
		return "DEPENDS"
	case LookupByMakeDepends:
		return "MAKEDEPENDS"
	case LookupByCheckDepends:
		return "CHECKDEPENDS"
	case LookupByOptDepends:
		return "OPTDEPENDS"
	default:
		return "INVALID"
	}
}

// lookupIndexes maps each recognized LookupBy to the Snapshot index name
// that backs it.
var lookupIndexes = map[LookupBy]string{
	LookupByName:         "pkgname",
	LookupByPkgbase:      "pkgbase",
	LookupByMaintainer:   "maintainers",
	LookupByGroup:        "groups",
	LookupByKeyword:      "keywords",
	LookupByDepends:      "depends",
	LookupByMakeDepends:  "makedepends",
	LookupByCheckDepends: "checkdepends",
	LookupByOptDepends:   "optdepends",
}

// SearchBy selects which fields Search matches terms against.
type SearchBy int

const (
	SearchByUnknown SearchBy = iota
	SearchByNameDesc
	SearchByName
)

func (s SearchBy) String() string {
	switch s {
	case SearchByUnknown:
		return "UNKNOWN"
	case SearchByNameDesc:
		return "NAME_DESC"
	case SearchByName:
		return "NAME"
	default:
		return "INVALID"
	}
}

// SearchLogic controls whether Search requires any or all terms to match.
type SearchLogic int

const (
	SearchLogicUnknown SearchLogic = iota
	SearchLogicDisjunctive
	SearchLogicConjunctive
)

func (s SearchLogic) String() string {
	switch s {
	case SearchLogicUnknown:
		return "UNKNOWN"
	case SearchLogicDisjunctive:
		return "DISJUNCTIVE"
	case SearchLogicConjunctive:
		return "CONJUNCTIVE"
	default:
		return "INVALID"
	}
}

// UnimplementedError reports an unrecognized enum value crossing into the
// core. The caller's transport layer is expected to translate this into
// its own UNIMPLEMENTED status.
type UnimplementedError struct {
	Enum  string
	Value string
}

func (e *UnimplementedError) Error() string {
	return "unimplemented: unrecognized " + e.Enum + " value " + e.Value
}

// LookupResult is Lookup's response: the matched, projected packages plus
// the subset of requested names that matched nothing.
type LookupResult struct {
	Packages      []record.PackageRecord
	NotFoundNames []string
}

// ResolvedDependency pairs a requested depstring with its providers, in
// the input depstring's original order.
type ResolvedDependency struct {
	Depstring string
	Providers []record.PackageRecord
}

// Engine is the QueryEngine: it holds the current Snapshot behind an
// atomic reference and a Storage handle used to rebuild it on Reload.
type Engine struct {
	store storage.Storage

	current atomic.Pointer[snapshot.Snapshot]

	reloadMu sync.Mutex
}

// New builds an Engine by performing an initial Snapshot build against
// store. It corresponds to "a Snapshot is created by a full scan of the
// backing Storage at service start."
func New(store storage.Storage) (*Engine, error) {
	snap, err := snapshot.Build(store)
	if err != nil {
		return nil, errors.Wrap(err, "building initial snapshot")
	}

	e := &Engine{store: store}
	e.current.Store(snap)
	return e, nil
}

// Reload builds a fresh Snapshot from Storage and publishes it atomically.
// Concurrent Reload calls are serialized; concurrent queries are entirely
// unaffected, whether they captured the old or the new reference.
func (e *Engine) Reload() error {
	e.reloadMu.Lock()
	defer e.reloadMu.Unlock()

	snap, err := snapshot.Build(e.store)
	if err != nil {
		return errors.Wrap(err, "rebuilding snapshot")
	}

	e.current.Store(snap)
	dlog.Default().Logf("reload complete: %d packages\n", len(snap.Packages()))
	return nil
}

// snap captures the current Snapshot reference once; every operator calls
// this exactly once at entry and never rereads it during the call.
func (e *Engine) snap() *snapshot.Snapshot {
	return e.current.Load()
}

// Lookup resolves names against the index selected by by, unioning
// matches and recording any name that matched nothing.
func (e *Engine) Lookup(by LookupBy, names []string, mask record.FieldMask) (*LookupResult, error) {
	if by == LookupByUnknown {
		by = LookupByName
	}
	indexName, ok := lookupIndexes[by]
	if !ok {
		return nil, &UnimplementedError{Enum: "LookupBy", Value: by.String()}
	}

	snap := e.snap()
	idx := snap.Index(indexName)

	seen := make(map[*record.PackageRecord]bool)
	var matched []*record.PackageRecord
	var notFound []string

	for _, name := range names {
		hits := idx.Get(name)
		if len(hits) == 0 {
			notFound = append(notFound, name)
			continue
		}
		for _, r := range hits {
			if seen[r] {
				continue
			}
			seen[r] = true
			matched = append(matched, r)
		}
	}

	return &LookupResult{
		Packages:      mask.ProjectAll(matched),
		NotFoundNames: notFound,
	}, nil
}

// Search performs a full corpus scan, matching each record against terms
// as case-insensitive glob patterns combined per logic.
func (e *Engine) Search(by SearchBy, logic SearchLogic, terms []string, mask record.FieldMask) ([]record.PackageRecord, error) {
	if by == SearchByUnknown {
		by = SearchByNameDesc
	}
	if by != SearchByName && by != SearchByNameDesc {
		return nil, &UnimplementedError{Enum: "SearchBy", Value: by.String()}
	}

	if logic == SearchLogicUnknown {
		logic = SearchLogicDisjunctive
	}
	if logic != SearchLogicDisjunctive && logic != SearchLogicConjunctive {
		return nil, &UnimplementedError{Enum: "SearchLogic", Value: logic.String()}
	}

	snap := e.snap()
	packages := snap.Packages()

	var matched []*record.PackageRecord
	for i := range packages {
		r := &packages[i]
		if recordMatches(r, by, logic, terms) {
			matched = append(matched, r)
		}
	}

	return mask.ProjectAll(matched), nil
}

func recordMatches(r *record.PackageRecord, by SearchBy, logic SearchLogic, terms []string) bool {
	matchesTerm := func(term string) bool {
		if termMatches(term, r.Name) {
			return true
		}
		if by == SearchByNameDesc && termMatches(term, r.Description) {
			return true
		}
		return false
	}

	switch logic {
	case SearchLogicConjunctive:
		for _, term := range terms {
			if !matchesTerm(term) {
				return false
			}
		}
		return true
	default: // disjunctive
		for _, term := range terms {
			if matchesTerm(term) {
				return true
			}
		}
		return false
	}
}

// termMatches applies a case-insensitive POSIX glob (path.Match has no
// case-insensitive mode, so both sides are case-folded before matching).
func termMatches(pattern, subject string) bool {
	ok, err := path.Match(strings.ToLower(pattern), strings.ToLower(subject))
	if err != nil {
		return false
	}
	return ok
}

// Resolve evaluates each depstring against the union of the pkgname and
// provides indexes keyed by the expression's parsed name, keeping only
// candidates the expression is satisfied by.
func (e *Engine) Resolve(depstrings []string, mask record.FieldMask) []ResolvedDependency {
	snap := e.snap()
	pkgname := snap.Index("pkgname")
	provides := snap.Index("provides")

	results := make([]ResolvedDependency, 0, len(depstrings))
	for _, d := range depstrings {
		expr := depexpr.Parse(d)

		seen := make(map[*record.PackageRecord]bool)
		var candidates []*record.PackageRecord
		for _, r := range pkgname.Get(expr.Name) {
			if !seen[r] {
				seen[r] = true
				candidates = append(candidates, r)
			}
		}
		for _, r := range provides.Get(expr.Name) {
			if !seen[r] {
				seen[r] = true
				candidates = append(candidates, r)
			}
		}

		var providers []*record.PackageRecord
		for _, c := range candidates {
			if expr.SatisfiedBy(c) {
				providers = append(providers, c)
			}
		}

		results = append(results, ResolvedDependency{
			Depstring: d,
			Providers: mask.ProjectAll(providers),
		})
	}

	return results
}
