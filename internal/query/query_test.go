package query

import (
	"sort"
	"testing"

	"github.com/falconindy/aurd/internal/record"
	"github.com/falconindy/aurd/internal/snapshot"
	"github.com/falconindy/aurd/internal/storage"
)

// corpus builds the five-record corpus worked through spec scenarios:
// expac-git provides expac=10, pacman-git and pacman-extraponies-git both
// provide pacman=6.0.0.
func corpus(t *testing.T) *Engine {
	t.Helper()

	m := storage.NewMemory()
	records := []*record.PackageRecord{
		{
			Name: "expac-git", Pkgbase: "expac-git", Pkgver: "10.1",
			Description: "pacman database extraction utility",
			Provides:    []string{"expac=10"},
		},
		{
			Name: "auracle-git", Pkgbase: "auracle-git", Pkgver: "0",
			Description: "a well-mannered client for AUR",
		},
		{
			Name: "pkgfile-git", Pkgbase: "pkgfile-git", Pkgver: "32",
			Description: "pacman metadata explorer",
		},
		{
			Name: "pacman-git", Pkgbase: "pacman-git", Pkgver: "6.0.0",
			Description: "a library-based package manager",
			Provides:    []string{"pacman=6.0.0"},
		},
		{
			Name: "pacman-extraponies-git", Pkgbase: "pacman-extraponies-git", Pkgver: "6.0.0",
			Description: "pacman with extra ponies",
			Provides:    []string{"pacman=6.0.0"},
		},
	}

	for _, r := range records {
		blob, err := snapshot.Encode(r)
		if err != nil {
			t.Fatal(err)
		}
		m.Add(r.Name, blob)
	}

	e, err := New(m)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func names(packages []record.PackageRecord) []string {
	out := make([]string, len(packages))
	for i, p := range packages {
		out[i] = p.Name
	}
	sort.Strings(out)
	return out
}

func equalStrSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLookupScenario1(t *testing.T) {
	e := corpus(t)
	result, err := e.Lookup(LookupByName, []string{"expac-git", "auracle-git", "notfound"}, record.FieldMask{"name"})
	if err != nil {
		t.Fatal(err)
	}
	if got := names(result.Packages); !equalStrSlices(got, []string{"auracle-git", "expac-git"}) {
		t.Fatalf("Packages = %v, want [auracle-git expac-git]", got)
	}
	if !equalStrSlices(result.NotFoundNames, []string{"notfound"}) {
		t.Fatalf("NotFoundNames = %v, want [notfound]", result.NotFoundNames)
	}
}

func TestLookupScenario2CaseInsensitive(t *testing.T) {
	e := corpus(t)
	result, err := e.Lookup(LookupByName, []string{"EXPAC-git", "auracle-GIT"}, record.FieldMask{"name"})
	if err != nil {
		t.Fatal(err)
	}
	if got := names(result.Packages); !equalStrSlices(got, []string{"auracle-git", "expac-git"}) {
		t.Fatalf("Packages = %v, want [auracle-git expac-git]", got)
	}
	if len(result.NotFoundNames) != 0 {
		t.Fatalf("NotFoundNames = %v, want none", result.NotFoundNames)
	}
}

func TestLookupUnknownCoercesToName(t *testing.T) {
	e := corpus(t)
	result, err := e.Lookup(LookupByUnknown, []string{"expac-git"}, record.AllFields)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Packages) != 1 || result.Packages[0].Name != "expac-git" {
		t.Fatalf("Lookup(UNKNOWN) = %+v, want expac-git resolved via NAME", result.Packages)
	}
}

func TestLookupUnimplementedEnum(t *testing.T) {
	e := corpus(t)
	_, err := e.Lookup(LookupBy(999), []string{"x"}, nil)
	if err == nil {
		t.Fatal("expected UnimplementedError for unrecognized LookupBy")
	}
	if _, ok := err.(*UnimplementedError); !ok {
		t.Fatalf("err = %T, want *UnimplementedError", err)
	}
}

func TestSearchScenario3(t *testing.T) {
	e := corpus(t)
	got, err := e.Search(SearchByName, SearchLogicDisjunctive, []string{"exp*"}, record.FieldMask{"name"})
	if err != nil {
		t.Fatal(err)
	}
	if n := names(got); !equalStrSlices(n, []string{"expac-git"}) {
		t.Fatalf("Search = %v, want [expac-git]", n)
	}
}

func TestSearchScenario4(t *testing.T) {
	e := corpus(t)
	got, err := e.Search(SearchByNameDesc, SearchLogicDisjunctive, []string{"*PACMAN*"}, record.FieldMask{"name"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"expac-git", "pacman-extraponies-git", "pacman-git", "pkgfile-git"}
	if n := names(got); !equalStrSlices(n, want) {
		t.Fatalf("Search = %v, want %v", n, want)
	}
}

func TestSearchScenario5Conjunctive(t *testing.T) {
	e := corpus(t)
	got, err := e.Search(SearchByNameDesc, SearchLogicConjunctive, []string{"*pacman*", "*metadata*"}, record.FieldMask{"name"})
	if err != nil {
		t.Fatal(err)
	}
	if n := names(got); !equalStrSlices(n, []string{"pkgfile-git"}) {
		t.Fatalf("Search = %v, want [pkgfile-git]", n)
	}
}

func TestSearchUnimplementedEnum(t *testing.T) {
	e := corpus(t)
	if _, err := e.Search(SearchBy(999), SearchLogicDisjunctive, []string{"x"}, nil); err == nil {
		t.Fatal("expected UnimplementedError for unrecognized SearchBy")
	}
	if _, err := e.Search(SearchByName, SearchLogic(999), []string{"x"}, nil); err == nil {
		t.Fatal("expected UnimplementedError for unrecognized SearchLogic")
	}
}

func TestResolveScenario6(t *testing.T) {
	e := corpus(t)
	results := e.Resolve([]string{"pacman>5", "expac<11"}, record.FieldMask{"name"})
	if len(results) != 2 {
		t.Fatalf("Resolve returned %d entries, want 2", len(results))
	}

	if results[0].Depstring != "pacman>5" {
		t.Fatalf("entry 0 depstring = %q, want pacman>5", results[0].Depstring)
	}
	if got := names(results[0].Providers); !equalStrSlices(got, []string{"pacman-extraponies-git", "pacman-git"}) {
		t.Fatalf("pacman>5 providers = %v, want [pacman-extraponies-git pacman-git]", got)
	}

	if results[1].Depstring != "expac<11" {
		t.Fatalf("entry 1 depstring = %q, want expac<11", results[1].Depstring)
	}
	if got := names(results[1].Providers); !equalStrSlices(got, []string{"expac-git"}) {
		t.Fatalf("expac<11 providers = %v, want [expac-git]", got)
	}
}

func TestResolveScenario7NonEQProvideRejected(t *testing.T) {
	m := storage.NewMemory()
	r := &record.PackageRecord{Name: "bar", Pkgver: "9.0", Provides: []string{"foo>=9"}}
	blob, err := snapshot.Encode(r)
	if err != nil {
		t.Fatal(err)
	}
	m.Add("bar", blob)

	e, err := New(m)
	if err != nil {
		t.Fatal(err)
	}

	results := e.Resolve([]string{"foo=1.0.0"}, record.AllFields)
	if len(results) != 1 {
		t.Fatalf("Resolve returned %d entries, want 1", len(results))
	}
	if len(results[0].Providers) != 0 {
		t.Fatalf("Providers = %v, want empty (non-EQ provide can't satisfy versioned req)", results[0].Providers)
	}
}

func TestResolveNameAndProvidesIdempotent(t *testing.T) {
	m := storage.NewMemory()
	r := &record.PackageRecord{Name: "foo", Pkgver: "1.0", Provides: []string{"foo"}}
	blob, err := snapshot.Encode(r)
	if err != nil {
		t.Fatal(err)
	}
	m.Add("foo", blob)

	e, err := New(m)
	if err != nil {
		t.Fatal(err)
	}

	results := e.Resolve([]string{"foo"}, record.AllFields)
	if len(results[0].Providers) != 1 {
		t.Fatalf("Providers = %v, want exactly one entry for foo", results[0].Providers)
	}
}

func TestReloadPicksUpNewSnapshot(t *testing.T) {
	m := storage.NewMemory()
	e, err := New(m)
	if err != nil {
		t.Fatal(err)
	}

	result, err := e.Lookup(LookupByName, []string{"newpkg"}, record.AllFields)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Packages) != 0 {
		t.Fatal("expected no packages before Reload")
	}

	r := &record.PackageRecord{Name: "newpkg"}
	blob, err := snapshot.Encode(r)
	if err != nil {
		t.Fatal(err)
	}
	m.Add("newpkg", blob)

	if err := e.Reload(); err != nil {
		t.Fatal(err)
	}

	result, err = e.Lookup(LookupByName, []string{"newpkg"}, record.AllFields)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Packages) != 1 {
		t.Fatal("expected newpkg to be visible after Reload")
	}
}
