package rpcv1

import "testing"

func TestParseLookupByCaseInsensitive(t *testing.T) {
	got, err := ParseLookupBy("pkgbase")
	if err != nil {
		t.Fatal(err)
	}
	if got != LookupByPkgbase {
		t.Fatalf("got %v, want LookupByPkgbase", got)
	}
}

func TestParseLookupByEmptyIsUnknown(t *testing.T) {
	got, err := ParseLookupBy("")
	if err != nil {
		t.Fatal(err)
	}
	if got != LookupByUnknown {
		t.Fatalf("got %v, want LookupByUnknown", got)
	}
}

func TestParseLookupByRejectsUnrecognized(t *testing.T) {
	if _, err := ParseLookupBy("bogus"); err == nil {
		t.Fatal("expected an error for an unrecognized name")
	}
}

func TestParseSearchByAndLogic(t *testing.T) {
	if by, err := ParseSearchBy("name"); err != nil || by != SearchByName {
		t.Fatalf("ParseSearchBy(name) = (%v, %v)", by, err)
	}
	if logic, err := ParseSearchLogic("conjunctive"); err != nil || logic != SearchLogicConjunctive {
		t.Fatalf("ParseSearchLogic(conjunctive) = (%v, %v)", logic, err)
	}
}

func TestParseFieldMask(t *testing.T) {
	got := ParseFieldMask("name,pkgver,description")
	want := []string{"name", "pkgver", "description"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestParseFieldMaskEmpty(t *testing.T) {
	if got := ParseFieldMask(""); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}
