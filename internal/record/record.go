// Package record defines the PackageRecord data model and the field-mask
// projection applied to it at query emission time.
package record

// PackageRecord is a flat record describing a single AUR package. All
// fields are optional except Name.
type PackageRecord struct {
	Name        string
	Pkgbase     string
	Pkgver      string
	Description string
	URL         string

	Votes      int32
	Popularity float64

	Submitted int64
	Modified  int64
	OutOfDate int64

	Maintainers   []string
	Groups        []string
	Keywords      []string
	Licenses      []string
	Architectures []string
	Conflicts     []string
	Replaces      []string

	// Provides, Depends, MakeDepends, CheckDepends, and OptDepends hold raw
	// dependency expressions (depstrings); see package depexpr for parsing.
	Provides     []string
	Depends      []string
	MakeDepends  []string
	CheckDepends []string
	OptDepends   []string
}
