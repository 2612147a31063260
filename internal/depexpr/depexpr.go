// Package depexpr parses and evaluates AUR dependency expressions
// (depstrings): "name", "name=version", "name<=version", "name>=version",
// "name<version", or "name>version".
package depexpr

import (
	"strings"

	"github.com/falconindy/aurd/internal/record"
	"github.com/falconindy/aurd/internal/vercmp"
)

// Op is a version-comparison operator carried by a dependency expression.
type Op int

const (
	OpNone Op = iota
	OpEQ
	OpLT
	OpLE
	OpGT
	OpGE
)

func (o Op) String() string {
	switch o {
	case OpEQ:
		return "="
	case OpLT:
		return "<"
	case OpLE:
		return "<="
	case OpGT:
		return ">"
	case OpGE:
		return ">="
	default:
		return ""
	}
}

// Dependency is a parsed depstring.
type Dependency struct {
	Raw     string
	Name    string
	Op      Op
	Version string
}

// Parse splits a depstring into name, operator, and version. The first
// occurrence of "<=", ">=", "<", ">", or "=" (checked in that priority
// order) splits the prefix name from the suffix version. Whitespace is not
// trimmed. The absence of any operator yields (name=s, op=OpNone,
// version="").
func Parse(s string) Dependency {
	if i := strings.Index(s, "<="); i >= 0 {
		return Dependency{Raw: s, Name: s[:i], Op: OpLE, Version: s[i+2:]}
	}
	if i := strings.Index(s, ">="); i >= 0 {
		return Dependency{Raw: s, Name: s[:i], Op: OpGE, Version: s[i+2:]}
	}
	if i := strings.IndexAny(s, "<>="); i >= 0 {
		var op Op
		switch s[i] {
		case '<':
			op = OpLT
		case '>':
			op = OpGT
		case '=':
			op = OpEQ
		}
		return Dependency{Raw: s, Name: s[:i], Op: op, Version: s[i+1:]}
	}
	return Dependency{Raw: s, Name: s, Op: OpNone, Version: ""}
}

// SatisfiedBy reports whether candidate satisfies d, either directly by
// name and version, or via one of candidate's Provides entries.
//
// An unversioned dependency is satisfied by any matching name, whether from
// candidate.Name itself or from any of its Provides entries regardless of
// the provide's own operator. A versioned dependency additionally requires
// that candidate.Pkgver (for the name case) or an EQ-operator provide's
// version (for the provides case) satisfy d's operator and version — a
// provide whose own operator is not EQ, including NONE, can never satisfy a
// versioned dependency.
func (d Dependency) SatisfiedBy(candidate *record.PackageRecord) bool {
	if d.Version == "" {
		if d.Name == candidate.Name {
			return true
		}
		for _, p := range candidate.Provides {
			if Parse(p).Name == d.Name {
				return true
			}
		}
		return false
	}

	if d.Name == candidate.Name && d.versionSatisfied(candidate.Pkgver) {
		return true
	}

	for _, p := range candidate.Provides {
		provide := Parse(p)
		if provide.Op != OpEQ {
			continue
		}
		if provide.Name != d.Name {
			continue
		}
		if d.versionSatisfied(provide.Version) {
			return true
		}
	}

	return false
}

func (d Dependency) versionSatisfied(version string) bool {
	c := vercmp.Compare(version, d.Version)
	switch d.Op {
	case OpEQ:
		return c == 0
	case OpLT:
		return c < 0
	case OpLE:
		return c <= 0
	case OpGT:
		return c > 0
	case OpGE:
		return c >= 0
	default:
		return true
	}
}
