package rpcv1

import (
	"strings"

	"github.com/pkg/errors"
)

// ParseLookupBy maps a CLI-facing enum name (as accepted by cmd/aurctl's
// -l flag) to a LookupBy value. An empty or "UNKNOWN" name returns
// LookupByUnknown, which the v1 boundary coerces to NAME.
func ParseLookupBy(name string) (LookupBy, error) {
	switch strings.ToUpper(name) {
	case "", "UNKNOWN":
		return LookupByUnknown, nil
	case "NAME":
		return LookupByName, nil
	case "PKGBASE":
		return LookupByPkgbase, nil
	case "MAINTAINER":
		return LookupByMaintainer, nil
	case "GROUP":
		return LookupByGroup, nil
	case "KEYWORD":
		return LookupByKeyword, nil
	case "DEPENDS":
		return LookupByDepends, nil
	case "MAKEDEPENDS":
		return LookupByMakeDepends, nil
	case "CHECKDEPENDS":
		return LookupByCheckDepends, nil
	case "OPTDEPENDS":
		return LookupByOptDepends, nil
	default:
		return 0, errors.Errorf("unrecognized LookupBy %q", name)
	}
}

// ParseSearchBy maps a CLI-facing enum name (cmd/aurctl's -s flag) to a
// SearchBy value.
func ParseSearchBy(name string) (SearchBy, error) {
	switch strings.ToUpper(name) {
	case "", "UNKNOWN":
		return SearchByUnknown, nil
	case "NAME_DESC":
		return SearchByNameDesc, nil
	case "NAME":
		return SearchByName, nil
	default:
		return 0, errors.Errorf("unrecognized SearchBy %q", name)
	}
}

// ParseSearchLogic maps a CLI-facing enum name (cmd/aurctl's -o flag) to a
// SearchLogic value.
func ParseSearchLogic(name string) (SearchLogic, error) {
	switch strings.ToUpper(name) {
	case "", "UNKNOWN":
		return SearchLogicUnknown, nil
	case "DISJUNCTIVE":
		return SearchLogicDisjunctive, nil
	case "CONJUNCTIVE":
		return SearchLogicConjunctive, nil
	default:
		return 0, errors.Errorf("unrecognized SearchLogic %q", name)
	}
}

// ParseFieldMask splits a comma-delimited list of field-name paths (the
// -m flag) into a mask. An empty string yields a nil mask (no override).
func ParseFieldMask(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
