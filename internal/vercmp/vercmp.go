// Package vercmp implements pacman's native package-version comparison
// (epoch:version-release), matching the behavior of alpm_pkg_vercmp bit for
// bit. It is treated as an external contract: callers should not need to
// know anything about the underlying rpmvercmp-derived algorithm.
package vercmp

import "strings"

// Compare returns -1, 0, or 1 according to whether a sorts before, the
// same as, or after b under pacman's version ordering rules.
func Compare(a, b string) int {
	if a == b {
		return 0
	}

	ea, va, ra := splitEVR(a)
	eb, vb, rb := splitEVR(b)

	if c := compareEpoch(ea, eb); c != 0 {
		return c
	}
	if c := segmentCompare(va, vb); c != 0 {
		return c
	}
	if ra == "" || rb == "" {
		// A missing pkgrel on either side means release isn't part of the
		// comparison.
		return 0
	}
	return segmentCompare(ra, rb)
}

// splitEVR splits a "epoch:version-release" string into its parts. epoch
// and release are both optional.
func splitEVR(v string) (epoch, version, release string) {
	if i := strings.IndexByte(v, ':'); i >= 0 {
		epoch = v[:i]
		v = v[i+1:]
	}
	if i := strings.LastIndexByte(v, '-'); i >= 0 {
		version = v[:i]
		release = v[i+1:]
	} else {
		version = v
	}
	return epoch, version, release
}

func compareEpoch(a, b string) int {
	ai, bi := epochValue(a), epochValue(b)
	switch {
	case ai < bi:
		return -1
	case ai > bi:
		return 1
	default:
		return 0
	}
}

// epochValue parses an epoch string as an unsigned integer, treating any
// non-numeric or empty epoch as 0 (pacman's convention).
func epochValue(e string) int {
	n := 0
	for i := 0; i < len(e); i++ {
		if e[i] < '0' || e[i] > '9' {
			return 0
		}
		n = n*10 + int(e[i]-'0')
	}
	return n
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isAlnum(c byte) bool { return isDigit(c) || isAlpha(c) }

// segmentCompare implements the rpmvercmp-derived algorithm: strings are
// walked left to right, comparing alternating alpha and numeric runs, with
// numeric runs always outranking alpha runs and a leading tilde sorting
// below everything, including the empty string.
func segmentCompare(a, b string) int {
	if a == b {
		return 0
	}

	i, j := 0, 0
	for i < len(a) || j < len(b) {
		for i < len(a) && !isAlnum(a[i]) && a[i] != '~' {
			i++
		}
		for j < len(b) && !isAlnum(b[j]) && b[j] != '~' {
			j++
		}

		aTilde := i < len(a) && a[i] == '~'
		bTilde := j < len(b) && b[j] == '~'
		if aTilde || bTilde {
			if !aTilde {
				return 1
			}
			if !bTilde {
				return -1
			}
			i++
			j++
			continue
		}

		if i >= len(a) || j >= len(b) {
			break
		}

		numeric := isDigit(a[i])

		startA := i
		if numeric {
			for i < len(a) && isDigit(a[i]) {
				i++
			}
		} else {
			for i < len(a) && isAlpha(a[i]) {
				i++
			}
		}
		segA := a[startA:i]

		startB := j
		if numeric {
			for j < len(b) && isDigit(b[j]) {
				j++
			}
		} else {
			for j < len(b) && isAlpha(b[j]) {
				j++
			}
		}
		segB := b[startB:j]

		if segB == "" {
			// b has no run of the expected kind here: a numeric run always
			// outranks an absent (or alpha-typed) counterpart.
			if numeric {
				return 1
			}
			return -1
		}

		if numeric {
			segA = strings.TrimLeft(segA, "0")
			segB = strings.TrimLeft(segB, "0")
			if len(segA) != len(segB) {
				if len(segA) > len(segB) {
					return 1
				}
				return -1
			}
		}
		if segA != segB {
			if segA > segB {
				return 1
			}
			return -1
		}
	}

	return tailCompare(i < len(a), j < len(b), a, b, i, j)
}

// tailCompare resolves the case where one (or both) sides ran out of
// segments to compare. A leftover alpha run must never beat an empty
// remainder on the other side, so the type of what's left matters, not
// just which side has more characters: "1.0a" sorts below "1.0".
func tailCompare(aHasRem, bHasRem bool, a, b string, i, j int) int {
	switch {
	case !aHasRem && !bHasRem:
		return 0
	case !aHasRem && isAlpha(b[j]):
		return 1
	case aHasRem && isAlpha(a[i]) && !bHasRem:
		return -1
	case aHasRem:
		return 1
	default:
		return -1
	}
}
