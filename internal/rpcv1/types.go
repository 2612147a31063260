// Package rpcv1 is the v1 RPC surface: wire-level request/response types,
// the enum and field-mask defaulting that happens only at this boundary,
// and a hand-authored gRPC service descriptor (no protoc-generated
// bindings) paired with a JSON wire codec.
package rpcv1

import (
	"github.com/falconindy/aurd/internal/query"
	"github.com/falconindy/aurd/internal/record"
)

// LookupBy mirrors query.LookupBy at the wire boundary. Values share the
// same ordinal ordering so conversion is a direct cast; validation of
// out-of-range values is deferred to the core, which is where
// UNIMPLEMENTED is reported from.
type LookupBy int32

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

func (l LookupBy) toQuery() query.LookupBy {
	return query.LookupBy(l)
}

// SearchBy mirrors query.SearchBy at the wire boundary.
type SearchBy int32

const (
	SearchByUnknown SearchBy = iota
	SearchByNameDesc
	SearchByName
)

func (s SearchBy) toQuery() query.SearchBy {
	return query.SearchBy(s)
}

// SearchLogic mirrors query.SearchLogic at the wire boundary.
type SearchLogic int32

const (
	SearchLogicUnknown SearchLogic = iota
	SearchLogicDisjunctive
	SearchLogicConjunctive
)

func (s SearchLogic) toQuery() query.SearchLogic {
	return query.SearchLogic(s)
}

// RequestOptions carries the field mask common to all three RPCs.
type RequestOptions struct {
	PackageFieldMask []string `json:"package_field_mask,omitempty"`
}

// LookupRequest is the Lookup RPC's request.
type LookupRequest struct {
	LookupBy LookupBy       `json:"lookup_by"`
	Names    []string       `json:"names"`
	Options  RequestOptions `json:"options"`
}

// LookupResponse is the Lookup RPC's response.
type LookupResponse struct {
	Packages      []record.PackageRecord `json:"packages"`
	NotFoundNames []string               `json:"not_found_names,omitempty"`
}

// SearchRequest is the Search RPC's request.
type SearchRequest struct {
	SearchBy    SearchBy       `json:"search_by"`
	SearchLogic SearchLogic    `json:"search_logic"`
	Terms       []string       `json:"terms"`
	Options     RequestOptions `json:"options"`
}

// SearchResponse is the Search RPC's response.
type SearchResponse struct {
	Packages []record.PackageRecord `json:"packages"`
}

// ResolveRequest is the Resolve RPC's request.
type ResolveRequest struct {
	Depstrings []string       `json:"depstrings"`
	Options    RequestOptions `json:"options"`
}

// ResolvedPackage pairs a requested depstring with the packages that
// satisfy it.
type ResolvedPackage struct {
	Depstring string                 `json:"depstring"`
	Providers []record.PackageRecord `json:"providers"`
}

// ResolveResponse is the Resolve RPC's response.
type ResolveResponse struct {
	ResolvedPackages []ResolvedPackage `json:"resolved_packages"`
}

// defaultMask returns requested as a FieldMask, or def if requested is
// empty. This is the v1-boundary field-mask defaulting from spec.md
// §6.1: Search defaults to ["name"], Lookup and Resolve default to every
// field.
func defaultMask(requested []string, def record.FieldMask) record.FieldMask {
	if len(requested) == 0 {
		return def
	}
	return record.FieldMask(requested)
}

// searchDefaultMask is Search's v1-boundary default field mask.
var searchDefaultMask = record.FieldMask{"name"}
