package rpcv1

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/falconindy/aurd/internal/query"
	"github.com/falconindy/aurd/internal/record"
)

// adapter implements Server over an *query.Engine, performing the
// v1-boundary defaulting spec.md §6.1 requires: UNKNOWN enum coercion and
// field-mask defaulting happen here, before the request reaches the core.
// Any other unrecognized enum value is passed through unchanged so the
// core's own UNIMPLEMENTED reporting (spec.md §4.5) fires; its message
// names the enum and reports an out-of-range value as INVALID.
type adapter struct {
	engine *query.Engine
}

// NewServer adapts engine to the Server interface expected by
// RegisterServer.
func NewServer(engine *query.Engine) Server {
	return &adapter{engine: engine}
}

func (a *adapter) Lookup(ctx context.Context, in *LookupRequest) (*LookupResponse, error) {
	mask := defaultMask(in.Options.PackageFieldMask, record.AllFields)

	by := in.LookupBy
	if by == LookupByUnknown {
		by = LookupByName
	}

	result, err := a.engine.Lookup(by.toQuery(), in.Names, mask)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &LookupResponse{
		Packages:      result.Packages,
		NotFoundNames: result.NotFoundNames,
	}, nil
}

func (a *adapter) Search(ctx context.Context, in *SearchRequest) (*SearchResponse, error) {
	mask := defaultMask(in.Options.PackageFieldMask, searchDefaultMask)

	by, logic := in.SearchBy, in.SearchLogic
	if by == SearchByUnknown {
		by = SearchByNameDesc
	}
	if logic == SearchLogicUnknown {
		logic = SearchLogicDisjunctive
	}

	packages, err := a.engine.Search(by.toQuery(), logic.toQuery(), in.Terms, mask)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &SearchResponse{Packages: packages}, nil
}

func (a *adapter) Resolve(ctx context.Context, in *ResolveRequest) (*ResolveResponse, error) {
	mask := defaultMask(in.Options.PackageFieldMask, record.AllFields)

	resolved := a.engine.Resolve(in.Depstrings, mask)

	out := make([]ResolvedPackage, len(resolved))
	for i, r := range resolved {
		out[i] = ResolvedPackage{Depstring: r.Depstring, Providers: r.Providers}
	}

	return &ResolveResponse{ResolvedPackages: out}, nil
}

// toStatusError translates a core query.UnimplementedError into the gRPC
// status spec.md §7 names for unrecognized enum values.
func toStatusError(err error) error {
	if unimpl, ok := err.(*query.UnimplementedError); ok {
		return status.Errorf(codes.Unimplemented, "unrecognized %s value %s", unimpl.Enum, unimpl.Value)
	}
	return status.Errorf(codes.Internal, "%v", err)
}
