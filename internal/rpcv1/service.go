package rpcv1

import (
	"context"

	"google.golang.org/grpc"
)

const (
	queryLookupFullMethodName  = "/aurd.v1.Query/Lookup"
	querySearchFullMethodName  = "/aurd.v1.Query/Search"
	queryResolveFullMethodName = "/aurd.v1.Query/Resolve"
)

// Server is the service-side interface the hand-authored ServiceDesc
// dispatches to. It is implemented by the adapter in boundary.go, which
// wraps an *internal/query.Engine.
type Server interface {
	Lookup(ctx context.Context, in *LookupRequest) (*LookupResponse, error)
	Search(ctx context.Context, in *SearchRequest) (*SearchResponse, error)
	Resolve(ctx context.Context, in *ResolveRequest) (*ResolveResponse, error)
}

// RegisterServer attaches srv to s under the Query service descriptor.
func RegisterServer(s grpc.ServiceRegistrar, srv Server) {
	s.RegisterService(&queryServiceDesc, srv)
}

func queryLookupHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LookupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(Server).Lookup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: queryLookupFullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(Server).Lookup(ctx, req.(*LookupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func querySearchHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SearchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(Server).Search(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: querySearchFullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(Server).Search(ctx, req.(*SearchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func queryResolveHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(Server).Resolve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: queryResolveFullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(Server).Resolve(ctx, req.(*ResolveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// queryServiceDesc is the grpc.ServiceDesc for the Query service, written
// by hand in place of protoc-gen-go-grpc output: the request/response
// types above are plain Go structs carried over the JSON codec rather
// than generated protobuf messages, so there is no .proto to generate
// this from.
var queryServiceDesc = grpc.ServiceDesc{
	ServiceName: "aurd.v1.Query",
	HandlerType: (*Server)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Lookup",
			Handler:    queryLookupHandler,
		},
		{
			MethodName: "Search",
			Handler:    querySearchHandler,
		},
		{
			MethodName: "Resolve",
			Handler:    queryResolveHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "aurd/v1/query.proto",
}

// Client is the client-side interface to the Query service.
type Client interface {
	Lookup(ctx context.Context, in *LookupRequest, opts ...grpc.CallOption) (*LookupResponse, error)
	Search(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*SearchResponse, error)
	Resolve(ctx context.Context, in *ResolveRequest, opts ...grpc.CallOption) (*ResolveResponse, error)
}

type queryClient struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps cc as a Client. cc should have been dialed with
// grpc.WithDefaultCallOptions(grpc.ForceCodec(Codec())) so that requests
// and responses are carried as JSON.
func NewClient(cc grpc.ClientConnInterface) Client {
	return &queryClient{cc: cc}
}

func (c *queryClient) Lookup(ctx context.Context, in *LookupRequest, opts ...grpc.CallOption) (*LookupResponse, error) {
	out := new(LookupResponse)
	if err := c.cc.Invoke(ctx, queryLookupFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Search(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*SearchResponse, error) {
	out := new(SearchResponse)
	if err := c.cc.Invoke(ctx, querySearchFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Resolve(ctx context.Context, in *ResolveRequest, opts ...grpc.CallOption) (*ResolveResponse, error) {
	out := new(ResolveResponse)
	if err := c.cc.Invoke(ctx, queryResolveFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
