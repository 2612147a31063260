package rpcv1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// jsonCodec is a grpc encoding.Codec that marshals the plain Go structs in
// this package as JSON, in place of protobuf wire encoding. It is
// registered on both client and server with grpc.ForceCodec /
// grpc.ForceServerCodec so that no protoc-generated message types are
// required anywhere in this repository.
type jsonCodec struct{}

// Name implements encoding.Codec.
func (jsonCodec) Name() string { return "json" }

// Marshal implements encoding.Codec.
func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal implements encoding.Codec.
func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// Codec returns the shared JSON codec instance used by both cmd/aurd and
// cmd/aurctl.
func Codec() encoding.Codec {
	return jsonCodec{}
}
