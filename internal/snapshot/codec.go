package snapshot

import (
	"bytes"
	"encoding/gob"

	"github.com/falconindy/aurd/internal/record"
)

// Encode serializes r into the Storage blob wire format.
//
// The pack's stack offers no ready-made binary codec that doesn't require
// protoc-style code generation (see DESIGN.md); encoding/gob is the
// standard library's native binary record format and round-trips
// PackageRecord's fields exactly, so it is used here instead of a
// fabricated "generated" codec.
func Encode(r *record.PackageRecord) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode deserializes a Storage blob into r.
func Decode(blob []byte, r *record.PackageRecord) error {
	return gob.NewDecoder(bytes.NewReader(blob)).Decode(r)
}
