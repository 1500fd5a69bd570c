package api

import (
	json "github.com/goccy/go-json"
)

// Codec encodes messages as JSON for Connect.
//
// It registers under the name "json" so it replaces Connect's protobuf JSON
// codec, which only accepts generated messages. Handlers and clients built by
// package apiconnect install it automatically.
type Codec struct{}

// Name implements connect.Codec.
func (Codec) Name() string {
	return "json"
}

// Marshal implements connect.Codec.
func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

// Unmarshal implements connect.Codec.
func (Codec) Unmarshal(data []byte, msg any) error {
	return json.Unmarshal(data, msg)
}
