package rpc

import (
	"encoding/json"

	"connectrpc.com/connect"
)

const jsonCharsetUTF8 = "json; charset=utf-8"

// jsonCodec lets Connect handlers speak JSON over plain Go structs. It
// replaces the built-in JSON codecs, which only accept proto messages. Connect
// keys codecs by content-type suffix, so the charset variant browsers send
// needs its own registration.
type jsonCodec struct {
	name string
}

var _ connect.Codec = jsonCodec{}

func (c jsonCodec) Name() string {
	if c.name == "" {
		return "json"
	}
	return c.name
}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}
