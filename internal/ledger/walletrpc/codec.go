package walletrpc

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// codecName is negotiated over the wire via the grpc+<name> content-subtype.
// Both replicas are built from this same module, so there is no
// interoperability concern with picking JSON over protobuf binary.
const codecName = "json"

// jsonCodec implements encoding.Codec so gRPC can carry the plain structs
// in messages.go without a .proto-generated Marshal/Unmarshal pair.
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("walletrpc: marshal: %w", err)
	}
	return data, nil
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("walletrpc: unmarshal: %w", err)
	}
	return nil
}

func (jsonCodec) Name() string {
	return codecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
