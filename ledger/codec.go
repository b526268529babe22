package ledger

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
)

type grpcChannel struct {
	conn *grpc.ClientConn
}

func (c *grpcChannel) Invoke(ctx context.Context, method string, req []byte) ([]byte, error) {
	var resp []byte
	err := c.conn.Invoke(ctx, method, req, &resp, grpc.ForceCodec(rawCodec{}))
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// rawCodec passes request and response bytes through untouched. Operation
// builders already produce protobuf-encoded payloads, so the codec reports
// itself as "proto" on the wire.
type rawCodec struct{}

func (rawCodec) Marshal(v any) ([]byte, error) {
	b, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("raw codec: expected []byte, got %T", v)
	}
	return b, nil
}

func (rawCodec) Unmarshal(data []byte, v any) error {
	out, ok := v.(*[]byte)
	if !ok {
		return fmt.Errorf("raw codec: expected *[]byte, got %T", v)
	}
	*out = append([]byte(nil), data...)
	return nil
}

func (rawCodec) Name() string { return "proto" }
