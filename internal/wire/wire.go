// Package wire implements the fixed protobuf wire layouts the network
// speaks. Messages are encoded and decoded directly with protowire rather
// than generated code; the layouts are small and stable.
package wire

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Timestamp is a wall-clock instant with second and sub-second precision.
// Fields: seconds=1 (varint), nanos=2 (varint).
type Timestamp struct {
	Seconds int64
	Nanos   int32
}

// AccountID references an account. Fields: shard=1, realm=2, num=3 (varint).
type AccountID struct {
	Shard uint64
	Realm uint64
	Num   uint64
}

// TransactionID is the dedup/ordering key for a submitted transaction.
// Fields: account=1 (message), validStart=2 (message).
type TransactionID struct {
	Account    AccountID
	ValidStart Timestamp
}

func AppendTimestamp(b []byte, ts Timestamp) []byte {
	if ts.Seconds != 0 {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(ts.Seconds))
	}
	if ts.Nanos != 0 {
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(ts.Nanos))
	}
	return b
}

func ParseTimestamp(b []byte) (Timestamp, error) {
	var ts Timestamp
	err := eachField(b, func(num protowire.Number, v uint64, _ []byte) {
		switch num {
		case 1:
			ts.Seconds = int64(v)
		case 2:
			ts.Nanos = int32(v)
		}
	})
	return ts, err
}

func AppendAccountID(b []byte, id AccountID) []byte {
	if id.Shard != 0 {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, id.Shard)
	}
	if id.Realm != 0 {
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		b = protowire.AppendVarint(b, id.Realm)
	}
	if id.Num != 0 {
		b = protowire.AppendTag(b, 3, protowire.VarintType)
		b = protowire.AppendVarint(b, id.Num)
	}
	return b
}

func ParseAccountID(b []byte) (AccountID, error) {
	var id AccountID
	err := eachField(b, func(num protowire.Number, v uint64, _ []byte) {
		switch num {
		case 1:
			id.Shard = v
		case 2:
			id.Realm = v
		case 3:
			id.Num = v
		}
	})
	return id, err
}

func AppendTransactionID(b []byte, id TransactionID) []byte {
	b = appendMessage(b, 1, AppendAccountID(nil, id.Account))
	b = appendMessage(b, 2, AppendTimestamp(nil, id.ValidStart))
	return b
}

func ParseTransactionID(b []byte) (TransactionID, error) {
	var id TransactionID
	var inner error
	err := eachField(b, func(num protowire.Number, _ uint64, msg []byte) {
		switch num {
		case 1:
			id.Account, inner = ParseAccountID(msg)
		case 2:
			id.ValidStart, inner = ParseTimestamp(msg)
		}
	})
	if err == nil {
		err = inner
	}
	return id, err
}

func appendVarintField(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	b = protowire.AppendVarint(b, v)
	return b
}

// appendMessage writes a length-delimited submessage field. Empty
// submessages are written too so a zero-valued field survives a round trip
// as a present field.
func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	b = protowire.AppendBytes(b, msg)
	return b
}

// eachField walks every field in b, invoking fn with the field number and
// the decoded varint value (varint fields) or raw bytes (length-delimited
// fields). Unknown fields and wire types are skipped.
func eachField(b []byte, fn func(num protowire.Number, v uint64, msg []byte)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("malformed field tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return fmt.Errorf("malformed varint in field %d: %w", num, protowire.ParseError(n))
			}
			fn(num, v, nil)
			b = b[n:]
		case protowire.BytesType:
			msg, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return fmt.Errorf("malformed bytes in field %d: %w", num, protowire.ParseError(n))
			}
			fn(num, 0, msg)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fmt.Errorf("malformed field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return nil
}
