package event

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Tags used in the serialized args. Every value is written as {"kind": <tag>, ...} so the
// decoder never has to guess whether a string was a number.
const (
	TagBigInt  = "bigint"
	TagAddress = "address"
	TagBytes   = "bytes"
	TagHash    = "hash"
	TagString  = "string"
	TagBool    = "bool"
)

type taggedValue struct {
	Kind    string          `json:"kind"`
	Decimal string          `json:"decimal,omitempty"`
	Value   json.RawMessage `json:"value,omitempty"`
}

// EncodeArgs serializes decoded event arguments into tagged JSON.
// Integers of any width are written as decimal strings and restored as *big.Int.
func EncodeArgs(args map[string]any) ([]byte, error) {
	out := make(map[string]taggedValue, len(args))

	for key, v := range args {
		tv, err := encodeValue(v)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", key, err)
		}
		out[key] = tv
	}

	return json.Marshal(out)
}

// DecodeArgs restores arguments written by EncodeArgs.
func DecodeArgs(data []byte) (map[string]any, error) {
	var raw map[string]taggedValue
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse args: %w", err)
	}

	args := make(map[string]any, len(raw))
	for key, tv := range raw {
		v, err := decodeValue(tv)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", key, err)
		}
		args[key] = v
	}

	return args, nil
}

func encodeValue(v any) (taggedValue, error) {
	switch val := v.(type) {
	case *big.Int:
		if val == nil {
			return taggedValue{}, fmt.Errorf("nil integer")
		}
		return bigTag(val), nil
	case int:
		return bigTag(big.NewInt(int64(val))), nil
	case int8:
		return bigTag(big.NewInt(int64(val))), nil
	case int16:
		return bigTag(big.NewInt(int64(val))), nil
	case int32:
		return bigTag(big.NewInt(int64(val))), nil
	case int64:
		return bigTag(big.NewInt(val)), nil
	case uint:
		return bigTag(new(big.Int).SetUint64(uint64(val))), nil
	case uint8:
		return bigTag(new(big.Int).SetUint64(uint64(val))), nil
	case uint16:
		return bigTag(new(big.Int).SetUint64(uint64(val))), nil
	case uint32:
		return bigTag(new(big.Int).SetUint64(uint64(val))), nil
	case uint64:
		return bigTag(new(big.Int).SetUint64(val)), nil
	case common.Address:
		return jsonTag(TagAddress, val.Hex())
	case common.Hash:
		return jsonTag(TagHash, val.Hex())
	case [32]byte:
		return jsonTag(TagHash, common.Hash(val).Hex())
	case []byte:
		return jsonTag(TagBytes, hexutil.Encode(val))
	case string:
		return jsonTag(TagString, val)
	case bool:
		return jsonTag(TagBool, val)
	default:
		return taggedValue{}, fmt.Errorf("unsupported type %T", v)
	}
}

func bigTag(n *big.Int) taggedValue {
	return taggedValue{Kind: TagBigInt, Decimal: n.String()}
}

func jsonTag(kind string, v any) (taggedValue, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return taggedValue{}, err
	}
	return taggedValue{Kind: kind, Value: raw}, nil
}

func decodeValue(tv taggedValue) (any, error) {
	switch tv.Kind {
	case TagBigInt:
		n, ok := new(big.Int).SetString(tv.Decimal, 10)
		if !ok {
			return nil, fmt.Errorf("invalid decimal %q", tv.Decimal)
		}
		return n, nil

	case TagAddress:
		var s string
		if err := json.Unmarshal(tv.Value, &s); err != nil {
			return nil, err
		}
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("invalid address %q", s)
		}
		return common.HexToAddress(s), nil

	case TagBytes:
		var s string
		if err := json.Unmarshal(tv.Value, &s); err != nil {
			return nil, err
		}
		return hexutil.Decode(s)

	case TagHash:
		var s string
		if err := json.Unmarshal(tv.Value, &s); err != nil {
			return nil, err
		}
		b, err := hexutil.Decode(s)
		if err != nil {
			return nil, err
		}
		if len(b) != common.HashLength {
			return nil, fmt.Errorf("invalid hash length %d", len(b))
		}
		return common.BytesToHash(b), nil

	case TagString:
		var s string
		if err := json.Unmarshal(tv.Value, &s); err != nil {
			return nil, err
		}
		return s, nil

	case TagBool:
		var b bool
		if err := json.Unmarshal(tv.Value, &b); err != nil {
			return nil, err
		}
		return b, nil

	default:
		return nil, fmt.Errorf("unknown value kind %q", tv.Kind)
	}
}
