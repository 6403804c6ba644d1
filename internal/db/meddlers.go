package db

import (
	"database/sql"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
)

func init() {
	meddler.Default = meddler.SQLite

	meddler.Register("address", textMeddler[common.Address]{
		decode: func(s string, dst *common.Address) error {
			if !common.IsHexAddress(s) {
				return fmt.Errorf("invalid address %q", s)
			}
			*dst = common.HexToAddress(s)
			return nil
		},
		encode: func(v *common.Address) string { return v.Hex() },
	})

	meddler.Register("hash", textMeddler[common.Hash]{
		decode: func(s string, dst *common.Hash) error {
			*dst = common.HexToHash(s)
			return nil
		},
		encode: func(v *common.Hash) string { return v.Hex() },
	})

	// bigint stores arbitrary width integers as decimal TEXT so uint256 values survive unchanged.
	meddler.Register("bigint", textMeddler[big.Int]{
		decode: func(s string, dst *big.Int) error {
			if _, ok := dst.SetString(s, 10); !ok {
				return fmt.Errorf("invalid decimal integer %q", s)
			}
			return nil
		},
		encode: func(v *big.Int) string { return v.String() },
	})
}

// textMeddler maps a value type to a nullable TEXT column.
// Fields may be declared either as T or as *T; NULL maps to the zero value or nil respectively.
type textMeddler[T any] struct {
	decode func(string, *T) error
	encode func(*T) string
}

func (m textMeddler[T]) PreRead(fieldAddr any) (scanTarget any, err error) {
	return new(sql.NullString), nil
}

func (m textMeddler[T]) PostRead(fieldAddr, scanTarget any) error {
	ns, ok := scanTarget.(*sql.NullString)
	if !ok {
		return fmt.Errorf("expected *sql.NullString, got %T", scanTarget)
	}

	switch ptr := fieldAddr.(type) {
	case **T:
		if !ns.Valid {
			*ptr = nil
			return nil
		}
		v := new(T)
		if err := m.decode(ns.String, v); err != nil {
			return err
		}
		*ptr = v
		return nil

	case *T:
		var zero T
		*ptr = zero
		if !ns.Valid {
			return nil
		}
		return m.decode(ns.String, ptr)

	default:
		return fmt.Errorf("expected *%T or **%T, got %T", *new(T), *new(T), fieldAddr)
	}
}

func (m textMeddler[T]) PreWrite(field any) (saveValue any, err error) {
	switch v := field.(type) {
	case *T:
		if v == nil {
			return nil, nil
		}
		return m.encode(v), nil

	case T:
		return m.encode(&v), nil

	default:
		return nil, fmt.Errorf("expected %T or *%T, got %T", *new(T), *new(T), field)
	}
}
