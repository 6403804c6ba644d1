package event

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Argument names shared by the ABI decoder and the stored args.
const (
	ArgRegistrant  = "registrant"
	ArgTo          = "to"
	ArgFrom        = "from"
	ArgName        = "name"
	ArgLeaseLength = "leaseLength"
	ArgTokenID     = "tokenId"
	ArgHash        = "hash"
)

// Payload is the typed body of an event. The set of implementations is closed.
type Payload interface {
	Kind() Kind
	// Fields returns the arguments keyed by their ABI names.
	Fields() map[string]any

	sealed()
}

// DomainRegister is emitted when a name is registered or renewed.
type DomainRegister struct {
	Registrant  common.Address
	To          common.Address
	Name        *big.Int
	LeaseLength *big.Int
}

func (DomainRegister) Kind() Kind { return KindDomainRegister }
func (DomainRegister) sealed()    {}

func (p DomainRegister) Fields() map[string]any {
	return map[string]any{
		ArgRegistrant:  p.Registrant,
		ArgTo:          p.To,
		ArgName:        p.Name,
		ArgLeaseLength: p.LeaseLength,
	}
}

// DomainTransfer is the ERC-721 transfer of a name token.
type DomainTransfer struct {
	From    common.Address
	To      common.Address
	TokenID *big.Int
}

func (DomainTransfer) Kind() Kind { return KindDomainTransfer }
func (DomainTransfer) sealed()    {}

func (p DomainTransfer) Fields() map[string]any {
	return map[string]any{
		ArgFrom:    p.From,
		ArgTo:      p.To,
		ArgTokenID: p.TokenID,
	}
}

// RainbowTableReveal signals that the preimage of Hash is now available on chain.
type RainbowTableReveal struct {
	Hash *big.Int
}

func (RainbowTableReveal) Kind() Kind { return KindRainbowTableReveal }
func (RainbowTableReveal) sealed()    {}

func (p RainbowTableReveal) Fields() map[string]any {
	return map[string]any{
		ArgHash: p.Hash,
	}
}

// PayloadFromFields builds the typed payload for kind from decoded arguments.
// Only the shape is checked: every required key must be present with the expected type.
func PayloadFromFields(kind Kind, fields map[string]any) (Payload, error) {
	switch kind {
	case KindDomainRegister:
		var (
			p   DomainRegister
			err error
		)
		if p.Registrant, err = addressField(fields, ArgRegistrant); err != nil {
			return nil, err
		}
		if p.To, err = addressField(fields, ArgTo); err != nil {
			return nil, err
		}
		if p.Name, err = bigField(fields, ArgName); err != nil {
			return nil, err
		}
		if p.LeaseLength, err = bigField(fields, ArgLeaseLength); err != nil {
			return nil, err
		}
		return p, nil

	case KindDomainTransfer:
		var (
			p   DomainTransfer
			err error
		)
		if p.From, err = addressField(fields, ArgFrom); err != nil {
			return nil, err
		}
		if p.To, err = addressField(fields, ArgTo); err != nil {
			return nil, err
		}
		if p.TokenID, err = bigField(fields, ArgTokenID); err != nil {
			return nil, err
		}
		return p, nil

	case KindRainbowTableReveal:
		hash, err := bigField(fields, ArgHash)
		if err != nil {
			return nil, err
		}
		return RainbowTableReveal{Hash: hash}, nil

	default:
		return nil, fmt.Errorf("unknown event kind %q", kind)
	}
}

func addressField(fields map[string]any, key string) (common.Address, error) {
	v, ok := fields[key]
	if !ok {
		return common.Address{}, fmt.Errorf("missing argument %q", key)
	}

	addr, ok := v.(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("argument %q: expected address, got %T", key, v)
	}

	return addr, nil
}

func bigField(fields map[string]any, key string) (*big.Int, error) {
	v, ok := fields[key]
	if !ok {
		return nil, fmt.Errorf("missing argument %q", key)
	}

	n, ok := v.(*big.Int)
	if !ok || n == nil {
		return nil, fmt.Errorf("argument %q: expected integer, got %T", key, v)
	}

	return n, nil
}
