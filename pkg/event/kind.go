package event

import "fmt"

// Kind identifies which contract log an event was decoded from.
type Kind string

const (
	KindDomainRegister     Kind = "DomainRegister"
	KindDomainTransfer     Kind = "DomainTransfer"
	KindRainbowTableReveal Kind = "RainbowTableReveal"
)

// AllKinds lists every event kind in a stable order.
var AllKinds = []Kind{KindDomainRegister, KindDomainTransfer, KindRainbowTableReveal}

func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is one of the known kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindDomainRegister, KindDomainTransfer, KindRainbowTableReveal:
		return true
	default:
		return false
	}
}

// ParseKind converts a stored kind name back into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("unknown event kind %q", s)
	}
	return k, nil
}
