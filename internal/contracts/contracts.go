// Package contracts holds the ABIs of the registry contracts the indexer reads.
package contracts

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const (
	// DomainABIFile is the file name of the domain registry ABI.
	DomainABIFile = "Domain.json"
	// RainbowTableABIFile is the file name of the rainbow table ABI.
	RainbowTableABIFile = "RainbowTable.json"

	// LookupMethod returns the preimage words of a revealed hash.
	LookupMethod = "lookup"
)

//go:embed abi/*.json
var embedded embed.FS

// ABIs are the parsed interfaces of the registry contracts.
type ABIs struct {
	Domain       abi.ABI
	RainbowTable abi.ABI
}

// LoadABIs parses the contract ABIs. A file with the same name in dir replaces
// the built-in definition; an empty dir uses the built-in ABIs only.
func LoadABIs(dir string) (*ABIs, error) {
	domain, err := loadABI(dir, DomainABIFile)
	if err != nil {
		return nil, err
	}

	rainbow, err := loadABI(dir, RainbowTableABIFile)
	if err != nil {
		return nil, err
	}

	return &ABIs{Domain: domain, RainbowTable: rainbow}, nil
}

// MustLoadDefault returns the built-in ABIs and panics if they are malformed.
func MustLoadDefault() *ABIs {
	abis, err := LoadABIs("")
	if err != nil {
		panic(err)
	}
	return abis
}

func loadABI(dir, name string) (abi.ABI, error) {
	data, err := readABI(dir, name)
	if err != nil {
		return abi.ABI{}, err
	}

	parsed, err := abi.JSON(bytes.NewReader(data))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	return parsed, nil
}

func readABI(dir, name string) ([]byte, error) {
	if dir != "" {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
	}

	return embedded.ReadFile("abi/" + name)
}
