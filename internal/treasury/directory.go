package treasury

import (
	"strconv"

	"github.com/ZilDuck/nft-marketplace/internal/chain"
)

// Directory resolves a treasury id to the terminal contract that collects
// payments for it. ResolveTerminal returns the empty string, without error,
// when no terminal is registered for the id.
type Directory interface {
	ResolveTerminal(treasuryId uint64) (string, error)
}

type directory struct {
	provider *chain.Provider
	address  string
}

// NewDirectory reads terminal registrations from the routing contract at
// the given address.
func NewDirectory(provider *chain.Provider, address string) Directory {
	return directory{provider, address}
}

func (d directory) ResolveTerminal(treasuryId uint64) (string, error) {
	id := strconv.FormatUint(treasuryId, 10)

	state, err := d.provider.GetSmartContractSubState(d.address, "terminals", []string{id})
	if err != nil {
		return "", err
	}

	terminals, ok := state["terminals"].(map[string]interface{})
	if !ok {
		return "", nil
	}

	terminal, _ := terminals[id].(string)

	return terminal, nil
}
