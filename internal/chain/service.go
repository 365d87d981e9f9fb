package chain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrTokenNotFound = errors.New("token not found")

// Service is the capability surface the marketplace has over any asset
// contract on the chain: ownership and approval queries, plus the opening of
// payout sessions that settle as one atomic transaction.
type Service interface {
	TokenOwner(assetContract string, tokenId uint64) (string, error)
	ApprovedSpender(assetContract string, tokenId uint64) (string, error)
	IsOperator(assetContract, owner, operator string) (bool, error)
	NewSession() Session
}

type service struct {
	provider *Provider
}

func NewService(provider *Provider) Service {
	return service{provider}
}

func (s service) TokenOwner(assetContract string, tokenId uint64) (string, error) {
	addr, err := s.subStateAddress(assetContract, "token_owners", tokenId)
	if err != nil {
		return "", err
	}
	if addr == "" {
		return "", fmt.Errorf("%w: %s/%d", ErrTokenNotFound, assetContract, tokenId)
	}

	return addr, nil
}

// ApprovedSpender returns the empty string when no spender is approved for
// the token.
func (s service) ApprovedSpender(assetContract string, tokenId uint64) (string, error) {
	return s.subStateAddress(assetContract, "spenders", tokenId)
}

func (s service) IsOperator(assetContract, owner, operator string) (bool, error) {
	state, err := s.provider.GetSmartContractSubState(assetContract, "operators", []string{strings.ToLower(owner)})
	if err != nil {
		return false, err
	}

	operators, ok := nestedMap(state, "operators", strings.ToLower(owner))
	if !ok {
		return false, nil
	}

	_, approved := operators[strings.ToLower(operator)]

	return approved, nil
}

func (s service) NewSession() Session {
	return &rpcSession{provider: s.provider}
}

func (s service) subStateAddress(assetContract, variable string, tokenId uint64) (string, error) {
	state, err := s.provider.GetSmartContractSubState(assetContract, variable, []string{strconv.FormatUint(tokenId, 10)})
	if err != nil {
		return "", err
	}

	entries, ok := state[variable].(map[string]interface{})
	if !ok {
		return "", nil
	}

	addr, _ := entries[strconv.FormatUint(tokenId, 10)].(string)

	return strings.ToLower(addr), nil
}

func nestedMap(state map[string]interface{}, keys ...string) (map[string]interface{}, bool) {
	current := state
	for _, key := range keys {
		next, ok := current[key].(map[string]interface{})
		if !ok {
			return nil, false
		}
		current = next
	}

	return current, true
}
