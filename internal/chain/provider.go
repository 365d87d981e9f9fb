package chain

import (
	"encoding/json"
)

// Provider exposes the node RPC methods the marketplace needs: contract
// sub-state reads for ownership and approval checks, and transaction
// submission for committed payout sessions.
type Provider struct {
	rpcClient *rpcClient
}

func NewProvider(url string, timeout int, debug bool) (*Provider, error) {
	client, err := NewClient(url, timeout, debug)
	if err != nil {
		return nil, err
	}

	return &Provider{rpcClient: client}, nil
}

// GetSmartContractSubState reads a single variable of a contract's state,
// optionally drilled into by map indices.
func (p *Provider) GetSmartContractSubState(contractAddress, variable string, indices []string) (map[string]interface{}, error) {
	if indices == nil {
		indices = make([]string, 0)
	}

	response, err := p.rpcClient.call("GetSmartContractSubState", []interface{}{contractAddress, variable, indices})
	if err != nil {
		return nil, err
	}

	var state map[string]interface{}
	if response.Result == nil || string(response.Result) == "null" {
		return state, nil
	}

	if err := json.Unmarshal(response.Result, &state); err != nil {
		return nil, err
	}

	return state, nil
}

// CreateTransaction submits a signed transaction payload and returns the
// transaction id reported by the node.
func (p *Provider) CreateTransaction(payload interface{}) (string, error) {
	response, err := p.rpcClient.call("CreateTransaction", []interface{}{payload})
	if err != nil {
		return "", err
	}

	var result struct {
		TranID string `json:"TranID"`
	}
	if err := json.Unmarshal(response.Result, &result); err != nil {
		return "", err
	}

	return result.TranID, nil
}
