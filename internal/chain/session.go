package chain

import (
	"errors"
	"strconv"

	"go.uber.org/zap"
)

var ErrSessionClosed = errors.New("session already committed or rolled back")

// Session stages fund movements and the closing asset transfer, then settles
// everything as a single transaction on Commit. Nothing leaves the session
// until Commit; Rollback discards the staged messages. This reconstructs the
// all-or-nothing semantics a contract gets for free from its host chain.
type Session interface {
	Transfer(to string, amount uint64) error
	PayTerminal(terminal string, treasuryId uint64, amount uint64, payee, memo string, preferDirectTokenPayout bool) error
	TransferAsset(assetContract, from, to string, tokenId uint64) error
	Commit() (string, error)
	Rollback()
}

type message struct {
	Tag    string            `json:"tag"`
	To     string            `json:"to"`
	Amount string            `json:"amount"`
	Params map[string]string `json:"params,omitempty"`
}

type rpcSession struct {
	provider *Provider
	messages []message
	closed   bool
}

func (s *rpcSession) Transfer(to string, amount uint64) error {
	if s.closed {
		return ErrSessionClosed
	}

	s.messages = append(s.messages, message{
		Tag:    "AddFunds",
		To:     to,
		Amount: strconv.FormatUint(amount, 10),
	})

	return nil
}

func (s *rpcSession) PayTerminal(terminal string, treasuryId uint64, amount uint64, payee, memo string, preferDirectTokenPayout bool) error {
	if s.closed {
		return ErrSessionClosed
	}

	s.messages = append(s.messages, message{
		Tag:    "ReceivePayment",
		To:     terminal,
		Amount: strconv.FormatUint(amount, 10),
		Params: map[string]string{
			"treasury_id":                strconv.FormatUint(treasuryId, 10),
			"payee":                      payee,
			"memo":                       memo,
			"prefer_direct_token_payout": strconv.FormatBool(preferDirectTokenPayout),
		},
	})

	return nil
}

func (s *rpcSession) TransferAsset(assetContract, from, to string, tokenId uint64) error {
	if s.closed {
		return ErrSessionClosed
	}

	s.messages = append(s.messages, message{
		Tag:    "TransferFrom",
		To:     assetContract,
		Amount: "0",
		Params: map[string]string{
			"from":     from,
			"to":       to,
			"token_id": strconv.FormatUint(tokenId, 10),
		},
	})

	return nil
}

func (s *rpcSession) Commit() (string, error) {
	if s.closed {
		return "", ErrSessionClosed
	}
	s.closed = true

	txId, err := s.provider.CreateTransaction(map[string]interface{}{
		"messages": s.messages,
	})
	if err != nil {
		zap.L().With(zap.Error(err), zap.Int("messages", len(s.messages))).Error("Chain: Failed to commit session")
		return "", err
	}

	zap.L().With(zap.String("txId", txId), zap.Int("messages", len(s.messages))).Info("Chain: Session committed")

	return txId, nil
}

func (s *rpcSession) Rollback() {
	if s.closed {
		return
	}
	s.closed = true
	s.messages = nil
}
