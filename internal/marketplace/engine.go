package marketplace

import (
	"fmt"
	"strings"

	"github.com/ZilDuck/nft-marketplace/internal/chain"
	"github.com/ZilDuck/nft-marketplace/internal/entity"
	"github.com/ZilDuck/nft-marketplace/internal/event"
	"github.com/ZilDuck/nft-marketplace/internal/split"
	"github.com/ZilDuck/nft-marketplace/internal/store"
	"github.com/ZilDuck/nft-marketplace/internal/treasury"
	"github.com/ZilDuck/nft-marketplace/pkg/permyriad"
	"go.uber.org/zap"
)

// AssetReceiptAck is the fixed acknowledgment returned when an asset
// contract asks whether the marketplace can hold assets.
const AssetReceiptAck = "ZRC6_RecipientAcceptCallBack"

type Engine interface {
	List(caller, assetContract string, assetId uint64, price uint64, recipients []entity.SaleRecipient) error
	Purchase(buyer, assetContract string, assetId uint64, owner string, amount uint64) error
	Delist(caller, assetContract string, assetId uint64) error
	AcceptAsset() string
}

type engine struct {
	address   string
	listings  store.ListingStore
	chain     chain.Service
	directory treasury.Directory
	guard     *reentrancyGuard
}

// NewEngine builds the marketplace engine. address is the marketplace's own
// chain address; it is the approval subject for listings and the transfer
// origin for completed sales.
func NewEngine(address string, listings store.ListingStore, chainSvc chain.Service, directory treasury.Directory) Engine {
	return &engine{
		address:   strings.ToLower(address),
		listings:  listings,
		chain:     chainSvc,
		directory: directory,
		guard:     &reentrancyGuard{},
	}
}

// List records a fixed price listing together with its payout split. The
// caller must be authorized over the asset, and the marketplace itself must
// already hold approval so a later purchase can move the asset. Recipients
// are appended to any recipients already stored under the same key.
func (e *engine) List(caller, assetContract string, assetId uint64, price uint64, recipients []entity.SaleRecipient) error {
	if err := e.guard.enter(); err != nil {
		return err
	}
	defer e.guard.exit()

	caller = strings.ToLower(caller)
	assetContract = strings.ToLower(assetContract)

	owner, err := e.chain.TokenOwner(assetContract, assetId)
	if err != nil {
		return err
	}

	callerApproved, err := e.authorized(caller, owner, assetContract, assetId)
	if err != nil {
		return err
	}
	if !callerApproved {
		return fmt.Errorf("%w: caller %s", ErrUnapproved, caller)
	}

	marketApproved, err := e.authorized(e.address, owner, assetContract, assetId)
	if err != nil {
		return err
	}
	if !marketApproved {
		return fmt.Errorf("%w: marketplace %s", ErrUnapproved, e.address)
	}

	if err := split.Validate(recipients); err != nil {
		return err
	}

	for _, recipient := range recipients {
		e.listings.Put(caller, assetContract, assetId, recipient)
	}
	e.listings.PutPrice(assetContract, assetId, price)

	zap.L().With(
		zap.String("lister", caller),
		zap.String("assetContract", assetContract),
		zap.Uint64("assetId", assetId),
		zap.Uint64("price", price),
		zap.Int("recipients", len(recipients)),
	).Info("Marketplace: Listed")

	event.EmitEvent(event.ListingCreatedEvent, event.ListingCreated{
		Lister:        caller,
		AssetContract: assetContract,
		AssetId:       assetId,
		Recipients:    e.listings.Get(caller, assetContract, assetId),
		Price:         price,
	})

	return nil
}

// Purchase settles a listing: every recipient's cut is staged in payout
// order, the asset transfer to the buyer is staged last, and the whole
// session commits as one unit. Any failure rolls the session back and leaves
// the listing untouched.
func (e *engine) Purchase(buyer, assetContract string, assetId uint64, owner string, amount uint64) error {
	if err := e.guard.enter(); err != nil {
		return err
	}
	defer e.guard.exit()

	buyer = strings.ToLower(buyer)
	assetContract = strings.ToLower(assetContract)
	owner = strings.ToLower(owner)

	if amount != e.listings.GetPrice(assetContract, assetId) {
		return ErrIncorrectAmount
	}

	recipients := e.listings.Get(owner, assetContract, assetId)
	if len(recipients) == 0 {
		return split.ErrNoRecipients
	}

	session := e.chain.NewSession()

	for _, recipient := range recipients {
		cut := permyriad.Cut(amount, uint64(recipient.SharePermyriad))
		if cut == 0 {
			continue
		}

		if recipient.TreasuryId > 0 {
			if err := e.payTreasury(session, recipient, cut, buyer); err != nil {
				session.Rollback()
				return err
			}
			continue
		}

		if err := session.Transfer(recipient.Beneficiary, cut); err != nil {
			session.Rollback()
			return err
		}
	}

	if err := session.TransferAsset(assetContract, e.address, buyer, assetId); err != nil {
		session.Rollback()
		return err
	}

	if _, err := session.Commit(); err != nil {
		return err
	}

	e.listings.Erase(owner, assetContract, assetId)

	zap.L().With(
		zap.String("buyer", buyer),
		zap.String("assetContract", assetContract),
		zap.Uint64("assetId", assetId),
		zap.Uint64("amount", amount),
	).Info("Marketplace: Purchased")

	event.EmitEvent(event.SaleCompletedEvent, event.SaleCompleted{
		Marketplace:   e.address,
		Buyer:         buyer,
		AssetContract: assetContract,
		AssetId:       assetId,
		Amount:        amount,
	})

	return nil
}

// Delist erases the caller's listing without payment. Only the recipients
// are erased; the price entry stays behind.
func (e *engine) Delist(caller, assetContract string, assetId uint64) error {
	if err := e.guard.enter(); err != nil {
		return err
	}
	defer e.guard.exit()

	caller = strings.ToLower(caller)
	assetContract = strings.ToLower(assetContract)

	if len(e.listings.Get(caller, assetContract, assetId)) == 0 {
		return fmt.Errorf("%w: no listing for caller %s", ErrUnapproved, caller)
	}

	owner, err := e.chain.TokenOwner(assetContract, assetId)
	if err != nil {
		return err
	}

	marketApproved, err := e.authorized(e.address, owner, assetContract, assetId)
	if err != nil {
		return err
	}
	if !marketApproved {
		return fmt.Errorf("%w: marketplace %s", ErrUnapproved, e.address)
	}

	e.listings.Erase(caller, assetContract, assetId)

	zap.L().With(
		zap.String("lister", caller),
		zap.String("assetContract", assetContract),
		zap.Uint64("assetId", assetId),
	).Info("Marketplace: Delisted")

	event.EmitEvent(event.ListingRemovedEvent, event.ListingRemoved{
		Lister:        caller,
		AssetContract: assetContract,
		AssetId:       assetId,
	})

	return nil
}

// AcceptAsset confirms the marketplace can hold assets. It reads and writes
// nothing.
func (e *engine) AcceptAsset() string {
	return AssetReceiptAck
}

func (e *engine) payTreasury(session chain.Session, recipient entity.SaleRecipient, cut uint64, buyer string) error {
	terminal, err := e.directory.ResolveTerminal(recipient.TreasuryId)
	if err != nil {
		return err
	}
	if terminal == "" {
		return fmt.Errorf("%w: treasury %d", ErrTerminalNotFound, recipient.TreasuryId)
	}

	payee := recipient.Beneficiary
	if entity.IsNullAddress(payee) {
		payee = buyer
	}

	return session.PayTerminal(terminal, recipient.TreasuryId, cut, payee, recipient.Memo, recipient.PreferDirectTokenPayout)
}

// authorized reports whether subject may move the asset: it is the owner,
// holds the token approval, or is an operator for the owner.
func (e *engine) authorized(subject, owner, assetContract string, assetId uint64) (bool, error) {
	if subject == owner {
		return true, nil
	}

	spender, err := e.chain.ApprovedSpender(assetContract, assetId)
	if err != nil {
		return false, err
	}
	if spender != "" && spender == subject {
		return true, nil
	}

	return e.chain.IsOperator(assetContract, owner, subject)
}
