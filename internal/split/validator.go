package split

import (
	"errors"
	"fmt"

	"github.com/ZilDuck/nft-marketplace/internal/entity"
	"github.com/ZilDuck/nft-marketplace/pkg/permyriad"
)

var (
	ErrNoRecipients        = errors.New("no sale recipients")
	ErrZeroShare           = errors.New("recipient share must be positive")
	ErrShareExceeded       = errors.New("recipient shares exceed the whole")
	ErrBeneficiaryRequired = errors.New("direct recipient requires a beneficiary")
	ErrSharesIncomplete    = errors.New("recipient shares fall short of the whole")
)

// Validate walks the recipients once, left to right, and checks the split
// covers exactly the whole. The running total is checked at every entry so
// the error names the first recipient that pushes the split over.
func Validate(recipients []entity.SaleRecipient) error {
	if len(recipients) == 0 {
		return ErrNoRecipients
	}

	var total int64
	for idx, recipient := range recipients {
		if recipient.SharePermyriad <= 0 {
			return fmt.Errorf("%w: recipient %d", ErrZeroShare, idx)
		}

		total += recipient.SharePermyriad
		if total > permyriad.Total {
			return fmt.Errorf("%w: recipient %d", ErrShareExceeded, idx)
		}

		if recipient.Direct() && entity.IsNullAddress(recipient.Beneficiary) {
			return fmt.Errorf("%w: recipient %d", ErrBeneficiaryRequired, idx)
		}
	}

	if total < permyriad.Total {
		return ErrSharesIncomplete
	}

	return nil
}
