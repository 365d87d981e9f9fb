package split

import (
	"math/rand"
	"testing"

	"github.com/ZilDuck/nft-marketplace/internal/entity"
	"github.com/ZilDuck/nft-marketplace/pkg/permyriad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recipient(share int64) entity.SaleRecipient {
	return entity.SaleRecipient{SharePermyriad: share, Beneficiary: "0xd793f378a925b9f0d3c4b6ee544d44c6d5163695"}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate([]entity.SaleRecipient{recipient(10000)}))
	assert.NoError(t, Validate([]entity.SaleRecipient{recipient(6000), recipient(4000)}))
	assert.NoError(t, Validate([]entity.SaleRecipient{recipient(3333), recipient(3333), recipient(3334)}))
}

func TestValidate_NoRecipients(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), ErrNoRecipients)
	assert.ErrorIs(t, Validate([]entity.SaleRecipient{}), ErrNoRecipients)
}

func TestValidate_ZeroShare(t *testing.T) {
	assert.ErrorIs(t, Validate([]entity.SaleRecipient{recipient(0)}), ErrZeroShare)
	assert.ErrorIs(t, Validate([]entity.SaleRecipient{recipient(5000), recipient(-1)}), ErrZeroShare)
}

func TestValidate_ShareExceeded(t *testing.T) {
	err := Validate([]entity.SaleRecipient{recipient(6000), recipient(5000), recipient(1000)})
	require.ErrorIs(t, err, ErrShareExceeded)

	// The running total is checked at every entry, so the first recipient
	// pushing the split over is the one reported.
	assert.Contains(t, err.Error(), "recipient 1")
}

func TestValidate_BeneficiaryRequired(t *testing.T) {
	direct := entity.SaleRecipient{SharePermyriad: 10000}
	assert.ErrorIs(t, Validate([]entity.SaleRecipient{direct}), ErrBeneficiaryRequired)

	nullAddr := entity.SaleRecipient{SharePermyriad: 10000, Beneficiary: entity.NullAddress}
	assert.ErrorIs(t, Validate([]entity.SaleRecipient{nullAddr}), ErrBeneficiaryRequired)

	// A treasury recipient may omit the beneficiary.
	viaTreasury := entity.SaleRecipient{SharePermyriad: 10000, TreasuryId: 7}
	assert.NoError(t, Validate([]entity.SaleRecipient{viaTreasury}))
}

func TestValidate_SharesIncomplete(t *testing.T) {
	assert.ErrorIs(t, Validate([]entity.SaleRecipient{recipient(9999)}), ErrSharesIncomplete)
	assert.ErrorIs(t, Validate([]entity.SaleRecipient{recipient(5000), recipient(4000)}), ErrSharesIncomplete)
}

func TestValidate_ErrorOrder(t *testing.T) {
	// A zero share is reported before the prefix overrun that follows it.
	err := Validate([]entity.SaleRecipient{recipient(10000), recipient(0), recipient(1)})
	assert.ErrorIs(t, err, ErrZeroShare)

	// A missing beneficiary after the overrunning entry is never reached.
	err = Validate([]entity.SaleRecipient{recipient(10000), recipient(1), {SharePermyriad: 1}})
	assert.ErrorIs(t, err, ErrShareExceeded)
}

// Any split whose shares do not sum to exactly the whole must be rejected,
// with the error determined by which side of the whole the sum lands on.
func TestValidate_RejectsWrongTotals(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		count := 1 + rng.Intn(8)
		recipients := make([]entity.SaleRecipient, count)

		var total int64
		for j := range recipients {
			share := int64(1 + rng.Intn(4000))
			recipients[j] = recipient(share)
			total += share
		}

		if total == permyriad.Total {
			assert.NoError(t, Validate(recipients))
			continue
		}

		err := Validate(recipients)
		require.Error(t, err)
		if total > permyriad.Total {
			assert.ErrorIs(t, err, ErrShareExceeded)
		} else {
			assert.ErrorIs(t, err, ErrSharesIncomplete)
		}
	}
}
