package entity

// SaleRecipient is a single entry of a listing's payout split. The order the
// recipients were submitted in is the order they are paid in.
type SaleRecipient struct {
	PreferDirectTokenPayout bool   `json:"preferDirectTokenPayout"`
	SharePermyriad          int64  `json:"sharePermyriad"`
	Beneficiary             string `json:"beneficiary"`
	Memo                    string `json:"memo"`
	TreasuryId              uint64 `json:"treasuryId"`
}

// Direct reports whether the proceeds cut goes straight to the beneficiary
// rather than through a treasury terminal.
func (r SaleRecipient) Direct() bool {
	return r.TreasuryId == 0
}
