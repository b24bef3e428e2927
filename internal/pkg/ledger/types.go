package ledger

// RecordOutcome reports what a ledger insert did.
type RecordOutcome string

const (
	// SaleInserted means a genuinely new row was written; only this
	// outcome triggers referral crediting.
	SaleInserted RecordOutcome = "inserted"
	// SaleAlreadyRecorded is the normal result of a retried delivery.
	SaleAlreadyRecorded RecordOutcome = "already_recorded"
)

// SaleInput is the normalized input for ledger insertion.
type SaleInput struct {
	ExternalID   string
	BuyerEmail   string
	ProductID    string
	AmountMinor  int64
	ReferralCode string
}

// CreditResult describes the effect of crediting one referral.
type CreditResult struct {
	Code     string
	Known    bool
	NewTotal int64
	OldTier  string
	NewTier  string
}

// Upgraded reports whether the credit moved the referrer to a higher tier.
func (r CreditResult) Upgraded() bool {
	return r.Known && r.NewTier != r.OldTier
}
